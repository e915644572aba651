package service

import (
	"context"
	"errors"
	"time"

	"github.com/pimcentral/pim-api/internal/core/domain"
	"github.com/pimcentral/pim-api/internal/core/ports"
)

// AuthService implements login and account provisioning.
type AuthService struct {
	accounts ports.AccountRepository
	hasher   ports.PasswordHasher
	tokens   ports.TokenIssuer
}

func NewAuthService(accounts ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer) *AuthService {
	return &AuthService{accounts: accounts, hasher: hasher, tokens: tokens}
}

// Login checks the credentials against the account store and returns a signed
// bearer token whose subject is the account id. Unknown usernames and wrong
// passwords both come back as ErrInvalidCredentials.
func (s *AuthService) Login(ctx context.Context, username, password string) (string, error) {
	if username == "" || password == "" {
		return "", domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByUsername(ctx, username)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			return "", domain.ErrInvalidCredentials
		}
		return "", err
	}

	if !s.hasher.Check(password, account.PasswordHash) {
		return "", domain.ErrInvalidCredentials
	}

	return s.tokens.Issue(account.ID)
}

// Register provisions a new account. Used by the seeding command; there is no
// public sign-up endpoint.
func (s *AuthService) Register(ctx context.Context, username, password, email string, role domain.Role) (*domain.Account, error) {
	if username == "" || password == "" || !role.Valid() {
		return nil, domain.ErrInvalidCredentials
	}

	hash, err := s.hasher.Hash(password)
	if err != nil {
		return nil, err
	}

	now := time.Now().UTC()
	account := &domain.Account{
		Username:     username,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
		Active:       true,
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	return s.accounts.Create(ctx, account)
}
