package ports

import (
	"context"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

type AuthService interface {
	// Login verifies the credentials and returns a signed bearer token.
	// Unknown username and wrong password are indistinguishable to the caller.
	Login(ctx context.Context, username, password string) (string, error)
	// Register provisions a new account with a hashed password.
	Register(ctx context.Context, username, password, email string, role domain.Role) (*domain.Account, error)
}

// TokenIssuer mints signed, time-limited bearer tokens for a subject.
type TokenIssuer interface {
	Issue(subject string) (string, error)
}

// TokenVerifier validates a bearer token and returns the subject it carries.
// Every failure mode surfaces as domain.ErrInvalidToken.
type TokenVerifier interface {
	Verify(token string) (string, error)
}

// PasswordHasher abstracts the one-way credential hash.
type PasswordHasher interface {
	Hash(password string) (string, error)
	// Check reports whether password matches digest; false on a malformed
	// digest rather than an error.
	Check(password, digest string) bool
}
