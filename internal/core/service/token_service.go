package service

import (
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/pimcentral/pim-api/internal/core/domain"
)

// DefaultTokenTTL is the session window applied when the caller does not
// override it: two hours.
const DefaultTokenTTL = 120 * time.Minute

// TokenService issues and verifies HS256-signed bearer tokens. The signing
// key and TTL are fixed at construction and never rotate during the process
// lifetime. Tokens are stateless; there is no server-side revocation, expiry
// is the only invalidation mechanism.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl <= 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue mints a token carrying subject and expiring after the configured TTL.
func (s *TokenService) Issue(subject string) (string, error) {
	return s.IssueWithTTL(subject, s.ttl)
}

// IssueWithTTL mints a token with an explicit TTL override.
func (s *TokenService) IssueWithTTL(subject string, ttl time.Duration) (string, error) {
	claims := jwt.RegisteredClaims{
		Subject:   subject,
		ExpiresAt: jwt.NewNumericDate(time.Now().Add(ttl)),
	}
	return jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(s.secret)
}

// Verify checks signature and expiry against the current clock and returns
// the subject. Malformed tokens, signature mismatches, wrong algorithms and
// past expiry all collapse into domain.ErrInvalidToken so the caller cannot
// tell forgery from expiry.
func (s *TokenService) Verify(token string) (string, error) {
	claims := jwt.RegisteredClaims{}
	parsed, err := jwt.ParseWithClaims(token, &claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	}, jwt.WithExpirationRequired())
	if err != nil || !parsed.Valid || claims.Subject == "" {
		return "", domain.ErrInvalidToken
	}
	return claims.Subject, nil
}
