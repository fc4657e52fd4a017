package ports

import "github.com/litogalan/portfolio-cms/internal/core/domain"

// TokenService issues and parses signed, time-limited identity tokens.
type TokenService interface {
	// Issue encodes the user's id, email and admin flag plus an expiry and
	// signs the result with the process-wide secret.
	Issue(user *domain.User) (string, error)
	// Verify checks signature and expiry. It fails with
	// domain.ErrTokenExpired or domain.ErrTokenInvalid; callers surface both
	// as the same authorization failure.
	Verify(token string) (*domain.AuthClaims, error)
	// Decode parses claims without verifying signature or expiry. Never use
	// the result to authorize an action.
	Decode(token string) (*domain.AuthClaims, error)
}
