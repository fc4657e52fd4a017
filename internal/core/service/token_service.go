package service

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"

	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

// DefaultTokenTTL bounds how long an issued token stays valid. Tokens are
// bearer credentials with no revocation list, so the lifetime is kept short.
const DefaultTokenTTL = 20 * time.Minute

type tokenClaims struct {
	UserID  string `json:"id"`
	Email   string `json:"email"`
	IsAdmin bool   `json:"isAdmin"`
	jwt.RegisteredClaims
}

// TokenService signs and parses HS256 identity tokens.
type TokenService struct {
	secret []byte
	ttl    time.Duration
}

// NewTokenService builds a signer with the given lifetime. A zero ttl falls
// back to the default; a negative ttl is honored and issues already-expired
// tokens.
func NewTokenService(secret string, ttl time.Duration) *TokenService {
	if ttl == 0 {
		ttl = DefaultTokenTTL
	}
	return &TokenService{secret: []byte(secret), ttl: ttl}
}

// Issue encodes the user's id, email and admin flag with an expiry and signs
// the result. The claims are a snapshot: later user changes do not propagate
// to already-issued tokens.
func (s *TokenService) Issue(user *domain.User) (string, error) {
	now := time.Now().UTC()
	claims := tokenClaims{
		UserID:  user.ID,
		Email:   user.Email,
		IsAdmin: user.IsAdmin,
		RegisteredClaims: jwt.RegisteredClaims{
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(s.ttl)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.secret)
}

// Verify checks signature and expiry and returns the embedded claims.
func (s *TokenService) Verify(token string) (*domain.AuthClaims, error) {
	claims := &tokenClaims{}
	tkn, err := jwt.ParseWithClaims(token, claims, func(t *jwt.Token) (interface{}, error) {
		if t.Method.Alg() != jwt.SigningMethodHS256.Alg() {
			return nil, jwt.ErrTokenSignatureInvalid
		}
		return s.secret, nil
	})
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, domain.ErrTokenExpired
		}
		return nil, domain.ErrTokenInvalid
	}
	if !tkn.Valid {
		return nil, domain.ErrTokenInvalid
	}
	return toAuthClaims(claims), nil
}

// Decode parses claims without verifying signature or expiry. For inspection
// only — never authorize an action from its result.
func (s *TokenService) Decode(token string) (*domain.AuthClaims, error) {
	claims := &tokenClaims{}
	if _, _, err := jwt.NewParser().ParseUnverified(token, claims); err != nil {
		return nil, domain.ErrTokenInvalid
	}
	return toAuthClaims(claims), nil
}

// Expired reports whether the token's embedded expiry has passed, without
// verifying the signature. Used to pre-check before a network call.
func (s *TokenService) Expired(token string) bool {
	claims, err := s.Decode(token)
	if err != nil || claims.ExpiresAt.IsZero() {
		return true
	}
	return claims.ExpiresAt.Before(time.Now())
}

func toAuthClaims(c *tokenClaims) *domain.AuthClaims {
	out := &domain.AuthClaims{
		UserID:  c.UserID,
		Email:   c.Email,
		IsAdmin: c.IsAdmin,
	}
	if c.ExpiresAt != nil {
		out.ExpiresAt = c.ExpiresAt.Time
	}
	return out
}
