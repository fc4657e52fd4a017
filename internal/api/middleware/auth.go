package middleware

import (
	"errors"
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/api/metrics"
	"github.com/litogalan/portfolio-cms/internal/core/domain"
	"github.com/litogalan/portfolio-cms/internal/core/ports"
)

// Context keys under which Auth stores the verified identity.
const (
	CtxUserID  = "user_id"
	CtxEmail   = "email"
	CtxIsAdmin = "is_admin"
)

// Auth verifies the bearer token and injects the caller's identity into the
// request context. The Authorization header may carry a "Bearer " prefix or
// the raw token; both are accepted.
func Auth(tokens ports.TokenService) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			raw := extractToken(c.Request().Header.Get("Authorization"))
			if raw == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			claims, err := tokens.Verify(raw)
			if err != nil {
				if errors.Is(err, domain.ErrTokenExpired) {
					metrics.AuthFailuresTotal.WithLabelValues("expired").Inc()
					return echo.NewHTTPError(http.StatusUnauthorized, "token expired")
				}
				metrics.AuthFailuresTotal.WithLabelValues("invalid").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxEmail, claims.Email)
			c.Set(CtxIsAdmin, claims.IsAdmin)

			return next(c)
		}
	}
}

// extractToken tolerates both "Bearer <token>" and a bare token value.
func extractToken(header string) string {
	header = strings.TrimSpace(header)
	if header == "" {
		return ""
	}
	parts := strings.SplitN(header, " ", 2)
	if len(parts) == 2 && strings.EqualFold(parts[0], "bearer") {
		return strings.TrimSpace(parts[1])
	}
	return header
}
