package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/litogalan/portfolio-cms/internal/api/middleware"
	"github.com/litogalan/portfolio-cms/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware and
// fast-fails before any service call when it is absent. A non-empty user id
// proves the middleware ran.
func ctxClaims(c echo.Context) (domain.AuthClaims, error) {
	userID, _ := c.Get(middleware.CtxUserID).(string)
	if userID == "" {
		return domain.AuthClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}

	email, _ := c.Get(middleware.CtxEmail).(string)
	isAdmin, _ := c.Get(middleware.CtxIsAdmin).(bool)

	return domain.AuthClaims{UserID: userID, Email: email, IsAdmin: isAdmin}, nil
}
