package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/vistamar/pousada-api/internal/api/middleware"
	"github.com/vistamar/pousada-api/internal/core/domain"
)

// ctxClaims extracts the identity injected by the Auth middleware. A
// missing or malformed claim set means the middleware did not run; reject
// with 401 before touching any service.
func ctxClaims(c echo.Context) (domain.TokenClaims, error) {
	email, _ := c.Get(middleware.ContextKeyEmail).(string)
	role, _ := c.Get(middleware.ContextKeyRole).(domain.Role)
	if email == "" || !role.Valid() {
		return domain.TokenClaims{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return domain.TokenClaims{Email: email, Role: role}, nil
}
