package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/api/middleware"
)

// ctxClaims extracts the identity injected by the Auth middleware. Both
// values present proves the middleware ran; their absence on a protected
// route is a wiring error, rejected rather than treated as anonymous.
func ctxClaims(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get(middleware.CtxAccountID).(string)
	role, _ = c.Get(middleware.CtxRole).(string)
	if accountID == "" || role == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return accountID, role, nil
}
