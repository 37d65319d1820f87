package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/core/ports"
)

// AccountHandler serves admin-only account listings.
type AccountHandler struct {
	accounts ports.AccountRepository
}

func NewAccountHandler(accounts ports.AccountRepository) *AccountHandler {
	return &AccountHandler{accounts: accounts}
}

// accountResponse deliberately has no password field at all; relying on a
// json:"-" tag alone leaves the hash one struct refactor away from leaking.
type accountResponse struct {
	ID        string    `json:"id"`
	FullName  string    `json:"full_name"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// List handles GET /admin/all-users.
//
// @Summary      List all accounts
// @Tags         admin
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   accountResponse
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/all-users [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.accounts.List(c.Request().Context())
	if err != nil {
		return err
	}

	resp := make([]accountResponse, 0, len(accounts))
	for _, a := range accounts {
		resp = append(resp, accountResponse{
			ID:        a.ID,
			FullName:  a.FullName,
			Email:     a.Email,
			Role:      a.Role,
			CreatedAt: a.CreatedAt,
		})
	}
	return c.JSON(http.StatusOK, resp)
}
