package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/api/metrics"
	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
	audit       ports.AuditDispatcher
}

func NewAuthHandler(authService ports.AuthService, audit ports.AuditDispatcher) *AuthHandler {
	return &AuthHandler{authService: authService, audit: audit}
}

type registerRequest struct {
	FullName string `json:"fullName" validate:"required"`
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required,min=8"`
	Role     string `json:"role"     validate:"required,oneof=user instructor"`
}

type loginRequest struct {
	Email    string `json:"email"    validate:"required,email"`
	Password string `json:"password" validate:"required"`
}

type refreshRequest struct {
	RefreshToken string `json:"refresh_token" validate:"required"`
}

type authResponse struct {
	Message      string          `json:"message"`
	Token        string          `json:"token,omitempty"`
	RefreshToken string          `json:"refresh_token,omitempty"`
	Account      *domain.Account `json:"account,omitempty"`
}

// Register creates a new account and returns a credential pair.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /user/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Register(c.Request().Context(), req.FullName, req.Email, req.Password, req.Role)
	if err != nil {
		return err
	}

	metrics.RegistrationsTotal.WithLabelValues(result.Account.Role).Inc()
	h.emit(result.Account, "register")

	return c.JSON(http.StatusCreated, authResponse{
		Message:      "registration successful",
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		Account:      result.Account,
	})
}

// Login authenticates an account and returns a credential pair.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  authResponse
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Router       /user/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	result, err := h.authService.Login(c.Request().Context(), req.Email, req.Password)
	if err != nil {
		metrics.LoginsTotal.WithLabelValues("failure").Inc()
		return err
	}

	metrics.LoginsTotal.WithLabelValues("success").Inc()
	h.emit(result.Account, "login")

	return c.JSON(http.StatusOK, authResponse{
		Message:      "login successful",
		Token:        result.AccessToken,
		RefreshToken: result.RefreshToken,
		Account:      result.Account,
	})
}

// Logout revokes the presented refresh credential's session.
//
// @Summary      Logout
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh credential to revoke"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  errorResponse
// @Router       /user/logout [post]
func (h *AuthHandler) Logout(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	if err := h.authService.Logout(c.Request().Context(), req.RefreshToken); err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Message: "logout successful"})
}

// Refresh re-issues a short-lived access token from a live refresh credential.
//
// @Summary      Refresh the access token
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      refreshRequest  true  "Refresh credential"
// @Success      200   {object}  authResponse
// @Failure      403   {object}  errorResponse
// @Router       /token/refresh [post]
func (h *AuthHandler) Refresh(c echo.Context) error {
	var req refreshRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	token, err := h.authService.Refresh(c.Request().Context(), req.RefreshToken)
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, authResponse{Message: "token refreshed", Token: token})
}

func (h *AuthHandler) emit(account *domain.Account, action string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuditEventInput{
		ActorID:  account.ID,
		Role:     account.Role,
		Action:   action,
		Entity:   "account",
		EntityID: account.ID,
		At:       time.Now().UTC(),
	})
}
