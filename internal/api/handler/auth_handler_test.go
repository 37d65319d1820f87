package handler

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"sync"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

type stubAuthService struct {
	registerResult *ports.AuthResult
	registerErr    error
	loginResult    *ports.AuthResult
	loginErr       error
	refreshToken   string
	refreshErr     error
	logoutErr      error

	lastRole string
}

func (s *stubAuthService) Register(_ context.Context, _, _, _, role string) (*ports.AuthResult, error) {
	s.lastRole = role
	return s.registerResult, s.registerErr
}

func (s *stubAuthService) Login(_ context.Context, _, _ string) (*ports.AuthResult, error) {
	return s.loginResult, s.loginErr
}

func (s *stubAuthService) Refresh(_ context.Context, _ string) (string, error) {
	return s.refreshToken, s.refreshErr
}

func (s *stubAuthService) Logout(_ context.Context, _ string) error {
	return s.logoutErr
}

type recordingDispatcher struct {
	mu     sync.Mutex
	events []ports.AuditEventInput
}

func (d *recordingDispatcher) Enqueue(event ports.AuditEventInput) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.events = append(d.events, event)
}

func (d *recordingDispatcher) actions() []string {
	d.mu.Lock()
	defer d.mu.Unlock()
	out := make([]string, 0, len(d.events))
	for _, event := range d.events {
		out = append(out, event.Action)
	}
	return out
}

func newJSONContext(method, path, body string) (echo.Context, *httptest.ResponseRecorder) {
	e := echo.New()
	e.Validator = NewValidator()
	req := httptest.NewRequest(method, path, strings.NewReader(body))
	req.Header.Set(echo.HeaderContentType, echo.MIMEApplicationJSON)
	rec := httptest.NewRecorder()
	return e.NewContext(req, rec), rec
}

func testAuthResult() *ports.AuthResult {
	return &ports.AuthResult{
		Account: &domain.Account{
			ID:       "acc_1",
			FullName: "Ana Lopez",
			Email:    "ana@example.com",
			Role:     domain.RoleUser,
		},
		AccessToken:  "access-token",
		RefreshToken: "refresh-token",
	}
}

func TestAuthHandler_Register(t *testing.T) {
	svc := &stubAuthService{registerResult: testAuthResult()}
	audit := &recordingDispatcher{}
	h := NewAuthHandler(svc, audit)

	body := `{"fullName":"Ana Lopez","email":"ana@example.com","password":"password1","role":"user"}`
	c, rec := newJSONContext(http.MethodPost, "/user/register", body)

	if err := h.Register(c); err != nil {
		t.Fatalf("register: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastRole != domain.RoleUser {
		t.Fatalf("role not forwarded, got %q", svc.lastRole)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "access-token" || resp["refresh_token"] != "refresh-token" {
		t.Fatalf("tokens missing from response: %v", resp)
	}
	if strings.Contains(rec.Body.String(), "password") {
		t.Fatalf("response leaks password material: %s", rec.Body.String())
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "register" {
		t.Fatalf("expected one register audit event, got %v", got)
	}
}

func TestAuthHandler_RegisterValidation(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, nil)

	cases := map[string]string{
		"admin role":     `{"fullName":"Eve","email":"eve@example.com","password":"password1","role":"admin"}`,
		"short password": `{"fullName":"Ana","email":"ana@example.com","password":"short","role":"user"}`,
		"bad email":      `{"fullName":"Ana","email":"not-an-email","password":"password1","role":"user"}`,
		"missing name":   `{"email":"ana@example.com","password":"password1","role":"user"}`,
	}

	for name, body := range cases {
		c, _ := newJSONContext(http.MethodPost, "/user/register", body)
		err := h.Register(c)

		httpErr, ok := err.(*echo.HTTPError)
		if !ok || httpErr.Code != http.StatusBadRequest {
			t.Fatalf("%s: expected 400, got %v", name, err)
		}
	}
}

func TestAuthHandler_Login(t *testing.T) {
	svc := &stubAuthService{loginResult: testAuthResult()}
	audit := &recordingDispatcher{}
	h := NewAuthHandler(svc, audit)

	c, rec := newJSONContext(http.MethodPost, "/user/login", `{"email":"ana@example.com","password":"password1"}`)
	if err := h.Login(c); err != nil {
		t.Fatalf("login: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "login" {
		t.Fatalf("expected one login audit event, got %v", got)
	}
}

func TestAuthHandler_LoginFailurePassesThroughDomainError(t *testing.T) {
	svc := &stubAuthService{loginErr: domain.ErrInvalidCredentials}
	h := NewAuthHandler(svc, &recordingDispatcher{})

	c, _ := newJSONContext(http.MethodPost, "/user/login", `{"email":"ana@example.com","password":"wrong-pass"}`)
	err := h.Login(c)
	if err != domain.ErrInvalidCredentials {
		t.Fatalf("expected ErrInvalidCredentials passed to error handler, got %v", err)
	}
}

func TestAuthHandler_Refresh(t *testing.T) {
	svc := &stubAuthService{refreshToken: "new-access"}
	h := NewAuthHandler(svc, nil)

	c, rec := newJSONContext(http.MethodPost, "/token/refresh", `{"refresh_token":"refresh-token"}`)
	if err := h.Refresh(c); err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}

	var resp map[string]any
	if err := json.Unmarshal(rec.Body.Bytes(), &resp); err != nil {
		t.Fatalf("decode response: %v", err)
	}
	if resp["token"] != "new-access" {
		t.Fatalf("unexpected token: %v", resp["token"])
	}
}

func TestAuthHandler_Logout(t *testing.T) {
	h := NewAuthHandler(&stubAuthService{}, nil)

	c, rec := newJSONContext(http.MethodPost, "/user/logout", `{"refresh_token":"refresh-token"}`)
	if err := h.Logout(c); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
}
