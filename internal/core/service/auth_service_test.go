package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"golang.org/x/crypto/bcrypt"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
	"github.com/rs/zerolog"
)

type stubAccountRepo struct {
	byEmail map[string]*domain.Account
	nextID  int
}

func newStubAccountRepo() *stubAccountRepo {
	return &stubAccountRepo{byEmail: make(map[string]*domain.Account)}
}

func (r *stubAccountRepo) Create(_ context.Context, account *domain.Account) (*domain.Account, error) {
	if _, ok := r.byEmail[account.Email]; ok {
		return nil, domain.ErrAccountExists
	}
	r.nextID++
	copied := *account
	copied.ID = "acc_" + strconv.Itoa(r.nextID)
	r.byEmail[account.Email] = &copied
	return &copied, nil
}

func (r *stubAccountRepo) FindByEmail(_ context.Context, email string) (*domain.Account, error) {
	account, ok := r.byEmail[email]
	if !ok {
		return nil, domain.ErrAccountNotFound
	}
	return account, nil
}

func (r *stubAccountRepo) FindByID(_ context.Context, id string) (*domain.Account, error) {
	for _, account := range r.byEmail {
		if account.ID == id {
			return account, nil
		}
	}
	return nil, domain.ErrAccountNotFound
}

func (r *stubAccountRepo) List(_ context.Context) ([]domain.Account, error) {
	out := make([]domain.Account, 0, len(r.byEmail))
	for _, account := range r.byEmail {
		out = append(out, *account)
	}
	return out, nil
}

type stubSessionStore struct {
	live map[string]bool
}

func newStubSessionStore() *stubSessionStore {
	return &stubSessionStore{live: make(map[string]bool)}
}

func (s *stubSessionStore) Save(_ context.Context, sessionID, _ string, _ time.Duration) error {
	s.live[sessionID] = true
	return nil
}

func (s *stubSessionStore) Exists(_ context.Context, sessionID string) (bool, error) {
	return s.live[sessionID], nil
}

func (s *stubSessionStore) Revoke(_ context.Context, sessionID string) error {
	delete(s.live, sessionID)
	return nil
}

func newAuthFixture() (*AuthService, *stubAccountRepo, *stubSessionStore, ports.TokenService) {
	accounts := newStubAccountRepo()
	sessions := newStubSessionStore()
	tokens := NewTokenService("access-secret", "refresh-secret", time.Hour, 24*time.Hour)
	svc := NewAuthService(accounts, tokens, sessions, 24*time.Hour, zerolog.Nop())
	return svc, accounts, sessions, tokens
}

func TestAuthService_RegisterAndLogin(t *testing.T) {
	svc, accounts, _, tokens := newAuthFixture()
	ctx := context.Background()

	result, err := svc.Register(ctx, "Ana Lopez", "ana@example.com", "correct-horse", domain.RoleInstructor)
	if err != nil {
		t.Fatalf("register: %v", err)
	}
	if result.Account.Role != domain.RoleInstructor {
		t.Fatalf("unexpected role: %s", result.Account.Role)
	}
	if result.AccessToken == "" || result.RefreshToken == "" {
		t.Fatalf("expected both tokens on registration")
	}

	stored := accounts.byEmail["ana@example.com"]
	if stored.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in clear")
	}
	if bcrypt.CompareHashAndPassword([]byte(stored.PasswordHash), []byte("correct-horse")) != nil {
		t.Fatalf("stored hash does not match password")
	}

	login, err := svc.Login(ctx, "ana@example.com", "correct-horse")
	if err != nil {
		t.Fatalf("login: %v", err)
	}
	claims, err := tokens.VerifyAccessToken(login.AccessToken)
	if err != nil {
		t.Fatalf("verify login token: %v", err)
	}
	if claims.AccountID != stored.ID || claims.Role != domain.RoleInstructor {
		t.Fatalf("unexpected claims: %+v", claims)
	}
}

func TestAuthService_RegisterRejectsAdminRole(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	_, err := svc.Register(context.Background(), "Eve", "eve@example.com", "password1", domain.RoleAdmin)
	if !errors.Is(err, domain.ErrInvalidRole) {
		t.Fatalf("expected ErrInvalidRole, got %v", err)
	}
}

func TestAuthService_RegisterDuplicateEmail(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "password1", domain.RoleUser); err != nil {
		t.Fatalf("first register: %v", err)
	}
	_, err := svc.Register(ctx, "Ana Again", "ana@example.com", "password2", domain.RoleUser)
	if !errors.Is(err, domain.ErrAccountExists) {
		t.Fatalf("expected ErrAccountExists, got %v", err)
	}
}

func TestAuthService_LoginFailuresAreIndistinguishable(t *testing.T) {
	svc, _, _, _ := newAuthFixture()
	ctx := context.Background()

	if _, err := svc.Register(ctx, "Ana", "ana@example.com", "password1", domain.RoleUser); err != nil {
		t.Fatalf("register: %v", err)
	}

	// Unknown email and wrong password must produce the same error.
	_, unknownErr := svc.Login(ctx, "nobody@example.com", "password1")
	_, wrongErr := svc.Login(ctx, "ana@example.com", "not-the-password")

	if !errors.Is(unknownErr, domain.ErrInvalidCredentials) {
		t.Fatalf("unknown email: expected ErrInvalidCredentials, got %v", unknownErr)
	}
	if !errors.Is(wrongErr, domain.ErrInvalidCredentials) {
		t.Fatalf("wrong password: expected ErrInvalidCredentials, got %v", wrongErr)
	}
}

func TestAuthService_RefreshAndLogout(t *testing.T) {
	svc, _, sessions, tokens := newAuthFixture()
	ctx := context.Background()

	result, err := svc.Register(ctx, "Ana", "ana@example.com", "password1", domain.RoleUser)
	if err != nil {
		t.Fatalf("register: %v", err)
	}

	access, err := svc.Refresh(ctx, result.RefreshToken)
	if err != nil {
		t.Fatalf("refresh: %v", err)
	}
	if _, err := tokens.VerifyAccessToken(access); err != nil {
		t.Fatalf("refreshed token does not verify: %v", err)
	}

	if err := svc.Logout(ctx, result.RefreshToken); err != nil {
		t.Fatalf("logout: %v", err)
	}
	if len(sessions.live) != 0 {
		t.Fatalf("expected session revoked, %d still live", len(sessions.live))
	}

	// The token itself is still cryptographically valid, but its session is
	// gone, so refresh must fail.
	if _, err := svc.Refresh(ctx, result.RefreshToken); !errors.Is(err, domain.ErrSessionRevoked) {
		t.Fatalf("expected ErrSessionRevoked after logout, got %v", err)
	}
}

func TestAuthService_RefreshRejectsGarbage(t *testing.T) {
	svc, _, _, _ := newAuthFixture()

	if _, err := svc.Refresh(context.Background(), "not-a-token"); !errors.Is(err, domain.ErrInvalidToken) {
		t.Fatalf("expected ErrInvalidToken, got %v", err)
	}
}
