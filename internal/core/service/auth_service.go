package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"
	"golang.org/x/crypto/bcrypt"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

// SessionStore abstracts the refresh-session registry (Redis). A session that
// is absent — expired, revoked, or never created — makes its refresh token
// unusable even though the signature still verifies.
type SessionStore interface {
	Save(ctx context.Context, sessionID, accountID string, ttl time.Duration) error
	Exists(ctx context.Context, sessionID string) (bool, error)
	Revoke(ctx context.Context, sessionID string) error
}

// AuthService implements registration, login, token refresh, and logout.
type AuthService struct {
	accounts   ports.AccountRepository
	tokens     ports.TokenService
	sessions   SessionStore
	refreshTTL time.Duration
	log        zerolog.Logger
}

func NewAuthService(
	accounts ports.AccountRepository,
	tokens ports.TokenService,
	sessions SessionStore,
	refreshTTL time.Duration,
	log zerolog.Logger,
) *AuthService {
	if refreshTTL <= 0 {
		refreshTTL = 7 * 24 * time.Hour
	}
	return &AuthService{
		accounts:   accounts,
		tokens:     tokens,
		sessions:   sessions,
		refreshTTL: refreshTTL,
		log:        log,
	}
}

func (s *AuthService) Register(ctx context.Context, fullName, email, password, role string) (*ports.AuthResult, error) {
	if fullName == "" || email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}
	if !domain.RegistrableRole(role) {
		return nil, domain.ErrInvalidRole
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		FullName:     fullName,
		Email:        email,
		PasswordHash: string(hash),
		Role:         role,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.accounts.Create(ctx, account)
	if err != nil {
		return nil, err
	}

	s.log.Info().Str("account_id", created.ID).Str("role", created.Role).Msg("account registered")

	return s.issuePair(ctx, created)
}

func (s *AuthService) Login(ctx context.Context, email, password string) (*ports.AuthResult, error) {
	if email == "" || password == "" {
		return nil, domain.ErrInvalidCredentials
	}

	account, err := s.accounts.FindByEmail(ctx, email)
	if err != nil {
		// Collapse "no such account" into the same error as a bad password
		// so the response does not reveal which emails are registered.
		return nil, domain.ErrInvalidCredentials
	}

	if bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)) != nil {
		return nil, domain.ErrInvalidCredentials
	}

	return s.issuePair(ctx, account)
}

func (s *AuthService) Refresh(ctx context.Context, refreshToken string) (string, error) {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return "", err
	}

	live, err := s.sessions.Exists(ctx, claims.SessionID)
	if err != nil {
		return "", err
	}
	if !live {
		return "", domain.ErrSessionRevoked
	}

	return s.tokens.IssueAccessToken(claims.AccountID, claims.Role)
}

func (s *AuthService) Logout(ctx context.Context, refreshToken string) error {
	claims, err := s.tokens.VerifyRefreshToken(refreshToken)
	if err != nil {
		return err
	}

	return s.sessions.Revoke(ctx, claims.SessionID)
}

// issuePair mints an access/refresh token pair and registers the refresh
// session for logout revocation.
func (s *AuthService) issuePair(ctx context.Context, account *domain.Account) (*ports.AuthResult, error) {
	access, err := s.tokens.IssueAccessToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	refresh, sessionID, err := s.tokens.IssueRefreshToken(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	if err := s.sessions.Save(ctx, sessionID, account.ID, s.refreshTTL); err != nil {
		return nil, err
	}

	return &ports.AuthResult{Account: account, AccessToken: access, RefreshToken: refresh}, nil
}
