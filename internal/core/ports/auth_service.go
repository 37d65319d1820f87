package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// AuthResult carries the account and the credential pair issued for it.
type AuthResult struct {
	Account      *domain.Account
	AccessToken  string
	RefreshToken string
}

type AuthService interface {
	Register(ctx context.Context, fullName, email, password, role string) (*AuthResult, error)
	Login(ctx context.Context, email, password string) (*AuthResult, error)
	// Refresh re-issues a short-lived access token from a live refresh credential.
	Refresh(ctx context.Context, refreshToken string) (string, error)
	// Logout revokes the refresh credential's session. Idempotent.
	Logout(ctx context.Context, refreshToken string) error
}
