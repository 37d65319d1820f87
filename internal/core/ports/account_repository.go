package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// AccountRepository defines persistence for account records.
type AccountRepository interface {
	Create(ctx context.Context, account *domain.Account) (*domain.Account, error)
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	// List returns every account. Password hashes are populated; callers must
	// strip them before serializing.
	List(ctx context.Context) ([]domain.Account, error)
}
