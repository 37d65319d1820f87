package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// CartService defines use-case operations on a per-account cart. Every
// mutation is scoped to rows owned by accountID; a row belonging to another
// account is reported as not found, never touched.
type CartService interface {
	List(ctx context.Context, accountID string) ([]domain.CartItem, error)
	Add(ctx context.Context, accountID, productID string, quantity int) (*domain.CartItem, error)
	UpdateQuantity(ctx context.Context, accountID, itemID string, quantity int) (*domain.CartItem, error)
	Remove(ctx context.Context, accountID, itemID string) error
}
