package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// CartRepository defines persistence operations for cart items. All reads and
// writes carry the owning accountID as part of the filter so one account can
// never observe or mutate another's rows.
type CartRepository interface {
	Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error)
	ListByAccount(ctx context.Context, accountID string) ([]domain.CartItem, error)
	// UpdateQuantity sets the quantity on the item owned by accountID,
	// returning domain.ErrCartItemNotFound when no owned row matched.
	UpdateQuantity(ctx context.Context, accountID, itemID string, quantity int) (*domain.CartItem, error)
	Delete(ctx context.Context, accountID, itemID string) error
}
