package service

import (
	"context"

	"github.com/rs/zerolog"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

// CartService implements per-account cart mutations. Ownership is enforced on
// every operation by passing the requesting account's ID into the repository
// filter; a row owned by someone else is indistinguishable from an absent one.
type CartService struct {
	carts    ports.CartRepository
	products ports.ProductRepository
	log      zerolog.Logger
}

func NewCartService(carts ports.CartRepository, products ports.ProductRepository, log zerolog.Logger) *CartService {
	return &CartService{carts: carts, products: products, log: log}
}

func (s *CartService) List(ctx context.Context, accountID string) ([]domain.CartItem, error) {
	return s.carts.ListByAccount(ctx, accountID)
}

func (s *CartService) Add(ctx context.Context, accountID, productID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}

	// Adding a dangling product reference would surface as a phantom cart row
	// later; reject it up front.
	if _, err := s.products.FindByID(ctx, productID); err != nil {
		return nil, err
	}

	item := &domain.CartItem{
		AccountID: accountID,
		ProductID: productID,
		Quantity:  quantity,
	}

	created, err := s.carts.Create(ctx, item)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", accountID).Msg("failed to add cart item")
		return nil, err
	}
	return created, nil
}

func (s *CartService) UpdateQuantity(ctx context.Context, accountID, itemID string, quantity int) (*domain.CartItem, error) {
	if quantity <= 0 {
		return nil, domain.ErrInvalidQuantity
	}
	return s.carts.UpdateQuantity(ctx, accountID, itemID, quantity)
}

func (s *CartService) Remove(ctx context.Context, accountID, itemID string) error {
	return s.carts.Delete(ctx, accountID, itemID)
}
