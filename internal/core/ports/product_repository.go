package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// ProductRepository defines persistence operations for shop products.
type ProductRepository interface {
	Create(ctx context.Context, product *domain.Product) (*domain.Product, error)
	List(ctx context.Context) ([]domain.Product, error)
	FindByID(ctx context.Context, id string) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
