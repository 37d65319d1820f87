package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// CreateProductInput carries all data needed to add a shop product.
type CreateProductInput struct {
	Name        string
	Description string
	Price       float64
	Stock       int
	Category    string
}

// ProductService defines use-case operations for the shop catalog.
type ProductService interface {
	List(ctx context.Context) ([]domain.Product, error)
	Create(ctx context.Context, input CreateProductInput) (*domain.Product, error)
	Delete(ctx context.Context, id string) error
}
