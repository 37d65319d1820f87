package service

import (
	"context"
	"errors"
	"strconv"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

type stubProductRepo struct {
	byID map[string]*domain.Product
}

func newStubProductRepo() *stubProductRepo {
	return &stubProductRepo{byID: make(map[string]*domain.Product)}
}

func (r *stubProductRepo) Create(_ context.Context, product *domain.Product) (*domain.Product, error) {
	copied := *product
	copied.ID = "prod_" + strconv.Itoa(len(r.byID)+1)
	copied.CreatedAt = time.Now().UTC()
	r.byID[copied.ID] = &copied
	return &copied, nil
}

func (r *stubProductRepo) List(_ context.Context) ([]domain.Product, error) {
	out := make([]domain.Product, 0, len(r.byID))
	for _, product := range r.byID {
		out = append(out, *product)
	}
	return out, nil
}

func (r *stubProductRepo) FindByID(_ context.Context, id string) (*domain.Product, error) {
	product, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrProductNotFound
	}
	return product, nil
}

func (r *stubProductRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrProductNotFound
	}
	delete(r.byID, id)
	return nil
}

type stubCartRepo struct {
	byID   map[string]*domain.CartItem
	nextID int
}

func newStubCartRepo() *stubCartRepo {
	return &stubCartRepo{byID: make(map[string]*domain.CartItem)}
}

func (r *stubCartRepo) Create(_ context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	r.nextID++
	copied := *item
	copied.ID = "item_" + strconv.Itoa(r.nextID)
	r.byID[copied.ID] = &copied
	return &copied, nil
}

func (r *stubCartRepo) ListByAccount(_ context.Context, accountID string) ([]domain.CartItem, error) {
	var out []domain.CartItem
	for _, item := range r.byID {
		if item.AccountID == accountID {
			out = append(out, *item)
		}
	}
	return out, nil
}

func (r *stubCartRepo) UpdateQuantity(_ context.Context, accountID, itemID string, quantity int) (*domain.CartItem, error) {
	item, ok := r.byID[itemID]
	if !ok || item.AccountID != accountID {
		return nil, domain.ErrCartItemNotFound
	}
	item.Quantity = quantity
	copied := *item
	return &copied, nil
}

func (r *stubCartRepo) Delete(_ context.Context, accountID, itemID string) error {
	item, ok := r.byID[itemID]
	if !ok || item.AccountID != accountID {
		return domain.ErrCartItemNotFound
	}
	delete(r.byID, itemID)
	return nil
}

func newCartFixture(t *testing.T) (*CartService, *domain.Product) {
	t.Helper()
	products := newStubProductRepo()
	product, err := products.Create(context.Background(), &domain.Product{Name: "50mm lens", Price: 329.0, Stock: 12})
	if err != nil {
		t.Fatalf("seed product: %v", err)
	}
	return NewCartService(newStubCartRepo(), products, zerolog.Nop()), product
}

func TestCartService_AddAndList(t *testing.T) {
	svc, product := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, "acc_1", product.ID, 2)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if item.Quantity != 2 || item.ProductID != product.ID {
		t.Fatalf("unexpected item: %+v", item)
	}

	items, err := svc.List(ctx, "acc_1")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(items) != 1 {
		t.Fatalf("expected 1 item, got %d", len(items))
	}

	// Same product added again produces a second row, not a merge.
	if _, err := svc.Add(ctx, "acc_1", product.ID, 1); err != nil {
		t.Fatalf("second add: %v", err)
	}
	items, _ = svc.List(ctx, "acc_1")
	if len(items) != 2 {
		t.Fatalf("expected 2 rows after second add, got %d", len(items))
	}
}

func TestCartService_AddValidations(t *testing.T) {
	svc, product := newCartFixture(t)
	ctx := context.Background()

	if _, err := svc.Add(ctx, "acc_1", product.ID, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("zero quantity: expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.Add(ctx, "acc_1", product.ID, -3); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("negative quantity: expected ErrInvalidQuantity, got %v", err)
	}
	if _, err := svc.Add(ctx, "acc_1", "prod_missing", 1); !errors.Is(err, domain.ErrProductNotFound) {
		t.Fatalf("dangling product: expected ErrProductNotFound, got %v", err)
	}
}

func TestCartService_OwnershipScoping(t *testing.T) {
	svc, product := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, "acc_1", product.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}

	// Another account cannot see, update, or remove the row. All three look
	// like the row does not exist.
	others, err := svc.List(ctx, "acc_2")
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if len(others) != 0 {
		t.Fatalf("foreign account sees %d rows", len(others))
	}
	if _, err := svc.UpdateQuantity(ctx, "acc_2", item.ID, 5); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("foreign update: expected ErrCartItemNotFound, got %v", err)
	}
	if err := svc.Remove(ctx, "acc_2", item.ID); !errors.Is(err, domain.ErrCartItemNotFound) {
		t.Fatalf("foreign remove: expected ErrCartItemNotFound, got %v", err)
	}

	// The owner still can.
	updated, err := svc.UpdateQuantity(ctx, "acc_1", item.ID, 5)
	if err != nil {
		t.Fatalf("owner update: %v", err)
	}
	if updated.Quantity != 5 {
		t.Fatalf("expected quantity 5, got %d", updated.Quantity)
	}
	if err := svc.Remove(ctx, "acc_1", item.ID); err != nil {
		t.Fatalf("owner remove: %v", err)
	}
	left, _ := svc.List(ctx, "acc_1")
	if len(left) != 0 {
		t.Fatalf("expected empty cart, got %d rows", len(left))
	}
}

func TestCartService_UpdateQuantityValidation(t *testing.T) {
	svc, product := newCartFixture(t)
	ctx := context.Background()

	item, err := svc.Add(ctx, "acc_1", product.ID, 1)
	if err != nil {
		t.Fatalf("add: %v", err)
	}
	if _, err := svc.UpdateQuantity(ctx, "acc_1", item.ID, 0); !errors.Is(err, domain.ErrInvalidQuantity) {
		t.Fatalf("expected ErrInvalidQuantity, got %v", err)
	}
}
