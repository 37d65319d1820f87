package mongo

import (
	"context"
	"errors"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

const cartCollection = "cart_items"

type CartRepository struct {
	coll *mongo.Collection
}

func NewCartRepository(db *mongo.Database) *CartRepository {
	return &CartRepository{coll: db.Collection(cartCollection)}
}

type cartItemDoc struct {
	ID        primitive.ObjectID `bson:"_id,omitempty"`
	AccountID string             `bson:"account_id"`
	ProductID string             `bson:"product_id"`
	Quantity  int                `bson:"quantity"`
}

func (d cartItemDoc) toDomain() *domain.CartItem {
	return &domain.CartItem{
		ID:        d.ID.Hex(),
		AccountID: d.AccountID,
		ProductID: d.ProductID,
		Quantity:  d.Quantity,
	}
}

func (r *CartRepository) Create(ctx context.Context, item *domain.CartItem) (*domain.CartItem, error) {
	doc := cartItemDoc{
		AccountID: item.AccountID,
		ProductID: item.ProductID,
		Quantity:  item.Quantity,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert cart item: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *CartRepository) ListByAccount(ctx context.Context, accountID string) ([]domain.CartItem, error) {
	cur, err := r.coll.Find(ctx, bson.M{"account_id": accountID})
	if err != nil {
		return nil, fmt.Errorf("list cart items: %w", err)
	}
	defer cur.Close(ctx)

	var items []domain.CartItem
	for cur.Next(ctx) {
		var doc cartItemDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode cart item: %w", err)
		}
		items = append(items, *doc.toDomain())
	}
	return items, cur.Err()
}

// UpdateQuantity sets the quantity on the row matching both the item ID and
// the owning account. The owner filter means another account's row looks
// exactly like a missing one.
func (r *CartRepository) UpdateQuantity(ctx context.Context, accountID, itemID string, quantity int) (*domain.CartItem, error) {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return nil, domain.ErrCartItemNotFound
	}

	var doc cartItemDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "account_id": accountID},
		bson.M{"$set": bson.M{"quantity": quantity}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, domain.ErrCartItemNotFound
		}
		return nil, fmt.Errorf("update cart item: %w", err)
	}
	return doc.toDomain(), nil
}

func (r *CartRepository) Delete(ctx context.Context, accountID, itemID string) error {
	oid, err := primitive.ObjectIDFromHex(itemID)
	if err != nil {
		return domain.ErrCartItemNotFound
	}

	res, err := r.coll.DeleteOne(ctx, bson.M{"_id": oid, "account_id": accountID})
	if err != nil {
		return fmt.Errorf("delete cart item: %w", err)
	}
	if res.DeletedCount == 0 {
		return domain.ErrCartItemNotFound
	}
	return nil
}

// EnsureIndexes creates the owner index used by every cart query.
func (r *CartRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "account_id", Value: 1}},
	})
	return err
}
