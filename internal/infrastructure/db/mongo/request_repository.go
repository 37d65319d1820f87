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

const requestsCollection = "course_requests"

type RequestRepository struct {
	coll *mongo.Collection
}

func NewRequestRepository(db *mongo.Database) *RequestRepository {
	return &RequestRepository{coll: db.Collection(requestsCollection)}
}

type requestDoc struct {
	ID          primitive.ObjectID `bson:"_id,omitempty"`
	AccountID   string             `bson:"account_id"`
	CourseName  string             `bson:"course_name"`
	Description string             `bson:"description"`
	Credits     int                `bson:"credits"`
	Price       float64            `bson:"price"`
	Status      string             `bson:"status"`
	CreatedAt   time.Time          `bson:"created_at"`
}

func (d requestDoc) toDomain() *domain.CourseRequest {
	return &domain.CourseRequest{
		ID:          d.ID.Hex(),
		AccountID:   d.AccountID,
		CourseName:  d.CourseName,
		Description: d.Description,
		Credits:     d.Credits,
		Price:       d.Price,
		Status:      domain.RequestStatus(d.Status),
		CreatedAt:   d.CreatedAt.UTC(),
	}
}

func (r *RequestRepository) Create(ctx context.Context, request *domain.CourseRequest) (*domain.CourseRequest, error) {
	doc := requestDoc{
		AccountID:   request.AccountID,
		CourseName:  request.CourseName,
		Description: request.Description,
		Credits:     request.Credits,
		Price:       request.Price,
		Status:      string(request.Status),
		CreatedAt:   request.CreatedAt,
	}

	res, err := r.coll.InsertOne(ctx, doc)
	if err != nil {
		return nil, fmt.Errorf("insert course request: %w", err)
	}

	doc.ID = res.InsertedID.(primitive.ObjectID)
	return doc.toDomain(), nil
}

func (r *RequestRepository) ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.CourseRequest, error) {
	cur, err := r.coll.Find(ctx,
		bson.M{"status": string(status)},
		options.Find().SetSort(bson.D{{Key: "created_at", Value: 1}}),
	)
	if err != nil {
		return nil, fmt.Errorf("list course requests: %w", err)
	}
	defer cur.Close(ctx)

	var requests []domain.CourseRequest
	for cur.Next(ctx) {
		var doc requestDoc
		if err := cur.Decode(&doc); err != nil {
			return nil, fmt.Errorf("decode course request: %w", err)
		}
		requests = append(requests, *doc.toDomain())
	}
	return requests, cur.Err()
}

// ClaimPending flips a pending request to the given terminal status in one
// conditional update. The status is part of the filter, so two concurrent
// decisions cannot both match and a terminal request is never re-claimed.
func (r *RequestRepository) ClaimPending(ctx context.Context, id string, status domain.RequestStatus) (*domain.CourseRequest, error) {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return nil, domain.ErrRequestNotFound
	}

	var doc requestDoc
	err = r.coll.FindOneAndUpdate(ctx,
		bson.M{"_id": oid, "status": string(domain.RequestPending)},
		bson.M{"$set": bson.M{"status": string(status)}},
		options.FindOneAndUpdate().SetReturnDocument(options.After),
	).Decode(&doc)
	if err == nil {
		return doc.toDomain(), nil
	}
	if !errors.Is(err, mongo.ErrNoDocuments) {
		return nil, fmt.Errorf("claim course request: %w", err)
	}

	// No pending row matched: distinguish "absent" from "already decided".
	if findErr := r.coll.FindOne(ctx, bson.M{"_id": oid}).Err(); findErr != nil {
		if errors.Is(findErr, mongo.ErrNoDocuments) {
			return nil, domain.ErrRequestNotFound
		}
		return nil, fmt.Errorf("claim course request: %w", findErr)
	}
	return nil, domain.ErrRequestDecided
}

// Revert returns a claimed request to pending.
func (r *RequestRepository) Revert(ctx context.Context, id string) error {
	oid, err := primitive.ObjectIDFromHex(id)
	if err != nil {
		return domain.ErrRequestNotFound
	}

	_, err = r.coll.UpdateOne(ctx,
		bson.M{"_id": oid},
		bson.M{"$set": bson.M{"status": string(domain.RequestPending)}},
	)
	if err != nil {
		return fmt.Errorf("revert course request: %w", err)
	}
	return nil
}

// EnsureIndexes creates the status index behind the pending-request listing.
func (r *RequestRepository) EnsureIndexes(ctx context.Context) error {
	ctx, cancel := context.WithTimeout(ctx, 30*time.Second)
	defer cancel()

	_, err := r.coll.Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys: bson.D{{Key: "status", Value: 1}, {Key: "created_at", Value: 1}},
	})
	return err
}
