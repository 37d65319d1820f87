package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// RequestRepository defines persistence for course requests.
type RequestRepository interface {
	Create(ctx context.Context, request *domain.CourseRequest) (*domain.CourseRequest, error)
	ListByStatus(ctx context.Context, status domain.RequestStatus) ([]domain.CourseRequest, error)
	// ClaimPending atomically flips a pending request to the given terminal
	// status and returns the claimed row. A request that exists but is no
	// longer pending yields domain.ErrRequestDecided; a missing request
	// yields domain.ErrRequestNotFound. At most one caller can win the claim.
	ClaimPending(ctx context.Context, id string, status domain.RequestStatus) (*domain.CourseRequest, error)
	// Revert returns a claimed request to pending. Used as the compensating
	// action when course materialization fails after a successful claim.
	Revert(ctx context.Context, id string) error
}
