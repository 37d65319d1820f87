package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// SubmitRequestInput is the course draft an instructor proposes.
type SubmitRequestInput struct {
	CourseName  string
	Description string
	Credits     int
	Price       float64
}

// DecisionResult reports the outcome of deciding a request. Course is set
// only when the decision was an approval.
type DecisionResult struct {
	Request *domain.CourseRequest
	Course  *domain.Course
}

// RequestService drives the instructor request-approval workflow.
type RequestService interface {
	Submit(ctx context.Context, accountID string, input SubmitRequestInput) (*domain.CourseRequest, error)
	ListPending(ctx context.Context) ([]domain.CourseRequest, error)
	// Decide moves a pending request to approved or rejected. Approval
	// materializes exactly one Course from the request fields. Deciding an
	// already-terminal request yields domain.ErrRequestDecided.
	Decide(ctx context.Context, requestID, action string) (*DecisionResult, error)
}
