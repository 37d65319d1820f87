package service

import (
	"context"
	"fmt"
	"time"

	"github.com/rs/zerolog"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

// RequestService drives the instructor request-approval workflow:
// pending → approved | rejected, one way, no transition out of a terminal
// state.
type RequestService struct {
	requests ports.RequestRepository
	courses  ports.CourseRepository
	log      zerolog.Logger
}

func NewRequestService(requests ports.RequestRepository, courses ports.CourseRepository, log zerolog.Logger) *RequestService {
	return &RequestService{requests: requests, courses: courses, log: log}
}

func (s *RequestService) Submit(ctx context.Context, accountID string, input ports.SubmitRequestInput) (*domain.CourseRequest, error) {
	request := &domain.CourseRequest{
		AccountID:   accountID,
		CourseName:  input.CourseName,
		Description: input.Description,
		Credits:     input.Credits,
		Price:       input.Price,
		Status:      domain.RequestPending,
		CreatedAt:   time.Now().UTC(),
	}

	created, err := s.requests.Create(ctx, request)
	if err != nil {
		s.log.Error().Err(err).Str("account_id", accountID).Msg("failed to submit course request")
		return nil, err
	}

	s.log.Info().Str("request_id", created.ID).Str("account_id", accountID).Msg("course request submitted")
	return created, nil
}

func (s *RequestService) ListPending(ctx context.Context) ([]domain.CourseRequest, error) {
	return s.requests.ListByStatus(ctx, domain.RequestPending)
}

// Decide resolves a pending request. The status flip is an atomic claim on
// the pending row, so concurrent or repeated decisions cannot both win and an
// approval retry can never materialize a second Course. If the Course insert
// fails after a successful claim, the claim is reverted to pending.
func (s *RequestService) Decide(ctx context.Context, requestID, action string) (*ports.DecisionResult, error) {
	var target domain.RequestStatus
	switch action {
	case domain.DecisionApprove:
		target = domain.RequestApproved
	case domain.DecisionReject:
		target = domain.RequestRejected
	default:
		return nil, domain.ErrInvalidDecision
	}

	claimed, err := s.requests.ClaimPending(ctx, requestID, target)
	if err != nil {
		return nil, err
	}

	result := &ports.DecisionResult{Request: claimed}

	if target == domain.RequestApproved {
		course, err := s.courses.Create(ctx, &domain.Course{
			Name:         claimed.CourseName,
			Description:  claimed.Description,
			InstructorID: claimed.AccountID,
			Credits:      claimed.Credits,
			Price:        claimed.Price,
			CreatedAt:    time.Now().UTC(),
		})
		if err != nil {
			// Compensate: put the request back so a later retry can re-claim
			// it instead of leaving it approved with no course.
			if revertErr := s.requests.Revert(ctx, requestID); revertErr != nil {
				s.log.Error().Err(revertErr).Str("request_id", requestID).Msg("failed to revert claimed request")
			}
			return nil, fmt.Errorf("materialize course: %w", err)
		}
		result.Course = course
	}

	s.log.Info().
		Str("request_id", requestID).
		Str("action", action).
		Msg("course request decided")

	return result, nil
}
