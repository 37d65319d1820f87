package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// CreateCourseInput carries all data needed to publish a course directly,
// bypassing the request-approval workflow.
type CreateCourseInput struct {
	Name         string
	Description  string
	InstructorID string
	Credits      int
	Price        float64
}

// CourseService defines use-case operations for the course catalog.
type CourseService interface {
	List(ctx context.Context) ([]domain.Course, error)
	Create(ctx context.Context, input CreateCourseInput) (*domain.Course, error)
	Delete(ctx context.Context, id string) error
}
