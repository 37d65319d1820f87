package ports

import (
	"context"

	"github.com/photographyhub/course-platform/internal/core/domain"
)

// CourseRepository defines persistence operations for courses.
type CourseRepository interface {
	Create(ctx context.Context, course *domain.Course) (*domain.Course, error)
	List(ctx context.Context) ([]domain.Course, error)
	// Delete removes the course with the given ID, returning
	// domain.ErrCourseNotFound when no row matched.
	Delete(ctx context.Context, id string) error
}
