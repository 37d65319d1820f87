package service

import (
	"context"
	"time"

	"github.com/rs/zerolog"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

// CourseService implements CRUD over the course catalog. Creation here is the
// direct path available to admins and instructors; it bypasses the
// request-approval workflow entirely.
type CourseService struct {
	repo ports.CourseRepository
	log  zerolog.Logger
}

func NewCourseService(repo ports.CourseRepository, log zerolog.Logger) *CourseService {
	return &CourseService{repo: repo, log: log}
}

func (s *CourseService) List(ctx context.Context) ([]domain.Course, error) {
	return s.repo.List(ctx)
}

func (s *CourseService) Create(ctx context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	course := &domain.Course{
		Name:         input.Name,
		Description:  input.Description,
		InstructorID: input.InstructorID,
		Credits:      input.Credits,
		Price:        input.Price,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Create(ctx, course)
	if err != nil {
		s.log.Error().Err(err).Str("name", input.Name).Msg("failed to create course")
		return nil, err
	}

	s.log.Info().Str("course_id", created.ID).Str("instructor_id", created.InstructorID).Msg("course created")
	return created, nil
}

func (s *CourseService) Delete(ctx context.Context, id string) error {
	if err := s.repo.Delete(ctx, id); err != nil {
		return err
	}
	s.log.Info().Str("course_id", id).Msg("course deleted")
	return nil
}
