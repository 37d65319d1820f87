package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

type stubCourseService struct {
	created   *domain.Course
	createErr error
	deleteErr error

	lastInput ports.CreateCourseInput
	deletedID string
}

func (s *stubCourseService) List(_ context.Context) ([]domain.Course, error) {
	return []domain.Course{}, nil
}

func (s *stubCourseService) Create(_ context.Context, input ports.CreateCourseInput) (*domain.Course, error) {
	s.lastInput = input
	return s.created, s.createErr
}

func (s *stubCourseService) Delete(_ context.Context, id string) error {
	s.deletedID = id
	return s.deleteErr
}

func TestCourseHandler_CreateDefaultsInstructorToCaller(t *testing.T) {
	svc := &stubCourseService{created: &domain.Course{ID: "course_1", InstructorID: "acc_7"}}
	h := NewCourseHandler(svc, &recordingDispatcher{})

	body := `{"courseName":"Studio Lighting","description":"Three-point lighting","credits":4,"price":149}`
	c, rec := newJSONContext(http.MethodPost, "/courses", body)
	withClaims(c, "acc_7", domain.RoleInstructor)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if rec.Code != http.StatusCreated {
		t.Fatalf("expected 201, got %d", rec.Code)
	}
	if svc.lastInput.InstructorID != "acc_7" {
		t.Fatalf("expected caller as instructor, got %q", svc.lastInput.InstructorID)
	}
}

func TestCourseHandler_CreateHonorsExplicitInstructor(t *testing.T) {
	svc := &stubCourseService{created: &domain.Course{ID: "course_1", InstructorID: "acc_9"}}
	h := NewCourseHandler(svc, nil)

	body := `{"courseName":"Studio Lighting","description":"Three-point lighting","instructorID":"acc_9","credits":4,"price":149}`
	c, _ := newJSONContext(http.MethodPost, "/courses", body)
	withClaims(c, "acc_admin", domain.RoleAdmin)

	if err := h.Create(c); err != nil {
		t.Fatalf("create: %v", err)
	}
	if svc.lastInput.InstructorID != "acc_9" {
		t.Fatalf("explicit instructor overridden, got %q", svc.lastInput.InstructorID)
	}
}

func TestCourseHandler_CreateValidation(t *testing.T) {
	h := NewCourseHandler(&stubCourseService{}, nil)

	c, _ := newJSONContext(http.MethodPost, "/courses", `{"courseName":"x","description":"d","credits":0}`)
	withClaims(c, "acc_7", domain.RoleInstructor)

	err := h.Create(c)
	httpErr, ok := err.(*echo.HTTPError)
	if !ok || httpErr.Code != http.StatusBadRequest {
		t.Fatalf("expected 400 for zero credits, got %v", err)
	}
}

func TestCourseHandler_Delete(t *testing.T) {
	svc := &stubCourseService{}
	audit := &recordingDispatcher{}
	h := NewCourseHandler(svc, audit)

	c, rec := newJSONContext(http.MethodDelete, "/courses/course_1", "")
	c.SetParamNames("id")
	c.SetParamValues("course_1")
	withClaims(c, "acc_admin", domain.RoleAdmin)

	if err := h.Delete(c); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if rec.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d", rec.Code)
	}
	if svc.deletedID != "course_1" {
		t.Fatalf("wrong id forwarded: %q", svc.deletedID)
	}
	if got := audit.actions(); len(got) != 1 || got[0] != "course_delete" {
		t.Fatalf("expected course_delete audit event, got %v", got)
	}
}

func TestCourseHandler_DeleteUnknownPassesThrough(t *testing.T) {
	svc := &stubCourseService{deleteErr: domain.ErrCourseNotFound}
	h := NewCourseHandler(svc, nil)

	c, _ := newJSONContext(http.MethodDelete, "/courses/course_missing", "")
	c.SetParamNames("id")
	c.SetParamValues("course_missing")
	withClaims(c, "acc_admin", domain.RoleAdmin)

	if err := h.Delete(c); err != domain.ErrCourseNotFound {
		t.Fatalf("expected ErrCourseNotFound passed to error handler, got %v", err)
	}
}
