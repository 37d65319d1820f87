package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/core/ports"
)

// CourseHandler handles HTTP requests for the course catalog.
type CourseHandler struct {
	service ports.CourseService
	audit   ports.AuditDispatcher
}

func NewCourseHandler(service ports.CourseService, audit ports.AuditDispatcher) *CourseHandler {
	return &CourseHandler{service: service, audit: audit}
}

type createCourseRequest struct {
	CourseName   string  `json:"courseName"   validate:"required"`
	Description  string  `json:"description"  validate:"required"`
	InstructorID string  `json:"instructorID"`
	Credits      int     `json:"credits"      validate:"required,gt=0"`
	Price        float64 `json:"price"        validate:"gte=0"`
}

// List handles GET /courses — public, no auth.
//
// @Summary      List all courses
// @Tags         courses
// @Produce      json
// @Success      200  {array}  domain.Course
// @Router       /courses [get]
func (h *CourseHandler) List(c echo.Context) error {
	courses, err := h.service.List(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, courses)
}

// Create handles POST /courses — admin or instructor only.
//
// @Summary      Publish a course directly
// @Tags         courses
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      createCourseRequest  true  "Course details"
// @Success      201   {object}  domain.Course
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /courses [post]
func (h *CourseHandler) Create(c echo.Context) error {
	var req createCourseRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}
	if err := c.Validate(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, err.Error())
	}

	accountID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	// Instructors usually publish their own courses; an omitted instructorID
	// defaults to the caller.
	instructorID := req.InstructorID
	if instructorID == "" {
		instructorID = accountID
	}

	course, err := h.service.Create(c.Request().Context(), ports.CreateCourseInput{
		Name:         req.CourseName,
		Description:  req.Description,
		InstructorID: instructorID,
		Credits:      req.Credits,
		Price:        req.Price,
	})
	if err != nil {
		return err
	}

	h.emit(accountID, role, "course_create", course.ID)
	return c.JSON(http.StatusCreated, course)
}

// Delete handles DELETE /courses/:id — admin only.
//
// @Summary      Delete a course
// @Tags         courses
// @Produce      json
// @Security     BearerAuth
// @Param        id   path      string  true  "Course ID"
// @Success      200  {object}  map[string]string
// @Failure      404  {object}  errorResponse
// @Router       /courses/{id} [delete]
func (h *CourseHandler) Delete(c echo.Context) error {
	accountID, role, err := ctxClaims(c)
	if err != nil {
		return err
	}

	id := c.Param("id")
	if err := h.service.Delete(c.Request().Context(), id); err != nil {
		return err
	}

	h.emit(accountID, role, "course_delete", id)
	return c.JSON(http.StatusOK, map[string]string{"message": "course deleted"})
}

func (h *CourseHandler) emit(actorID, role, action, courseID string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuditEventInput{
		ActorID:  actorID,
		Role:     role,
		Action:   action,
		Entity:   "course",
		EntityID: courseID,
		At:       time.Now().UTC(),
	})
}
