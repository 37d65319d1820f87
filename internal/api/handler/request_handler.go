package handler

import (
	"net/http"
	"time"

	"github.com/labstack/echo/v4"

	"github.com/photographyhub/course-platform/internal/api/metrics"
	"github.com/photographyhub/course-platform/internal/core/domain"
	"github.com/photographyhub/course-platform/internal/core/ports"
)

// RequestHandler handles the instructor request-approval workflow.
type RequestHandler struct {
	service ports.RequestService
	audit   ports.AuditDispatcher
}

func NewRequestHandler(service ports.RequestService, audit ports.AuditDispatcher) *RequestHandler {
	return &RequestHandler{service: service, audit: audit}
}

type submitRequestRequest struct {
	CourseName  string  `json:"courseName"  validate:"required"`
	Description string  `json:"description" validate:"required"`
	Credits     int     `json:"credits"     validate:"required,gt=0"`
	Price       float64 `json:"price"       validate:"gte=0"`
}

type decideRequestRequest struct {
	Action string `json:"action" validate:"required,oneof=approve reject"`
}

type decisionResponse struct {
	Message string                `json:"message"`
	Request *domain.CourseRequest `json:"request"`
	Course  *domain.Course        `json:"course,omitempty"`
}

// Submit handles POST /instructor/request-course — instructor only.
//
// @Summary      Submit a course proposal
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        body  body      submitRequestRequest  true  "Course draft"
// @Success      201   {object}  domain.CourseRequest
// @Failure      400   {object}  errorResponse
// @Failure      401   {object}  errorResponse
// @Failure      403   {object}  errorResponse
// @Router       /instructor/request-course [post]
func (h *RequestHandler) Submit(c echo.Context) error {
	var req submitRequestRequest
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

	request, err := h.service.Submit(c.Request().Context(), accountID, ports.SubmitRequestInput{
		CourseName:  req.CourseName,
		Description: req.Description,
		Credits:     req.Credits,
		Price:       req.Price,
	})
	if err != nil {
		return err
	}

	h.emit(accountID, role, "request_submit", request.ID)
	return c.JSON(http.StatusCreated, request)
}

// ListPending handles GET /admin/requests — admin only.
//
// @Summary      List pending course requests
// @Tags         requests
// @Produce      json
// @Security     BearerAuth
// @Success      200  {array}   domain.CourseRequest
// @Failure      401  {object}  errorResponse
// @Failure      403  {object}  errorResponse
// @Router       /admin/requests [get]
func (h *RequestHandler) ListPending(c echo.Context) error {
	requests, err := h.service.ListPending(c.Request().Context())
	if err != nil {
		return err
	}
	return c.JSON(http.StatusOK, requests)
}

// Decide handles POST /admin/requests/:id/action — admin only.
//
// @Summary      Approve or reject a pending course request
// @Tags         requests
// @Accept       json
// @Produce      json
// @Security     BearerAuth
// @Param        id    path      string                true  "Request ID"
// @Param        body  body      decideRequestRequest  true  "Decision"
// @Success      200   {object}  decisionResponse
// @Failure      400   {object}  errorResponse
// @Failure      404   {object}  errorResponse
// @Failure      409   {object}  errorResponse
// @Router       /admin/requests/{id}/action [post]
func (h *RequestHandler) Decide(c echo.Context) error {
	var req decideRequestRequest
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

	result, err := h.service.Decide(c.Request().Context(), c.Param("id"), req.Action)
	if err != nil {
		return err
	}

	metrics.RequestDecisionsTotal.WithLabelValues(req.Action).Inc()
	h.emit(accountID, role, "request_"+req.Action, result.Request.ID)

	return c.JSON(http.StatusOK, decisionResponse{
		Message: "request " + string(result.Request.Status),
		Request: result.Request,
		Course:  result.Course,
	})
}

func (h *RequestHandler) emit(actorID, role, action, requestID string) {
	if h.audit == nil {
		return
	}
	h.audit.Enqueue(ports.AuditEventInput{
		ActorID:  actorID,
		Role:     role,
		Action:   action,
		Entity:   "course_request",
		EntityID: requestID,
		At:       time.Now().UTC(),
	})
}
