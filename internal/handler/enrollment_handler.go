package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursify/internal/service"
)

// EnrollmentHandler bundles the enrollment HTTP handlers.
type EnrollmentHandler struct {
	svc service.EnrollmentService
}

// NewEnrollmentHandler creates a new enrollment handler.
func NewEnrollmentHandler(svc service.EnrollmentService) *EnrollmentHandler {
	return &EnrollmentHandler{svc: svc}
}

// CreateEnrollmentRequest is the POST /enrollments payload. The date is kept
// untyped because both ISO-8601 text and a native numeric timestamp are
// accepted, and behind a pointer so present-but-zero values ("" or epoch 0)
// reach the date rules instead of the missing-fields check.
type CreateEnrollmentRequest struct {
	UserID         *uint        `json:"user_id" validate:"required"`
	CourseID       *uint        `json:"course_id" validate:"required"`
	EnrollmentDate *interface{} `json:"enrollment_date" validate:"required"`
}

// ListEnrollments godoc
// @Summary List enrollments with nested user and course
// @Tags enrollments
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /enrollments [get]
func (h *EnrollmentHandler) ListEnrollments(c echo.Context) error {
	docs, err := h.svc.ListEnrollments(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

// CreateEnrollment godoc
// @Summary Enroll a user in a course
// @Tags enrollments
// @Accept json
// @Produce json
// @Param enrollment body CreateEnrollmentRequest true "Enrollment payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorsResponse
// @Failure 404 {object} errors.ErrorResponse
// @Failure 409 {object} errors.ErrorsResponse
// @Router /enrollments [post]
func (h *EnrollmentHandler) CreateEnrollment(c echo.Context) error {
	var req CreateEnrollmentRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Missing required fields: 'user_id', 'course_id', 'enrollment_date'.")
	}

	doc, err := h.svc.CreateEnrollment(c.Request().Context(), *req.UserID, *req.CourseID, *req.EnrollmentDate)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

// GetEnrollment godoc
// @Summary Get enrollment by id
// @Tags enrollments
// @Produce json
// @Param id path int true "Enrollment ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /enrollments/{id} [get]
func (h *EnrollmentHandler) GetEnrollment(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid enrollment id.")
	}
	doc, err := h.svc.GetEnrollmentDocument(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}
