package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursify/internal/model"
	"coursify/internal/service"
)

// CourseHandler bundles the course HTTP handlers.
type CourseHandler struct {
	svc service.CourseService
}

// NewCourseHandler creates a new course handler.
func NewCourseHandler(svc service.CourseService) *CourseHandler {
	return &CourseHandler{svc: svc}
}

// CreateCourseRequest is the POST /courses payload. Fields are pointers so an
// absent field is distinguishable from a zero or empty value; empty values
// fall through to the field rules and get their messages.
type CreateCourseRequest struct {
	Title         *string `json:"title" validate:"required"`
	Description   *string `json:"description" validate:"required"`
	Difficulty    *string `json:"difficulty" validate:"required"`
	DurationHours *int    `json:"duration_hours" validate:"required"`
	InstructorID  *uint   `json:"instructor_id" validate:"required"`
}

// ListCourses godoc
// @Summary List courses with instructor summaries
// @Tags courses
// @Produce json
// @Success 200 {array} map[string]interface{}
// @Router /courses [get]
func (h *CourseHandler) ListCourses(c echo.Context) error {
	docs, err := h.svc.ListCourses(c.Request().Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}

// CreateCourse godoc
// @Summary Create course
// @Tags courses
// @Accept json
// @Produce json
// @Param course body CreateCourseRequest true "Course payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorsResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses [post]
func (h *CourseHandler) CreateCourse(c echo.Context) error {
	var req CreateCourseRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Missing required fields for course creation.")
	}

	doc, err := h.svc.CreateCourse(c.Request().Context(), service.CreateCourseInput{
		Title:         *req.Title,
		Description:   *req.Description,
		Difficulty:    model.Difficulty(*req.Difficulty),
		DurationHours: *req.DurationHours,
		InstructorID:  *req.InstructorID,
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

// GetCourse godoc
// @Summary Get course by id with nested relations
// @Tags courses
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {object} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [get]
func (h *CourseHandler) GetCourse(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid course id.")
	}
	doc, err := h.svc.GetCourseDocument(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// UpdateCourse godoc
// @Summary Partially update course
// @Tags courses
// @Accept json
// @Produce json
// @Param id path int true "Course ID"
// @Param patch body map[string]interface{} true "Fields to update"
// @Success 200 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorsResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id} [patch]
func (h *CourseHandler) UpdateCourse(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid course id.")
	}
	patch := map[string]interface{}{}
	if err := c.Bind(&patch); err != nil {
		return badRequest(c)
	}

	doc, err := h.svc.UpdateCourse(c.Request().Context(), id, patch)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, doc)
}

// DeleteCourse godoc
// @Summary Delete course and its enrollments and reviews
// @Tags courses
// @Param id path int true "Course ID"
// @Success 204
// @Failure 404 {object} errors.ErrorResponse
// @Failure 500 {object} errors.ErrorsResponse
// @Router /courses/{id} [delete]
func (h *CourseHandler) DeleteCourse(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid course id.")
	}
	if err := h.svc.DeleteCourse(c.Request().Context(), id); err != nil {
		return respondError(c, err)
	}
	return c.NoContent(http.StatusNoContent)
}
