package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"coursify/internal/service"
)

// ReviewHandler bundles the review HTTP handlers.
type ReviewHandler struct {
	svc service.ReviewService
}

// NewReviewHandler creates a new review handler.
func NewReviewHandler(svc service.ReviewService) *ReviewHandler {
	return &ReviewHandler{svc: svc}
}

// CreateReviewRequest is the POST /reviews payload. Fields are pointers so an
// absent field is distinguishable from a present-but-empty one; an empty text
// falls through to the length rule and gets its message.
type CreateReviewRequest struct {
	TextContent *string `json:"text_content" validate:"required"`
	Rating      *int    `json:"rating" validate:"required"`
	UserID      *uint   `json:"user_id" validate:"required"`
	CourseID    *uint   `json:"course_id" validate:"required"`
}

// CreateReview godoc
// @Summary Create review
// @Tags reviews
// @Accept json
// @Produce json
// @Param review body CreateReviewRequest true "Review payload"
// @Success 201 {object} map[string]interface{}
// @Failure 400 {object} errors.ErrorsResponse
// @Failure 404 {object} errors.ErrorResponse
// @Router /reviews [post]
func (h *ReviewHandler) CreateReview(c echo.Context) error {
	var req CreateReviewRequest
	if err := c.Bind(&req); err != nil {
		return badRequest(c)
	}
	if err := c.Validate(&req); err != nil {
		return badRequest(c, "Missing required fields: 'text_content', 'rating', 'user_id', 'course_id'.")
	}

	doc, err := h.svc.CreateReview(c.Request().Context(), *req.UserID, *req.CourseID, *req.TextContent, *req.Rating)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusCreated, doc)
}

// ListCourseReviews godoc
// @Summary List reviews of one course
// @Tags reviews
// @Produce json
// @Param id path int true "Course ID"
// @Success 200 {array} map[string]interface{}
// @Failure 404 {object} errors.ErrorResponse
// @Router /courses/{id}/reviews [get]
func (h *ReviewHandler) ListCourseReviews(c echo.Context) error {
	id, ok := pathID(c)
	if !ok {
		return badRequest(c, "Invalid course id.")
	}
	docs, err := h.svc.ListCourseReviews(c.Request().Context(), id)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(http.StatusOK, docs)
}
