package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"coursify/internal/errors"
)

type mockReviewService struct {
	mock.Mock
}

func (m *mockReviewService) CreateReview(ctx context.Context, userID, courseID uint, textContent string, rating int) (map[string]interface{}, error) {
	args := m.Called(ctx, userID, courseID, textContent, rating)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *mockReviewService) ListCourseReviews(ctx context.Context, courseID uint) ([]map[string]interface{}, error) {
	args := m.Called(ctx, courseID)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]interface{}), args.Error(1)
}

func TestReviewHandler_CreateReview(t *testing.T) {
	t.Run("empty text reaches the field rule", func(t *testing.T) {
		svc := new(mockReviewService)
		svc.On("CreateReview", mock.Anything, uint(2), uint(5), "", 4).
			Return(nil, errors.NewValidationError("Review content must be at least 10 characters long."))

		c, rec := postContext("/reviews", `{"text_content":"","rating":4,"user_id":2,"course_id":5}`)
		h := NewReviewHandler(svc)
		assert.NoError(t, h.CreateReview(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "at least 10 characters")
		svc.AssertExpectations(t)
	})

	t.Run("absent text keeps the missing-fields message", func(t *testing.T) {
		svc := new(mockReviewService)

		c, rec := postContext("/reviews", `{"rating":4,"user_id":2,"course_id":5}`)
		h := NewReviewHandler(svc)
		assert.NoError(t, h.CreateReview(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing required fields")
		svc.AssertNotCalled(t, "CreateReview",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})

	t.Run("valid payload created", func(t *testing.T) {
		svc := new(mockReviewService)
		svc.On("CreateReview", mock.Anything, uint(2), uint(5), "Great for beginners.", 4).
			Return(map[string]interface{}{"id": uint(21)}, nil)

		c, rec := postContext("/reviews", `{"text_content":"Great for beginners.","rating":4,"user_id":2,"course_id":5}`)
		h := NewReviewHandler(svc)
		assert.NoError(t, h.CreateReview(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})
}
