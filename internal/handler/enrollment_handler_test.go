package handler

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"

	"coursify/internal/errors"
)

type mockEnrollmentService struct {
	mock.Mock
}

func (m *mockEnrollmentService) CreateEnrollment(ctx context.Context, userID, courseID uint, date interface{}) (map[string]interface{}, error) {
	args := m.Called(ctx, userID, courseID, date)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *mockEnrollmentService) GetEnrollmentDocument(ctx context.Context, id uint) (map[string]interface{}, error) {
	args := m.Called(ctx, id)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).(map[string]interface{}), args.Error(1)
}

func (m *mockEnrollmentService) ListEnrollments(ctx context.Context) ([]map[string]interface{}, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]map[string]interface{}), args.Error(1)
}

func TestEnrollmentHandler_CreateEnrollment(t *testing.T) {
	t.Run("empty date string reaches the date rule", func(t *testing.T) {
		svc := new(mockEnrollmentService)
		svc.On("CreateEnrollment", mock.Anything, uint(2), uint(5), "").
			Return(nil, errors.NewValidationError("Enrollment date must be a valid ISO 8601 timestamp (YYYY-MM-DDTHH:MM:SS)."))

		c, rec := postContext("/enrollments", `{"user_id":2,"course_id":5,"enrollment_date":""}`)
		h := NewEnrollmentHandler(svc)
		assert.NoError(t, h.CreateEnrollment(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "ISO 8601")
		svc.AssertExpectations(t)
	})

	t.Run("numeric zero date is passed through", func(t *testing.T) {
		svc := new(mockEnrollmentService)
		svc.On("CreateEnrollment", mock.Anything, uint(2), uint(5), float64(0)).
			Return(map[string]interface{}{"id": uint(11)}, nil)

		c, rec := postContext("/enrollments", `{"user_id":2,"course_id":5,"enrollment_date":0}`)
		h := NewEnrollmentHandler(svc)
		assert.NoError(t, h.CreateEnrollment(c))

		assert.Equal(t, http.StatusCreated, rec.Code)
		svc.AssertExpectations(t)
	})

	t.Run("absent date keeps the missing-fields message", func(t *testing.T) {
		svc := new(mockEnrollmentService)

		c, rec := postContext("/enrollments", `{"user_id":2,"course_id":5}`)
		h := NewEnrollmentHandler(svc)
		assert.NoError(t, h.CreateEnrollment(c))

		assert.Equal(t, http.StatusBadRequest, rec.Code)
		assert.Contains(t, rec.Body.String(), "Missing required fields")
		svc.AssertNotCalled(t, "CreateEnrollment",
			mock.Anything, mock.Anything, mock.Anything, mock.Anything)
	})
}
