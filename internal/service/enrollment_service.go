package service

import (
	"context"
	"time"

	"gorm.io/gorm"

	"coursify/internal/errors"
	"coursify/internal/model"
	"coursify/internal/repository"
	"coursify/internal/serializer"
	"coursify/internal/validation"
)

// EnrollmentService exposes enrollment domain operations.
type EnrollmentService interface {
	CreateEnrollment(ctx context.Context, userID, courseID uint, date interface{}) (map[string]interface{}, error)
	GetEnrollmentDocument(ctx context.Context, id uint) (map[string]interface{}, error)
	ListEnrollments(ctx context.Context) ([]map[string]interface{}, error)
}

type enrollmentService struct {
	enrollments repository.EnrollmentRepository
	users       repository.UserRepository
	courses     repository.CourseRepository
	cache       DocumentCache
}

// NewEnrollmentService builds an EnrollmentService.
func NewEnrollmentService(enrollments repository.EnrollmentRepository, users repository.UserRepository, courses repository.CourseRepository, cache DocumentCache) EnrollmentService {
	return &enrollmentService{enrollments: enrollments, users: users, courses: courses, cache: cache}
}

// CreateEnrollment resolves both references, rejects a duplicate
// (user, course) pair, validates the date and persists the enrollment.
// The duplicate check is a read before the insert; without a uniqueness
// constraint two concurrent identical requests can both pass it.
func (s *enrollmentService) CreateEnrollment(ctx context.Context, userID, courseID uint, date interface{}) (map[string]interface{}, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrUserNotFound
		}
		return nil, err
	}
	course, err := s.courses.FindByID(ctx, courseID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCourseNotFound
		}
		return nil, err
	}

	if existing, err := s.enrollments.FindByUserAndCourse(ctx, userID, courseID); err == nil && existing != nil {
		return nil, errors.ErrAlreadyEnrolled
	} else if err != nil && err != gorm.ErrRecordNotFound {
		return nil, err
	}

	when, err := coerceEnrollmentDate(date)
	if err != nil {
		return nil, err
	}
	if err := validation.EnrollmentDate(when, time.Now()); err != nil {
		return nil, err
	}

	enrollment := &model.Enrollment{
		UserID:         userID,
		CourseID:       courseID,
		EnrollmentDate: when,
	}
	if err := s.enrollments.Create(ctx, enrollment); err != nil {
		return nil, err
	}
	_ = s.cache.DeleteMany(ctx, userDocKey(userID), courseDocKey(courseID))

	enrollment.User = user
	enrollment.Course = course
	return serializer.Enrollment(enrollment), nil
}

// GetEnrollmentDocument returns one enrollment with its user and course nested.
func (s *enrollmentService) GetEnrollmentDocument(ctx context.Context, id uint) (map[string]interface{}, error) {
	enrollment, err := s.enrollments.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrEnrollmentNotFound
		}
		return nil, err
	}
	return serializer.Enrollment(enrollment), nil
}

// ListEnrollments returns all enrollments with nested user and course.
func (s *enrollmentService) ListEnrollments(ctx context.Context) ([]map[string]interface{}, error) {
	enrollments, err := s.enrollments.List(ctx)
	if err != nil {
		return nil, err
	}
	return serializer.Enrollments(enrollments), nil
}

// coerceEnrollmentDate accepts an ISO-8601 string or a native numeric
// timestamp (seconds since the epoch, as JSON numbers decode).
func coerceEnrollmentDate(date interface{}) (time.Time, error) {
	switch v := date.(type) {
	case string:
		return validation.ParseEnrollmentDate(v)
	case float64:
		return time.Unix(int64(v), 0).UTC(), nil
	case time.Time:
		return v, nil
	default:
		return time.Time{}, errors.NewValidationError("Enrollment date must be a valid ISO 8601 timestamp (YYYY-MM-DDTHH:MM:SS).")
	}
}
