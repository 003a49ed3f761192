package service

import (
	"context"

	"gorm.io/gorm"

	"coursify/internal/errors"
	"coursify/internal/model"
	"coursify/internal/repository"
	"coursify/internal/serializer"
	"coursify/internal/validation"
)

// courseReviewRules are the per-call overrides for a course's review listing:
// the course itself is implicit and the author renders without their own
// collections.
var courseReviewRules = []string{
	"course",
	"user.enrollments",
	"user.reviews",
	"user.courses",
}

// ReviewService exposes review domain operations.
type ReviewService interface {
	CreateReview(ctx context.Context, userID, courseID uint, textContent string, rating int) (map[string]interface{}, error)
	ListCourseReviews(ctx context.Context, courseID uint) ([]map[string]interface{}, error)
}

type reviewService struct {
	reviews repository.ReviewRepository
	users   repository.UserRepository
	courses repository.CourseRepository
	cache   DocumentCache
}

// NewReviewService builds a ReviewService.
func NewReviewService(reviews repository.ReviewRepository, users repository.UserRepository, courses repository.CourseRepository, cache DocumentCache) ReviewService {
	return &reviewService{reviews: reviews, users: users, courses: courses, cache: cache}
}

// CreateReview resolves both references, validates the fields and persists
// the review. A user may review the same course any number of times.
func (s *reviewService) CreateReview(ctx context.Context, userID, courseID uint, textContent string, rating int) (map[string]interface{}, error) {
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

	review := &model.Review{UserID: userID, CourseID: courseID}
	err = validation.Apply(
		validation.Field{
			Check:  func() error { return validation.ReviewText(textContent) },
			Assign: func() { review.TextContent = textContent },
		},
		validation.Field{
			Check:  func() error { return validation.ReviewRating(rating) },
			Assign: func() { review.Rating = rating },
		},
	)
	if err != nil {
		return nil, err
	}

	if err := s.reviews.Create(ctx, review); err != nil {
		return nil, err
	}
	_ = s.cache.DeleteMany(ctx, userDocKey(userID), courseDocKey(courseID))

	review.User = user
	review.Course = course
	return serializer.Review(review), nil
}

// ListCourseReviews returns all reviews of one course with their author nested.
func (s *reviewService) ListCourseReviews(ctx context.Context, courseID uint) ([]map[string]interface{}, error) {
	if _, err := s.courses.FindByID(ctx, courseID); err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCourseNotFound
		}
		return nil, err
	}

	reviews, err := s.reviews.ListByCourse(ctx, courseID)
	if err != nil {
		return nil, err
	}
	return serializer.Reviews(reviews, courseReviewRules...), nil
}
