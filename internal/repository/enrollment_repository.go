package repository

import (
	"context"

	"gorm.io/gorm"

	"coursify/internal/model"
)

// EnrollmentRepository defines enrollment persistence operations.
type EnrollmentRepository interface {
	Create(ctx context.Context, enrollment *model.Enrollment) error
	FindByID(ctx context.Context, id uint) (*model.Enrollment, error)
	FindByUserAndCourse(ctx context.Context, userID, courseID uint) (*model.Enrollment, error)
	List(ctx context.Context) ([]model.Enrollment, error)
}

type enrollmentRepository struct {
	db *gorm.DB
}

// NewEnrollmentRepository creates a new enrollment repository.
func NewEnrollmentRepository(db *gorm.DB) EnrollmentRepository {
	return &enrollmentRepository{db: db}
}

// Create inserts a new enrollment row.
func (r *enrollmentRepository) Create(ctx context.Context, enrollment *model.Enrollment) error {
	return r.db.WithContext(ctx).Create(enrollment).Error
}

// FindByID loads an enrollment with its user and course.
func (r *enrollmentRepository) FindByID(ctx context.Context, id uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Course").
		First(&enrollment, id).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// FindByUserAndCourse returns the enrollment for a (user, course) pair.
// This read-before-insert is how duplicates are detected; there is no
// uniqueness constraint backing it up.
func (r *enrollmentRepository) FindByUserAndCourse(ctx context.Context, userID, courseID uint) (*model.Enrollment, error) {
	var enrollment model.Enrollment
	err := r.db.WithContext(ctx).
		Where("user_id = ? AND course_id = ?", userID, courseID).
		First(&enrollment).Error
	if err != nil {
		return nil, err
	}
	return &enrollment, nil
}

// List returns all enrollments with user and course loaded.
func (r *enrollmentRepository) List(ctx context.Context) ([]model.Enrollment, error) {
	var enrollments []model.Enrollment
	err := r.db.WithContext(ctx).
		Preload("User").
		Preload("Course").
		Order("id").
		Find(&enrollments).Error
	if err != nil {
		return nil, err
	}
	return enrollments, nil
}
