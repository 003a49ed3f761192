package repository

import (
	"context"

	"gorm.io/gorm"

	"coursify/internal/model"
)

// CourseRepository defines course persistence operations.
type CourseRepository interface {
	Create(ctx context.Context, course *model.Course) error
	Save(ctx context.Context, course *model.Course) error
	FindByID(ctx context.Context, id uint) (*model.Course, error)
	FindByIDWithRelations(ctx context.Context, id uint) (*model.Course, error)
	List(ctx context.Context) ([]model.Course, error)
	TitleTaken(ctx context.Context, title string, excludeID uint) (bool, error)
	WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CourseRepository) error) error
}

type courseRepository struct {
	db *gorm.DB
}

// NewCourseRepository creates a new course repository.
func NewCourseRepository(db *gorm.DB) CourseRepository {
	return &courseRepository{db: db}
}

// Create inserts a new course row.
func (r *courseRepository) Create(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Create(course).Error
}

// Save writes all fields of an existing course.
func (r *courseRepository) Save(ctx context.Context, course *model.Course) error {
	return r.db.WithContext(ctx).Save(course).Error
}

// FindByID finds a course by ID without loading relations.
func (r *courseRepository) FindByID(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	if err := r.db.WithContext(ctx).First(&course, id).Error; err != nil {
		return nil, err
	}
	return &course, nil
}

// FindByIDWithRelations loads a course with its instructor and its
// enrollments and reviews including their users, the graph a detail
// serialization walks.
func (r *courseRepository) FindByIDWithRelations(ctx context.Context, id uint) (*model.Course, error) {
	var course model.Course
	err := r.db.WithContext(ctx).
		Preload("Instructor").
		Preload("Instructor.Enrollments").
		Preload("Instructor.Enrollments.Course").
		Preload("Instructor.Reviews").
		Preload("Instructor.Reviews.Course").
		Preload("Enrollments.User").
		Preload("Reviews.User").
		First(&course, id).Error
	if err != nil {
		return nil, err
	}
	return &course, nil
}

// List returns all courses with their instructor loaded.
func (r *courseRepository) List(ctx context.Context) ([]model.Course, error) {
	var courses []model.Course
	if err := r.db.WithContext(ctx).Preload("Instructor").Order("id").Find(&courses).Error; err != nil {
		return nil, err
	}
	return courses, nil
}

// TitleTaken reports whether another course already uses title. excludeID
// skips the course being updated; pass 0 on create.
func (r *courseRepository) TitleTaken(ctx context.Context, title string, excludeID uint) (bool, error) {
	var count int64
	q := r.db.WithContext(ctx).Model(&model.Course{}).Where("title = ?", title)
	if excludeID != 0 {
		q = q.Where("id <> ?", excludeID)
	}
	if err := q.Count(&count).Error; err != nil {
		return false, err
	}
	return count > 0, nil
}

// WithTransaction executes fn against a transaction-scoped repository.
func (r *courseRepository) WithTransaction(ctx context.Context, fn func(ctx context.Context, repo CourseRepository) error) error {
	return r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(ctx, &courseRepository{db: tx})
	})
}
