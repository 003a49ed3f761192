package service

import (
	"context"
	"encoding/json"
	"math"

	"gorm.io/gorm"

	"coursify/internal/errors"
	"coursify/internal/model"
	"coursify/internal/repository"
	"coursify/internal/serializer"
	"coursify/internal/validation"
)

// CreateCourseInput carries the fields of a course creation request.
type CreateCourseInput struct {
	Title         string
	Description   string
	Difficulty    model.Difficulty
	DurationHours int
	InstructorID  uint
}

// CourseService exposes course domain operations.
type CourseService interface {
	CreateCourse(ctx context.Context, in CreateCourseInput) (map[string]interface{}, error)
	GetCourseDocument(ctx context.Context, id uint) (map[string]interface{}, error)
	ListCourses(ctx context.Context) ([]map[string]interface{}, error)
	UpdateCourse(ctx context.Context, id uint, patch map[string]interface{}) (map[string]interface{}, error)
	DeleteCourse(ctx context.Context, id uint) error
}

type courseService struct {
	courses repository.CourseRepository
	users   repository.UserRepository
	cascade repository.CascadeRepository
	cache   DocumentCache
}

// NewCourseService builds a CourseService.
func NewCourseService(courses repository.CourseRepository, users repository.UserRepository, cascade repository.CascadeRepository, cache DocumentCache) CourseService {
	return &courseService{courses: courses, users: users, cascade: cascade, cache: cache}
}

// CreateCourse resolves and checks the instructor reference, stages and
// validates every field, and persists the course only when all rules pass.
func (s *courseService) CreateCourse(ctx context.Context, in CreateCourseInput) (map[string]interface{}, error) {
	instructor, err := s.users.FindByID(ctx, in.InstructorID)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrInstructorNotFound
		}
		return nil, err
	}
	if instructor.Role != model.RoleInstructor {
		return nil, errors.NewValidationError("User %q is not an instructor.", instructor.Username)
	}

	// Stage, validate and insert as one unit: a failure on any field rolls
	// the whole operation back.
	course := &model.Course{InstructorID: in.InstructorID}
	err = s.courses.WithTransaction(ctx, func(ctx context.Context, tx repository.CourseRepository) error {
		err := validation.Apply(
			validation.Field{
				Check: func() error {
					if err := validation.CourseTitle(in.Title); err != nil {
						return err
					}
					return checkTitleUnique(ctx, tx, in.Title, 0)
				},
				Assign: func() { course.Title = in.Title },
			},
			validation.Field{
				Check:  func() error { return validation.CourseDescription(in.Description) },
				Assign: func() { course.Description = in.Description },
			},
			validation.Field{
				Check:  func() error { return validation.CourseDifficulty(in.Difficulty) },
				Assign: func() { course.Difficulty = in.Difficulty },
			},
			validation.Field{
				Check:  func() error { return validation.CourseDuration(in.DurationHours) },
				Assign: func() { course.DurationHours = in.DurationHours },
			},
		)
		if err != nil {
			return err
		}
		return tx.Create(ctx, course)
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.Delete(ctx, userDocKey(in.InstructorID))

	course.Instructor = instructor
	return serializer.Course(course), nil
}

// GetCourseDocument returns a fully nested serialization of one course,
// served from cache when possible.
func (s *courseService) GetCourseDocument(ctx context.Context, id uint) (map[string]interface{}, error) {
	if data, _ := s.cache.Get(ctx, courseDocKey(id)); data != nil {
		var cached map[string]interface{}
		if err := json.Unmarshal(data, &cached); err == nil {
			return cached, nil
		}
	}

	course, err := s.courses.FindByIDWithRelations(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCourseNotFound
		}
		return nil, err
	}

	doc := serializer.Course(course)
	if payload, err := json.Marshal(doc); err == nil {
		_ = s.cache.Set(ctx, courseDocKey(id), payload, docCacheTTL)
	}
	return doc, nil
}

// ListCourses returns summary documents for all courses.
func (s *courseService) ListCourses(ctx context.Context) ([]map[string]interface{}, error) {
	courses, err := s.courses.List(ctx)
	if err != nil {
		return nil, err
	}
	return serializer.Courses(courses, serializer.CourseSummaryRules...), nil
}

// UpdateCourse applies a partial update. All requested field assignments are
// staged on a copy and validated in order; the copy is written back only when
// every rule passed, so a failure on a later field never commits the earlier
// ones. Unknown attributes are ignored.
func (s *courseService) UpdateCourse(ctx context.Context, id uint, patch map[string]interface{}) (map[string]interface{}, error) {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return nil, errors.ErrCourseNotFound
		}
		return nil, err
	}

	staged := *course
	err = s.courses.WithTransaction(ctx, func(ctx context.Context, tx repository.CourseRepository) error {
		var fields []validation.Field

		if raw, ok := patch["title"]; ok {
			title, ok := raw.(string)
			if !ok {
				return errors.NewValidationError("Title must be a string.")
			}
			fields = append(fields, validation.Field{
				Check: func() error {
					if err := validation.CourseTitle(title); err != nil {
						return err
					}
					return checkTitleUnique(ctx, tx, title, id)
				},
				Assign: func() { staged.Title = title },
			})
		}
		if raw, ok := patch["description"]; ok {
			description, ok := raw.(string)
			if !ok {
				return errors.NewValidationError("Description must be a string.")
			}
			fields = append(fields, validation.Field{
				Check:  func() error { return validation.CourseDescription(description) },
				Assign: func() { staged.Description = description },
			})
		}
		if raw, ok := patch["difficulty"]; ok {
			difficulty, ok := raw.(string)
			if !ok {
				return errors.NewValidationError("Difficulty must be a string.")
			}
			fields = append(fields, validation.Field{
				Check:  func() error { return validation.CourseDifficulty(model.Difficulty(difficulty)) },
				Assign: func() { staged.Difficulty = model.Difficulty(difficulty) },
			})
		}
		if raw, ok := patch["duration_hours"]; ok {
			hours, err := intFromJSON(raw)
			if err != nil {
				return err
			}
			fields = append(fields, validation.Field{
				Check:  func() error { return validation.CourseDuration(hours) },
				Assign: func() { staged.DurationHours = hours },
			})
		}
		if raw, ok := patch["instructor_id"]; ok {
			instructorID, err := intFromJSON(raw)
			if err != nil {
				return errors.NewValidationError("Instructor id must be an integer.")
			}
			// Reference must resolve; the instructor role is only checked at
			// course creation time, not on later reassignment.
			fields = append(fields, validation.Field{
				Check: func() error {
					if _, err := s.users.FindByID(ctx, uint(instructorID)); err != nil {
						if err == gorm.ErrRecordNotFound {
							return errors.ErrInstructorNotFound
						}
						return err
					}
					return nil
				},
				Assign: func() { staged.InstructorID = uint(instructorID) },
			})
		}

		if err := validation.Apply(fields...); err != nil {
			return err
		}
		return tx.Save(ctx, &staged)
	})
	if err != nil {
		return nil, err
	}
	_ = s.cache.DeleteMany(ctx, courseDocKey(id), userDocKey(course.InstructorID), userDocKey(staged.InstructorID))

	updated, err := s.courses.FindByIDWithRelations(ctx, id)
	if err != nil {
		return nil, err
	}
	return serializer.Course(updated), nil
}

// DeleteCourse removes a course together with its enrollments and reviews in
// one transaction. The cached documents of the instructor and of every user
// who was enrolled in or had reviewed the course are invalidated alongside
// the course's own.
func (s *courseService) DeleteCourse(ctx context.Context, id uint) error {
	course, err := s.courses.FindByID(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCourseNotFound
		}
		return err
	}

	affectedUserIDs, err := s.cascade.DeleteCourse(ctx, id)
	if err != nil {
		if err == gorm.ErrRecordNotFound {
			return errors.ErrCourseNotFound
		}
		return err
	}
	keys := []string{courseDocKey(id), userDocKey(course.InstructorID)}
	for _, userID := range affectedUserIDs {
		keys = append(keys, userDocKey(userID))
	}
	_ = s.cache.DeleteMany(ctx, keys...)
	return nil
}

// checkTitleUnique enforces global title uniqueness as a validation rule.
// Read-then-write, so two concurrent creates with the same title race down
// to the unique index.
func checkTitleUnique(ctx context.Context, repo repository.CourseRepository, title string, excludeID uint) error {
	taken, err := repo.TitleTaken(ctx, title, excludeID)
	if err != nil {
		return err
	}
	if taken {
		return errors.NewValidationError("Title is already in use by another course.")
	}
	return nil
}

// intFromJSON converts a decoded JSON number to a whole int.
func intFromJSON(raw interface{}) (int, error) {
	switch v := raw.(type) {
	case float64:
		if v != math.Trunc(v) {
			return 0, errors.NewValidationError("Duration must be a whole number of hours.")
		}
		return int(v), nil
	case int:
		return v, nil
	default:
		return 0, errors.NewValidationError("Duration must be a number in hours.")
	}
}
