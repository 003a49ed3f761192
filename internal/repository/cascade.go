package repository

import (
	"context"

	"gorm.io/gorm"

	"coursify/internal/model"
)

// CascadeRepository runs the delete-propagation routines. Owned collections
// are removed before their parent inside a single transaction, so no orphaned
// foreign key is ever observable: either every dependent row and the parent
// vanish together or none do. Each routine reports the ids of the entities
// whose serialized documents referenced the deleted rows, so callers can
// invalidate every stale cache entry, not just the deleted entity's own.
type CascadeRepository interface {
	DeleteCourse(ctx context.Context, courseID uint) (affectedUserIDs []uint, err error)
	DeleteUser(ctx context.Context, userID uint) (affectedCourseIDs, affectedUserIDs []uint, err error)
}

type cascadeRepository struct {
	db *gorm.DB
}

// NewCascadeRepository creates a new cascade repository.
func NewCascadeRepository(db *gorm.DB) CascadeRepository {
	return &cascadeRepository{db: db}
}

// DeleteCourse removes a course with its enrollments and reviews, returning
// the ids of users who were enrolled in or had reviewed it.
// Returns gorm.ErrRecordNotFound if the course does not exist.
func (r *cascadeRepository) DeleteCourse(ctx context.Context, courseID uint) ([]uint, error) {
	var affected []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var course model.Course
		if err := tx.First(&course, courseID).Error; err != nil {
			return err
		}
		userIDs, err := deleteCourseTx(tx, courseID)
		if err != nil {
			return err
		}
		affected = userIDs
		return nil
	})
	if err != nil {
		return nil, err
	}
	return dedupe(affected), nil
}

// DeleteUser removes a user with their enrollments, reviews, and owned
// courses; each owned course takes its own dependents with it. It returns the
// ids of every course whose document embedded the user (owned, enrolled in,
// or reviewed) and of every other user touched by the owned-course cascades.
// Returns gorm.ErrRecordNotFound if the user does not exist.
func (r *cascadeRepository) DeleteUser(ctx context.Context, userID uint) ([]uint, []uint, error) {
	var courseIDs, userIDs []uint
	err := r.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var user model.User
		if err := tx.First(&user, userID).Error; err != nil {
			return err
		}

		// Collect every referenced course before any rows disappear.
		var ownedCourseIDs []uint
		if err := tx.Model(&model.Course{}).
			Where("instructor_id = ?", userID).
			Pluck("id", &ownedCourseIDs).Error; err != nil {
			return err
		}
		courseIDs = append(courseIDs, ownedCourseIDs...)
		for _, m := range []interface{}{&model.Enrollment{}, &model.Review{}} {
			var referenced []uint
			if err := tx.Model(m).
				Where("user_id = ?", userID).
				Distinct().
				Pluck("course_id", &referenced).Error; err != nil {
				return err
			}
			courseIDs = append(courseIDs, referenced...)
		}

		for _, courseID := range ownedCourseIDs {
			affected, err := deleteCourseTx(tx, courseID)
			if err != nil {
				return err
			}
			userIDs = append(userIDs, affected...)
		}

		if err := tx.Where("user_id = ?", userID).Delete(&model.Review{}).Error; err != nil {
			return err
		}
		if err := tx.Where("user_id = ?", userID).Delete(&model.Enrollment{}).Error; err != nil {
			return err
		}
		return tx.Delete(&model.User{}, userID).Error
	})
	if err != nil {
		return nil, nil, err
	}
	return dedupe(courseIDs), dedupe(userIDs), nil
}

// deleteCourseTx removes one course's dependents then the course itself,
// within the caller's transaction, returning the ids of users who held an
// enrollment or review on it.
func deleteCourseTx(tx *gorm.DB, courseID uint) ([]uint, error) {
	var userIDs []uint
	for _, m := range []interface{}{&model.Enrollment{}, &model.Review{}} {
		var affected []uint
		if err := tx.Model(m).
			Where("course_id = ?", courseID).
			Distinct().
			Pluck("user_id", &affected).Error; err != nil {
			return nil, err
		}
		userIDs = append(userIDs, affected...)
	}

	if err := tx.Where("course_id = ?", courseID).Delete(&model.Review{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Where("course_id = ?", courseID).Delete(&model.Enrollment{}).Error; err != nil {
		return nil, err
	}
	if err := tx.Delete(&model.Course{}, courseID).Error; err != nil {
		return nil, err
	}
	return userIDs, nil
}

func dedupe(ids []uint) []uint {
	seen := make(map[uint]struct{}, len(ids))
	out := make([]uint, 0, len(ids))
	for _, id := range ids {
		if _, ok := seen[id]; ok {
			continue
		}
		seen[id] = struct{}{}
		out = append(out, id)
	}
	return out
}
