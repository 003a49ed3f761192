package model

import "time"

// Enrollment links a user to a course they are taking.
//
// The (UserID, CourseID) pair is kept unique by an application-level check
// before insert, not by a schema constraint, so concurrent identical
// requests can still race in duplicates.
type Enrollment struct {
	ID             uint      `json:"id" gorm:"primaryKey"`
	UserID         uint      `json:"user_id" gorm:"not null;index"`
	CourseID       uint      `json:"course_id" gorm:"not null;index"`
	EnrollmentDate time.Time `json:"enrollment_date" gorm:"not null"`

	// Relations
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
