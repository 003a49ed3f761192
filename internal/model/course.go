package model

import "time"

// Difficulty is the declared difficulty level of a course.
type Difficulty string

const (
	DifficultyBeginner     Difficulty = "Beginner"
	DifficultyIntermediate Difficulty = "Intermediate"
	DifficultyAdvanced     Difficulty = "Advanced"
)

// Course represents a catalog course taught by an instructor.
type Course struct {
	ID            uint       `json:"id" gorm:"primaryKey"`
	Title         string     `json:"title" gorm:"uniqueIndex;size:255;not null"`
	Description   string     `json:"description" gorm:"type:text;not null"`
	Difficulty    Difficulty `json:"difficulty" gorm:"size:50;not null"`
	DurationHours int        `json:"duration_hours" gorm:"not null"`
	InstructorID  uint       `json:"instructor_id" gorm:"not null;index"`
	CreatedAt     time.Time  `json:"created_at"`
	UpdatedAt     time.Time  `json:"updated_at"`

	// Relations
	Instructor  *User        `json:"instructor,omitempty" gorm:"foreignKey:InstructorID"`
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:CourseID"`
	Reviews     []Review     `json:"reviews,omitempty" gorm:"foreignKey:CourseID"`
}
