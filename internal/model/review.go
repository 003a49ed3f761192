package model

import "time"

// Review is a rated comment a user leaves on a course. A user may review
// the same course any number of times.
type Review struct {
	ID          uint      `json:"id" gorm:"primaryKey"`
	TextContent string    `json:"text_content" gorm:"type:text;not null"`
	Rating      int       `json:"rating" gorm:"not null"`
	UserID      uint      `json:"user_id" gorm:"not null;index"`
	CourseID    uint      `json:"course_id" gorm:"not null;index"`
	CreatedAt   time.Time `json:"created_at"`

	// Relations
	User   *User   `json:"user,omitempty" gorm:"foreignKey:UserID"`
	Course *Course `json:"course,omitempty" gorm:"foreignKey:CourseID"`
}
