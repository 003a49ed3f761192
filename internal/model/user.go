package model

import (
	"time"

	"golang.org/x/crypto/bcrypt"
)

const bcryptCost = 10

// Role classifies a user within the catalog.
type Role string

const (
	RoleStudent    Role = "student"
	RoleInstructor Role = "instructor"
)

// User represents a student or instructor account.
type User struct {
	ID           uint      `json:"id" gorm:"primaryKey"`
	Username     string    `json:"username" gorm:"uniqueIndex;size:80;not null"`
	Email        string    `json:"email" gorm:"uniqueIndex;size:120;not null"`
	PasswordHash string    `json:"-" gorm:"size:128;not null"` // Never expose in JSON
	Role         Role      `json:"role" gorm:"size:50;not null;default:'student'"`
	CreatedAt    time.Time `json:"created_at"`
	UpdatedAt    time.Time `json:"updated_at"`

	// Relations
	Enrollments []Enrollment `json:"enrollments,omitempty" gorm:"foreignKey:UserID"`
	Reviews     []Review     `json:"reviews,omitempty" gorm:"foreignKey:UserID"`
	Courses     []Course     `json:"courses,omitempty" gorm:"foreignKey:InstructorID"`
}

// SetPassword stores a salted one-way hash of plaintext. There is no
// corresponding getter; the plaintext is never retained.
func (u *User) SetPassword(plaintext string) error {
	hash, err := bcrypt.GenerateFromPassword([]byte(plaintext), bcryptCost)
	if err != nil {
		return err
	}
	u.PasswordHash = string(hash)
	return nil
}

// VerifyPassword reports whether plaintext matches the stored hash.
func (u *User) VerifyPassword(plaintext string) bool {
	return bcrypt.CompareHashAndPassword([]byte(u.PasswordHash), []byte(plaintext)) == nil
}
