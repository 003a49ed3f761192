// Package validation holds the per-field rules enforced on every create and
// update. Each rule is a pure function returning a *errors.ValidationError
// whose message is surfaced verbatim to the client.
package validation

import (
	"strings"
	"time"
	"unicode/utf8"

	"coursify/internal/errors"
	"coursify/internal/model"
)

// MaxFutureEnrollment bounds how far in the future an enrollment date may lie.
const MaxFutureEnrollment = 365 * 24 * time.Hour

// Username requires at least 3 characters.
func Username(username string) error {
	if utf8.RuneCountInString(username) < 3 {
		return errors.NewValidationError("Username must be at least 3 characters long.")
	}
	return nil
}

// Email requires a non-empty value containing "@".
func Email(email string) error {
	if email == "" || !strings.Contains(email, "@") {
		return errors.NewValidationError("Invalid email format.")
	}
	return nil
}

// UserRole restricts the role to student or instructor.
func UserRole(role model.Role) error {
	if role != model.RoleStudent && role != model.RoleInstructor {
		return errors.NewValidationError("Role must be one of: student, instructor.")
	}
	return nil
}

// CourseTitle requires at least 5 characters. Global uniqueness is checked
// against the store by the course service, not here.
func CourseTitle(title string) error {
	if utf8.RuneCountInString(title) < 5 {
		return errors.NewValidationError("Title must be at least 5 characters long.")
	}
	return nil
}

// CourseDescription requires at least 20 characters.
func CourseDescription(description string) error {
	if utf8.RuneCountInString(description) < 20 {
		return errors.NewValidationError("Description must be at least 20 characters long.")
	}
	return nil
}

// CourseDifficulty restricts the difficulty to the three declared levels.
func CourseDifficulty(difficulty model.Difficulty) error {
	switch difficulty {
	case model.DifficultyBeginner, model.DifficultyIntermediate, model.DifficultyAdvanced:
		return nil
	}
	return errors.NewValidationError("Difficulty must be one of: Beginner, Intermediate, Advanced.")
}

// CourseDuration requires a positive number of hours.
func CourseDuration(hours int) error {
	if hours <= 0 {
		return errors.NewValidationError("Duration must be a positive number of hours.")
	}
	return nil
}

// EnrollmentDate rejects dates more than a year past now.
func EnrollmentDate(date, now time.Time) error {
	if date.After(now.Add(MaxFutureEnrollment)) {
		return errors.NewValidationError("Enrollment date cannot be more than 1 year in the future.")
	}
	return nil
}

// enrollmentDateLayouts are the accepted textual timestamp forms, tried in order.
var enrollmentDateLayouts = []string{
	time.RFC3339,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

// ParseEnrollmentDate parses an ISO-8601 timestamp string.
func ParseEnrollmentDate(raw string) (time.Time, error) {
	for _, layout := range enrollmentDateLayouts {
		if t, err := time.Parse(layout, raw); err == nil {
			return t, nil
		}
	}
	return time.Time{}, errors.NewValidationError("Enrollment date must be a valid ISO 8601 timestamp (YYYY-MM-DDTHH:MM:SS).")
}

// ReviewText requires at least 10 characters.
func ReviewText(text string) error {
	if utf8.RuneCountInString(text) < 10 {
		return errors.NewValidationError("Review content must be at least 10 characters long.")
	}
	return nil
}

// ReviewRating requires an integer between 1 and 5 inclusive.
func ReviewRating(rating int) error {
	if rating < 1 || rating > 5 {
		return errors.NewValidationError("Rating must be between 1 and 5.")
	}
	return nil
}
