package serializer

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"

	"coursify/internal/model"
)

// graph builds a small connected fixture: one instructor owning one course,
// one student enrolled in and reviewing it, with every back-reference wired so
// a naive walk would recurse forever.
func graph() (*model.User, *model.Course, *model.User) {
	instructor := &model.User{ID: 1, Username: "bob12", Email: "bob@x.com", Role: model.RoleInstructor}
	student := &model.User{ID: 2, Username: "johnsmith", Email: "john@x.com", Role: model.RoleStudent}
	course := &model.Course{
		ID:            5,
		Title:         "Intro to Rust",
		Description:   "A 25+ character description here.",
		Difficulty:    model.DifficultyBeginner,
		DurationHours: 10,
		InstructorID:  1,
		Instructor:    instructor,
	}
	enrollment := model.Enrollment{
		ID:             11,
		UserID:         2,
		CourseID:       5,
		EnrollmentDate: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
		User:           student,
		Course:         course,
	}
	review := model.Review{
		ID:          21,
		TextContent: "Great for beginners, very clear.",
		Rating:      4,
		UserID:      2,
		CourseID:    5,
		User:        student,
		Course:      course,
	}
	course.Enrollments = []model.Enrollment{enrollment}
	course.Reviews = []model.Review{review}
	instructor.Courses = []model.Course{*course}
	student.Enrollments = []model.Enrollment{enrollment}
	student.Reviews = []model.Review{review}
	return instructor, course, student
}

func TestCourse_DefaultRulesBreakCycles(t *testing.T) {
	_, course, _ := graph()

	doc := Course(course)

	assert.Equal(t, uint(5), doc["id"])
	assert.Equal(t, "Intro to Rust", doc["title"])
	assert.Equal(t, "Beginner", doc["difficulty"])
	assert.Equal(t, 10, doc["duration_hours"])

	// The instructor appears once, without the course list that led here.
	nested, ok := doc["instructor"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "bob12", nested["username"])
	assert.NotContains(t, nested, "courses")
	assert.NotContains(t, nested, "password_hash")

	// Enrollments keep their user but never point back at this course.
	enrollments, ok := doc["enrollments"].([]map[string]interface{})
	assert.True(t, ok)
	assert.Len(t, enrollments, 1)
	assert.NotContains(t, enrollments[0], "course")
	enrolledUser, ok := enrollments[0]["user"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "johnsmith", enrolledUser["username"])
	assert.NotContains(t, enrolledUser, "enrollments")
	assert.NotContains(t, enrolledUser, "reviews")

	reviews, ok := doc["reviews"].([]map[string]interface{})
	assert.True(t, ok)
	assert.Len(t, reviews, 1)
	assert.NotContains(t, reviews[0], "course")
}

func TestUser_DefaultRulesBreakCycles(t *testing.T) {
	_, _, student := graph()

	doc := User(student)

	enrollments, ok := doc["enrollments"].([]map[string]interface{})
	assert.True(t, ok)
	assert.Len(t, enrollments, 1)
	assert.NotContains(t, enrollments[0], "user")

	// The enrolled course is rendered, but its own collections are cut by the
	// enrollment's rules.
	nestedCourse, ok := enrollments[0]["course"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "Intro to Rust", nestedCourse["title"])
	assert.NotContains(t, nestedCourse, "enrollments")
	assert.NotContains(t, nestedCourse, "reviews")
}

func TestPathQualifiedRulesFireOnlyOnTheirPath(t *testing.T) {
	_, course, _ := graph()

	// "instructor.courses" cuts the instructor's course list, but the bare
	// "enrollments" collection on the root course is untouched.
	doc := Course(course)
	assert.Contains(t, doc, "enrollments")
	nested := doc["instructor"].(map[string]interface{})
	assert.NotContains(t, nested, "courses")
}

func TestOverrideReplacesDefaultRules(t *testing.T) {
	instructor, course, _ := graph()

	t.Run("summary rules strip collections", func(t *testing.T) {
		doc := User(instructor, UserSummaryRules...)
		assert.Equal(t, "bob12", doc["username"])
		assert.NotContains(t, doc, "enrollments")
		assert.NotContains(t, doc, "reviews")
		assert.NotContains(t, doc, "courses")
	})

	t.Run("override discards the defaults entirely", func(t *testing.T) {
		// With only "reviews" excluded the default "enrollments.course" rule
		// is gone, so the enrollment points back at its course again.
		doc := Course(course, "reviews", "instructor")
		assert.NotContains(t, doc, "reviews")
		enrollments := doc["enrollments"].([]map[string]interface{})
		assert.Contains(t, enrollments[0], "course")
	})

	t.Run("password hash survives no override", func(t *testing.T) {
		doc := User(instructor, "id")
		assert.NotContains(t, doc, "id")
		assert.Contains(t, doc, "username")
		assert.NotContains(t, doc, "password_hash")
	})
}

func TestDepthCapStopsTheWalk(t *testing.T) {
	_, _, student := graph()

	// user -> enrollments -> course -> instructor sits at the depth bound, so
	// the instructor renders as scalars only.
	doc := User(student)
	enrollments := doc["enrollments"].([]map[string]interface{})
	nestedCourse := enrollments[0]["course"].(map[string]interface{})
	nestedInstructor, ok := nestedCourse["instructor"].(map[string]interface{})
	assert.True(t, ok)
	assert.Equal(t, "bob12", nestedInstructor["username"])
	assert.NotContains(t, nestedInstructor, "courses")
	assert.NotContains(t, nestedInstructor, "enrollments")
	assert.NotContains(t, nestedInstructor, "reviews")
}

func TestToOneRelationsRenderNullWhenUnloaded(t *testing.T) {
	e := &model.Enrollment{
		ID:             1,
		UserID:         2,
		CourseID:       5,
		EnrollmentDate: time.Date(2026, 1, 15, 10, 30, 0, 0, time.UTC),
	}

	doc := Enrollment(e)

	assert.Equal(t, "2026-01-15T10:30:00Z", doc["enrollment_date"])
	assert.Contains(t, doc, "user")
	assert.Nil(t, doc["user"])
	assert.Contains(t, doc, "course")
	assert.Nil(t, doc["course"])
}

func TestLists(t *testing.T) {
	_, course, _ := graph()

	docs := Courses([]model.Course{*course}, CourseSummaryRules...)
	assert.Len(t, docs, 1)
	assert.NotContains(t, docs[0], "enrollments")
	assert.NotContains(t, docs[0], "reviews")
	nested, ok := docs[0]["instructor"].(map[string]interface{})
	assert.True(t, ok)
	assert.NotContains(t, nested, "courses")

	assert.Empty(t, Users(nil))
	assert.NotNil(t, Users(nil))
}
