// Package serializer renders entity graphs as JSON-compatible nested
// documents. Each entity type carries a default exclusion rule set; a rule is
// either a bare field name ("password_hash") or a dotted relationship path
// ("courses.instructor") that only fires when the entity was reached through
// that relationship. Traversal depth is capped so an incomplete rule set can
// never recurse unbounded. The walk reads the entities and nothing else.
package serializer

import (
	"time"

	"coursify/internal/model"
)

// maxDepth bounds how many relationship levels a walk may descend.
const maxDepth = 3

// Default exclusion rule sets, one per entity type. They mirror the ownership
// graph: an entity reached through a relationship never serializes the
// relationship that led back to its parent.
var (
	userRules = []string{
		"enrollments.user",
		"reviews.user",
		"courses.instructor",
	}
	courseRules = []string{
		"enrollments.course",
		"reviews.course",
		"instructor.courses",
	}
	enrollmentRules = []string{
		"user.enrollments",
		"course.enrollments",
		"user.reviews",
		"user.courses",
		"course.reviews",
	}
	reviewRules = []string{
		"user.reviews",
		"course.reviews",
		"user.enrollments",
		"user.courses",
		"course.enrollments",
	}
)

// Summary rule sets for list endpoints: they replace the root entity's
// default rules for one call, stripping the nested collections entirely.
var (
	UserSummaryRules   = []string{"enrollments", "reviews", "courses"}
	CourseSummaryRules = []string{"enrollments", "reviews", "instructor.courses"}
)

// frame is one active rule set during a walk, with the relationship path
// walked since the frame's owner was visited. A rule fires when it equals
// that path extended by the candidate field.
type frame struct {
	rules map[string]struct{}
	path  string
}

type walker struct {
	frames []frame
	depth  int
}

func ruleSet(rules []string) map[string]struct{} {
	set := make(map[string]struct{}, len(rules))
	for _, r := range rules {
		set[r] = struct{}{}
	}
	return set
}

// visit pushes the rule frame an entity contributes for the span of fn.
func (w *walker) visit(rules []string, fn func()) {
	w.frames = append(w.frames, frame{rules: ruleSet(rules)})
	fn()
	w.frames = w.frames[:len(w.frames)-1]
}

// descend extends every active frame's path by one relationship for the span
// of fn and tracks the depth bound.
func (w *walker) descend(relation string, fn func()) {
	saved := make([]string, len(w.frames))
	for i := range w.frames {
		saved[i] = w.frames[i].path
		if w.frames[i].path == "" {
			w.frames[i].path = relation
		} else {
			w.frames[i].path += "." + relation
		}
	}
	w.depth++
	fn()
	w.depth--
	for i := range w.frames {
		w.frames[i].path = saved[i]
	}
}

// excluded reports whether any active frame excludes field at the current path.
func (w *walker) excluded(field string) bool {
	for _, f := range w.frames {
		key := field
		if f.path != "" {
			key = f.path + "." + field
		}
		if _, ok := f.rules[key]; ok {
			return true
		}
	}
	return false
}

// relationsAllowed reports whether the walk may go one relationship deeper.
func (w *walker) relationsAllowed() bool {
	return w.depth < maxDepth
}

// User serializes one user. Extra rules, if given, replace the user's default
// rule set for this call. The password hash is never emitted under any rule set.
func User(u *model.User, rules ...string) map[string]interface{} {
	w := &walker{}
	return w.user(u, rootRules(userRules, rules))
}

// Users serializes a list of users.
func Users(users []model.User, rules ...string) []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(users))
	for i := range users {
		docs = append(docs, User(&users[i], rules...))
	}
	return docs
}

// Course serializes one course with its relations.
func Course(c *model.Course, rules ...string) map[string]interface{} {
	w := &walker{}
	return w.course(c, rootRules(courseRules, rules))
}

// Courses serializes a list of courses.
func Courses(courses []model.Course, rules ...string) []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(courses))
	for i := range courses {
		docs = append(docs, Course(&courses[i], rules...))
	}
	return docs
}

// Enrollment serializes one enrollment with its user and course.
func Enrollment(e *model.Enrollment, rules ...string) map[string]interface{} {
	w := &walker{}
	return w.enrollment(e, rootRules(enrollmentRules, rules))
}

// Enrollments serializes a list of enrollments.
func Enrollments(enrollments []model.Enrollment, rules ...string) []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(enrollments))
	for i := range enrollments {
		docs = append(docs, Enrollment(&enrollments[i], rules...))
	}
	return docs
}

// Review serializes one review with its user and course.
func Review(r *model.Review, rules ...string) map[string]interface{} {
	w := &walker{}
	return w.review(r, rootRules(reviewRules, rules))
}

// Reviews serializes a list of reviews.
func Reviews(reviews []model.Review, rules ...string) []map[string]interface{} {
	docs := make([]map[string]interface{}, 0, len(reviews))
	for i := range reviews {
		docs = append(docs, Review(&reviews[i], rules...))
	}
	return docs
}

func rootRules(defaults, override []string) []string {
	if len(override) > 0 {
		return override
	}
	return defaults
}

func (w *walker) user(u *model.User, rules []string) map[string]interface{} {
	doc := map[string]interface{}{}
	w.visit(rules, func() {
		w.scalar(doc, "id", u.ID)
		w.scalar(doc, "username", u.Username)
		w.scalar(doc, "email", u.Email)
		w.scalar(doc, "role", string(u.Role))
		// PasswordHash is write-only and has no place in any document.

		if !w.relationsAllowed() {
			return
		}
		if !w.excluded("enrollments") {
			docs := make([]map[string]interface{}, 0, len(u.Enrollments))
			w.descend("enrollments", func() {
				for i := range u.Enrollments {
					docs = append(docs, w.enrollment(&u.Enrollments[i], enrollmentRules))
				}
			})
			doc["enrollments"] = docs
		}
		if !w.excluded("reviews") {
			docs := make([]map[string]interface{}, 0, len(u.Reviews))
			w.descend("reviews", func() {
				for i := range u.Reviews {
					docs = append(docs, w.review(&u.Reviews[i], reviewRules))
				}
			})
			doc["reviews"] = docs
		}
		if !w.excluded("courses") {
			docs := make([]map[string]interface{}, 0, len(u.Courses))
			w.descend("courses", func() {
				for i := range u.Courses {
					docs = append(docs, w.course(&u.Courses[i], courseRules))
				}
			})
			doc["courses"] = docs
		}
	})
	return doc
}

func (w *walker) course(c *model.Course, rules []string) map[string]interface{} {
	doc := map[string]interface{}{}
	w.visit(rules, func() {
		w.scalar(doc, "id", c.ID)
		w.scalar(doc, "title", c.Title)
		w.scalar(doc, "description", c.Description)
		w.scalar(doc, "difficulty", string(c.Difficulty))
		w.scalar(doc, "duration_hours", c.DurationHours)
		w.scalar(doc, "instructor_id", c.InstructorID)

		if !w.relationsAllowed() {
			return
		}
		if !w.excluded("instructor") {
			var nested interface{}
			w.descend("instructor", func() {
				if c.Instructor != nil {
					nested = w.user(c.Instructor, userRules)
				}
			})
			doc["instructor"] = nested
		}
		if !w.excluded("enrollments") {
			docs := make([]map[string]interface{}, 0, len(c.Enrollments))
			w.descend("enrollments", func() {
				for i := range c.Enrollments {
					docs = append(docs, w.enrollment(&c.Enrollments[i], enrollmentRules))
				}
			})
			doc["enrollments"] = docs
		}
		if !w.excluded("reviews") {
			docs := make([]map[string]interface{}, 0, len(c.Reviews))
			w.descend("reviews", func() {
				for i := range c.Reviews {
					docs = append(docs, w.review(&c.Reviews[i], reviewRules))
				}
			})
			doc["reviews"] = docs
		}
	})
	return doc
}

func (w *walker) enrollment(e *model.Enrollment, rules []string) map[string]interface{} {
	doc := map[string]interface{}{}
	w.visit(rules, func() {
		w.scalar(doc, "id", e.ID)
		w.scalar(doc, "user_id", e.UserID)
		w.scalar(doc, "course_id", e.CourseID)
		w.scalar(doc, "enrollment_date", e.EnrollmentDate.Format(time.RFC3339))

		if !w.relationsAllowed() {
			return
		}
		if !w.excluded("user") {
			var nested interface{}
			w.descend("user", func() {
				if e.User != nil {
					nested = w.user(e.User, userRules)
				}
			})
			doc["user"] = nested
		}
		if !w.excluded("course") {
			var nested interface{}
			w.descend("course", func() {
				if e.Course != nil {
					nested = w.course(e.Course, courseRules)
				}
			})
			doc["course"] = nested
		}
	})
	return doc
}

func (w *walker) review(r *model.Review, rules []string) map[string]interface{} {
	doc := map[string]interface{}{}
	w.visit(rules, func() {
		w.scalar(doc, "id", r.ID)
		w.scalar(doc, "text_content", r.TextContent)
		w.scalar(doc, "rating", r.Rating)
		w.scalar(doc, "user_id", r.UserID)
		w.scalar(doc, "course_id", r.CourseID)

		if !w.relationsAllowed() {
			return
		}
		if !w.excluded("user") {
			var nested interface{}
			w.descend("user", func() {
				if r.User != nil {
					nested = w.user(r.User, userRules)
				}
			})
			doc["user"] = nested
		}
		if !w.excluded("course") {
			var nested interface{}
			w.descend("course", func() {
				if r.Course != nil {
					nested = w.course(r.Course, courseRules)
				}
			})
			doc["course"] = nested
		}
	})
	return doc
}

func (w *walker) scalar(doc map[string]interface{}, field string, value interface{}) {
	if !w.excluded(field) {
		doc[field] = value
	}
}
