package router

import (
	"net/http"

	"github.com/go-playground/validator/v10"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	echoSwagger "github.com/swaggo/echo-swagger"

	"coursify/internal/handler"
)

// Register wires routes and middleware.
func Register(
	e *echo.Echo,
	userHandler *handler.UserHandler,
	courseHandler *handler.CourseHandler,
	enrollmentHandler *handler.EnrollmentHandler,
	reviewHandler *handler.ReviewHandler,
) {
	e.Use(middleware.Logger())
	e.Use(middleware.Recover())

	// Add validator
	e.Validator = &CustomValidator{validator: validator.New()}

	e.GET("/healthz", func(c echo.Context) error {
		return c.String(http.StatusOK, "ok")
	})

	e.GET("/swagger/*", echoSwagger.WrapHandler)

	// User routes
	e.GET("/users", userHandler.ListUsers)
	e.POST("/users", userHandler.CreateUser)
	e.GET("/users/:id", userHandler.GetUser)
	e.DELETE("/users/:id", userHandler.DeleteUser)

	// Course routes
	e.GET("/courses", courseHandler.ListCourses)
	e.POST("/courses", courseHandler.CreateCourse)
	e.GET("/courses/:id", courseHandler.GetCourse)
	e.PATCH("/courses/:id", courseHandler.UpdateCourse)
	e.DELETE("/courses/:id", courseHandler.DeleteCourse)
	e.GET("/courses/:id/reviews", reviewHandler.ListCourseReviews)

	// Enrollment routes
	e.GET("/enrollments", enrollmentHandler.ListEnrollments)
	e.POST("/enrollments", enrollmentHandler.CreateEnrollment)
	e.GET("/enrollments/:id", enrollmentHandler.GetEnrollment)

	// Review routes
	e.POST("/reviews", reviewHandler.CreateReview)
}

// CustomValidator wraps validator for Echo.
type CustomValidator struct {
	validator *validator.Validate
}

// Validate implements echo.Validator interface.
func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}
