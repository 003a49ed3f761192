package main

import (
	"log"
	"net/http"

	_ "coursify/docs" // swagger docs

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"

	"coursify/internal/cache"
	"coursify/internal/config"
	"coursify/internal/db"
	"coursify/internal/handler"
	"coursify/internal/model"
	"coursify/internal/repository"
	"coursify/internal/router"
	"coursify/internal/service"
)

// @title Coursify API
// @version 1.0
// @description Online course catalog API: users, courses, enrollments and reviews.
// @host localhost:8080
// @schemes http
func main() {
	cfg := config.Load()

	e := echo.New()
	e.Use(middleware.RequestID())

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("database init: %v", err)
	}

	// Drop tables if RESET_DB environment variable is set
	if cfg.ResetDB {
		log.Println("RESET_DB=true detected, dropping all tables...")
		tables := []interface{}{
			&model.Review{},
			&model.Enrollment{},
			&model.Course{},
			&model.User{},
		}
		for _, table := range tables {
			if err := gormDB.Migrator().DropTable(table); err != nil {
				log.Printf("Warning: Failed to drop table (may not exist): %v", err)
			}
		}
		log.Println("Tables dropped")
	}

	// Run migrations for all models
	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.Review{},
	); err != nil {
		log.Fatalf("auto-migrate: %v", err)
	}

	cacheClient := cache.New(cfg.RedisAddr, cfg.RedisPass, cfg.RedisDB)

	// Initialize repositories
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)
	cascadeRepo := repository.NewCascadeRepository(gormDB)

	// Initialize services
	userService := service.NewUserService(userRepo, cascadeRepo, cacheClient)
	courseService := service.NewCourseService(courseRepo, userRepo, cascadeRepo, cacheClient)
	enrollmentService := service.NewEnrollmentService(enrollmentRepo, userRepo, courseRepo, cacheClient)
	reviewService := service.NewReviewService(reviewRepo, userRepo, courseRepo, cacheClient)

	// Initialize handlers
	userHandler := handler.NewUserHandler(userService)
	courseHandler := handler.NewCourseHandler(courseService)
	enrollmentHandler := handler.NewEnrollmentHandler(enrollmentService)
	reviewHandler := handler.NewReviewHandler(reviewService)

	// Register routes
	router.Register(e, userHandler, courseHandler, enrollmentHandler, reviewHandler)

	if cfg.SwaggerHost != "" {
		log.Printf("Swagger documentation available at: http://%s/swagger/index.html", cfg.SwaggerHost)
	} else {
		log.Printf("Swagger documentation available at: http://localhost:%s/swagger/index.html", cfg.ServerPort)
	}

	addr := ":" + cfg.ServerPort
	if err := e.Start(addr); err != nil && err != http.ErrServerClosed {
		log.Fatalf("server start: %v", err)
	}
}
