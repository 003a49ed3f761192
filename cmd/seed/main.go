package main

import (
	"context"
	"log"
	"time"

	"gorm.io/gorm"

	"coursify/internal/config"
	"coursify/internal/db"
	"coursify/internal/model"
	"coursify/internal/repository"
)

type seedUser struct {
	username string
	email    string
	password string
	role     model.Role
}

type seedCourse struct {
	title         string
	description   string
	difficulty    model.Difficulty
	durationHours int
	instructor    string // seed username
}

var seedUsers = []seedUser{
	{"janedoe", "jane@example.com", "password123", model.RoleInstructor},
	{"johnsmith", "john@example.com", "securepass", model.RoleStudent},
	{"alicebrown", "alice@example.com", "supersecret", model.RoleInstructor},
	{"bobwhite", "bob@example.com", "mysecret", model.RoleStudent},
}

var seedCourses = []seedCourse{
	{"Full-Stack Dev with Go & React", "A comprehensive course covering backend API development with Go and frontend application building with React, including routing.", model.DifficultyAdvanced, 40, "janedoe"},
	{"Intro to Python Programming", "Learn the fundamentals of Python, from variables and loops to functions and object-oriented programming for beginners.", model.DifficultyBeginner, 20, "alicebrown"},
	{"Web Design Basics: HTML & CSS", "Master the essential building blocks of the web, structuring content with HTML and styling with CSS for modern browsers.", model.DifficultyBeginner, 15, "alicebrown"},
	{"Database Management with GORM", "Dive deep into relational databases and how to interact with them efficiently using an ORM in backend applications.", model.DifficultyIntermediate, 25, "janedoe"},
	{"Modern JavaScript Fundamentals", "Understand modern JavaScript features including ES6+, asynchronous programming, and module systems for web development.", model.DifficultyIntermediate, 30, "alicebrown"},
}

func main() {
	log.Println("Starting seed script...")

	cfg := config.Load()

	gormDB, err := db.NewMySQL(cfg.MySQLDSN)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}
	log.Println("Connected to database")

	if err := gormDB.AutoMigrate(
		&model.User{},
		&model.Course{},
		&model.Enrollment{},
		&model.Review{},
	); err != nil {
		log.Fatalf("Failed to run migrations: %v", err)
	}
	log.Println("Database migrations completed")

	// Clear in dependency order: dependents before their parents.
	log.Println("Clearing existing data...")
	for _, target := range []interface{}{
		&model.Review{},
		&model.Enrollment{},
		&model.Course{},
		&model.User{},
	} {
		if err := gormDB.Session(&gorm.Session{AllowGlobalUpdate: true}).Delete(target).Error; err != nil {
			log.Fatalf("Failed to clear table: %v", err)
		}
	}
	log.Println("Existing data cleared.")

	ctx := context.Background()
	userRepo := repository.NewUserRepository(gormDB)
	courseRepo := repository.NewCourseRepository(gormDB)
	enrollmentRepo := repository.NewEnrollmentRepository(gormDB)
	reviewRepo := repository.NewReviewRepository(gormDB)

	log.Println("Seeding users...")
	usersByName := make(map[string]*model.User, len(seedUsers))
	for _, su := range seedUsers {
		user := &model.User{Username: su.username, Email: su.email, Role: su.role}
		if err := user.SetPassword(su.password); err != nil {
			log.Fatalf("Failed to hash password for %s: %v", su.username, err)
		}
		if err := userRepo.Create(ctx, user); err != nil {
			log.Fatalf("Failed to seed user %s: %v", su.username, err)
		}
		usersByName[su.username] = user
	}
	log.Printf("Seeded %d users.", len(seedUsers))

	log.Println("Seeding courses...")
	coursesByTitle := make(map[string]*model.Course, len(seedCourses))
	for _, sc := range seedCourses {
		course := &model.Course{
			Title:         sc.title,
			Description:   sc.description,
			Difficulty:    sc.difficulty,
			DurationHours: sc.durationHours,
			InstructorID:  usersByName[sc.instructor].ID,
		}
		if err := courseRepo.Create(ctx, course); err != nil {
			log.Fatalf("Failed to seed course %s: %v", sc.title, err)
		}
		coursesByTitle[sc.title] = course
	}
	log.Printf("Seeded %d courses.", len(seedCourses))

	log.Println("Seeding enrollments...")
	now := time.Now()
	enrollments := []struct {
		username string
		title    string
		daysAgo  int
	}{
		{"johnsmith", "Full-Stack Dev with Go & React", 60},
		{"johnsmith", "Intro to Python Programming", 30},
		{"johnsmith", "Web Design Basics: HTML & CSS", 15},
		{"bobwhite", "Intro to Python Programming", 45},
		{"bobwhite", "Modern JavaScript Fundamentals", 10},
	}
	for _, se := range enrollments {
		enrollment := &model.Enrollment{
			UserID:         usersByName[se.username].ID,
			CourseID:       coursesByTitle[se.title].ID,
			EnrollmentDate: now.AddDate(0, 0, -se.daysAgo),
		}
		if err := enrollmentRepo.Create(ctx, enrollment); err != nil {
			log.Fatalf("Failed to seed enrollment for %s: %v", se.username, err)
		}
	}
	log.Printf("Seeded %d enrollments.", len(enrollments))

	log.Println("Seeding reviews...")
	reviews := []struct {
		username string
		title    string
		rating   int
		text     string
	}{
		{"johnsmith", "Full-Stack Dev with Go & React", 5, "An absolutely brilliant course, highly recommended for advanced learners to grasp complex topics!"},
		{"johnsmith", "Intro to Python Programming", 4, "Great for beginners, very clear explanations and good examples provided throughout the lessons."},
		{"bobwhite", "Intro to Python Programming", 5, "As a total novice, this Python course was incredibly easy to follow and engaging, I loved it."},
		{"johnsmith", "Web Design Basics: HTML & CSS", 3, "Decent introduction to HTML and CSS, but could use more practical exercises and real-world projects."},
		{"bobwhite", "Modern JavaScript Fundamentals", 4, "Solid coverage of modern JavaScript, helped me understand new features well and apply them instantly."},
	}
	for _, sr := range reviews {
		review := &model.Review{
			UserID:      usersByName[sr.username].ID,
			CourseID:    coursesByTitle[sr.title].ID,
			Rating:      sr.rating,
			TextContent: sr.text,
		}
		if err := reviewRepo.Create(ctx, review); err != nil {
			log.Fatalf("Failed to seed review by %s: %v", sr.username, err)
		}
	}
	log.Printf("Seeded %d reviews.", len(reviews))

	log.Println("Done seeding!")
}
