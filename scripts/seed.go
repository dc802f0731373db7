package main

import (
	"log"
	"time"

	"learnhub/config"
	"learnhub/database"
	"learnhub/models"

	"golang.org/x/crypto/bcrypt"
)

// Seeds the database with demo categories, users and courses.
// Run with: go run ./scripts
func main() {
	config.LoadConfig()
	database.ConnectDb()
	db := database.Database.Db

	var userCount int64
	if err := db.Model(&models.User{}).Count(&userCount).Error; err != nil {
		log.Fatalf("Failed to check existing data: %v", err)
	}
	if userCount > 0 {
		log.Println("Data already exists, skipping seed")
		return
	}

	log.Println("Creating categories...")
	categories := []models.Category{
		{Name: "Web Development", Description: "Learn how to build modern web applications"},
		{Name: "JavaScript", Description: "Master JavaScript programming language and frameworks"},
		{Name: "React", Description: "Build user interfaces with React"},
		{Name: "Data Science", Description: "Learn data analysis and machine learning"},
		{Name: "Design", Description: "Master UI/UX and graphic design principles"},
		{Name: "Marketing", Description: "Digital marketing strategies and techniques"},
	}
	for i := range categories {
		if err := db.Create(&categories[i]).Error; err != nil {
			log.Fatalf("Failed to create category %s: %v", categories[i].Name, err)
		}
	}

	log.Println("Creating users...")
	adminPassword := mustHash("admin123")
	userPassword := mustHash("user123")

	admin := models.User{
		Username:  "admin",
		Email:     "admin@learnhub.dev",
		Password:  adminPassword,
		FirstName: "Admin",
		LastName:  "User",
		Role:      models.RoleAdmin,
	}
	sarah := models.User{
		Username:  "sarahjohnson",
		Email:     "sarah@example.com",
		Password:  userPassword,
		FirstName: "Sarah",
		LastName:  "Johnson",
		Role:      models.RoleUser,
	}
	mark := models.User{
		Username:  "markwilson",
		Email:     "mark@example.com",
		Password:  userPassword,
		FirstName: "Mark",
		LastName:  "Wilson",
		Role:      models.RoleUser,
	}
	for _, u := range []*models.User{&admin, &sarah, &mark} {
		if err := db.Create(u).Error; err != nil {
			log.Fatalf("Failed to create user %s: %v", u.Username, err)
		}
	}

	log.Println("Creating courses...")
	webDevID := categories[0].ID
	jsID := categories[1].ID

	courses := []models.Course{
		{
			Title:        "Web Development Fundamentals",
			Description:  "Learn the basics of HTML, CSS, and JavaScript to build your first website.",
			Image:        "https://images.unsplash.com/photo-1587620962725-abab7fe55159?auto=format&fit=crop&w=800&q=80",
			Price:        "0",
			InstructorID: sarah.ID,
			CategoryID:   &webDevID,
			Status:       models.CoursePublished,
			Content:      "# Web Development Fundamentals\n\nIn this course, you'll learn the essential skills needed to build your very first website:\n\n- HTML (Structure)\n- CSS (Style)\n- JavaScript (Interactivity)\n\n## Final Project\n\nBuild a personal portfolio website with a home page, a projects page and a contact form.",
		},
		{
			Title:        "JavaScript Masterclass",
			Description:  "Advanced JavaScript concepts including ES6+, async/await, and modern frameworks.",
			Image:        "https://images.unsplash.com/photo-1555949963-ff9fe0c870eb?auto=format&fit=crop&w=800&q=80",
			Price:        "49.99",
			InstructorID: sarah.ID,
			CategoryID:   &jsID,
			Status:       models.CoursePublished,
			Content:      "# JavaScript Masterclass\n\nGo beyond the basics: closures, prototypes, async/await, modules and tooling.",
		},
		{
			Title:        "React for Beginners",
			Description:  "Component-based UI development with React, from JSX to hooks.",
			Price:        "29.99",
			InstructorID: admin.ID,
			Status:       models.CourseDraft,
			Content:      "# React for Beginners\n\nDraft outline: components, props, state, hooks.",
		},
	}
	for i := range courses {
		if err := db.Create(&courses[i]).Error; err != nil {
			log.Fatalf("Failed to create course %s: %v", courses[i].Title, err)
		}
	}

	log.Println("Creating enrollments...")
	enrollment := models.Enrollment{
		UserID:     mark.ID,
		CourseID:   courses[0].ID,
		Status:     models.EnrollmentInProgress,
		EnrolledAt: time.Now(),
	}
	if err := db.Create(&enrollment).Error; err != nil {
		log.Fatalf("Failed to create enrollment: %v", err)
	}

	log.Println("Seed completed successfully.")
}

func mustHash(password string) string {
	hashed, err := bcrypt.GenerateFromPassword([]byte(password), config.AppConfig.SaltRound)
	if err != nil {
		log.Fatalf("Failed to hash password: %v", err)
	}
	return string(hashed)
}
