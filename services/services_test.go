package services

import (
	"testing"
	"time"

	"learnhub/models"
	"learnhub/store"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func testStore(t *testing.T) store.Store {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		TranslateError: true,
		Logger:         logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)

	require.NoError(t, db.AutoMigrate(
		&models.User{},
		&models.Category{},
		&models.Course{},
		&models.Enrollment{},
	))

	return store.NewGormStore(db)
}

func seedUser(t *testing.T, s store.Store, username, role string) *models.User {
	t.Helper()
	user := &models.User{
		Username: username,
		Email:    username + "@example.com",
		Password: "hashed",
		Role:     role,
	}
	require.NoError(t, s.CreateUser(user))
	return user
}

func seedCourse(t *testing.T, s store.Store, title string, instructorID uint, status string) *models.Course {
	t.Helper()
	course := &models.Course{
		Title:        title,
		Description:  "A course used in tests",
		Price:        "0",
		InstructorID: instructorID,
		Status:       status,
	}
	require.NoError(t, s.InsertCourse(course))
	return course
}

func seedEnrollment(t *testing.T, s store.Store, userID, courseID uint, status string) *models.Enrollment {
	t.Helper()
	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     status,
		EnrolledAt: time.Now(),
	}
	require.NoError(t, s.InsertEnrollment(enrollment))
	return enrollment
}
