package store

import (
	"testing"
	"time"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestStore(t *testing.T) *GormStore {
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

	return NewGormStore(db)
}

func TestLookupsReturnNilForMissingRecords(t *testing.T) {
	s := newTestStore(t)

	user, err := s.GetUser(1)
	require.NoError(t, err)
	assert.Nil(t, user)

	course, err := s.GetCourse(1)
	require.NoError(t, err)
	assert.Nil(t, course)

	category, err := s.GetCategory(1)
	require.NoError(t, err)
	assert.Nil(t, category)

	enrollment, err := s.FindEnrollment(1, 1)
	require.NoError(t, err)
	assert.Nil(t, enrollment)
}

func TestDuplicateUserIsReported(t *testing.T) {
	s := newTestStore(t)

	require.NoError(t, s.CreateUser(&models.User{Username: "sarah", Email: "sarah@example.com", Password: "x"}))

	err := s.CreateUser(&models.User{Username: "sarah", Email: "other@example.com", Password: "x"})
	assert.ErrorIs(t, err, ErrDuplicate)
}

func TestDuplicateEnrollmentIsReported(t *testing.T) {
	s := newTestStore(t)

	first := &models.Enrollment{UserID: 1, CourseID: 2, Status: models.EnrollmentInProgress, EnrolledAt: time.Now()}
	require.NoError(t, s.InsertEnrollment(first))

	second := &models.Enrollment{UserID: 1, CourseID: 2, Status: models.EnrollmentInProgress, EnrolledAt: time.Now()}
	assert.ErrorIs(t, s.InsertEnrollment(second), ErrDuplicate)

	// A different pair is fine
	third := &models.Enrollment{UserID: 1, CourseID: 3, Status: models.EnrollmentInProgress, EnrolledAt: time.Now()}
	assert.NoError(t, s.InsertEnrollment(third))
}

func TestDeleteCourseIsSoft(t *testing.T) {
	s := newTestStore(t)

	course := &models.Course{Title: "Doomed", Description: "To be deleted", InstructorID: 1, Status: models.CoursePublished}
	require.NoError(t, s.InsertCourse(course))
	require.NoError(t, s.DeleteCourse(course.ID))

	fetched, err := s.GetCourse(course.ID)
	require.NoError(t, err)
	assert.Nil(t, fetched)

	courses, err := s.ListCourses()
	require.NoError(t, err)
	assert.Empty(t, courses)
}

func TestListCoursesNewestFirst(t *testing.T) {
	s := newTestStore(t)

	older := &models.Course{Title: "Older", Description: "first in", InstructorID: 1, Status: models.CoursePublished}
	require.NoError(t, s.InsertCourse(older))

	newer := &models.Course{Title: "Newer", Description: "second in", InstructorID: 1, Status: models.CoursePublished}
	newer.CreatedAt = older.CreatedAt.Add(time.Minute)
	require.NoError(t, s.InsertCourse(newer))

	courses, err := s.ListCourses()
	require.NoError(t, err)
	require.Len(t, courses, 2)
	assert.Equal(t, "Newer", courses[0].Title)
	assert.Equal(t, "Older", courses[1].Title)
}

func TestUpdateEnrollmentStatus(t *testing.T) {
	s := newTestStore(t)

	enrollment := &models.Enrollment{UserID: 1, CourseID: 1, Status: models.EnrollmentInProgress, EnrolledAt: time.Now()}
	require.NoError(t, s.InsertEnrollment(enrollment))

	updated, err := s.UpdateEnrollmentStatus(enrollment.ID, models.EnrollmentCompleted)
	require.NoError(t, err)
	require.NotNil(t, updated)
	assert.Equal(t, models.EnrollmentCompleted, updated.Status)

	missing, err := s.UpdateEnrollmentStatus(999, models.EnrollmentCompleted)
	require.NoError(t, err)
	assert.Nil(t, missing)
}
