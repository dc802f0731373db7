// Package store is the persistence boundary of the application. Lookups
// return (nil, nil) when the record does not exist; a non-nil error always
// means the store itself failed.
package store

import (
	"errors"

	"learnhub/models"
)

// ErrDuplicate is returned by insert methods when a uniqueness constraint
// is violated, so callers can distinguish conflicts from outages.
var ErrDuplicate = errors.New("store: duplicate record")

type Store interface {
	// Users
	GetUser(id uint) (*models.User, error)
	GetUserByUsername(username string) (*models.User, error)
	GetUserByEmail(email string) (*models.User, error)
	CreateUser(user *models.User) error
	UpdateUser(user *models.User) error
	ListUsers() ([]models.User, error)

	// Courses
	GetCourse(id uint) (*models.Course, error)
	ListCourses() ([]models.Course, error)
	InsertCourse(course *models.Course) error
	UpdateCourse(course *models.Course) error
	DeleteCourse(id uint) error

	// Categories
	GetCategory(id uint) (*models.Category, error)
	ListCategories() ([]models.Category, error)
	InsertCategory(category *models.Category) error

	// Enrollments
	GetEnrollment(id uint) (*models.Enrollment, error)
	ListEnrollments() ([]models.Enrollment, error)
	ListEnrollmentsByUser(userID uint) ([]models.Enrollment, error)
	ListEnrollmentsByCourse(courseID uint) ([]models.Enrollment, error)
	FindEnrollment(userID, courseID uint) (*models.Enrollment, error)
	InsertEnrollment(enrollment *models.Enrollment) error
	UpdateEnrollmentStatus(id uint, status string) (*models.Enrollment, error)
}
