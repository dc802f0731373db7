package models

import (
	"time"

	"gorm.io/gorm"
)

// Enrollment progress status
const (
	EnrollmentInProgress = "in_progress"
	EnrollmentCompleted  = "completed"
)

// Enrollment links a user to a course with a progress status.
// The unique index on (user_id, course_id) backs the one-enrollment-per-pair
// rule under concurrent requests.
type Enrollment struct {
	gorm.Model
	UserID     uint      `json:"user_id" gorm:"not null;uniqueIndex:idx_user_course"`
	CourseID   uint      `json:"course_id" gorm:"not null;uniqueIndex:idx_user_course"`
	Status     string    `json:"status" gorm:"default:'in_progress'"` // in_progress, completed
	EnrolledAt time.Time `json:"enrolled_at"`
	IsDeleted  bool      `gorm:"default:false"`
}
