package policy

import (
	"testing"

	"learnhub/models"

	"github.com/stretchr/testify/assert"
)

func TestCanViewCourse(t *testing.T) {
	published := &models.Course{Status: models.CoursePublished, InstructorID: 3}
	draft := &models.Course{Status: models.CourseDraft, InstructorID: 3}

	admin := &Actor{ID: 1, Role: models.RoleAdmin}
	instructor := &Actor{ID: 3, Role: models.RoleUser}
	stranger := &Actor{ID: 7, Role: models.RoleUser}

	tests := []struct {
		name    string
		actor   *Actor
		course  *models.Course
		allowed bool
	}{
		{"anonymous sees published", nil, published, true},
		{"anonymous denied draft", nil, draft, false},
		{"stranger sees published", stranger, published, true},
		{"stranger denied draft", stranger, draft, false},
		{"instructor sees own draft", instructor, draft, true},
		{"admin sees draft", admin, draft, true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			d := CanViewCourse(tt.actor, tt.course)
			assert.Equal(t, tt.allowed, d.Allowed)
			if !tt.allowed {
				assert.Equal(t, ReasonNotVisible, d.Reason)
			} else {
				assert.Empty(t, d.Reason)
			}
		})
	}
}

func TestCanModifyCourse(t *testing.T) {
	course := &models.Course{Status: models.CoursePublished, InstructorID: 3}

	assert.True(t, CanModifyCourse(&Actor{ID: 3, Role: models.RoleUser}, course).Allowed)
	assert.True(t, CanModifyCourse(&Actor{ID: 1, Role: models.RoleAdmin}, course).Allowed)

	d := CanModifyCourse(&Actor{ID: 7, Role: models.RoleUser}, course)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonForbidden, d.Reason)

	assert.False(t, CanModifyCourse(nil, course).Allowed)
}

func TestCanCreateAndDeleteCourse(t *testing.T) {
	admin := &Actor{ID: 1, Role: models.RoleAdmin}
	user := &Actor{ID: 2, Role: models.RoleUser}

	assert.True(t, CanCreateCourse(admin).Allowed)
	assert.False(t, CanCreateCourse(user).Allowed)
	assert.False(t, CanCreateCourse(nil).Allowed)

	assert.True(t, CanDeleteCourse(admin).Allowed)
	assert.False(t, CanDeleteCourse(user).Allowed)
	assert.False(t, CanDeleteCourse(nil).Allowed)
}

func TestCanViewUserRecord(t *testing.T) {
	assert.True(t, CanViewUserRecord(&Actor{ID: 5, Role: models.RoleUser}, 5).Allowed)
	assert.True(t, CanViewUserRecord(&Actor{ID: 1, Role: models.RoleAdmin}, 5).Allowed)
	assert.False(t, CanViewUserRecord(&Actor{ID: 6, Role: models.RoleUser}, 5).Allowed)
	assert.False(t, CanViewUserRecord(nil, 5).Allowed)

	// Enrollments-of shares the same rule
	assert.True(t, CanViewEnrollmentsOf(&Actor{ID: 5, Role: models.RoleUser}, 5).Allowed)
	assert.False(t, CanViewEnrollmentsOf(&Actor{ID: 6, Role: models.RoleUser}, 5).Allowed)
}

func TestCanViewCourseEnrollments(t *testing.T) {
	course := &models.Course{InstructorID: 3}

	assert.True(t, CanViewCourseEnrollments(&Actor{ID: 3, Role: models.RoleUser}, course).Allowed)
	assert.True(t, CanViewCourseEnrollments(&Actor{ID: 1, Role: models.RoleAdmin}, course).Allowed)
	assert.False(t, CanViewCourseEnrollments(&Actor{ID: 8, Role: models.RoleUser}, course).Allowed)
}

func TestCanCreateEnrollment(t *testing.T) {
	assert.True(t, CanCreateEnrollment(&Actor{ID: 5, Role: models.RoleUser}, 5).Allowed)
	assert.True(t, CanCreateEnrollment(&Actor{ID: 1, Role: models.RoleAdmin}, 5).Allowed)

	d := CanCreateEnrollment(&Actor{ID: 5, Role: models.RoleUser}, 6)
	assert.False(t, d.Allowed)
	assert.Equal(t, ReasonForbidden, d.Reason)

	assert.False(t, CanCreateEnrollment(nil, 5).Allowed)
}

func TestCanUpdateEnrollmentStatus(t *testing.T) {
	enrollment := &models.Enrollment{UserID: 5}

	assert.True(t, CanUpdateEnrollmentStatus(&Actor{ID: 5, Role: models.RoleUser}, enrollment).Allowed)
	assert.True(t, CanUpdateEnrollmentStatus(&Actor{ID: 1, Role: models.RoleAdmin}, enrollment).Allowed)
	assert.False(t, CanUpdateEnrollmentStatus(&Actor{ID: 6, Role: models.RoleUser}, enrollment).Allowed)
	assert.False(t, CanUpdateEnrollmentStatus(nil, enrollment).Allowed)
}

func TestAdminOnlyListings(t *testing.T) {
	admin := &Actor{ID: 1, Role: models.RoleAdmin}
	user := &Actor{ID: 2, Role: models.RoleUser}

	assert.True(t, CanListUsers(admin).Allowed)
	assert.False(t, CanListUsers(user).Allowed)
	assert.True(t, CanListAllEnrollments(admin).Allowed)
	assert.False(t, CanListAllEnrollments(user).Allowed)
	assert.True(t, CanCreateCategory(admin).Allowed)
	assert.False(t, CanCreateCategory(user).Allowed)
}
