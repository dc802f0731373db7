package services

import (
	"errors"
	"time"

	"learnhub/models"
	"learnhub/policy"
	"learnhub/store"
)

// EnrollmentService owns the two enrollment invariants: at most one
// enrollment per (user, course) pair, and enrollment only into published
// courses.
type EnrollmentService struct {
	store store.Store
}

func NewEnrollmentService(s store.Store) *EnrollmentService {
	return &EnrollmentService{store: s}
}

// Enroll creates an enrollment for userID in courseID, or returns the
// existing one unchanged. Calling it twice with the same arguments is safe:
// the second call neither errors nor resets progress.
func (s *EnrollmentService) Enroll(actor *policy.Actor, userID, courseID uint) (*models.Enrollment, error) {
	if d := policy.CanCreateEnrollment(actor, userID); !d.Allowed {
		return nil, fail(KindForbidden, "you can only enroll yourself")
	}

	course, err := s.store.GetCourse(courseID)
	if err != nil {
		return nil, storeFailure(err)
	}
	if course == nil {
		return nil, fail(KindNotFound, "course not found")
	}
	if course.Status != models.CoursePublished {
		return nil, fail(KindCourseNotPublished, "cannot enroll in an unpublished course")
	}

	existing, err := s.store.FindEnrollment(userID, courseID)
	if err != nil {
		return nil, storeFailure(err)
	}
	if existing != nil {
		return existing, nil
	}

	enrollment := &models.Enrollment{
		UserID:     userID,
		CourseID:   courseID,
		Status:     models.EnrollmentInProgress,
		EnrolledAt: time.Now(),
	}
	if err := s.store.InsertEnrollment(enrollment); err != nil {
		// A concurrent request won the insert race; the unique index on
		// (user_id, course_id) rejected ours. Return the winner's row.
		if errors.Is(err, store.ErrDuplicate) {
			existing, ferr := s.store.FindEnrollment(userID, courseID)
			if ferr != nil {
				return nil, storeFailure(ferr)
			}
			if existing != nil {
				return existing, nil
			}
		}
		return nil, storeFailure(err)
	}
	return enrollment, nil
}

// UpdateStatus moves an enrollment between in_progress and completed.
// Transitions are unrestricted in both directions.
func (s *EnrollmentService) UpdateStatus(actor *policy.Actor, enrollmentID uint, newStatus string) (*models.Enrollment, error) {
	if newStatus != models.EnrollmentInProgress && newStatus != models.EnrollmentCompleted {
		return nil, fail(KindInvalidStatus, "status must be in_progress or completed")
	}

	enrollment, err := s.store.GetEnrollment(enrollmentID)
	if err != nil {
		return nil, storeFailure(err)
	}
	if enrollment == nil {
		return nil, fail(KindNotFound, "enrollment not found")
	}

	if d := policy.CanUpdateEnrollmentStatus(actor, enrollment); !d.Allowed {
		return nil, fail(KindForbidden, "you can only update your own enrollments")
	}

	updated, err := s.store.UpdateEnrollmentStatus(enrollmentID, newStatus)
	if err != nil {
		return nil, storeFailure(err)
	}
	if updated == nil {
		return nil, fail(KindNotFound, "enrollment not found")
	}
	return updated, nil
}

// EnrollmentsOf lists a user's enrollments, self-or-admin only.
func (s *EnrollmentService) EnrollmentsOf(actor *policy.Actor, userID uint) ([]models.Enrollment, error) {
	if d := policy.CanViewEnrollmentsOf(actor, userID); !d.Allowed {
		return nil, fail(KindForbidden, "you can only view your own enrollments")
	}
	enrollments, err := s.store.ListEnrollmentsByUser(userID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return enrollments, nil
}

// EnrollmentsForCourse lists a course's enrollments for its instructor or
// an admin.
func (s *EnrollmentService) EnrollmentsForCourse(actor *policy.Actor, courseID uint) ([]models.Enrollment, error) {
	course, err := s.store.GetCourse(courseID)
	if err != nil {
		return nil, storeFailure(err)
	}
	if course == nil {
		return nil, fail(KindNotFound, "course not found")
	}
	if d := policy.CanViewCourseEnrollments(actor, course); !d.Allowed {
		return nil, fail(KindForbidden, "not authorized to view course enrollments")
	}
	enrollments, err := s.store.ListEnrollmentsByCourse(courseID)
	if err != nil {
		return nil, storeFailure(err)
	}
	return enrollments, nil
}
