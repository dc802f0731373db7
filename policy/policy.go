// Package policy holds every authorization rule of the application in one
// place. All functions are pure: they look only at the actor and the target
// record, never at the database or the request.
package policy

import "learnhub/models"

// Actor is the authenticated caller. A nil *Actor means anonymous.
type Actor struct {
	ID   uint
	Role string
}

// Stable denial reasons, surfaced in responses and logs.
const (
	ReasonNotVisible = "not_visible"
	ReasonForbidden  = "forbidden"
)

// Decision is the outcome of a policy check. Reason is empty when allowed.
type Decision struct {
	Allowed bool
	Reason  string
}

func allow() Decision { return Decision{Allowed: true} }

func deny(reason string) Decision { return Decision{Reason: reason} }

func (a *Actor) isAdmin() bool { return a != nil && a.Role == models.RoleAdmin }

func (a *Actor) is(userID uint) bool { return a != nil && a.ID == userID }

// CanViewCourse allows published courses for everyone, and drafts only for
// admins and the owning instructor.
func CanViewCourse(actor *Actor, course *models.Course) Decision {
	if course.Status == models.CoursePublished {
		return allow()
	}
	if actor.isAdmin() || actor.is(course.InstructorID) {
		return allow()
	}
	return deny(ReasonNotVisible)
}

// CanModifyCourse allows the owning instructor and admins.
func CanModifyCourse(actor *Actor, course *models.Course) Decision {
	if actor.isAdmin() || actor.is(course.InstructorID) {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanCreateCourse is admin-only.
func CanCreateCourse(actor *Actor) Decision {
	if actor.isAdmin() {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanCreateCategory is admin-only.
func CanCreateCategory(actor *Actor) Decision {
	if actor.isAdmin() {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanDeleteCourse is admin-only.
func CanDeleteCourse(actor *Actor) Decision {
	if actor.isAdmin() {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanListUsers is admin-only: only the user directory page needs it.
func CanListUsers(actor *Actor) Decision {
	if actor.isAdmin() {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanListAllEnrollments is admin-only, for the enrollments dashboard.
func CanListAllEnrollments(actor *Actor) Decision {
	if actor.isAdmin() {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanViewUserRecord allows users to see themselves, admins to see anyone.
func CanViewUserRecord(actor *Actor, targetUserID uint) Decision {
	if actor.isAdmin() || actor.is(targetUserID) {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanViewEnrollmentsOf follows the same self-or-admin rule as user records.
func CanViewEnrollmentsOf(actor *Actor, userID uint) Decision {
	return CanViewUserRecord(actor, userID)
}

// CanViewCourseEnrollments allows the course instructor and admins.
func CanViewCourseEnrollments(actor *Actor, course *models.Course) Decision {
	if actor.isAdmin() || actor.is(course.InstructorID) {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanCreateEnrollment lets users enroll themselves; admins may enroll anyone.
func CanCreateEnrollment(actor *Actor, requestedUserID uint) Decision {
	if actor.isAdmin() || actor.is(requestedUserID) {
		return allow()
	}
	return deny(ReasonForbidden)
}

// CanUpdateEnrollmentStatus allows the enrolled user and admins.
func CanUpdateEnrollmentStatus(actor *Actor, enrollment *models.Enrollment) Decision {
	if actor.isAdmin() || actor.is(enrollment.UserID) {
		return allow()
	}
	return deny(ReasonForbidden)
}
