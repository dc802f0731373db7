package services

import (
	"testing"

	"learnhub/models"
	"learnhub/policy"
	"learnhub/store"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEnrollCreatesEnrollment(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	course := seedCourse(t, st, "Web Development Fundamentals", instructor.ID, models.CoursePublished)

	actor := &policy.Actor{ID: learner.ID, Role: learner.Role}
	enrollment, err := svc.Enroll(actor, learner.ID, course.ID)
	require.NoError(t, err)

	assert.Equal(t, learner.ID, enrollment.UserID)
	assert.Equal(t, course.ID, enrollment.CourseID)
	assert.Equal(t, models.EnrollmentInProgress, enrollment.Status)
	assert.False(t, enrollment.EnrolledAt.IsZero())
}

func TestEnrollIsIdempotent(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	course := seedCourse(t, st, "JavaScript Masterclass", instructor.ID, models.CoursePublished)

	actor := &policy.Actor{ID: learner.ID, Role: learner.Role}
	first, err := svc.Enroll(actor, learner.ID, course.ID)
	require.NoError(t, err)

	// Mark it completed, then enroll again: the existing record must come
	// back untouched, not reset to in_progress.
	_, err = svc.UpdateStatus(actor, first.ID, models.EnrollmentCompleted)
	require.NoError(t, err)

	second, err := svc.Enroll(actor, learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, first.ID, second.ID)
	assert.Equal(t, models.EnrollmentCompleted, second.Status)

	all, err := st.ListEnrollmentsByUser(learner.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestEnrollRejectsDraftCourse(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)
	draft := seedCourse(t, st, "React for Beginners", instructor.ID, models.CourseDraft)

	// Draft courses reject enrollment for everyone, admins included.
	for _, actor := range []*policy.Actor{
		{ID: instructor.ID, Role: instructor.Role},
		{ID: admin.ID, Role: admin.Role},
	} {
		_, err := svc.Enroll(actor, actor.ID, draft.ID)
		require.Error(t, err)
		assert.Equal(t, KindCourseNotPublished, KindOf(err))
	}
}

func TestEnrollForbiddenForOtherUsers(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	other := seedUser(t, st, "emma", models.RoleUser)
	course := seedCourse(t, st, "Design Basics", instructor.ID, models.CoursePublished)

	actor := &policy.Actor{ID: other.ID, Role: other.Role}
	_, err := svc.Enroll(actor, learner.ID, course.ID)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestAdminCanEnrollOthers(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)
	course := seedCourse(t, st, "Marketing 101", instructor.ID, models.CoursePublished)

	actor := &policy.Actor{ID: admin.ID, Role: admin.Role}
	enrollment, err := svc.Enroll(actor, learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, learner.ID, enrollment.UserID)
}

func TestEnrollMissingCourse(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	learner := seedUser(t, st, "mark", models.RoleUser)
	actor := &policy.Actor{ID: learner.ID, Role: learner.Role}

	_, err := svc.Enroll(actor, learner.ID, 999)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestUpdateStatusWhitelist(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	course := seedCourse(t, st, "Data Science Intro", instructor.ID, models.CoursePublished)
	enrollment := seedEnrollment(t, st, learner.ID, course.ID, models.EnrollmentInProgress)

	actor := &policy.Actor{ID: learner.ID, Role: learner.Role}

	_, err := svc.UpdateStatus(actor, enrollment.ID, "archived")
	require.Error(t, err)
	assert.Equal(t, KindInvalidStatus, KindOf(err))

	updated, err := svc.UpdateStatus(actor, enrollment.ID, models.EnrollmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, updated.Status)

	// Transitions are unrestricted: completed can go back to in_progress.
	reverted, err := svc.UpdateStatus(actor, enrollment.ID, models.EnrollmentInProgress)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentInProgress, reverted.Status)
}

func TestUpdateStatusAuthorization(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	other := seedUser(t, st, "emma", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)
	course := seedCourse(t, st, "React Patterns", instructor.ID, models.CoursePublished)
	enrollment := seedEnrollment(t, st, learner.ID, course.ID, models.EnrollmentInProgress)

	_, err := svc.UpdateStatus(&policy.Actor{ID: other.ID, Role: other.Role}, enrollment.ID, models.EnrollmentCompleted)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))

	updated, err := svc.UpdateStatus(&policy.Actor{ID: admin.ID, Role: admin.Role}, enrollment.ID, models.EnrollmentCompleted)
	require.NoError(t, err)
	assert.Equal(t, models.EnrollmentCompleted, updated.Status)
}

func TestUpdateStatusMissingEnrollment(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	learner := seedUser(t, st, "mark", models.RoleUser)
	actor := &policy.Actor{ID: learner.ID, Role: learner.Role}

	_, err := svc.UpdateStatus(actor, 42, models.EnrollmentCompleted)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

func TestEnrollmentsOf(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	other := seedUser(t, st, "emma", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)
	course := seedCourse(t, st, "CSS Deep Dive", instructor.ID, models.CoursePublished)
	seedEnrollment(t, st, learner.ID, course.ID, models.EnrollmentInProgress)

	own, err := svc.EnrollmentsOf(&policy.Actor{ID: learner.ID, Role: learner.Role}, learner.ID)
	require.NoError(t, err)
	assert.Len(t, own, 1)

	asAdmin, err := svc.EnrollmentsOf(&policy.Actor{ID: admin.ID, Role: admin.Role}, learner.ID)
	require.NoError(t, err)
	assert.Len(t, asAdmin, 1)

	_, err = svc.EnrollmentsOf(&policy.Actor{ID: other.ID, Role: other.Role}, learner.ID)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))
}

func TestEnrollmentsForCourse(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	stranger := seedUser(t, st, "emma", models.RoleUser)
	course := seedCourse(t, st, "Node Fundamentals", instructor.ID, models.CoursePublished)
	seedEnrollment(t, st, learner.ID, course.ID, models.EnrollmentInProgress)

	enrollments, err := svc.EnrollmentsForCourse(&policy.Actor{ID: instructor.ID, Role: instructor.Role}, course.ID)
	require.NoError(t, err)
	assert.Len(t, enrollments, 1)

	_, err = svc.EnrollmentsForCourse(&policy.Actor{ID: stranger.ID, Role: stranger.Role}, course.ID)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))

	_, err = svc.EnrollmentsForCourse(&policy.Actor{ID: instructor.ID, Role: instructor.Role}, 999)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}

// racingStore hides an existing enrollment from the first FindEnrollment
// call, recreating the window where a concurrent request inserts between
// the service's find and its insert.
type racingStore struct {
	store.Store
	missedFinds int
}

func (r *racingStore) FindEnrollment(userID, courseID uint) (*models.Enrollment, error) {
	if r.missedFinds > 0 {
		r.missedFinds--
		return nil, nil
	}
	return r.Store.FindEnrollment(userID, courseID)
}

func TestEnrollSurvivesInsertRace(t *testing.T) {
	st := testStore(t)
	svc := NewEnrollmentService(&racingStore{Store: st, missedFinds: 1})

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	learner := seedUser(t, st, "mark", models.RoleUser)
	course := seedCourse(t, st, "Go Basics", instructor.ID, models.CoursePublished)
	existing := seedEnrollment(t, st, learner.ID, course.ID, models.EnrollmentInProgress)

	// The service misses the existing row, its insert hits the unique
	// index, and it must recover by returning the winner's row.
	actor := &policy.Actor{ID: learner.ID, Role: learner.Role}
	enrollment, err := svc.Enroll(actor, learner.ID, course.ID)
	require.NoError(t, err)
	assert.Equal(t, existing.ID, enrollment.ID)

	all, err := st.ListEnrollmentsByUser(learner.ID)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}
