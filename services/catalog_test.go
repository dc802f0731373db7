package services

import (
	"testing"

	"learnhub/models"
	"learnhub/policy"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestVisibleCourses(t *testing.T) {
	st := testStore(t)
	svc := NewCatalogService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)
	stranger := seedUser(t, st, "emma", models.RoleUser)

	seedCourse(t, st, "Published Course", instructor.ID, models.CoursePublished)
	seedCourse(t, st, "Draft Course", instructor.ID, models.CourseDraft)

	// Admin sees the draft
	asAdmin, err := svc.VisibleCourses(&policy.Actor{ID: admin.ID, Role: admin.Role})
	require.NoError(t, err)
	assert.Len(t, asAdmin, 2)

	// The owning instructor sees their own draft
	asInstructor, err := svc.VisibleCourses(&policy.Actor{ID: instructor.ID, Role: instructor.Role})
	require.NoError(t, err)
	assert.Len(t, asInstructor, 2)

	// A non-owning non-admin user does not
	asStranger, err := svc.VisibleCourses(&policy.Actor{ID: stranger.ID, Role: stranger.Role})
	require.NoError(t, err)
	require.Len(t, asStranger, 1)
	assert.Equal(t, "Published Course", asStranger[0].Title)

	// Neither does an anonymous caller
	asAnon, err := svc.VisibleCourses(nil)
	require.NoError(t, err)
	assert.Len(t, asAnon, 1)
}

func TestEnrollableCoursesHideDraftsFromAdmins(t *testing.T) {
	st := testStore(t)
	svc := NewCatalogService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	admin := seedUser(t, st, "admin", models.RoleAdmin)

	seedCourse(t, st, "Published Course", instructor.ID, models.CoursePublished)
	seedCourse(t, st, "Draft Course", instructor.ID, models.CourseDraft)

	// The public catalog never shows drafts, even to admins or owners.
	for _, actor := range []*policy.Actor{
		nil,
		{ID: admin.ID, Role: admin.Role},
		{ID: instructor.ID, Role: instructor.Role},
	} {
		courses, err := svc.EnrollableCourses(actor)
		require.NoError(t, err)
		require.Len(t, courses, 1)
		assert.Equal(t, "Published Course", courses[0].Title)
	}
}

func TestVisibleCoursesPreservesStoreOrder(t *testing.T) {
	st := testStore(t)
	svc := NewCatalogService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	first := seedCourse(t, st, "First", instructor.ID, models.CoursePublished)
	second := seedCourse(t, st, "Second", instructor.ID, models.CoursePublished)

	stored, err := st.ListCourses()
	require.NoError(t, err)

	visible, err := svc.VisibleCourses(nil)
	require.NoError(t, err)
	require.Len(t, visible, 2)
	assert.Equal(t, stored[0].ID, visible[0].ID)
	assert.Equal(t, stored[1].ID, visible[1].ID)

	ids := []uint{visible[0].ID, visible[1].ID}
	assert.ElementsMatch(t, []uint{first.ID, second.ID}, ids)
}

func TestCourseDetail(t *testing.T) {
	st := testStore(t)
	svc := NewCatalogService(st)

	instructor := seedUser(t, st, "sarah", models.RoleUser)
	stranger := seedUser(t, st, "emma", models.RoleUser)
	draft := seedCourse(t, st, "Draft Course", instructor.ID, models.CourseDraft)

	// Owner gets the draft
	course, err := svc.CourseDetail(&policy.Actor{ID: instructor.ID, Role: instructor.Role}, draft.ID)
	require.NoError(t, err)
	assert.Equal(t, draft.ID, course.ID)

	// Stranger is denied
	_, err = svc.CourseDetail(&policy.Actor{ID: stranger.ID, Role: stranger.Role}, draft.ID)
	require.Error(t, err)
	assert.Equal(t, KindForbidden, KindOf(err))

	// Unknown id is not found
	_, err = svc.CourseDetail(nil, 999)
	require.Error(t, err)
	assert.Equal(t, KindNotFound, KindOf(err))
}
