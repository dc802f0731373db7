package services

import (
	"learnhub/models"
	"learnhub/policy"
	"learnhub/store"
)

// CatalogService answers "which courses may this actor see". Results are
// recomputed on every call and preserve the store's newest-first order.
type CatalogService struct {
	store store.Store
}

func NewCatalogService(s store.Store) *CatalogService {
	return &CatalogService{store: s}
}

// VisibleCourses returns every course the actor may view: all published
// courses, plus drafts the actor owns or administers. Used by dashboards.
func (s *CatalogService) VisibleCourses(actor *policy.Actor) ([]models.Course, error) {
	courses, err := s.store.ListCourses()
	if err != nil {
		return nil, storeFailure(err)
	}
	visible := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if policy.CanViewCourse(actor, &c).Allowed {
			visible = append(visible, c)
		}
	}
	return visible, nil
}

// EnrollableCourses returns published courses only, regardless of who is
// asking. The public catalog must use this instead of VisibleCourses so
// admin sessions never leak drafts into the browsing page.
func (s *CatalogService) EnrollableCourses(actor *policy.Actor) ([]models.Course, error) {
	courses, err := s.store.ListCourses()
	if err != nil {
		return nil, storeFailure(err)
	}
	published := make([]models.Course, 0, len(courses))
	for _, c := range courses {
		if c.Status != models.CoursePublished {
			continue
		}
		if policy.CanViewCourse(actor, &c).Allowed {
			published = append(published, c)
		}
	}
	return published, nil
}

// CourseDetail returns a single course if the actor may view it.
func (s *CatalogService) CourseDetail(actor *policy.Actor, courseID uint) (*models.Course, error) {
	course, err := s.store.GetCourse(courseID)
	if err != nil {
		return nil, storeFailure(err)
	}
	if course == nil {
		return nil, fail(KindNotFound, "course not found")
	}
	if d := policy.CanViewCourse(actor, course); !d.Allowed {
		return nil, fail(KindForbidden, d.Reason)
	}
	return course, nil
}
