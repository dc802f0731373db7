package controllers

import (
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
)

// GetAllCourses is the public catalog: published courses only, no matter who
// is asking. Supports optional category filter and pagination.
func GetAllCourses(c *fiber.Ctx) error {
	actor := middleware.Actor(c)

	courses, err := services.Catalog().EnrollableCourses(actor)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	// Optional category filter
	if categoryID, ok := c.Locals("categoryID").(int); ok && categoryID > 0 {
		filtered := make([]models.Course, 0, len(courses))
		for _, course := range courses {
			if course.CategoryID != nil && *course.CategoryID == uint(categoryID) {
				filtered = append(filtered, course)
			}
		}
		courses = filtered
	}

	reqData, ok := c.Locals("validatedList").(*struct {
		Page  *int `json:"page"`
		Limit *int `json:"limit"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
			"courses": courses,
		})
	}

	page := 1
	limit := 10
	if reqData.Page != nil && *reqData.Page > 0 {
		page = *reqData.Page
	}
	if reqData.Limit != nil && *reqData.Limit > 0 {
		limit = *reqData.Limit
	}
	total := len(courses)
	offset := (page - 1) * limit
	if offset > total {
		offset = total
	}
	end := offset + limit
	if end > total {
		end = total
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": courses[offset:end],
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetCourseDetails returns one course, subject to the visibility rules:
// drafts are only served to admins and the owning instructor.
func GetCourseDetails(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	course, err := services.Catalog().CourseDetail(actor, uint(courseID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	// Tell the caller whether they are already enrolled
	isEnrolled := false
	if actor != nil {
		enrollment, err := services.Entities().FindEnrollment(actor.ID, course.ID)
		if err != nil {
			return middleware.ServiceErrorResponse(c, err)
		}
		isEnrolled = enrollment != nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Course fetched successfully!", fiber.Map{
		"course":      course,
		"is_enrolled": isEnrolled,
	})
}

// GetMyCourses lists the courses the actor teaches, drafts included.
func GetMyCourses(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	visible, err := services.Catalog().VisibleCourses(actor)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	mine := make([]models.Course, 0)
	for _, course := range visible {
		if course.InstructorID == actor.ID {
			mine = append(mine, course)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Courses fetched successfully!", fiber.Map{
		"courses": mine,
	})
}
