package controllers

import (
	"log"

	"learnhub/middleware"
	"learnhub/policy"
	"learnhub/services"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// EnrollInCourse enrolls a user into a course. Users enroll themselves;
// admins may enroll anyone by passing user_id. Enrolling twice returns the
// existing enrollment unchanged.
func EnrollInCourse(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	userID := actor.ID
	if reqData, ok := c.Locals("validatedEnroll").(*struct {
		UserID *uint `json:"user_id"`
	}); ok && reqData.UserID != nil {
		userID = *reqData.UserID
	}

	enrollment, err := services.Enrollments().Enroll(actor, userID, uint(courseID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	// Confirmation email is best-effort; enrollment already succeeded.
	go func(userID, courseID uint) {
		user, err := services.Entities().GetUser(userID)
		if err != nil || user == nil {
			return
		}
		course, err := services.Entities().GetCourse(courseID)
		if err != nil || course == nil {
			return
		}
		if err := utils.SendEnrollmentEmail(user.Email, user.Username, course.Title); err != nil {
			log.Printf("Failed to send enrollment email to %s: %v", user.Email, err)
		}
	}(enrollment.UserID, enrollment.CourseID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrolled in course successfully!", enrollment)
}

// GetMyEnrollments lists the actor's own enrollments.
func GetMyEnrollments(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	enrollments, err := services.Enrollments().EnrollmentsOf(actor, actor.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// GetUserEnrollments lists another user's enrollments. Self-or-admin.
func GetUserEnrollments(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	userID, ok := c.Locals("targetUserID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	enrollments, err := services.Enrollments().EnrollmentsOf(actor, uint(userID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// GetCourseEnrollments lists everyone enrolled in a course. Instructor-or-admin.
func GetCourseEnrollments(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	courseID, ok := c.Locals("courseID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
	}

	enrollments, err := services.Enrollments().EnrollmentsForCourse(actor, uint(courseID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// AdminGetAllEnrollments lists every enrollment in the system. Admin only.
func AdminGetAllEnrollments(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if d := policy.CanListAllEnrollments(actor); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	enrollments, err := services.Entities().ListEnrollments()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollments fetched successfully!", fiber.Map{
		"enrollments": enrollments,
	})
}

// UpdateEnrollmentStatus moves an enrollment between in_progress and
// completed. Owner-or-admin.
func UpdateEnrollmentStatus(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	enrollmentID, ok := c.Locals("enrollmentID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
	}

	reqData, ok := c.Locals("validatedEnrollmentStatus").(*struct {
		Status string `json:"status" validate:"required"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	enrollment, err := services.Enrollments().UpdateStatus(actor, uint(enrollmentID), reqData.Status)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Enrollment updated successfully!", enrollment)
}
