package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"
	userValidator "learnhub/validators/user"

	"github.com/gofiber/fiber/v2"
)

// SetupCourseRoutes sets up all user-facing course and enrollment routes
func SetupCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Public catalog: anonymous users see published courses; a bearer token
	// is honored but not required.
	courseGroup.Get("/list", middleware.OptionalJWTMiddleware, validators.CourseList(), controllers.GetAllCourses)
	courseGroup.Get("/mine", middleware.JWTMiddleware, controllers.GetMyCourses)
	courseGroup.Get("/:id", middleware.OptionalJWTMiddleware, validators.CourseID(), controllers.GetCourseDetails)

	// Enrollment
	courseGroup.Post("/:id/enroll", middleware.JWTMiddleware, validators.CourseID(), validators.EnrollCourse(), controllers.EnrollInCourse)
	courseGroup.Get("/:id/enrollments", middleware.JWTMiddleware, validators.CourseID(), controllers.GetCourseEnrollments)

	// User enrollments
	userGroup := app.Group("/user")
	userGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.GetMyEnrollments)
	userGroup.Get("/:id/enrollments", middleware.JWTMiddleware, userValidator.UserID(), controllers.GetUserEnrollments)

	// Enrollment progress
	enrollmentGroup := app.Group("/enrollment")
	enrollmentGroup.Patch("/:id/status", middleware.JWTMiddleware, validators.EnrollmentID(), validators.EnrollmentStatus(), controllers.UpdateEnrollmentStatus)
}
