package courseRoutes

import (
	controllers "learnhub/controllers/course"
	"learnhub/middleware"
	validators "learnhub/validators/course"

	"github.com/gofiber/fiber/v2"
)

// SetupAdminCourseRoutes sets up course management routes
func SetupAdminCourseRoutes(app *fiber.App) {
	courseGroup := app.Group("/course")

	// Course CRUD (policy decides admin vs instructor rights per handler)
	courseGroup.Post("/create", middleware.JWTMiddleware, validators.CreateCourse(), controllers.CreateCourse)
	courseGroup.Patch("/:id", middleware.JWTMiddleware, validators.CourseID(), validators.UpdateCourse(), controllers.UpdateCourse)
	courseGroup.Delete("/:id", middleware.JWTMiddleware, validators.CourseID(), controllers.DeleteCourse)
	courseGroup.Post("/:id/image", middleware.JWTMiddleware, validators.CourseID(), controllers.UploadCourseImage)

	// Admin dashboard listings
	adminGroup := app.Group("/admin")
	adminGroup.Get("/course/list", middleware.JWTMiddleware, validators.CourseList(), controllers.AdminGetAllCourses)
	adminGroup.Get("/enrollments", middleware.JWTMiddleware, controllers.AdminGetAllEnrollments)
}
