package categoryRoutes

import (
	categoryControllers "learnhub/controllers/category"
	"learnhub/middleware"
	categoryValidators "learnhub/validators/category"

	"github.com/gofiber/fiber/v2"
)

func SetupCategoryRoutes(app *fiber.App) {
	categoryGroup := app.Group("/category")

	categoryGroup.Get("/list", categoryControllers.GetAllCategories)
	categoryGroup.Get("/:id", categoryValidators.CategoryID(), categoryControllers.GetCategory)

	adminGroup := app.Group("/admin/category")
	adminGroup.Post("/create", middleware.JWTMiddleware, categoryValidators.CreateCategory(), categoryControllers.AdminCreateCategory)
}
