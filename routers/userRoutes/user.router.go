package userRoutes

import (
	userControllers "learnhub/controllers/userControllers"
	"learnhub/middleware"
	userValidator "learnhub/validators/user"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Get("/profile", middleware.JWTMiddleware, userControllers.GetProfile)
	userGroup.Get("/:id", middleware.JWTMiddleware, userValidator.UserID(), userControllers.GetUser)

	adminGroup := app.Group("/admin/user")
	adminGroup.Get("/list", middleware.JWTMiddleware, userControllers.AdminListUsers)
}
