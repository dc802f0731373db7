package authRoutes

import (
	authControllers "learnhub/controllers/auth"
	"learnhub/middleware"
	authValidators "learnhub/validators/auth"

	"github.com/gofiber/fiber/v2"
)

func SetupAuthRoutes(app *fiber.App) {
	authGroup := app.Group("/auth")

	authGroup.Post("/signup", authValidators.Signup(), authControllers.Signup)
	authGroup.Post("/login", authValidators.Login(), authControllers.Login)
	authGroup.Put("/change/password", authValidators.ChangePassword(), middleware.JWTMiddleware, authControllers.ChangeLoginPassword)
}
