package userValidator

import (
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

// UserID validates the :id route param and stores it as targetUserID.
func UserID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
		}
		c.Locals("targetUserID", id)
		return c.Next()
	}
}
