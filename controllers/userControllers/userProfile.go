package userControllers

import (
	"learnhub/middleware"
	"learnhub/policy"
	"learnhub/services"

	"github.com/gofiber/fiber/v2"
)

// GetProfile returns the logged-in user's own record.
func GetProfile(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if actor == nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	user, err := services.Entities().GetUser(actor.ID)
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile fetched successfully!", user)
}

// GetUser returns a user record by id. Self-or-admin.
func GetUser(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	userID, ok := c.Locals("targetUserID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid user id!", nil)
	}

	if d := policy.CanViewUserRecord(actor, uint(userID)); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Not authorized to view this user!", nil)
	}

	user, err := services.Entities().GetUser(uint(userID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if user == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "User not found!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "User fetched successfully!", user)
}

// AdminListUsers lists every user. Admin only.
func AdminListUsers(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if d := policy.CanListUsers(actor); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	users, err := services.Entities().ListUsers()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": users,
	})
}
