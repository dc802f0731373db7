package categoryController

import (
	"errors"

	"learnhub/middleware"
	"learnhub/models"
	"learnhub/policy"
	"learnhub/services"
	"learnhub/store"

	"github.com/gofiber/fiber/v2"
)

// GetAllCategories lists every category. Public.
func GetAllCategories(c *fiber.Ctx) error {
	categories, err := services.Entities().ListCategories()
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Categories fetched successfully!", fiber.Map{
		"categories": categories,
	})
}

// GetCategory fetches a single category by id. Public.
func GetCategory(c *fiber.Ctx) error {
	categoryID, ok := c.Locals("categoryID").(int)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
	}

	category, err := services.Entities().GetCategory(uint(categoryID))
	if err != nil {
		return middleware.ServiceErrorResponse(c, err)
	}
	if category == nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Category not found!", nil)
	}
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Category fetched successfully!", category)
}

// AdminCreateCategory creates a category. Admin only.
func AdminCreateCategory(c *fiber.Ctx) error {
	actor := middleware.Actor(c)
	if d := policy.CanCreateCategory(actor); !d.Allowed {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
	}

	reqData, ok := c.Locals("validatedCategory").(*struct {
		Name        string `json:"name" validate:"required,min=2"`
		Description string `json:"description"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	category := models.Category{
		Name:        reqData.Name,
		Description: reqData.Description,
	}
	if err := services.Entities().InsertCategory(&category); err != nil {
		if errors.Is(err, store.ErrDuplicate) {
			return middleware.JsonResponse(c, fiber.StatusConflict, false, "Category already exists!", nil)
		}
		return middleware.ServiceErrorResponse(c, err)
	}
	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Category created successfully!", category)
}
