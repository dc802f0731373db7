package categoryValidator

import (
	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// CategoryID validates the :id route param and stores it as categoryID.
func CategoryID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid category id!", nil)
		}
		c.Locals("categoryID", id)
		return c.Next()
	}
}

func CreateCategory() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Name        string `json:"name" validate:"required,min=2"`
			Description string `json:"description"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if ok, err := validators.CheckStruct(c, reqData); !ok {
			return err
		}

		c.Locals("validatedCategory", reqData)
		return c.Next()
	}
}
