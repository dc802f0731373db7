package courseValidator

import (
	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// CourseID validates the :id route param and stores it as courseID.
func CourseID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid course id!", nil)
		}
		c.Locals("courseID", id)
		return c.Next()
	}
}

// CourseList validates optional pagination and category filter query params.
func CourseList() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Page  *int `json:"page"`
			Limit *int `json:"limit"`
		})

		if err := c.QueryParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid query parameters!", nil)
		}

		if categoryID := c.QueryInt("category_id"); categoryID > 0 {
			c.Locals("categoryID", categoryID)
		}

		if reqData.Page != nil || reqData.Limit != nil {
			errors := make(map[string]string)
			if reqData.Page != nil && *reqData.Page < 1 {
				errors["page"] = "Page must be greater than 0!"
			}
			if reqData.Limit != nil && *reqData.Limit < 1 {
				errors["limit"] = "Limit must be greater than 0!"
			}
			if len(errors) > 0 {
				return middleware.ValidationErrorResponse(c, errors)
			}
			c.Locals("validatedList", reqData)
		}
		return c.Next()
	}
}

func CreateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title" validate:"required,min=5"`
			Description string `json:"description" validate:"required,min=10"`
			Image       string `json:"image"`
			Price       string `json:"price"`
			CategoryID  *uint  `json:"category_id"`
			Content     string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if ok, err := validators.CheckStruct(c, reqData); !ok {
			return err
		}

		c.Locals("validatedCourse", reqData)
		return c.Next()
	}
}

func UpdateCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Title       string `json:"title"`
			Description string `json:"description"`
			Image       string `json:"image"`
			Price       string `json:"price"`
			CategoryID  *uint  `json:"category_id"`
			Status      string `json:"status" validate:"omitempty,oneof=draft published"`
			Content     string `json:"content"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if ok, err := validators.CheckStruct(c, reqData); !ok {
			return err
		}

		c.Locals("validatedCourseUpdate", reqData)
		return c.Next()
	}
}
