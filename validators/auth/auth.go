package authValidators

import (
	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

func Signup() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username  string `json:"username" validate:"required,min=3"`
			Email     string `json:"email" validate:"required,email"`
			Password  string `json:"password" validate:"required,min=6"`
			FirstName string `json:"first_name"`
			LastName  string `json:"last_name"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if ok, err := validators.CheckStruct(c, reqData); !ok {
			return err
		}

		c.Locals("validatedSignup", reqData)
		return c.Next()
	}
}

func Login() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Username string `json:"username" validate:"required"`
			Password string `json:"password" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if ok, err := validators.CheckStruct(c, reqData); !ok {
			return err
		}

		c.Locals("validatedLogin", reqData)
		return c.Next()
	}
}

func ChangePassword() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			OldPassword string `json:"old_password" validate:"required"`
			NewPassword string `json:"new_password" validate:"required,min=6"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if ok, err := validators.CheckStruct(c, reqData); !ok {
			return err
		}

		c.Locals("validatedChangePassword", reqData)
		return c.Next()
	}
}
