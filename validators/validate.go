// Package validators holds per-route request validation middleware. Each
// validator parses the request, checks it, and stores the typed struct in
// c.Locals for the controller.
package validators

import (
	"fmt"
	"strings"

	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// CheckStruct runs validator/v10 tags over reqData and responds with a
// field→message map on failure. Returns true when validation passed.
func CheckStruct(c *fiber.Ctx, reqData interface{}) (bool, error) {
	err := validate.Struct(reqData)
	if err == nil {
		return true, nil
	}

	fieldErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return false, middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	errors := make(map[string]string)
	for _, fe := range fieldErrors {
		errors[strings.ToLower(fe.Field())] = messageFor(fe)
	}
	return false, middleware.ValidationErrorResponse(c, errors)
}

func messageFor(fe validator.FieldError) string {
	field := strings.ToLower(fe.Field())
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("%s is required!", field)
	case "email":
		return "Must provide a valid email!"
	case "min":
		return fmt.Sprintf("%s must be at least %s characters long!", field, fe.Param())
	case "oneof":
		return fmt.Sprintf("%s must be one of: %s!", field, fe.Param())
	default:
		return fmt.Sprintf("%s is invalid!", field)
	}
}
