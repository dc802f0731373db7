package courseValidator

import (
	"learnhub/middleware"
	"learnhub/validators"

	"github.com/gofiber/fiber/v2"
)

// EnrollCourse validates the enroll body. user_id is optional; admins use it
// to enroll other users.
func EnrollCourse() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			UserID *uint `json:"user_id"`
		})

		// Empty body is fine: the actor enrolls themselves.
		if len(c.Body()) > 0 {
			if err := c.BodyParser(reqData); err != nil {
				return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
			}
		}

		c.Locals("validatedEnroll", reqData)
		return c.Next()
	}
}

// EnrollmentID validates the :id route param and stores it as enrollmentID.
func EnrollmentID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		id, err := c.ParamsInt("id")
		if err != nil || id < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid enrollment id!", nil)
		}
		c.Locals("enrollmentID", id)
		return c.Next()
	}
}

// EnrollmentStatus validates the status-update body. The allowed status
// values themselves are enforced by the enrollment service.
func EnrollmentStatus() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(struct {
			Status string `json:"status" validate:"required"`
		})

		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if ok, err := validators.CheckStruct(c, reqData); !ok {
			return err
		}

		c.Locals("validatedEnrollmentStatus", reqData)
		return c.Next()
	}
}
