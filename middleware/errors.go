package middleware

import (
	"log"

	"learnhub/services"

	"github.com/gofiber/fiber/v2"
)

// ServiceErrorResponse maps a tagged service error to an HTTP response.
// store_unavailable is the only kind worth logging; the rest are expected
// outcomes.
func ServiceErrorResponse(c *fiber.Ctx, err error) error {
	kind := services.KindOf(err)
	switch kind {
	case services.KindForbidden:
		return JsonResponse(c, fiber.StatusForbidden, false, err.Error(), nil)
	case services.KindNotFound:
		return JsonResponse(c, fiber.StatusNotFound, false, err.Error(), nil)
	case services.KindCourseNotPublished, services.KindInvalidStatus:
		return JsonResponse(c, fiber.StatusBadRequest, false, err.Error(), nil)
	default:
		log.Printf("store error: %v", err)
		return JsonResponse(c, fiber.StatusInternalServerError, false, "Something went wrong!", nil)
	}
}
