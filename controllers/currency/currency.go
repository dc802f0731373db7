package currencyController

import (
	"learnhub/middleware"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// GetRates returns the USD→INR rate used by clients to display prices.
// Public; the rate is cached in-process for an hour.
func GetRates(c *fiber.Ctx) error {
	rate := utils.USDToINRRate()
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Rates fetched successfully!", fiber.Map{
		"base":     "USD",
		"currency": "INR",
		"rate":     rate,
	})
}
