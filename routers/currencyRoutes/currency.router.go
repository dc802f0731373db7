package currencyRoutes

import (
	currencyControllers "learnhub/controllers/currency"

	"github.com/gofiber/fiber/v2"
)

func SetupCurrencyRoutes(app *fiber.App) {
	app.Get("/currency/rates", currencyControllers.GetRates)
}
