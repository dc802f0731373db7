package main

import (
	"log"

	"learnhub/config"
	"learnhub/database"
	authRoutes "learnhub/routers/authRoutes"
	categoryRoutes "learnhub/routers/categoryRoutes"
	courseRoutes "learnhub/routers/courseRoutes"
	currencyRoutes "learnhub/routers/currencyRoutes"
	userRoutes "learnhub/routers/userRoutes"
	"learnhub/services"
	"learnhub/store"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()
	services.Init(store.NewGormStore(database.Database.Db))

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,PATCH,DELETE",
		AllowHeaders: "Content-Type,Authorization",
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve uploaded course images
	app.Static("/uploads", config.AppConfig.UploadDir)

	authRoutes.SetupAuthRoutes(app)
	categoryRoutes.SetupCategoryRoutes(app)
	courseRoutes.SetupCourseRoutes(app)
	courseRoutes.SetupAdminCourseRoutes(app)
	userRoutes.SetupUserRoutes(app)
	currencyRoutes.SetupCurrencyRoutes(app)

	utils.InitializeReminderScheduler()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
