package main

import (
	"learnhub/config"
	"learnhub/database"
	"learnhub/middleware"
	adminRoutes "learnhub/routers/adminRoutes"
	analyticsRoutes "learnhub/routers/analyticsRoutes"
	authRoutes "learnhub/routers/authRoutes"
	catalogRoutes "learnhub/routers/catalogRoutes"
	certificateRoutes "learnhub/routers/certificateRoutes"
	commentRoutes "learnhub/routers/commentRoutes"
	notificationRoutes "learnhub/routers/notificationRoutes"
	quizRoutes "learnhub/routers/quizRoutes"
	userRoutes "learnhub/routers/userRoutes"
	"learnhub/utils"

	"log"

	"github.com/gofiber/fiber/v2"
	"github.com/gofiber/fiber/v2/middleware/cors"
	"github.com/gofiber/fiber/v2/middleware/logger"
)

func main() {
	config.LoadConfig()
	database.ConnectDb()

	app := fiber.New()

	app.Use(cors.New(cors.Config{
		AllowOrigins: "*",
		AllowMethods: "GET,POST,PUT,DELETE",        // Allowed HTTP methods
		AllowHeaders: "Content-Type,Authorization", // Allowed headers
	}))

	// Enable the built-in logger middleware to log all requests
	app.Use(logger.New(logger.Config{
		Format: "[${time}] ${ip} ${method} ${path} ${status} ${latency}\n",
	}))

	// Serve static files from the public folder
	app.Static("/", "./public")

	limiter := middleware.NewRateLimiterStore()
	limiter.StartSweep()
	defer limiter.Stop()

	authRoutes.SetupAuthRoutes(app, limiter)
	quizRoutes.SetupQuizRoutes(app, limiter)
	commentRoutes.SetupCommentRoutes(app, limiter)
	certificateRoutes.SetupCertificateRoutes(app, limiter)
	notificationRoutes.SetupNotificationRoutes(app, limiter)
	userRoutes.SetupUserRoutes(app)
	adminRoutes.SetupAdminRoutes(app)
	catalogRoutes.SetupCatalogRoutes(app)
	analyticsRoutes.SetupAnalyticsRoutes(app)

	reminderCron := utils.StartReminderScheduler()
	defer reminderCron.Stop()

	log.Printf("Server is running on port %s", config.AppConfig.Port)
	log.Fatal(app.Listen(":" + config.AppConfig.Port))
}
