package notificationRoutes

import (
	notificationControllers "learnhub/controllers/notification"
	"learnhub/middleware"
	notificationValidators "learnhub/validators/notification"

	"github.com/gofiber/fiber/v2"
)

func SetupNotificationRoutes(app *fiber.App, limiter *middleware.RateLimiterStore) {
	notificationGroup := app.Group("/notifications")

	notificationGroup.Post("/send", limiter.Handler("/notifications/send"), middleware.JWTMiddleware, notificationValidators.SendNotification(), notificationControllers.SendNotification)
	notificationGroup.Get("/preferences", middleware.JWTMiddleware, notificationControllers.GetPreferences)
	notificationGroup.Put("/preferences", middleware.JWTMiddleware, notificationValidators.UpdatePreferences(), notificationControllers.UpdatePreferences)
}
