package analyticsRoutes

import (
	analyticsControllers "learnhub/controllers/analytics"
	"learnhub/middleware"
	analyticsValidators "learnhub/validators/analytics"

	"github.com/gofiber/fiber/v2"
)

func SetupAnalyticsRoutes(app *fiber.App) {
	analyticsGroup := app.Group("/analytics")

	// Anonymous page views are accepted, so auth here is optional.
	analyticsGroup.Post("/track", middleware.OptionalJWTMiddleware, analyticsValidators.TrackEvent(), analyticsControllers.TrackEvent)
}
