package analyticsValidator

import (
	analyticsController "learnhub/controllers/analytics"
	"learnhub/middleware"
	"learnhub/models"

	"github.com/gofiber/fiber/v2"
)

// TrackEvent validator middleware
func TrackEvent() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(analyticsController.TrackEventRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		if !models.ValidEventTypes[reqData.Type] {
			return middleware.ValidationErrorResponse(c, map[string]string{
				"type": "Unknown event type!",
			})
		}

		c.Locals("validatedEvent", reqData)
		return c.Next()
	}
}
