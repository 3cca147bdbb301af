package notificationValidator

import (
	notificationController "learnhub/controllers/notification"
	"learnhub/middleware"
	"learnhub/utils"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// SendNotification validator middleware
func SendNotification() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(notificationController.SendNotificationRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if !utils.ValidEmailTypes[reqData.Type] {
			errors["type"] = "Unknown notification type!"
		}

		// A recipient is either a portal user id or a raw email address.
		if reqData.UserID == nil && reqData.Email == "" {
			errors["recipient"] = "Either userId or email is required!"
		}

		if reqData.Email != "" {
			if err := validate.Var(reqData.Email, "email"); err != nil {
				errors["email"] = "Invalid email!"
			}
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedNotification", reqData)
		return c.Next()
	}
}

// UpdatePreferences validator middleware
func UpdatePreferences() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(notificationController.UpdatePreferencesRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		c.Locals("validatedPreferences", reqData)
		return c.Next()
	}
}
