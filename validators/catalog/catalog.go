package catalogValidator

import (
	"learnhub/middleware"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

var validate = validator.New()

// MarkComplete validator middleware. The upstream owns the payload schema,
// so only the fields the proxy depends on are checked here.
func MarkComplete() fiber.Handler {
	return func(c *fiber.Ctx) error {
		payload := make(map[string]interface{})
		if err := c.BodyParser(&payload); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		email, _ := payload["email"].(string)
		if email == "" {
			errors["email"] = "Email is required!"
		} else if err := validate.Var(email, "email"); err != nil {
			errors["email"] = "Invalid email!"
		}

		moduleID, _ := payload["moduleId"].(string)
		if moduleID == "" {
			errors["moduleId"] = "Module id is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCompletion", payload)
		return c.Next()
	}
}
