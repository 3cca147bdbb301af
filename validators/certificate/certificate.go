package certificateValidator

import (
	certificateController "learnhub/controllers/certificate"
	"learnhub/middleware"
	"strconv"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GenerateCertificate validator middleware
func GenerateCertificate() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(certificateController.GenerateCertificateRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if strings.TrimSpace(reqData.ModuleID) == "" {
			errors["moduleId"] = "Module id is required!"
		}

		if strings.TrimSpace(reqData.ModuleTitle) == "" {
			errors["moduleTitle"] = "Module title is required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedCertificate", reqData)
		return c.Next()
	}
}

// CertificateID validator middleware for the id path param.
func CertificateID() fiber.Handler {
	return func(c *fiber.Ctx) error {
		certID, err := strconv.Atoi(c.Params("id"))
		if err != nil || certID < 1 {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid certificate id!", nil)
		}

		c.Locals("certificateID", certID)
		return c.Next()
	}
}
