package certificateRoutes

import (
	certificateControllers "learnhub/controllers/certificate"
	"learnhub/middleware"
	certificateValidators "learnhub/validators/certificate"

	"github.com/gofiber/fiber/v2"
)

func SetupCertificateRoutes(app *fiber.App, limiter *middleware.RateLimiterStore) {
	certificateGroup := app.Group("/certificate")

	certificateGroup.Post("/generate", limiter.Handler("/certificate/generate"), middleware.JWTMiddleware, certificateValidators.GenerateCertificate(), certificateControllers.GenerateCertificate)
	certificateGroup.Get("/user", middleware.JWTMiddleware, certificateControllers.GetUserCertificates)
	certificateGroup.Get("/:id", middleware.JWTMiddleware, certificateValidators.CertificateID(), certificateControllers.GetCertificate)
	certificateGroup.Get("/:id/download", middleware.JWTMiddleware, certificateValidators.CertificateID(), certificateControllers.DownloadCertificate)
}
