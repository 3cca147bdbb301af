package catalogRoutes

import (
	catalogControllers "learnhub/controllers/catalog"
	"learnhub/middleware"
	catalogValidators "learnhub/validators/catalog"

	"github.com/gofiber/fiber/v2"
)

func SetupCatalogRoutes(app *fiber.App) {
	catalogGroup := app.Group("/catalog")

	catalogGroup.Get("/modules", middleware.JWTMiddleware, catalogControllers.GetModules)
	catalogGroup.Get("/completions", middleware.JWTMiddleware, catalogControllers.GetCompletions)
	catalogGroup.Post("/mark-complete", middleware.JWTMiddleware, catalogValidators.MarkComplete(), catalogControllers.MarkComplete)
}
