package adminRoutes

import (
	adminControllers "learnhub/controllers/admin"
	"learnhub/middleware"

	"github.com/gofiber/fiber/v2"
)

func SetupAdminRoutes(app *fiber.App) {
	adminGroup := app.Group("/admin")

	adminGroup.Get("/dashboard", middleware.JWTMiddleware, adminControllers.GetDashboardStats)
	adminGroup.Get("/modules/analytics", middleware.JWTMiddleware, adminControllers.GetModuleAnalytics)
	adminGroup.Get("/users", middleware.JWTMiddleware, adminControllers.GetUsers)
	adminGroup.Get("/activity", middleware.JWTMiddleware, adminControllers.GetRecentActivity)
}
