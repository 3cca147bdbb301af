package userProfileRoutes

import (
	userProfileController "learnhub/controllers/userControllers"
	"learnhub/middleware"
	userProfileValidator "learnhub/validators/userValidator"

	"github.com/gofiber/fiber/v2"
)

func SetupUserRoutes(app *fiber.App) {
	userGroup := app.Group("/user")

	userGroup.Put("/profile", middleware.JWTMiddleware, userProfileValidator.UpdateProfile(), userProfileController.UpdateProfile)
	userGroup.Delete("/account", middleware.JWTMiddleware, userProfileController.DeleteAccount)
}
