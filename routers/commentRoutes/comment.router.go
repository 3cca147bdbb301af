package commentRoutes

import (
	commentControllers "learnhub/controllers/comment"
	"learnhub/middleware"
	commentValidators "learnhub/validators/comment"

	"github.com/gofiber/fiber/v2"
)

func SetupCommentRoutes(app *fiber.App, limiter *middleware.RateLimiterStore) {
	commentGroup := app.Group("/comments")

	commentGroup.Get("/", middleware.JWTMiddleware, commentControllers.GetComments)
	commentGroup.Post("/", limiter.Handler("/comments"), middleware.JWTMiddleware, commentValidators.CreateComment(), commentControllers.CreateComment)
	commentGroup.Put("/:id", middleware.JWTMiddleware, commentValidators.UpdateComment(), commentControllers.UpdateComment)
	commentGroup.Delete("/:id", middleware.JWTMiddleware, commentValidators.CommentID(), commentControllers.DeleteComment)
}
