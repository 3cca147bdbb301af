package quizRoutes

import (
	quizControllers "learnhub/controllers/quiz"
	"learnhub/middleware"
	quizValidators "learnhub/validators/quiz"

	"github.com/gofiber/fiber/v2"
)

func SetupQuizRoutes(app *fiber.App, limiter *middleware.RateLimiterStore) {
	quizGroup := app.Group("/quiz")

	quizGroup.Get("/module/:moduleId", middleware.JWTMiddleware, quizValidators.GetModuleQuiz(), quizControllers.GetModuleQuiz)
	quizGroup.Post("/submit", limiter.Handler("/quiz/submit"), middleware.JWTMiddleware, quizValidators.SubmitQuiz(), quizControllers.SubmitQuiz)
	quizGroup.Get("/attempts", middleware.JWTMiddleware, quizControllers.GetUserAttempts)
}
