package quizValidator

import (
	quizController "learnhub/controllers/quiz"
	"learnhub/middleware"
	"strings"

	"github.com/gofiber/fiber/v2"
)

// GetModuleQuiz validator middleware
func GetModuleQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		moduleID := strings.TrimSpace(c.Params("moduleId"))
		if moduleID == "" {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Module id is required!", nil)
		}

		c.Locals("moduleID", moduleID)
		return c.Next()
	}
}

// SubmitQuiz validator middleware
func SubmitQuiz() fiber.Handler {
	return func(c *fiber.Ctx) error {
		reqData := new(quizController.SubmitQuizRequest)
		if err := c.BodyParser(reqData); err != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
		}

		errors := make(map[string]string)

		if reqData.QuizID == 0 {
			errors["quizId"] = "Quiz id is required!"
		}

		if strings.TrimSpace(reqData.ModuleID) == "" {
			errors["moduleId"] = "Module id is required!"
		}

		if reqData.Answers == nil {
			errors["answers"] = "Answers are required!"
		}

		if len(errors) > 0 {
			return middleware.ValidationErrorResponse(c, errors)
		}

		c.Locals("validatedSubmission", reqData)
		return c.Next()
	}
}
