package quizController

import (
	"encoding/json"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"log"
	"time"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// SubmitQuizRequest is the validated quiz submission payload.
type SubmitQuizRequest struct {
	QuizID   uint                `json:"quiz_id"`
	ModuleID string              `json:"module_id"`
	Answers  map[string][]string `json:"answers"`
}

// GetModuleQuiz returns the quiz for a catalog module with answer keys stripped.
func GetModuleQuiz(c *fiber.Ctx) error {
	moduleID := c.Locals("moduleID").(string)

	var quiz models.Quiz
	if err := database.Database.Db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	var questions []models.QuizQuestion
	if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
		log.Printf("Corrupt questions payload for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch quiz!", nil)
	}

	// Learners must not see the answer key.
	for i := range questions {
		questions[i].CorrectAnswers = nil
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz fetched successfully!", fiber.Map{
		"id":            quiz.ID,
		"module_id":     quiz.ModuleID,
		"title":         quiz.Title,
		"questions":     questions,
		"passing_score": quiz.PassingScore,
	})
}

// SubmitQuiz grades a submission and records the attempt.
func SubmitQuiz(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedSubmission").(*SubmitQuizRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var quiz models.Quiz
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", reqData.QuizID, false).First(&quiz).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Quiz not found!", nil)
	}

	if quiz.ModuleID != reqData.ModuleID {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Quiz does not belong to this module!", nil)
	}

	var questions []models.QuizQuestion
	if err := json.Unmarshal(quiz.Questions, &questions); err != nil {
		log.Printf("Corrupt questions payload for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	result, err := GradeQuiz(questions, quiz.PassingScore, reqData.Answers)
	if err != nil {
		// An empty quiz is a data bug, never a learner failure.
		log.Printf("Grading failed for quiz %d: %v", quiz.ID, err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to submit quiz!", nil)
	}

	// Attempt persistence is fire-and-forget: the learner still gets the result.
	answersJSON, _ := json.Marshal(reqData.Answers)
	attempt := models.QuizAttempt{
		UserID:      userID,
		QuizID:      quiz.ID,
		Answers:     datatypes.JSON(answersJSON),
		Score:       result.Score,
		Passed:      result.Passed,
		CompletedAt: time.Now(),
	}
	if err := database.Database.Db.Create(&attempt).Error; err != nil {
		log.Printf("Failed to save quiz attempt for user %d quiz %d: %v", userID, quiz.ID, err)
	}

	recordQuizCompleteEvent(userID, quiz.ModuleID, quiz.ID, result)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Quiz graded!", result)
}

// GetUserAttempts returns the caller's attempt history, newest first.
func GetUserAttempts(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	db := database.Database.Db.Where("user_id = ?", userID)

	if quizID := c.QueryInt("quizId"); quizID > 0 {
		db = db.Where("quiz_id = ?", quizID)
	}

	if moduleID := c.Query("moduleId"); moduleID != "" {
		db = db.Joins("JOIN quizzes ON quizzes.id = quiz_attempts.quiz_id").
			Where("quizzes.module_id = ?", moduleID)
	}

	var attempts []models.QuizAttempt
	if err := db.Order("completed_at desc").Find(&attempts).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch attempts!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Attempts fetched successfully!", attempts)
}

func recordQuizCompleteEvent(userID uint, moduleID string, quizID uint, result QuizResult) {
	metadata, _ := json.Marshal(fiber.Map{
		"quizId": quizID,
		"score":  result.Score,
		"passed": result.Passed,
	})
	event := models.AnalyticsEvent{
		UserID:    &userID,
		EventType: models.EventQuizComplete,
		ModuleID:  moduleID,
		Metadata:  datatypes.JSON(metadata),
	}
	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("Failed to track quiz completion: %v", err)
	}
}
