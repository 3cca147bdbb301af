package adminController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/jinzhu/now"
)

// requireAdmin loads the acting user and checks the ADMIN role. It writes
// the error response itself and returns false when access is denied.
func requireAdmin(c *fiber.Ctx) (models.User, bool) {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
		return models.User{}, false
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
		return models.User{}, false
	}

	if user.Role != "ADMIN" {
		middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied! Admin only.", nil)
		return models.User{}, false
	}

	return user, true
}

// GetDashboardStats returns the aggregate numbers for the admin landing page.
func GetDashboardStats(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	db := database.Database.Db

	var totalUsers, totalAttempts, passedAttempts, totalCertificates, totalComments int64
	db.Model(&models.User{}).Where("is_deleted = ?", false).Count(&totalUsers)
	db.Model(&models.QuizAttempt{}).Count(&totalAttempts)
	db.Model(&models.QuizAttempt{}).Where("passed = ?", true).Count(&passedAttempts)
	db.Model(&models.Certificate{}).Where("is_deleted = ?", false).Count(&totalCertificates)
	db.Model(&models.Comment{}).Where("is_deleted = ?", false).Count(&totalComments)

	passRate := float64(0)
	if totalAttempts > 0 {
		passRate = float64(passedAttempts) / float64(totalAttempts) * 100
	}

	weekStart := now.BeginningOfWeek()
	var completionsThisWeek int64
	db.Model(&models.QuizAttempt{}).Where("passed = ? AND completed_at >= ?", true, weekStart).Count(&completionsThisWeek)

	type eventCount struct {
		EventType string `json:"event_type"`
		Count     int64  `json:"count"`
	}
	var eventCounts []eventCount
	db.Model(&models.AnalyticsEvent{}).
		Select("event_type, count(*) as count").
		Group("event_type").
		Order("count desc").
		Scan(&eventCounts)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Dashboard stats fetched successfully!", fiber.Map{
		"total_users":           totalUsers,
		"total_attempts":        totalAttempts,
		"pass_rate":             passRate,
		"total_certificates":    totalCertificates,
		"total_comments":        totalComments,
		"completions_this_week": completionsThisWeek,
		"events_by_type":        eventCounts,
	})
}

// GetModuleAnalytics returns per-module engagement and quiz outcomes.
func GetModuleAnalytics(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	db := database.Database.Db

	type moduleStats struct {
		ModuleID     string  `json:"module_id"`
		Views        int64   `json:"views"`
		Attempts     int64   `json:"attempts"`
		AverageScore float64 `json:"average_score"`
		PassRate     float64 `json:"pass_rate"`
		Comments     int64   `json:"comments"`
	}

	// Modules are known to the portal through quizzes and events.
	moduleIDs := make(map[string]bool)
	var quizModules []string
	db.Model(&models.Quiz{}).Where("is_deleted = ?", false).Distinct().Pluck("module_id", &quizModules)
	for _, id := range quizModules {
		moduleIDs[id] = true
	}
	var eventModules []string
	db.Model(&models.AnalyticsEvent{}).Where("module_id <> ''").Distinct().Pluck("module_id", &eventModules)
	for _, id := range eventModules {
		moduleIDs[id] = true
	}

	stats := make([]moduleStats, 0, len(moduleIDs))
	for moduleID := range moduleIDs {
		var row moduleStats
		row.ModuleID = moduleID

		db.Model(&models.AnalyticsEvent{}).
			Where("module_id = ? AND event_type = ?", moduleID, models.EventModuleView).
			Count(&row.Views)
		db.Model(&models.Comment{}).
			Where("module_id = ? AND is_deleted = ?", moduleID, false).
			Count(&row.Comments)

		var quiz models.Quiz
		if err := db.Where("module_id = ? AND is_deleted = ?", moduleID, false).First(&quiz).Error; err == nil {
			var passed int64
			db.Model(&models.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).Count(&row.Attempts)
			db.Model(&models.QuizAttempt{}).Where("quiz_id = ? AND passed = ?", quiz.ID, true).Count(&passed)

			if row.Attempts > 0 {
				var avgScore float64
				db.Model(&models.QuizAttempt{}).Where("quiz_id = ?", quiz.ID).
					Select("avg(score)").Scan(&avgScore)
				row.AverageScore = avgScore
				row.PassRate = float64(passed) / float64(row.Attempts) * 100
			}
		}

		stats = append(stats, row)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Module analytics fetched successfully!", stats)
}

// GetUsers returns the paginated user table with per-user counters.
func GetUsers(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	page := c.QueryInt("page", 1)
	if page < 1 {
		page = 1
	}
	limit := c.QueryInt("limit", 10)
	if limit < 1 || limit > 100 {
		limit = 10
	}
	offset := (page - 1) * limit

	db := database.Database.Db.Model(&models.User{}).Where("is_deleted = ?", false)

	var total int64
	db.Count(&total)

	var users []models.User
	if err := db.Offset(offset).Limit(limit).Order("created_at desc").Find(&users).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch users!", nil)
	}

	type userRow struct {
		models.User
		Attempts     int64 `json:"attempts"`
		Certificates int64 `json:"certificates"`
	}

	result := make([]userRow, len(users))
	for i, user := range users {
		result[i].User = user
		database.Database.Db.Model(&models.QuizAttempt{}).Where("user_id = ?", user.ID).Count(&result[i].Attempts)
		database.Database.Db.Model(&models.Certificate{}).Where("user_id = ? AND is_deleted = ?", user.ID, false).Count(&result[i].Certificates)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Users fetched successfully!", fiber.Map{
		"users": result,
		"pagination": fiber.Map{
			"total": total,
			"page":  page,
			"limit": limit,
		},
	})
}

// GetRecentActivity returns the latest analytics events with user info.
func GetRecentActivity(c *fiber.Ctx) error {
	if _, ok := requireAdmin(c); !ok {
		return nil
	}

	limit := c.QueryInt("limit", 20)
	if limit < 1 || limit > 100 {
		limit = 20
	}

	var events []models.AnalyticsEvent
	if err := database.Database.Db.Order("created_at desc").Limit(limit).Find(&events).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch activity!", nil)
	}

	type activityRow struct {
		models.AnalyticsEvent
		UserName  string    `json:"user_name"`
		UserEmail string    `json:"user_email"`
		At        time.Time `json:"at"`
	}

	result := make([]activityRow, len(events))
	for i, event := range events {
		result[i].AnalyticsEvent = event
		result[i].At = event.CreatedAt
		if event.UserID != nil {
			var user models.User
			if err := database.Database.Db.Where("id = ?", *event.UserID).First(&user).Error; err == nil {
				result[i].UserName = user.Name
				result[i].UserEmail = user.Email
			}
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Recent activity fetched successfully!", result)
}
