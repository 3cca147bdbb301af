package utils

import (
	"learnhub/database"
	"learnhub/models"
	"log"
	"strconv"
	"time"

	"github.com/jinzhu/now"
	"github.com/robfig/cron/v3"
)

// logScheduler logs scheduler events with timestamp
func logScheduler(message string) {
	log.Printf("[REMINDER-SCHEDULER %s] %s", time.Now().Format(time.RFC3339), message)
}

// StartReminderScheduler runs the quiz-retry reminder pass every morning.
func StartReminderScheduler() *cron.Cron {
	c := cron.New()

	if _, err := c.AddFunc("0 9 * * *", sendQuizRetryReminders); err != nil {
		log.Fatalf("Failed to register reminder scheduler: %v", err)
	}

	c.Start()
	logScheduler("Reminder scheduler started")
	return c
}

// sendQuizRetryReminders emails learners whose attempts this week failed
// and who have not passed the quiz since. Each user gets one email listing
// every stalled quiz.
func sendQuizRetryReminders() {
	db := database.Database.Db
	weekStart := now.BeginningOfWeek()

	var failedAttempts []models.QuizAttempt
	if err := db.Where("passed = ? AND completed_at >= ?", false, weekStart).
		Order("completed_at desc").Find(&failedAttempts).Error; err != nil {
		logScheduler("Error fetching failed attempts: " + err.Error())
		return
	}

	// Highest failing score per (user, quiz) this week.
	type userQuiz struct {
		userID uint
		quizID uint
	}
	bestScores := make(map[userQuiz]int)
	for _, attempt := range failedAttempts {
		key := userQuiz{attempt.UserID, attempt.QuizID}
		if score, ok := bestScores[key]; !ok || attempt.Score > score {
			bestScores[key] = attempt.Score
		}
	}

	stalledByUser := make(map[uint][]ModuleProgressItem)
	for key, score := range bestScores {
		var passedCount int64
		db.Model(&models.QuizAttempt{}).
			Where("user_id = ? AND quiz_id = ? AND passed = ?", key.userID, key.quizID, true).
			Count(&passedCount)
		if passedCount > 0 {
			continue
		}

		var quiz models.Quiz
		if err := db.Where("id = ? AND is_deleted = ?", key.quizID, false).First(&quiz).Error; err != nil {
			continue
		}

		stalledByUser[key.userID] = append(stalledByUser[key.userID], ModuleProgressItem{
			Title:     quiz.Title,
			BestScore: score,
		})
	}

	sent := 0
	for userID, items := range stalledByUser {
		if !NotificationAllowed(userID, EmailTypeReminder) {
			continue
		}

		var user models.User
		if err := db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
			continue
		}
		if user.Email == "" {
			continue
		}

		SendReminderEmail(user.Email, user.Name, items)
		sent++
	}

	if sent > 0 {
		logScheduler("Sent retry reminders to " + strconv.Itoa(sent) + " users")
	}
}
