package notificationController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"learnhub/utils"

	"github.com/gofiber/fiber/v2"
)

// SendNotificationRequest is the validated send payload. Exactly one of
// UserID/Email identifies the recipient; Data feeds the template.
type SendNotificationRequest struct {
	Type   string                 `json:"type"`
	UserID *uint                  `json:"user_id"`
	Email  string                 `json:"email"`
	Data   map[string]interface{} `json:"data"`
}

// UpdatePreferencesRequest carries partial preference updates; nil fields
// are left untouched.
type UpdatePreferencesRequest struct {
	EmailWelcome     *bool `json:"email_welcome"`
	EmailCompletion  *bool `json:"email_completion"`
	EmailCertificate *bool `json:"email_certificate"`
	EmailDigest      *bool `json:"email_digest"`
	EmailReminders   *bool `json:"email_reminders"`
}

func dataString(data map[string]interface{}, key string) string {
	if data == nil {
		return ""
	}
	if value, ok := data[key].(string); ok {
		return value
	}
	return ""
}

// SendNotification delivers one templated email. Users can send to
// themselves; admins can send to anyone.
func SendNotification(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var sender models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&sender).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedNotification").(*SendNotificationRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	sendingToSelf := (reqData.UserID != nil && *reqData.UserID == sender.ID) ||
		(reqData.Email != "" && reqData.Email == sender.Email)
	if !sendingToSelf && sender.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "Access denied!", nil)
	}

	recipientEmail := reqData.Email
	recipientName := dataString(reqData.Data, "userName")
	recipientID := sender.ID

	if reqData.UserID != nil {
		var recipient models.User
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.UserID, false).First(&recipient).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Recipient not found!", nil)
		}
		recipientID = recipient.ID
		if recipientEmail == "" {
			recipientEmail = recipient.Email
		}
		if recipientName == "" {
			recipientName = recipient.Name
		}
	}

	if recipientEmail == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "No recipient email provided!", nil)
	}
	if recipientName == "" {
		recipientName = "Learner"
	}

	if !utils.NotificationAllowed(recipientID, reqData.Type) {
		return middleware.JsonResponse(c, fiber.StatusOK, true, "Email not sent - user has disabled this notification type.", nil)
	}

	switch reqData.Type {
	case utils.EmailTypeWelcome:
		utils.SendWelcomeEmail(recipientEmail, recipientName)
	case utils.EmailTypeCompletion:
		utils.SendCompletionEmail(recipientEmail, recipientName,
			dataString(reqData.Data, "moduleTitle"),
			dataString(reqData.Data, "completionDate"),
			dataString(reqData.Data, "certificateUrl"))
	case utils.EmailTypeCertificate:
		utils.SendCertificateEmail(recipientEmail, recipientName,
			dataString(reqData.Data, "moduleTitle"),
			dataString(reqData.Data, "certificateUrl"))
	case utils.EmailTypeReminder, utils.EmailTypeDigest:
		utils.SendReminderEmail(recipientEmail, recipientName, nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Notification queued!", nil)
}

// GetPreferences returns the caller's notification preferences, creating
// the default all-enabled row on first read.
func GetPreferences(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var prefs models.NotificationPreference
	if err := database.Database.Db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		prefs = models.NotificationPreference{
			UserID:           userID,
			EmailWelcome:     true,
			EmailCompletion:  true,
			EmailCertificate: true,
			EmailDigest:      true,
			EmailReminders:   true,
		}
		if err := database.Database.Db.Create(&prefs).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch preferences!", nil)
		}
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences fetched successfully!", prefs)
}

// UpdatePreferences applies a partial update to the caller's flags.
func UpdatePreferences(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedPreferences").(*UpdatePreferencesRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var prefs models.NotificationPreference
	if err := database.Database.Db.Where("user_id = ?", userID).First(&prefs).Error; err != nil {
		prefs = models.NotificationPreference{
			UserID:           userID,
			EmailWelcome:     true,
			EmailCompletion:  true,
			EmailCertificate: true,
			EmailDigest:      true,
			EmailReminders:   true,
		}
	}

	if reqData.EmailWelcome != nil {
		prefs.EmailWelcome = *reqData.EmailWelcome
	}
	if reqData.EmailCompletion != nil {
		prefs.EmailCompletion = *reqData.EmailCompletion
	}
	if reqData.EmailCertificate != nil {
		prefs.EmailCertificate = *reqData.EmailCertificate
	}
	if reqData.EmailDigest != nil {
		prefs.EmailDigest = *reqData.EmailDigest
	}
	if reqData.EmailReminders != nil {
		prefs.EmailReminders = *reqData.EmailReminders
	}

	if err := database.Database.Db.Save(&prefs).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update preferences!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Preferences updated!", prefs)
}
