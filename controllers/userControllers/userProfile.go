package userController

import (
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"log"
	"strings"

	"github.com/gofiber/fiber/v2"
)

func UpdateProfile(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	reqData, ok := c.Locals("validatedProfile").(*struct {
		Name      *string `json:"name"`
		AvatarURL *string `json:"avatarUrl"`
	})
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request data!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	if reqData.Name != nil {
		user.Name = strings.TrimSpace(*reqData.Name)
	}
	if reqData.AvatarURL != nil {
		user.AvatarURL = strings.TrimSpace(*reqData.AvatarURL)
	}

	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error updating user profile: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update profile!", nil)
	}

	user.Password = ""

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Profile updated successfully.", user)
}

// DeleteAccount soft-deletes the account and its notification preferences.
// Attempts, comments and certificates stay for reporting.
func DeleteAccount(c *fiber.Ctx) error {
	userId, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userId, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	user.IsDeleted = true
	if err := database.Database.Db.Save(&user).Error; err != nil {
		log.Printf("Error deleting user account: %v", err)
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete account!", nil)
	}

	if err := database.Database.Db.
		Where("user_id = ?", userId).
		Delete(&models.NotificationPreference{}).Error; err != nil {
		log.Printf("Error removing notification preferences: %v", err)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Account deleted successfully.", nil)
}
