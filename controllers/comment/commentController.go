package commentController

import (
	"encoding/json"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// CreateCommentRequest is the validated comment creation payload.
// Content has already been sanitized by the validator.
type CreateCommentRequest struct {
	ModuleID string `json:"module_id"`
	Content  string `json:"content"`
	ParentID *uint  `json:"parent_id"`
}

// GetComments returns a module's comments newest-first, flat plus threaded.
func GetComments(c *fiber.Ctx) error {
	moduleID := c.Query("moduleId")
	if moduleID == "" {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "moduleId is required!", nil)
	}

	var comments []models.Comment
	if err := database.Database.Db.Preload("User").
		Where("module_id = ? AND is_deleted = ?", moduleID, false).
		Order("created_at desc").Find(&comments).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to fetch comments!", nil)
	}

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comments fetched successfully!", fiber.Map{
		"comments": comments,
		"threads":  BuildThreads(comments),
	})
}

// CreateComment stores a new top-level comment or reply.
func CreateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	reqData, ok := c.Locals("validatedComment").(*CreateCommentRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	if reqData.ParentID != nil {
		var parent models.Comment
		if err := database.Database.Db.Where("id = ? AND is_deleted = ?", *reqData.ParentID, false).First(&parent).Error; err != nil {
			return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Parent comment not found!", nil)
		}
		if parent.ModuleID != reqData.ModuleID {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Parent comment belongs to another module!", nil)
		}
		// Replies stay one level deep.
		if parent.ParentID != nil {
			return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Cannot reply to a reply!", nil)
		}
	}

	comment := models.Comment{
		UserID:   userID,
		ModuleID: reqData.ModuleID,
		Content:  reqData.Content,
		ParentID: reqData.ParentID,
	}

	if err := database.Database.Db.Create(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to create comment!", nil)
	}

	comment.User = &user
	recordCommentCreatedEvent(userID, comment)

	return middleware.JsonResponse(c, fiber.StatusCreated, true, "Comment created!", comment)
}

// UpdateComment edits a comment's content. Owner only.
func UpdateComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	commentID := c.Locals("commentID").(int)
	content := c.Locals("validatedContent").(string)

	var comment models.Comment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserID != userID {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only edit your own comments!", nil)
	}

	comment.Content = content
	if err := database.Database.Db.Save(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to update comment!", nil)
	}

	database.Database.Db.Preload("User").First(&comment, comment.ID)

	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment updated!", comment)
}

// DeleteComment removes a comment. Owner or admin.
func DeleteComment(c *fiber.Ctx) error {
	userID, ok := c.Locals("userId").(uint)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "Unauthorized!", nil)
	}

	var user models.User
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", userID, false).First(&user).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusUnauthorized, false, "User not found!", nil)
	}

	commentID := c.Locals("commentID").(int)

	var comment models.Comment
	if err := database.Database.Db.Where("id = ? AND is_deleted = ?", commentID, false).First(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusNotFound, false, "Comment not found!", nil)
	}

	if comment.UserID != userID && user.Role != "ADMIN" {
		return middleware.JsonResponse(c, fiber.StatusForbidden, false, "You can only delete your own comments!", nil)
	}

	comment.IsDeleted = true
	if err := database.Database.Db.Save(&comment).Error; err != nil {
		return middleware.JsonResponse(c, fiber.StatusInternalServerError, false, "Failed to delete comment!", nil)
	}

	// Replies to a deleted root become orphans and disappear from the
	// threaded view on the next fetch.
	return middleware.JsonResponse(c, fiber.StatusOK, true, "Comment deleted!", nil)
}

func recordCommentCreatedEvent(userID uint, comment models.Comment) {
	metadata, _ := json.Marshal(fiber.Map{
		"commentId": comment.ID,
		"isReply":   comment.ParentID != nil,
	})
	event := models.AnalyticsEvent{
		UserID:    &userID,
		EventType: models.EventCommentCreated,
		ModuleID:  comment.ModuleID,
		Metadata:  datatypes.JSON(metadata),
	}
	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("Failed to track comment creation: %v", err)
	}
}
