package analyticsController

import (
	"encoding/json"
	"learnhub/database"
	"learnhub/middleware"
	"learnhub/models"
	"log"

	"github.com/gofiber/fiber/v2"
	"gorm.io/datatypes"
)

// TrackEventRequest is the validated tracking payload.
type TrackEventRequest struct {
	Type     string                 `json:"type"`
	ModuleID string                 `json:"module_id"`
	Metadata map[string]interface{} `json:"metadata"`
}

// TrackEvent appends one usage event. Tracking is advisory: storage
// failures are logged and the response is still a success, so a broken
// analytics table never degrades the portal.
func TrackEvent(c *fiber.Ctx) error {
	reqData, ok := c.Locals("validatedEvent").(*TrackEventRequest)
	if !ok {
		return middleware.JsonResponse(c, fiber.StatusBadRequest, false, "Invalid request body!", nil)
	}

	var userID *uint
	if id, ok := c.Locals("userId").(uint); ok {
		userID = &id
	}

	var metadata datatypes.JSON
	if reqData.Metadata != nil {
		raw, err := json.Marshal(reqData.Metadata)
		if err == nil {
			metadata = datatypes.JSON(raw)
		}
	}

	event := models.AnalyticsEvent{
		UserID:    userID,
		EventType: reqData.Type,
		ModuleID:  reqData.ModuleID,
		Metadata:  metadata,
	}

	if err := database.Database.Db.Create(&event).Error; err != nil {
		log.Printf("Failed to track event %s: %v", reqData.Type, err)
	}

	return middleware.JsonResponse(c, fiber.StatusAccepted, true, "Event tracked!", nil)
}
