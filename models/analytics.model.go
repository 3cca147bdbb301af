package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Analytics event types written by the tracking endpoint and by server-side hooks.
const (
	EventModuleView           = "module_view"
	EventModuleComplete       = "module_complete"
	EventQuizStart            = "quiz_start"
	EventQuizComplete         = "quiz_complete"
	EventCertificateGenerated = "certificate_generated"
	EventCommentCreated       = "comment_created"
	EventSearch               = "search"
	EventPageView             = "page_view"
	EventLogin                = "login"
)

// AnalyticsEvent is an append-only usage record. UserID is nil for
// anonymous page views.
type AnalyticsEvent struct {
	gorm.Model
	UserID    *uint          `json:"user_id" gorm:"index;default:NULL"`
	EventType string         `json:"event_type" gorm:"index;not null"`
	ModuleID  string         `json:"module_id" gorm:"index;default:''"`
	Metadata  datatypes.JSON `json:"metadata"`
}

// ValidEventTypes is used by the tracking validator.
var ValidEventTypes = map[string]bool{
	EventModuleView:           true,
	EventModuleComplete:       true,
	EventQuizStart:            true,
	EventQuizComplete:         true,
	EventCertificateGenerated: true,
	EventCommentCreated:       true,
	EventSearch:               true,
	EventPageView:             true,
	EventLogin:                true,
}
