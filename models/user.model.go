package models

import (
	"time"

	"gorm.io/gorm"
)

type User struct {
	gorm.Model
	Name      string    `json:"name" gorm:"default:''"`
	Email     string    `json:"email" gorm:"unique;not null"`
	Password  string    `json:"-" gorm:"not null"`
	Role      string    `json:"role" gorm:"default:'USER'"` // USER, ADMIN
	AvatarURL string    `json:"avatar_url" gorm:"default:''"`
	LastLogin time.Time `json:"last_login" gorm:"default:NULL"`
	IsDeleted bool      `json:"-" gorm:"default:false"`
}

// NotificationPreference holds per-user email opt-in flags.
// A row is created lazily with all flags on the first time preferences are read.
type NotificationPreference struct {
	gorm.Model
	UserID           uint `json:"user_id" gorm:"uniqueIndex;not null"`
	EmailWelcome     bool `json:"email_welcome" gorm:"default:true"`
	EmailCompletion  bool `json:"email_completion" gorm:"default:true"`
	EmailCertificate bool `json:"email_certificate" gorm:"default:true"`
	EmailDigest      bool `json:"email_digest" gorm:"default:true"`
	EmailReminders   bool `json:"email_reminders" gorm:"default:true"`
}
