package models

import (
	"time"

	"gorm.io/gorm"
)

// Certificate is issued once per (user, module). Generation is idempotent:
// a second request returns the existing row.
type Certificate struct {
	gorm.Model
	UserID            uint      `json:"user_id" gorm:"index;not null"`
	ModuleID          string    `json:"module_id" gorm:"index;not null"`
	ModuleTitle       string    `json:"module_title"`
	CertificateNumber string    `json:"certificate_number" gorm:"unique"`
	IssuedAt          time.Time `json:"issued_at"`
	IsDeleted         bool      `json:"-" gorm:"default:false"`
}
