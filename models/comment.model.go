package models

import "gorm.io/gorm"

// Comment is a module discussion entry. ParentID nil means top-level;
// a non-nil ParentID always references a top-level comment (replies are
// flattened one level, never nested further).
type Comment struct {
	gorm.Model
	UserID    uint   `json:"user_id" gorm:"index;not null"`
	ModuleID  string `json:"module_id" gorm:"index;not null"`
	Content   string `json:"content"`
	ParentID  *uint  `json:"parent_id" gorm:"index;default:NULL"`
	IsDeleted bool   `json:"-" gorm:"default:false"`
	User      *User  `json:"user,omitempty" gorm:"foreignKey:UserID"`
}
