package models

import (
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

var ContactPreferences = []string{"whatsapp", "telegram", ""}

type FacebookLead struct {
	gorm.Model

	Name  string `gorm:"size:128;not null" json:"name"`
	Email string `gorm:"size:255;index;not null" json:"email"`
	Phone string `gorm:"size:32" json:"phone"`

	ContactPreference string `gorm:"size:16;default:''" json:"contact_preference"`
	FacebookLink      string `gorm:"size:255" json:"facebook_link"`

	Source string `gorm:"size:32;default:facebook" json:"source"`

	// form payload as submitted, kept for later review
	Raw datatypes.JSON `gorm:"type:jsonb" json:"raw,omitempty"`
}
