package models

import (
	"time"

	"gorm.io/gorm"
)

// LoginSession records one staff sign-in, closed when the operator signs out.
type LoginSession struct {
	gorm.Model

	Username  string     `gorm:"size:64;index;not null" json:"username"`
	Email     string     `gorm:"size:255;index" json:"email"`
	SignInAt  time.Time  `gorm:"not null" json:"sign_in_at"`
	SignOutAt *time.Time `json:"sign_out_at"`
}
