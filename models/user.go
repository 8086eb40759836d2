package models

import (
	"time"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	RoleUser  = "user"
	RoleAdmin = "admin"
)

type User struct {
	gorm.Model

	Username     string `gorm:"size:64;not null" json:"username"`
	Email        string `gorm:"uniqueIndex;size:255;not null" json:"email"`
	PasswordHash string `gorm:"size:255;not null" json:"-"`
	Role         string `gorm:"size:16;default:user" json:"role"`

	LastSignInAt  *time.Time `json:"last_sign_in_at"`
	LastSignOutAt *time.Time `json:"last_sign_out_at"`

	// running per-operator totals, editable by admin override
	TotalPayments decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_payments"`
	TotalFreeplay decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_freeplay"`
	TotalDeposit  decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_deposit"`
	TotalRedeem   decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_redeem"`
}

func (u *User) IsAdmin() bool {
	return u.Role == RoleAdmin
}
