package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// UserActivity is the append-only record behind the per-day coin stats.
// One row per successful game move, attributed to the acting operator.
type UserActivity struct {
	gorm.Model

	Username string `gorm:"size:64;index;not null" json:"username"`
	GameID   int64  `gorm:"index;not null" json:"game_id"`
	GameName string `gorm:"size:128;not null" json:"game_name"`

	Freeplay decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"freeplay"`
	Redeem   decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"redeem"`
	Deposit  decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"deposit"`

	// UTC calendar day the move was applied on
	Date string `gorm:"size:10;index" json:"date"`
}
