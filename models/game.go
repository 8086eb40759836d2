package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

type Game struct {
	gorm.Model

	// numeric ID used by the frontend, stable across renames
	GameID int64  `gorm:"uniqueIndex" json:"game_id"`
	Name   string `gorm:"size:128;uniqueIndex" json:"name"`

	// freeplay issued to players, reduces the total
	CoinsEarned decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"coins_earned"`

	// redeemed by players, adds to the total
	CoinsSpent decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"coins_spent"`

	// deposited by players, reduces the total
	CoinsRecharged decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"coins_recharged"`

	TotalCoins decimal.Decimal `gorm:"type:numeric(14,2);default:0" json:"total_coins"`

	// day of the most recent deposit, YYYY-MM-DD
	LastRechargeDate *string `gorm:"size:10" json:"last_recharge_date"`
}

// Recalc applies the one canonical coin formula:
// totalCoins = coinsSpent - coinsEarned - coinsRecharged.
func (g *Game) Recalc() {
	g.TotalCoins = g.CoinsSpent.Sub(g.CoinsEarned).Sub(g.CoinsRecharged)
}

func (g *Game) BeforeSave(tx *gorm.DB) error {
	g.Recalc()
	return nil
}
