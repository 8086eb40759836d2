package models

import (
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	EntryFreeplay = "freeplay"
	EntryDeposit  = "deposit"
	EntryRedeem   = "redeem"
)

var EntryTypes = []string{EntryFreeplay, EntryDeposit, EntryRedeem}

// venmo is accepted for game entries but not for the cash ledger.
var EntryMethods = []string{"cashapp", "paypal", "chime", "venmo"}

type GameEntry struct {
	gorm.Model

	Username  string `gorm:"size:64;index:idx_entries_owner" json:"username"`
	CreatedBy string `gorm:"size:64" json:"created_by"`

	Type string `gorm:"size:16;index:idx_entries_owner" json:"type"`

	// set only for deposit / redeem
	Method string `gorm:"size:16" json:"method"`

	// our-tag flow main identifier, player-tag flow display name
	PlayerName string `gorm:"size:64;index" json:"player_name"`

	// player-tag flow identifier
	PlayerTag string `gorm:"size:64;index" json:"player_tag"`

	GameName string `gorm:"size:128" json:"game_name"`

	AmountBase  decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"amount_base"`
	BonusRate   decimal.Decimal `gorm:"type:numeric(6,2);default:0" json:"bonus_rate"`
	BonusAmount decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"bonus_amount"`
	AmountFinal decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"amount_final"`

	Note string `gorm:"size:255" json:"note"`

	// calendar day, YYYY-MM-DD
	Date string `gorm:"size:10;index:idx_entries_owner" json:"date"`

	// our-tag redeem tracking: remainingPay decreases toward 0 as
	// payouts are applied, isPending holds while it is above 0
	TotalPaid    decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_paid"`
	TotalCashout decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_cashout"`
	RemainingPay decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"remaining_pay"`
	IsPending    bool            `gorm:"default:false;index" json:"is_pending"`

	// player-tag deposit tracking
	ExtraMoney decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"extra_money"`
	Reduction  decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"reduction"`
}
