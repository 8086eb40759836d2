package models

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	TxCashIn  = "cashin"
	TxCashOut = "cashout"
)

// The cash ledger only moves money over these three methods.
var PaymentMethods = []string{"cashapp", "paypal", "chime"}

type Payment struct {
	gorm.Model

	// externally stable identifier used by clients
	PaymentID string `gorm:"size:36;uniqueIndex;not null" json:"id"`

	Amount decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"amount"`
	Method string          `gorm:"size:16;index" json:"method"`
	TxType string          `gorm:"size:8;index;default:cashin" json:"tx_type"`

	// who the money went to, cashout only
	PlayerName string `gorm:"size:64" json:"player_name"`

	// cashout audit fields, forced to 0 for cashin
	TotalPaid    decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_paid"`
	TotalCashout decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"total_cashout"`

	Note string `gorm:"size:255" json:"note"`

	Date time.Time `gorm:"index" json:"date"`

	// UTC calendar day derived from Date at write time
	DateString string `gorm:"size:10;index" json:"date_string"`
}

func (p *Payment) BeforeCreate(tx *gorm.DB) error {
	if p.PaymentID == "" {
		p.PaymentID = uuid.New().String()
	}
	return nil
}
