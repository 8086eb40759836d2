package models

import (
	"encoding/json"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// Salary keeps one row per (username, month) pair.
type Salary struct {
	gorm.Model

	Username string `gorm:"size:64;uniqueIndex:idx_salary_period" json:"username"`

	// salary period, YYYY-MM
	Month string `gorm:"size:7;uniqueIndex:idx_salary_period" json:"month"`

	TotalSalary     decimal.Decimal `gorm:"type:numeric(12,2);not null" json:"total_salary"`
	DaysAbsent      int             `gorm:"default:0" json:"days_absent"`
	RemainingSalary decimal.Decimal `gorm:"type:numeric(12,2);default:0" json:"remaining_salary"`

	DueDate string `gorm:"size:10" json:"due_date"`
	Note    string `gorm:"size:255" json:"note"`
}

// PaidSalary is derived on read, never stored.
func (s *Salary) PaidSalary() decimal.Decimal {
	paid := s.TotalSalary.Sub(s.RemainingSalary)
	if paid.IsNegative() {
		return decimal.Zero
	}
	return paid
}

func (s Salary) MarshalJSON() ([]byte, error) {
	type alias Salary
	return json.Marshal(struct {
		alias
		PaidSalary decimal.Decimal `json:"paid_salary"`
	}{alias(s), s.PaidSalary()})
}
