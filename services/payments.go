package services

import (
	"errors"
	"log"
	"slices"
	"strings"
	"time"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// PaymentTotals is the running per-method cash balance: cashin adds,
// cashout subtracts.
type PaymentTotals struct {
	CashApp decimal.Decimal `json:"cashapp"`
	PayPal  decimal.Decimal `json:"paypal"`
	Chime   decimal.Decimal `json:"chime"`
}

type CashInInput struct {
	Amount     float64 `json:"amount"`
	Method     string  `json:"method"`
	PlayerName string  `json:"player_name"`
	Note       string  `json:"note"`
	Date       string  `json:"date"`
}

type CashOutInput struct {
	Amount       float64 `json:"amount"`
	Method       string  `json:"method"`
	PlayerName   string  `json:"player_name"`
	TotalPaid    float64 `json:"total_paid"`
	TotalCashout float64 `json:"total_cashout"`
	Note         string  `json:"note"`
	Date         string  `json:"date"`
}

func parsePaymentMethod(raw string) (string, error) {
	method := strings.TrimSpace(raw)
	if !slices.Contains(models.PaymentMethods, method) {
		return "", invalid("method", "must be cashapp, paypal or chime")
	}
	return method, nil
}

func parsePaymentDate(raw string) (time.Time, string, error) {
	if strings.TrimSpace(raw) == "" {
		now := time.Now().UTC()
		return now, now.Format("2006-01-02"), nil
	}
	t, err := helpers.ParseDateTime(raw)
	if err != nil {
		return time.Time{}, "", invalid("date", "is not a valid date")
	}
	return t, t.UTC().Format("2006-01-02"), nil
}

// BuildCashIn validates a cash-in movement. Cashin entries never carry
// cashout audit totals.
func BuildCashIn(in CashInInput) (models.Payment, error) {
	amount, err := helpers.ParseMoney(in.Amount, false)
	if err != nil {
		return models.Payment{}, invalid("amount", "must be a positive number")
	}
	method, err := parsePaymentMethod(in.Method)
	if err != nil {
		return models.Payment{}, err
	}
	date, dateString, err := parsePaymentDate(in.Date)
	if err != nil {
		return models.Payment{}, err
	}

	return models.Payment{
		Amount:       amount,
		Method:       method,
		TxType:       models.TxCashIn,
		PlayerName:   strings.TrimSpace(in.PlayerName),
		TotalPaid:    decimal.Zero,
		TotalCashout: decimal.Zero,
		Note:         strings.TrimSpace(in.Note),
		Date:         date,
		DateString:   dateString,
	}, nil
}

func BuildCashOut(in CashOutInput) (models.Payment, error) {
	amount, err := helpers.ParseMoney(in.Amount, false)
	if err != nil {
		return models.Payment{}, invalid("amount", "must be a positive number")
	}
	method, err := parsePaymentMethod(in.Method)
	if err != nil {
		return models.Payment{}, err
	}

	playerName := strings.TrimSpace(in.PlayerName)
	if playerName == "" {
		return models.Payment{}, invalid("player_name", "is required for cashout")
	}

	totalPaid, err := helpers.ParseMoney(in.TotalPaid, true)
	if err != nil {
		return models.Payment{}, invalid("total_paid", "must be a finite non-negative number")
	}
	totalCashout, err := helpers.ParseMoney(in.TotalCashout, true)
	if err != nil {
		return models.Payment{}, invalid("total_cashout", "must be a finite non-negative number")
	}

	date, dateString, err := parsePaymentDate(in.Date)
	if err != nil {
		return models.Payment{}, err
	}

	return models.Payment{
		Amount:       amount,
		Method:       method,
		TxType:       models.TxCashOut,
		PlayerName:   playerName,
		TotalPaid:    totalPaid,
		TotalCashout: totalCashout,
		Note:         strings.TrimSpace(in.Note),
		Date:         date,
		DateString:   dateString,
	}, nil
}

func RecordCashIn(in CashInInput) (models.Payment, PaymentTotals, error) {
	payment, err := BuildCashIn(in)
	if err != nil {
		return models.Payment{}, PaymentTotals{}, err
	}
	return persistPayment(payment)
}

func RecordCashOut(in CashOutInput) (models.Payment, PaymentTotals, error) {
	payment, err := BuildCashOut(in)
	if err != nil {
		return models.Payment{}, PaymentTotals{}, err
	}
	return persistPayment(payment)
}

func persistPayment(payment models.Payment) (models.Payment, PaymentTotals, error) {
	if err := database.DB.Create(&payment).Error; err != nil {
		return models.Payment{}, PaymentTotals{}, err
	}
	invalidateTotals()
	return payment, totalsOrEmpty(ComputeTotals()), nil
}

// totalsOrEmpty keeps a totals recompute failure from masking a write that
// already committed. Callers get zero totals and the next read recomputes.
func totalsOrEmpty(totals PaymentTotals, err error) PaymentTotals {
	if err != nil {
		log.Println("⚠️  Failed to recompute totals after ledger write:", err)
		return PaymentTotals{}
	}
	return totals
}

// PaymentPatch updates any subset of fields; each touched field is
// re-validated on its own, untouched fields are left as stored.
type PaymentPatch struct {
	Amount       *float64 `json:"amount"`
	Method       *string  `json:"method"`
	TxType       *string  `json:"tx_type"`
	PlayerName   *string  `json:"player_name"`
	TotalPaid    *float64 `json:"total_paid"`
	TotalCashout *float64 `json:"total_cashout"`
	Note         *string  `json:"note"`
	Date         *string  `json:"date"`
}

func UpdatePayment(paymentID string, patch PaymentPatch) (models.Payment, PaymentTotals, error) {
	var payment models.Payment
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrPaymentNotFound
			}
			return err
		}

		if patch.Amount != nil {
			amount, err := helpers.ParseMoney(*patch.Amount, false)
			if err != nil {
				return invalid("amount", "must be a positive number")
			}
			payment.Amount = amount
		}
		if patch.Method != nil {
			method, err := parsePaymentMethod(*patch.Method)
			if err != nil {
				return err
			}
			payment.Method = method
		}
		if patch.TxType != nil {
			txType := strings.TrimSpace(*patch.TxType)
			if txType != models.TxCashIn && txType != models.TxCashOut {
				return invalid("tx_type", "must be cashin or cashout")
			}
			payment.TxType = txType
		}
		if patch.PlayerName != nil {
			payment.PlayerName = strings.TrimSpace(*patch.PlayerName)
		}
		if patch.TotalPaid != nil {
			totalPaid, err := helpers.ParseMoney(*patch.TotalPaid, true)
			if err != nil {
				return invalid("total_paid", "must be a finite non-negative number")
			}
			payment.TotalPaid = totalPaid
		}
		if patch.TotalCashout != nil {
			totalCashout, err := helpers.ParseMoney(*patch.TotalCashout, true)
			if err != nil {
				return invalid("total_cashout", "must be a finite non-negative number")
			}
			payment.TotalCashout = totalCashout
		}
		if patch.Note != nil {
			payment.Note = strings.TrimSpace(*patch.Note)
		}
		if patch.Date != nil {
			date, dateString, err := parsePaymentDate(*patch.Date)
			if err != nil {
				return err
			}
			payment.Date = date
			payment.DateString = dateString
		}

		// cashin rows never keep cashout audit totals
		if payment.TxType == models.TxCashIn {
			payment.TotalPaid = decimal.Zero
			payment.TotalCashout = decimal.Zero
		}

		return tx.Save(&payment).Error
	})
	if err != nil {
		return models.Payment{}, PaymentTotals{}, err
	}

	invalidateTotals()
	return payment, totalsOrEmpty(ComputeTotals()), nil
}

func DeletePayment(paymentID string) (models.Payment, PaymentTotals, error) {
	var payment models.Payment
	if err := database.DB.Where("payment_id = ?", paymentID).First(&payment).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Payment{}, PaymentTotals{}, ErrPaymentNotFound
		}
		return models.Payment{}, PaymentTotals{}, err
	}
	if err := database.DB.Delete(&payment).Error; err != nil {
		return models.Payment{}, PaymentTotals{}, err
	}

	invalidateTotals()
	return payment, totalsOrEmpty(ComputeTotals()), nil
}

// FoldTotals folds a payment list into per-method balances. Rows with a
// method outside the canonical three are skipped.
func FoldTotals(payments []models.Payment) PaymentTotals {
	var totals PaymentTotals
	for _, p := range payments {
		amount := p.Amount
		if p.TxType == models.TxCashOut {
			amount = amount.Neg()
		}
		switch p.Method {
		case "cashapp":
			totals.CashApp = totals.CashApp.Add(amount)
		case "paypal":
			totals.PayPal = totals.PayPal.Add(amount)
		case "chime":
			totals.Chime = totals.Chime.Add(amount)
		}
	}
	return totals
}

// ComputeTotals folds over every payment record. The cache is only a
// shortcut; its value always equals the from-scratch fold because every
// write bumps the generation, and a fold that began before the write
// refuses to cache its result.
func ComputeTotals() (PaymentTotals, error) {
	if totals, ok := cachedTotals(); ok {
		return totals, nil
	}

	gen := currentTotalsGen()

	var payments []models.Payment
	if err := database.DB.Select("amount", "method", "tx_type").Find(&payments).Error; err != nil {
		return PaymentTotals{}, err
	}

	totals := FoldTotals(payments)
	storeTotals(totals, gen)
	return totals, nil
}

type PaymentFilter struct {
	Method string
	TxType string
	From   string
	To     string
	Limit  int
}

func ListPayments(filter PaymentFilter) ([]models.Payment, error) {
	q := database.DB.Model(&models.Payment{})

	if m := strings.TrimSpace(filter.Method); m != "" {
		if !slices.Contains(models.PaymentMethods, m) {
			return nil, invalid("method", "must be cashapp, paypal or chime")
		}
		q = q.Where("method = ?", m)
	}
	if t := strings.TrimSpace(filter.TxType); t != "" {
		if t != models.TxCashIn && t != models.TxCashOut {
			return nil, invalid("tx_type", "must be cashin or cashout")
		}
		q = q.Where("tx_type = ?", t)
	}
	if filter.From != "" {
		from, err := helpers.NormalizeDateString(filter.From)
		if err != nil {
			return nil, invalid("from", "is not a valid date")
		}
		q = q.Where("date_string >= ?", from)
	}
	if filter.To != "" {
		to, err := helpers.NormalizeDateString(filter.To)
		if err != nil {
			return nil, invalid("to", "is not a valid date")
		}
		q = q.Where("date_string <= ?", to)
	}

	var payments []models.Payment
	err := q.Order("created_at desc").Limit(clampLimit(filter.Limit)).Find(&payments).Error
	return payments, err
}
