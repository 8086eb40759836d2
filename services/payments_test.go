package services

import (
	"errors"
	"testing"

	"coinadmin/models"
)

func TestBuildCashInForcesZeroTotals(t *testing.T) {
	payment, err := BuildCashIn(CashInInput{Amount: 50, Method: "cashapp"})
	if err != nil {
		t.Fatal(err)
	}
	if payment.TxType != models.TxCashIn {
		t.Errorf("tx type = %q, want cashin", payment.TxType)
	}
	if !payment.TotalPaid.IsZero() || !payment.TotalCashout.IsZero() {
		t.Errorf("cashin totals must be zero, got paid %s cashout %s", payment.TotalPaid, payment.TotalCashout)
	}
	if payment.DateString == "" {
		t.Error("date string should default to today")
	}
}

func TestBuildCashInValidation(t *testing.T) {
	if _, err := BuildCashIn(CashInInput{Amount: 0, Method: "cashapp"}); err == nil {
		t.Error("zero amount should fail")
	}
	if _, err := BuildCashIn(CashInInput{Amount: 50, Method: "venmo"}); err == nil {
		t.Error("venmo is not a payment method")
	}
	if _, err := BuildCashIn(CashInInput{Amount: 50, Method: "cashapp", Date: "later"}); err == nil {
		t.Error("unparsable date should fail")
	}
}

func TestBuildCashOutRequiresPlayerName(t *testing.T) {
	_, err := BuildCashOut(CashOutInput{Amount: 20, Method: "paypal"})
	if err == nil {
		t.Fatal("expected error for missing player name")
	}
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestBuildCashOutKeepsAuditTotals(t *testing.T) {
	payment, err := BuildCashOut(CashOutInput{
		Amount:       20,
		Method:       "paypal",
		PlayerName:   "Player One",
		TotalPaid:    80,
		TotalCashout: 60,
		Date:         "2025-03-05T23:30:00Z",
	})
	if err != nil {
		t.Fatal(err)
	}
	if payment.TxType != models.TxCashOut {
		t.Errorf("tx type = %q, want cashout", payment.TxType)
	}
	if !payment.TotalPaid.Equal(dec(80)) || !payment.TotalCashout.Equal(dec(60)) {
		t.Errorf("totals = %s/%s, want 80/60", payment.TotalPaid, payment.TotalCashout)
	}
	if payment.DateString != "2025-03-05" {
		t.Errorf("date string = %q, want 2025-03-05", payment.DateString)
	}
}

func TestFoldTotals(t *testing.T) {
	payments := []models.Payment{
		{TxType: models.TxCashIn, Method: "cashapp", Amount: dec(50)},
		{TxType: models.TxCashOut, Method: "cashapp", Amount: dec(20)},
		{TxType: models.TxCashIn, Method: "paypal", Amount: dec(10)},
		{TxType: models.TxCashIn, Method: "venmo", Amount: dec(99)},
	}
	totals := FoldTotals(payments)

	if !totals.CashApp.Equal(dec(30)) {
		t.Errorf("cashapp = %s, want 30", totals.CashApp)
	}
	if !totals.PayPal.Equal(dec(10)) {
		t.Errorf("paypal = %s, want 10", totals.PayPal)
	}
	if !totals.Chime.IsZero() {
		t.Errorf("chime = %s, want 0", totals.Chime)
	}
}

func TestTotalsOrEmpty(t *testing.T) {
	totals := PaymentTotals{CashApp: dec(30)}
	if got := totalsOrEmpty(totals, nil); !got.CashApp.Equal(dec(30)) {
		t.Errorf("cashapp = %s, want 30", got.CashApp)
	}

	// a failed recompute after a committed write yields zero totals, not
	// an error the caller would mistake for a failed write
	if got := totalsOrEmpty(totals, errors.New("redis down")); !got.CashApp.IsZero() {
		t.Errorf("cashapp = %s, want 0 on recompute failure", got.CashApp)
	}
}

func TestFoldTotalsCanGoNegative(t *testing.T) {
	totals := FoldTotals([]models.Payment{
		{TxType: models.TxCashOut, Method: "chime", Amount: dec(40)},
	})
	if !totals.Chime.Equal(dec(-40)) {
		t.Errorf("chime = %s, want -40", totals.Chime)
	}
}
