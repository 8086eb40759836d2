package helpers_test

import (
	"math"
	"testing"

	"coinadmin/helpers"

	"github.com/shopspring/decimal"
)

func TestParseMoneyRejectsBadInput(t *testing.T) {
	if _, err := helpers.ParseMoney(-5, false); err == nil {
		t.Error("negative amount should fail")
	}
	if _, err := helpers.ParseMoney(-5, true); err == nil {
		t.Error("negative amount should fail even with allowZero")
	}
	if _, err := helpers.ParseMoney(0, false); err == nil {
		t.Error("zero should fail without allowZero")
	}
	if _, err := helpers.ParseMoney(math.NaN(), true); err == nil {
		t.Error("NaN should fail")
	}
	if _, err := helpers.ParseMoney(math.Inf(1), true); err == nil {
		t.Error("Inf should fail")
	}
}

func TestParseMoneyAllowZero(t *testing.T) {
	amount, err := helpers.ParseMoney(0, true)
	if err != nil {
		t.Fatalf("zero with allowZero failed: %v", err)
	}
	if !amount.IsZero() {
		t.Errorf("expected 0, got %s", amount)
	}
}

func TestParseMoneyRoundsToCents(t *testing.T) {
	cases := map[float64]string{
		10.005:  "10.01",
		10.004:  "10",
		99.999:  "100",
		50:      "50",
		0.01:    "0.01",
		1234.56: "1234.56",
	}
	for raw, want := range cases {
		amount, err := helpers.ParseMoney(raw, false)
		if err != nil {
			t.Fatalf("ParseMoney(%v) failed: %v", raw, err)
		}
		if expected, _ := decimal.NewFromString(want); !amount.Equal(expected) {
			t.Errorf("ParseMoney(%v) = %s, want %s", raw, amount, want)
		}
	}
}

func TestClampZero(t *testing.T) {
	if got := helpers.ClampZero(decimal.NewFromInt(-3)); !got.IsZero() {
		t.Errorf("expected 0, got %s", got)
	}
	if got := helpers.ClampZero(decimal.NewFromInt(7)); !got.Equal(decimal.NewFromInt(7)) {
		t.Errorf("expected 7, got %s", got)
	}
}
