package services

import (
	"testing"

	"coinadmin/models"

	"github.com/shopspring/decimal"
)

func f64(v float64) *float64 { return &v }

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func validDeposit() EntryInput {
	return EntryInput{
		Type:       models.EntryDeposit,
		Method:     "cashapp",
		Username:   "alice",
		PlayerName: "Player One",
		GameName:   "Fire Kirin",
		AmountBase: 100,
		BonusRate:  10,
	}
}

func TestBuildEntryDepositBonus(t *testing.T) {
	entry, err := BuildEntry(validDeposit())
	if err != nil {
		t.Fatal(err)
	}
	if !entry.BonusAmount.Equal(dec(10)) {
		t.Errorf("bonus = %s, want 10", entry.BonusAmount)
	}
	if !entry.AmountFinal.Equal(dec(110)) {
		t.Errorf("final = %s, want 110", entry.AmountFinal)
	}
	if entry.CreatedBy != "alice" {
		t.Errorf("created_by = %q, want username fallback", entry.CreatedBy)
	}
	if entry.Date == "" {
		t.Error("date should default to today")
	}
}

func TestBuildEntryBonusIgnoredOutsideDeposit(t *testing.T) {
	in := validDeposit()
	in.Type = models.EntryRedeem
	entry, err := BuildEntry(in)
	if err != nil {
		t.Fatal(err)
	}
	if !entry.BonusAmount.IsZero() || !entry.BonusRate.IsZero() {
		t.Errorf("bonus fields should stay zero, got rate %s amount %s", entry.BonusRate, entry.BonusAmount)
	}
	if !entry.AmountFinal.Equal(dec(100)) {
		t.Errorf("final = %s, want 100", entry.AmountFinal)
	}
}

func TestBuildEntryFreeplaySkipsMethod(t *testing.T) {
	in := validDeposit()
	in.Type = models.EntryFreeplay
	in.Method = ""
	entry, err := BuildEntry(in)
	if err != nil {
		t.Fatal(err)
	}
	if entry.Method != "" {
		t.Errorf("method = %q, want empty for freeplay", entry.Method)
	}
}

func TestBuildEntryVenmoAllowed(t *testing.T) {
	in := validDeposit()
	in.Method = "venmo"
	if _, err := BuildEntry(in); err != nil {
		t.Errorf("venmo should be a valid entry method: %v", err)
	}
}

func TestBuildEntryDerivedReduction(t *testing.T) {
	in := validDeposit()
	in.Type = models.EntryRedeem
	in.PlayerName = ""
	in.PlayerTag = "$tag1"
	in.AmountBase = 50
	in.TotalCashout = 30
	entry, err := BuildEntry(in)
	if err != nil {
		t.Fatal(err)
	}
	if !entry.Reduction.Equal(dec(20)) {
		t.Errorf("reduction = %s, want 20", entry.Reduction)
	}

	// explicit reduction wins over the derived one
	in.Reduction = f64(5)
	entry, err = BuildEntry(in)
	if err != nil {
		t.Fatal(err)
	}
	if !entry.Reduction.Equal(dec(5)) {
		t.Errorf("reduction = %s, want 5", entry.Reduction)
	}
}

func TestBuildEntryExtraMoneyClamped(t *testing.T) {
	in := validDeposit()
	in.TotalPaid = 10
	in.TotalCashout = 40
	entry, err := BuildEntry(in)
	if err != nil {
		t.Fatal(err)
	}
	if !entry.ExtraMoney.IsZero() {
		t.Errorf("extra money = %s, want 0", entry.ExtraMoney)
	}
}

func TestBuildEntryValidation(t *testing.T) {
	cases := map[string]func(*EntryInput){
		"bad type":       func(in *EntryInput) { in.Type = "bonus" },
		"no username":    func(in *EntryInput) { in.Username = "  " },
		"no identity":    func(in *EntryInput) { in.PlayerName = ""; in.PlayerTag = "" },
		"no game":        func(in *EntryInput) { in.GameName = "" },
		"no method":      func(in *EntryInput) { in.Method = "" },
		"bad method":     func(in *EntryInput) { in.Method = "zelle" },
		"negative base":  func(in *EntryInput) { in.AmountBase = -1 },
		"bad reduction":  func(in *EntryInput) { in.Reduction = f64(-3) },
		"unparsable day": func(in *EntryInput) { in.Date = "yesterday" },
	}
	for name, mutate := range cases {
		in := validDeposit()
		mutate(&in)
		_, err := BuildEntry(in)
		if err == nil {
			t.Errorf("%s: expected error", name)
			continue
		}
		if !IsValidation(err) {
			t.Errorf("%s: expected validation error, got %v", name, err)
		}
	}
}

func TestApplyClearPendingRedeem(t *testing.T) {
	entry := models.GameEntry{
		Type:         models.EntryRedeem,
		TotalPaid:    dec(30),
		RemainingPay: dec(20),
		IsPending:    true,
	}
	if err := ApplyClearPending(&entry, nil, nil); err != nil {
		t.Fatal(err)
	}
	if !entry.TotalPaid.Equal(dec(50)) {
		t.Errorf("total paid = %s, want 50", entry.TotalPaid)
	}
	if !entry.RemainingPay.IsZero() {
		t.Errorf("remaining pay = %s, want 0", entry.RemainingPay)
	}
	if entry.IsPending {
		t.Error("entry should no longer be pending")
	}

	// second clear is a no-op
	if err := ApplyClearPending(&entry, nil, nil); err != nil {
		t.Fatal(err)
	}
	if !entry.TotalPaid.Equal(dec(50)) {
		t.Errorf("total paid after second clear = %s, want 50", entry.TotalPaid)
	}
}

func TestApplyClearPendingRedeemOverride(t *testing.T) {
	entry := models.GameEntry{
		Type:         models.EntryRedeem,
		TotalPaid:    dec(30),
		RemainingPay: dec(20),
		IsPending:    true,
	}
	if err := ApplyClearPending(&entry, f64(45), nil); err != nil {
		t.Fatal(err)
	}
	if !entry.TotalPaid.Equal(dec(45)) {
		t.Errorf("total paid = %s, want 45", entry.TotalPaid)
	}
	if !entry.RemainingPay.IsZero() || entry.IsPending {
		t.Error("override should still settle the entry")
	}
}

func TestApplyClearPendingDepositTag(t *testing.T) {
	entry := models.GameEntry{
		Type:      models.EntryDeposit,
		PlayerTag: "$tag1",
		Reduction: dec(20),
	}
	if err := ApplyClearPending(&entry, nil, nil); err != nil {
		t.Fatal(err)
	}
	if !entry.Reduction.IsZero() {
		t.Errorf("reduction = %s, want 0", entry.Reduction)
	}

	entry.Reduction = dec(20)
	if err := ApplyClearPending(&entry, nil, f64(7)); err != nil {
		t.Fatal(err)
	}
	if !entry.Reduction.Equal(dec(7)) {
		t.Errorf("reduction = %s, want 7", entry.Reduction)
	}
}

func TestApplyClearPendingDepositWithoutTag(t *testing.T) {
	entry := models.GameEntry{
		Type:      models.EntryDeposit,
		Reduction: dec(20),
	}
	if err := ApplyClearPending(&entry, nil, nil); err != nil {
		t.Fatal(err)
	}
	if !entry.Reduction.Equal(dec(20)) {
		t.Error("our-tag deposits carry no pending reduction to clear")
	}
}

func TestClampLimit(t *testing.T) {
	cases := map[int]int{0: 30, -5: 30, 50: 50, 200: 200, 1000: 200}
	for in, want := range cases {
		if got := clampLimit(in); got != want {
			t.Errorf("clampLimit(%d) = %d, want %d", in, got, want)
		}
	}
}
