package models_test

import (
	"testing"

	"coinadmin/models"

	"github.com/shopspring/decimal"
)

func d(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func TestGameRecalc(t *testing.T) {
	g := models.Game{
		CoinsSpent:     d(100),
		CoinsEarned:    d(30),
		CoinsRecharged: d(20),
	}
	g.Recalc()
	if !g.TotalCoins.Equal(d(50)) {
		t.Errorf("total = %s, want 50", g.TotalCoins)
	}
}

func TestGameRecalcCanGoNegative(t *testing.T) {
	g := models.Game{
		CoinsSpent:  d(10),
		CoinsEarned: d(40),
	}
	g.Recalc()
	if !g.TotalCoins.Equal(d(-30)) {
		t.Errorf("total = %s, want -30", g.TotalCoins)
	}
}

func TestGameRecalcOverwritesStaleTotal(t *testing.T) {
	g := models.Game{
		CoinsSpent: d(5),
		TotalCoins: d(999),
	}
	g.Recalc()
	if !g.TotalCoins.Equal(d(5)) {
		t.Errorf("total = %s, want 5", g.TotalCoins)
	}
}

func TestSalaryPaidSalary(t *testing.T) {
	s := models.Salary{TotalSalary: d(500), RemainingSalary: d(200)}
	if !s.PaidSalary().Equal(d(300)) {
		t.Errorf("paid = %s, want 300", s.PaidSalary())
	}

	// remaining above total clamps to zero instead of going negative
	s = models.Salary{TotalSalary: d(100), RemainingSalary: d(150)}
	if !s.PaidSalary().IsZero() {
		t.Errorf("paid = %s, want 0", s.PaidSalary())
	}
}
