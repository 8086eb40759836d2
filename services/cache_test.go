package services

import "testing"

func TestStoreTotalsDropsStaleFold(t *testing.T) {
	gen := currentTotalsGen()
	invalidateTotals()
	if storeTotals(PaymentTotals{CashApp: dec(10)}, gen) {
		t.Error("a fold that started before a write must not be cached")
	}
	if !storeTotals(PaymentTotals{CashApp: dec(10)}, currentTotalsGen()) {
		t.Error("a fold with no write since its snapshot should be cached")
	}
}

func TestInvalidateTotalsBumpsGeneration(t *testing.T) {
	before := currentTotalsGen()
	invalidateTotals()
	if currentTotalsGen() == before {
		t.Error("every ledger write must advance the generation")
	}
}
