package services

import (
	"errors"
	"fmt"
	"testing"

	"coinadmin/helpers"
	"coinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

func TestApplyMoveStepDeposit(t *testing.T) {
	game := models.Game{GameID: 42, Name: "Fire Kirin"}
	activity := applyMoveStep(&game, decimal.Zero, decimal.Zero, dec(25), "alice")

	if !game.CoinsRecharged.Equal(dec(25)) {
		t.Errorf("recharged = %s, want 25", game.CoinsRecharged)
	}
	if game.LastRechargeDate == nil || *game.LastRechargeDate != helpers.Today() {
		t.Errorf("last recharge date = %v, want today", game.LastRechargeDate)
	}
	if activity == nil {
		t.Fatal("a deposit move must append an activity row")
	}
	if !activity.Deposit.Equal(dec(25)) || activity.GameID != 42 || activity.Username != "alice" {
		t.Errorf("activity = %+v", activity)
	}

	game.Recalc()
	if !game.TotalCoins.Equal(dec(-25)) {
		t.Errorf("total = %s, want -25", game.TotalCoins)
	}
}

func TestApplyMoveStepAccumulates(t *testing.T) {
	game := models.Game{
		CoinsEarned: dec(10),
		CoinsSpent:  dec(40),
	}
	activity := applyMoveStep(&game, dec(5), dec(15), decimal.Zero, "alice")

	if !game.CoinsEarned.Equal(dec(15)) || !game.CoinsSpent.Equal(dec(55)) {
		t.Errorf("counters = %s/%s, want 15/55", game.CoinsEarned, game.CoinsSpent)
	}
	if game.LastRechargeDate != nil {
		t.Error("recharge date must only move on deposits")
	}
	if activity == nil || !activity.Freeplay.Equal(dec(5)) || !activity.Redeem.Equal(dec(15)) {
		t.Errorf("activity = %+v", activity)
	}
}

func TestApplyMoveStepZeroDeltas(t *testing.T) {
	game := models.Game{CoinsSpent: dec(40)}
	activity := applyMoveStep(&game, decimal.Zero, decimal.Zero, decimal.Zero, "alice")

	if activity != nil {
		t.Error("a zero move must not append an activity row")
	}
	if !game.CoinsSpent.Equal(dec(40)) || game.LastRechargeDate != nil {
		t.Error("a zero move must leave the game untouched")
	}
}

func TestParseDeltaRejectsNegative(t *testing.T) {
	_, err := parseDelta("deposit_delta", -1)
	if err == nil {
		t.Fatal("negative delta should fail")
	}
	if !IsValidation(err) {
		t.Errorf("expected validation error, got %v", err)
	}
}

func TestMapGameCreateErr(t *testing.T) {
	err := mapGameCreateErr(fmt.Errorf("insert: %w", gorm.ErrDuplicatedKey))
	if !errors.Is(err, ErrDuplicateGame) {
		t.Errorf("unique violation should map to duplicate game, got %v", err)
	}

	other := errors.New("connection reset")
	if mapGameCreateErr(other) != other {
		t.Error("unrelated errors must pass through unchanged")
	}
}
