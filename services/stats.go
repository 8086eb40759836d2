package services

import (
	"strings"
	"time"

	"coinadmin/database"
	"coinadmin/models"

	"github.com/shopspring/decimal"
)

var rangeDays = map[string]int{
	"day":   1,
	"week":  7,
	"month": 30,
	"year":  365,
}

type GameCoinsRow struct {
	Date           string          `json:"date"`
	GameID         int64           `json:"game_id"`
	GameName       string          `json:"game_name"`
	CoinsEarned    decimal.Decimal `json:"coins_earned"`
	CoinsSpent     decimal.Decimal `json:"coins_spent"`
	CoinsRecharged decimal.Decimal `json:"coins_recharged"`
}

// GameCoinsOverRange folds the activity log into per-day per-game coin
// deltas over a trailing window that includes today.
func GameCoinsOverRange(rng string) ([]GameCoinsRow, error) {
	days, ok := rangeDays[strings.ToLower(strings.TrimSpace(rng))]
	if !ok {
		days = rangeDays["week"]
	}

	cutoff := time.Now().UTC().AddDate(0, 0, -(days - 1)).Format("2006-01-02")

	var rows []GameCoinsRow
	err := database.DB.Model(&models.UserActivity{}).
		Select("date, game_id, game_name, SUM(freeplay) AS coins_earned, SUM(redeem) AS coins_spent, SUM(deposit) AS coins_recharged").
		Where("date >= ?", cutoff).
		Group("date, game_id, game_name").
		Order("date asc, game_name asc").
		Scan(&rows).Error
	return rows, err
}
