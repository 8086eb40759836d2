package services

import (
	"errors"
	"math"
	"strings"
	"time"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

// MoveDeltas carries one game move. Deltas only accumulate; corrections go
// through the absolute admin update, never through negative deltas.
type MoveDeltas struct {
	Freeplay float64 `json:"freeplay_delta"`
	Redeem   float64 `json:"redeem_delta"`
	Deposit  float64 `json:"deposit_delta"`
}

func parseDelta(field string, raw float64) (decimal.Decimal, error) {
	if math.IsNaN(raw) || math.IsInf(raw, 0) || raw < 0 {
		return decimal.Zero, invalid(field, "must be a finite non-negative number")
	}
	return decimal.NewFromFloat(raw).Round(2), nil
}

func CreateGame(name string, earned, spent, recharged float64) (models.Game, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return models.Game{}, invalid("name", "is required")
	}

	coinsEarned, err := helpers.ParseMoney(earned, true)
	if err != nil {
		return models.Game{}, invalid("coins_earned", "must be a finite non-negative number")
	}
	coinsSpent, err := helpers.ParseMoney(spent, true)
	if err != nil {
		return models.Game{}, invalid("coins_spent", "must be a finite non-negative number")
	}
	coinsRecharged, err := helpers.ParseMoney(recharged, true)
	if err != nil {
		return models.Game{}, invalid("coins_recharged", "must be a finite non-negative number")
	}

	var count int64
	if err := database.DB.Model(&models.Game{}).Where("name = ?", name).Count(&count).Error; err != nil {
		return models.Game{}, err
	}
	if count > 0 {
		return models.Game{}, ErrDuplicateGame
	}

	game := models.Game{
		GameID:         time.Now().UnixMilli(),
		Name:           name,
		CoinsEarned:    coinsEarned,
		CoinsSpent:     coinsSpent,
		CoinsRecharged: coinsRecharged,
	}
	if err := database.DB.Create(&game).Error; err != nil {
		return models.Game{}, mapGameCreateErr(err)
	}
	return game, nil
}

// mapGameCreateErr covers the race the pre-check can't: two concurrent
// creates of the same name, where the loser hits the unique index.
func mapGameCreateErr(err error) error {
	if errors.Is(err, gorm.ErrDuplicatedKey) {
		return ErrDuplicateGame
	}
	return err
}

func ListGames() ([]models.Game, error) {
	var games []models.Game
	err := database.DB.Order("created_at asc").Find(&games).Error
	return games, err
}

// SuggestGameNames backs the autocomplete box: distinct names matching q,
// sorted ascending.
func SuggestGameNames(q string) ([]string, error) {
	var names []string
	err := database.DB.Model(&models.Game{}).
		Distinct("name").
		Where("name ILIKE ?", "%"+strings.TrimSpace(q)+"%").
		Order("name asc").
		Pluck("name", &names).Error
	return names, err
}

// applyMoveStep folds parsed deltas into the counters, stamps the recharge
// day on deposits and builds the matching activity row. Returns nil when
// every delta is zero, since a no-op move leaves no audit trail.
func applyMoveStep(game *models.Game, freeplay, redeem, deposit decimal.Decimal, username string) *models.UserActivity {
	game.CoinsEarned = game.CoinsEarned.Add(freeplay)
	game.CoinsSpent = game.CoinsSpent.Add(redeem)
	game.CoinsRecharged = game.CoinsRecharged.Add(deposit)

	if deposit.IsPositive() {
		today := helpers.Today()
		game.LastRechargeDate = &today
	}

	if freeplay.IsZero() && redeem.IsZero() && deposit.IsZero() {
		return nil
	}
	return &models.UserActivity{
		Username: username,
		GameID:   game.GameID,
		GameName: game.Name,
		Freeplay: freeplay,
		Redeem:   redeem,
		Deposit:  deposit,
		Date:     helpers.Today(),
	}
}

// ApplyMove increments the cumulative counters for one game inside a single
// locked read-modify-write, so concurrent moves on the same game serialize
// instead of overwriting each other. Every successful move also appends a
// UserActivity row for the stats fold.
func ApplyMove(gameID int64, deltas MoveDeltas, username string) (models.Game, error) {
	freeplay, err := parseDelta("freeplay_delta", deltas.Freeplay)
	if err != nil {
		return models.Game{}, err
	}
	redeem, err := parseDelta("redeem_delta", deltas.Redeem)
	if err != nil {
		return models.Game{}, err
	}
	deposit, err := parseDelta("deposit_delta", deltas.Deposit)
	if err != nil {
		return models.Game{}, err
	}

	if username = strings.TrimSpace(username); username == "" {
		username = "Unknown User"
	}

	var game models.Game
	err = database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("game_id = ?", gameID).
			First(&game).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}

		activity := applyMoveStep(&game, freeplay, redeem, deposit, username)

		// BeforeSave recomputes TotalCoins
		if err := tx.Save(&game).Error; err != nil {
			return err
		}

		if activity == nil {
			return nil
		}
		return tx.Create(activity).Error
	})
	return game, err
}

// ResetRecharge starts a new recharge cycle without touching the historical
// earned/spent counters.
func ResetRecharge(gameID int64) (models.Game, error) {
	var game models.Game
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("game_id = ?", gameID).
			First(&game).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}
		game.CoinsRecharged = decimal.Zero
		game.LastRechargeDate = nil
		return tx.Save(&game).Error
	})
	return game, err
}

// GameUpdate carries absolute counter overrides for admin corrections.
type GameUpdate struct {
	CoinsEarned      *float64 `json:"coins_earned"`
	CoinsSpent       *float64 `json:"coins_spent"`
	CoinsRecharged   *float64 `json:"coins_recharged"`
	LastRechargeDate *string  `json:"last_recharge_date"`
}

func UpdateGame(gameID int64, update GameUpdate) (models.Game, error) {
	var game models.Game
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.Clauses(clause.Locking{Strength: "UPDATE"}).
			Where("game_id = ?", gameID).
			First(&game).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrGameNotFound
			}
			return err
		}

		if update.CoinsEarned != nil {
			v, err := helpers.ParseMoney(*update.CoinsEarned, true)
			if err != nil {
				return invalid("coins_earned", "must be a finite non-negative number")
			}
			game.CoinsEarned = v
		}
		if update.CoinsSpent != nil {
			v, err := helpers.ParseMoney(*update.CoinsSpent, true)
			if err != nil {
				return invalid("coins_spent", "must be a finite non-negative number")
			}
			game.CoinsSpent = v
		}
		if update.CoinsRecharged != nil {
			v, err := helpers.ParseMoney(*update.CoinsRecharged, true)
			if err != nil {
				return invalid("coins_recharged", "must be a finite non-negative number")
			}
			game.CoinsRecharged = v
		}
		if update.LastRechargeDate != nil {
			if *update.LastRechargeDate == "" {
				game.LastRechargeDate = nil
			} else {
				day, err := helpers.NormalizeDateString(*update.LastRechargeDate)
				if err != nil {
					return invalid("last_recharge_date", "is not a valid date")
				}
				game.LastRechargeDate = &day
			}
		}

		return tx.Save(&game).Error
	})
	return game, err
}

// DeleteGame removes the counter document. Entries referencing the game by
// name are left in place.
func DeleteGame(gameID int64) (models.Game, error) {
	var game models.Game
	if err := database.DB.Where("game_id = ?", gameID).First(&game).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.Game{}, ErrGameNotFound
		}
		return models.Game{}, err
	}
	if err := database.DB.Delete(&game).Error; err != nil {
		return models.Game{}, err
	}
	return game, nil
}
