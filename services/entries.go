package services

import (
	"errors"
	"slices"
	"strings"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

const (
	defaultEntryLimit = 30
	maxEntryLimit     = 200
)

// EntryInput is the flat request shape for one game entry. Bonus and final
// amounts are always derived here; client-sent values for them are ignored.
type EntryInput struct {
	Type      string `json:"type"`
	Method    string `json:"method"`
	Username  string `json:"username"`
	CreatedBy string `json:"created_by"`

	// our-tag flow sends player_name, player-tag flow sends player_tag;
	// at least one must be present
	PlayerName string `json:"player_name"`
	PlayerTag  string `json:"player_tag"`

	GameName string `json:"game_name"`

	AmountBase float64 `json:"amount_base"`
	BonusRate  float64 `json:"bonus_rate"`

	Note string `json:"note"`
	Date string `json:"date"`

	TotalPaid    float64  `json:"total_paid"`
	TotalCashout float64  `json:"total_cashout"`
	RemainingPay float64  `json:"remaining_pay"`
	Reduction    *float64 `json:"reduction"`
	IsPending    bool     `json:"is_pending"`
}

// BuildEntry validates the input and derives every computed field. It never
// touches storage, so the ledger rules stay testable on their own.
func BuildEntry(in EntryInput) (models.GameEntry, error) {
	var entry models.GameEntry

	if !slices.Contains(models.EntryTypes, in.Type) {
		return entry, invalid("type", "must be freeplay, deposit or redeem")
	}

	username := strings.TrimSpace(in.Username)
	if username == "" {
		return entry, invalid("username", "is required")
	}

	playerName := strings.TrimSpace(in.PlayerName)
	playerTag := strings.TrimSpace(in.PlayerTag)
	if playerName == "" && playerTag == "" {
		return entry, invalid("player_name or player_tag", "is required")
	}

	gameName := strings.TrimSpace(in.GameName)
	if gameName == "" {
		return entry, invalid("game_name", "is required")
	}

	method := ""
	if in.Type == models.EntryDeposit || in.Type == models.EntryRedeem {
		method = strings.TrimSpace(in.Method)
		if method == "" {
			return entry, invalid("method", "is required for deposit and redeem")
		}
		if !slices.Contains(models.EntryMethods, method) {
			return entry, invalid("method", "must be cashapp, paypal, chime or venmo")
		}
	}

	base, err := helpers.ParseMoney(in.AmountBase, true)
	if err != nil {
		return entry, invalid("amount_base", "must be a finite non-negative number")
	}

	// bonus applies to deposits only
	rate := decimal.Zero
	bonus := decimal.Zero
	final := base
	if in.Type == models.EntryDeposit {
		rate, err = helpers.ParseMoney(in.BonusRate, true)
		if err != nil {
			return entry, invalid("bonus_rate", "must be a finite non-negative number")
		}
		bonus = base.Mul(rate).Div(decimal.NewFromInt(100)).Round(2)
		final = base.Add(bonus)
	}

	totalPaid, err := helpers.ParseMoney(in.TotalPaid, true)
	if err != nil {
		return entry, invalid("total_paid", "must be a finite non-negative number")
	}
	totalCashout, err := helpers.ParseMoney(in.TotalCashout, true)
	if err != nil {
		return entry, invalid("total_cashout", "must be a finite non-negative number")
	}
	remainingPay, err := helpers.ParseMoney(in.RemainingPay, true)
	if err != nil {
		return entry, invalid("remaining_pay", "must be a finite non-negative number")
	}

	reduction := helpers.ClampZero(base.Sub(totalCashout))
	if in.Reduction != nil {
		reduction, err = helpers.ParseMoney(*in.Reduction, true)
		if err != nil {
			return entry, invalid("reduction", "must be a finite non-negative number")
		}
	}

	date := helpers.Today()
	if strings.TrimSpace(in.Date) != "" {
		date, err = helpers.NormalizeDateString(in.Date)
		if err != nil {
			return entry, invalid("date", "is not a valid date")
		}
	}

	createdBy := strings.TrimSpace(in.CreatedBy)
	if createdBy == "" {
		createdBy = username
	}

	entry = models.GameEntry{
		Type:         in.Type,
		Method:       method,
		Username:     username,
		CreatedBy:    createdBy,
		PlayerName:   playerName,
		PlayerTag:    playerTag,
		GameName:     gameName,
		AmountBase:   base,
		BonusRate:    rate,
		BonusAmount:  bonus,
		AmountFinal:  final,
		Note:         strings.TrimSpace(in.Note),
		Date:         date,
		TotalPaid:    totalPaid,
		TotalCashout: totalCashout,
		RemainingPay: remainingPay,
		IsPending:    in.IsPending,
		ExtraMoney:   helpers.ClampZero(totalPaid.Sub(totalCashout)),
		Reduction:    reduction,
	}
	return entry, nil
}

func RecordEntry(in EntryInput) (models.GameEntry, error) {
	entry, err := BuildEntry(in)
	if err != nil {
		return models.GameEntry{}, err
	}
	if err := database.DB.Create(&entry).Error; err != nil {
		return models.GameEntry{}, err
	}
	return entry, nil
}

// RecordEntryBatch writes one entry per game name, all sharing the same
// financial parameters. Validation runs for the whole batch before anything
// is persisted; the write is all-or-nothing.
func RecordEntryBatch(in EntryInput, gameNames []string) ([]models.GameEntry, error) {
	if len(gameNames) == 0 {
		return nil, invalid("game_names", "must not be empty")
	}

	entries := make([]models.GameEntry, 0, len(gameNames))
	for _, name := range gameNames {
		perGame := in
		perGame.GameName = name
		entry, err := BuildEntry(perGame)
		if err != nil {
			return nil, err
		}
		entries = append(entries, entry)
	}

	err := database.DB.Transaction(func(tx *gorm.DB) error {
		return tx.Create(&entries).Error
	})
	if err != nil {
		return nil, err
	}
	return entries, nil
}

// ApplyClearPending settles the pending balance that applies to the entry's
// type. Redeem entries get their remaining pay zeroed (full settlement
// unless a total-paid override says otherwise); player-tag deposits get
// their reduction cleared. Fields that don't apply are left alone, so
// clearing an already-cleared entry is a no-op.
func ApplyClearPending(entry *models.GameEntry, totalPaidOverride, reductionOverride *float64) error {
	switch entry.Type {
	case models.EntryRedeem:
		if totalPaidOverride != nil {
			paid, err := helpers.ParseMoney(*totalPaidOverride, true)
			if err != nil {
				return invalid("total_paid", "must be a finite non-negative number")
			}
			entry.TotalPaid = paid
		} else {
			entry.TotalPaid = entry.TotalPaid.Add(entry.RemainingPay)
		}
		entry.RemainingPay = decimal.Zero
		entry.IsPending = false
		entry.ExtraMoney = helpers.ClampZero(entry.TotalPaid.Sub(entry.TotalCashout))
	case models.EntryDeposit:
		if entry.PlayerTag == "" {
			return nil
		}
		if reductionOverride != nil {
			reduction, err := helpers.ParseMoney(*reductionOverride, true)
			if err != nil {
				return invalid("reduction", "must be a finite non-negative number")
			}
			entry.Reduction = reduction
		} else {
			entry.Reduction = decimal.Zero
		}
	}
	return nil
}

func ClearPending(entryID uint, totalPaidOverride, reductionOverride *float64) (models.GameEntry, error) {
	var entry models.GameEntry
	err := database.DB.Transaction(func(tx *gorm.DB) error {
		if err := tx.First(&entry, entryID).Error; err != nil {
			if errors.Is(err, gorm.ErrRecordNotFound) {
				return ErrEntryNotFound
			}
			return err
		}
		if err := ApplyClearPending(&entry, totalPaidOverride, reductionOverride); err != nil {
			return err
		}
		return tx.Save(&entry).Error
	})
	return entry, err
}

// FindPendingByTag returns the most recent redeem entry still carrying a
// remaining pay for the tag, optionally scoped to one operator.
func FindPendingByTag(playerTag, username string) (models.GameEntry, error) {
	q := database.DB.
		Where("type = ? AND player_tag = ? AND remaining_pay > 0", models.EntryRedeem, strings.TrimSpace(playerTag))
	if username = strings.TrimSpace(username); username != "" {
		q = q.Where("username = ?", username)
	}

	var entry models.GameEntry
	if err := q.Order("created_at desc").First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return models.GameEntry{}, ErrEntryNotFound
		}
		return models.GameEntry{}, err
	}
	return entry, nil
}

// ListPending unions the two pending flows: redeems with remaining pay and
// player-tag deposits with an open reduction.
func ListPending(username string) ([]models.GameEntry, error) {
	q := database.DB.Where(
		"(type = ? AND remaining_pay > 0) OR (type = ? AND player_tag <> '' AND reduction > 0)",
		models.EntryRedeem, models.EntryDeposit,
	)
	if username = strings.TrimSpace(username); username != "" {
		q = q.Where("username = ?", username)
	}

	var entries []models.GameEntry
	err := q.Order("created_at desc").Find(&entries).Error
	return entries, err
}

type EntryFilter struct {
	Username   string
	PlayerName string
	PlayerTag  string
	Type       string
	IsPending  *bool
	From       string
	To         string
	Limit      int
}

func clampLimit(limit int) int {
	if limit <= 0 {
		return defaultEntryLimit
	}
	if limit > maxEntryLimit {
		return maxEntryLimit
	}
	return limit
}

func ListEntries(filter EntryFilter) ([]models.GameEntry, error) {
	q := database.DB.Model(&models.GameEntry{})

	if u := strings.TrimSpace(filter.Username); u != "" {
		q = q.Where("username = ?", u)
	}
	if p := strings.TrimSpace(filter.PlayerName); p != "" {
		q = q.Where("player_name = ?", p)
	}
	if t := strings.TrimSpace(filter.PlayerTag); t != "" {
		q = q.Where("player_tag = ?", t)
	}
	if slices.Contains(models.EntryTypes, filter.Type) {
		q = q.Where("type = ?", filter.Type)
	}
	if filter.IsPending != nil {
		q = q.Where("is_pending = ?", *filter.IsPending)
	}

	if filter.From != "" {
		from, err := helpers.NormalizeDateString(filter.From)
		if err != nil {
			return nil, invalid("from", "is not a valid date")
		}
		q = q.Where("date >= ?", from)
	}
	if filter.To != "" {
		to, err := helpers.NormalizeDateString(filter.To)
		if err != nil {
			return nil, invalid("to", "is not a valid date")
		}
		q = q.Where("date <= ?", to)
	}

	var entries []models.GameEntry
	err := q.Order("created_at desc").Limit(clampLimit(filter.Limit)).Find(&entries).Error
	return entries, err
}
