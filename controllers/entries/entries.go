package entries

import (
	"log"
	"strconv"

	"coinadmin/helpers"
	"coinadmin/models"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

type CreateEntryRequest struct {
	services.EntryInput

	// when set, one entry per game name is written with the same
	// financial parameters
	GameNames []string `json:"game_names"`
}

func CreateEntry(c *fiber.Ctx) error {
	var req CreateEntryRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	if operator, ok := c.Locals("user").(models.User); ok && req.Username == "" {
		req.Username = operator.Username
	}

	if len(req.GameNames) > 0 {
		batch, err := services.RecordEntryBatch(req.EntryInput, req.GameNames)
		if err != nil {
			return entryError(c, err, "POST /game-entries")
		}
		return helpers.JSONCreated(c, "Entries saved", batch)
	}

	entry, err := services.RecordEntry(req.EntryInput)
	if err != nil {
		return entryError(c, err, "POST /game-entries")
	}
	return helpers.JSONCreated(c, "Entry saved", entry)
}

func ListEntries(c *fiber.Ctx) error {
	filter := services.EntryFilter{
		Username:   c.Query("username"),
		PlayerName: c.Query("player_name"),
		PlayerTag:  c.Query("player_tag"),
		Type:       c.Query("type"),
		From:       c.Query("from"),
		To:         c.Query("to"),
		Limit:      c.QueryInt("limit"),
	}

	if raw := c.Query("is_pending"); raw != "" {
		if pending, err := strconv.ParseBool(raw); err == nil {
			filter.IsPending = &pending
		}
	}

	list, err := services.ListEntries(filter)
	if err != nil {
		return entryError(c, err, "GET /game-entries")
	}
	return helpers.JSONSuccess(c, "Entries loaded", list)
}

func entryError(c *fiber.Ctx, err error, route string) error {
	if services.IsValidation(err) {
		return helpers.JSONError(c, err.Error())
	}
	log.Printf("❌ %s error: %v", route, err)
	return helpers.JSONServerError(c, "Failed to process entries")
}
