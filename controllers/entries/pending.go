package entries

import (
	"errors"
	"log"
	"strconv"

	"coinadmin/helpers"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

type ClearPendingRequest struct {
	TotalPaid *float64 `json:"total_paid"`
	Reduction *float64 `json:"reduction"`
}

// ClearPending settles the pending balance of one entry. Calling it again
// on an already-cleared entry changes nothing.
func ClearPending(c *fiber.Ctx) error {
	entryID, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "Invalid entry id")
	}

	var req ClearPendingRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	entry, err := services.ClearPending(uint(entryID), req.TotalPaid, req.Reduction)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Pending cleared", entry)
	case errors.Is(err, services.ErrEntryNotFound):
		return helpers.JSONNotFound(c, err.Error())
	case services.IsValidation(err):
		return helpers.JSONError(c, err.Error())
	default:
		log.Println("❌ POST /game-entries/:id/clear-pending error:", err)
		return helpers.JSONServerError(c, "Failed to clear pending")
	}
}

// FindPendingByTag returns the most recent still-pending redeem for a tag.
func FindPendingByTag(c *fiber.Ctx) error {
	playerTag := c.Query("player_tag")
	if playerTag == "" {
		return helpers.JSONError(c, "player_tag is required")
	}

	entry, err := services.FindPendingByTag(playerTag, c.Query("username"))
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Pending entry found", entry)
	case errors.Is(err, services.ErrEntryNotFound):
		return helpers.JSONNotFound(c, err.Error())
	default:
		log.Println("❌ GET /game-entries/pending/by-tag error:", err)
		return helpers.JSONServerError(c, "Failed to load pending entry")
	}
}

func ListPending(c *fiber.Ctx) error {
	list, err := services.ListPending(c.Query("username"))
	if err != nil {
		log.Println("❌ GET /game-entries/pending error:", err)
		return helpers.JSONServerError(c, "Failed to load pending entries")
	}
	return helpers.JSONSuccess(c, "Pending entries loaded", list)
}
