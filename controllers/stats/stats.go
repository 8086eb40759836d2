package stats

import (
	"log"

	"coinadmin/helpers"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

// GameCoins serves the dashboard chart: per-day per-game coin deltas over
// a trailing window (day, week, month or year).
func GameCoins(c *fiber.Ctx) error {
	rows, err := services.GameCoinsOverRange(c.Query("range", "week"))
	if err != nil {
		log.Println("❌ GET /stats/game-coins error:", err)
		return helpers.JSONServerError(c, "Failed to load stats")
	}
	return helpers.JSONSuccess(c, "Stats loaded", rows)
}
