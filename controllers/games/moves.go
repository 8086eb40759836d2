package games

import (
	"errors"
	"log"

	"coinadmin/helpers"
	"coinadmin/models"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

type AddMovesRequest struct {
	services.MoveDeltas
	Username string `json:"username"`
}

// AddMoves applies one accumulating move to a game's counters.
func AddMoves(c *fiber.Ctx) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return helpers.JSONError(c, "Invalid game id")
	}

	var req AddMovesRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	username := req.Username
	if operator, ok := c.Locals("user").(models.User); ok && username == "" {
		username = operator.Username
	}

	game, err := services.ApplyMove(gameID, req.MoveDeltas, username)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Game moves applied", game)
	case errors.Is(err, services.ErrGameNotFound):
		return helpers.JSONNotFound(c, err.Error())
	case services.IsValidation(err):
		return helpers.JSONError(c, err.Error())
	default:
		log.Println("❌ POST /games/:id/add-moves error:", err)
		return helpers.JSONServerError(c, "Failed to update game moves")
	}
}

// ResetRecharge opens a new recharge cycle for the game.
func ResetRecharge(c *fiber.Ctx) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return helpers.JSONError(c, "Invalid game id")
	}

	game, err := services.ResetRecharge(gameID)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Recharge reset", game)
	case errors.Is(err, services.ErrGameNotFound):
		return helpers.JSONNotFound(c, err.Error())
	default:
		log.Println("❌ POST /games/:id/reset-recharge error:", err)
		return helpers.JSONServerError(c, "Failed to reset recharge")
	}
}
