package games

import (
	"errors"
	"log"
	"strconv"

	"coinadmin/helpers"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

type CreateGameRequest struct {
	Name           string  `json:"name"`
	CoinsEarned    float64 `json:"coins_earned"`
	CoinsSpent     float64 `json:"coins_spent"`
	CoinsRecharged float64 `json:"coins_recharged"`
}

// ListGames returns full game rows, or just sorted distinct names when the
// ?q= autocomplete query is present.
func ListGames(c *fiber.Ctx) error {
	if q := c.Query("q"); q != "" {
		names, err := services.SuggestGameNames(q)
		if err != nil {
			log.Println("❌ GET /games suggest error:", err)
			return helpers.JSONServerError(c, "Failed to load games")
		}
		return helpers.JSONSuccess(c, "Game names loaded", names)
	}

	games, err := services.ListGames()
	if err != nil {
		log.Println("❌ GET /games error:", err)
		return helpers.JSONServerError(c, "Failed to load games")
	}
	return helpers.JSONSuccess(c, "Games loaded", games)
}

func CreateGame(c *fiber.Ctx) error {
	var req CreateGameRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	game, err := services.CreateGame(req.Name, req.CoinsEarned, req.CoinsSpent, req.CoinsRecharged)
	switch {
	case err == nil:
		return helpers.JSONCreated(c, "Game created", game)
	case errors.Is(err, services.ErrDuplicateGame):
		return helpers.JSONConflict(c, err.Error())
	case services.IsValidation(err):
		return helpers.JSONError(c, err.Error())
	default:
		log.Println("❌ POST /games error:", err)
		return helpers.JSONServerError(c, "Failed to create game")
	}
}

func UpdateGame(c *fiber.Ctx) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return helpers.JSONError(c, "Invalid game id")
	}

	var req services.GameUpdate
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	game, err := services.UpdateGame(gameID, req)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Game updated", game)
	case errors.Is(err, services.ErrGameNotFound):
		return helpers.JSONNotFound(c, err.Error())
	case services.IsValidation(err):
		return helpers.JSONError(c, err.Error())
	default:
		log.Println("❌ PUT /games/:id error:", err)
		return helpers.JSONServerError(c, "Failed to update game")
	}
}

func DeleteGame(c *fiber.Ctx) error {
	gameID, err := parseGameID(c)
	if err != nil {
		return helpers.JSONError(c, "Invalid game id")
	}

	game, err := services.DeleteGame(gameID)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Game deleted", game)
	case errors.Is(err, services.ErrGameNotFound):
		return helpers.JSONNotFound(c, err.Error())
	default:
		log.Println("❌ DELETE /games/:id error:", err)
		return helpers.JSONServerError(c, "Failed to delete game")
	}
}

func parseGameID(c *fiber.Ctx) (int64, error) {
	return strconv.ParseInt(c.Params("id"), 10, 64)
}
