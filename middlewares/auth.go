package middlewares

import (
	"strings"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

// RequireAuth resolves the Bearer token to an operator and attaches it to
// the request context.
func RequireAuth(c *fiber.Ctx) error {
	token, ok := strings.CutPrefix(c.Get("Authorization"), "Bearer ")
	if !ok || token == "" {
		return helpers.JSONUnauthorized(c, "Missing token")
	}

	userID, err := services.VerifyToken(token)
	if err != nil {
		return helpers.JSONUnauthorized(c, "Invalid token")
	}

	var user models.User
	if err := database.DB.First(&user, userID).Error; err != nil {
		return helpers.JSONUnauthorized(c, "Invalid token")
	}

	c.Locals("user", user)
	return c.Next()
}

// RequireAdmin gates destructive operations. Must run after RequireAuth.
func RequireAdmin(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c, "Missing token")
	}
	if !user.IsAdmin() {
		return helpers.JSONForbidden(c, "Admin access required")
	}
	return c.Next()
}
