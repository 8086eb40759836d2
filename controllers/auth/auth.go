package auth

import (
	"errors"
	"log"

	"coinadmin/helpers"
	"coinadmin/models"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

func Login(c *fiber.Ctx) error {
	var req LoginRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}
	if req.Email == "" || req.Password == "" {
		return helpers.JSONError(c, "email and password are required")
	}

	user, token, err := services.Login(req.Email, req.Password)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Logged in", fiber.Map{
			"token": token,
			"user":  user,
		})
	case errors.Is(err, services.ErrInvalidCredentials):
		return helpers.JSONUnauthorized(c, err.Error())
	default:
		log.Println("❌ POST /auth/login error:", err)
		return helpers.JSONServerError(c, "Failed to log in")
	}
}

func Logout(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c, "Missing token")
	}

	if err := services.Logout(user); err != nil {
		log.Println("❌ POST /auth/logout error:", err)
		return helpers.JSONServerError(c, "Failed to log out")
	}
	return helpers.JSONSuccess(c, "Logged out", nil)
}

func Me(c *fiber.Ctx) error {
	user, ok := c.Locals("user").(models.User)
	if !ok {
		return helpers.JSONUnauthorized(c, "Missing token")
	}
	return helpers.JSONSuccess(c, "Current user", user)
}
