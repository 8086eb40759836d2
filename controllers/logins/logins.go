package logins

import (
	"errors"
	"log"
	"strconv"
	"time"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
)

// ListSessions feeds the staff login table with the latest records.
func ListSessions(c *fiber.Ctx) error {
	var sessions []models.LoginSession
	if err := database.DB.Order("created_at desc").Limit(100).Find(&sessions).Error; err != nil {
		log.Println("❌ GET /logins error:", err)
		return helpers.JSONServerError(c, "Failed to fetch login records")
	}
	return helpers.JSONSuccess(c, "Login records loaded", sessions)
}

type StartSessionRequest struct {
	Username string `json:"username"`
	Email    string `json:"email"`
}

func StartSession(c *fiber.Ctx) error {
	var req StartSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}
	if req.Username == "" || req.Email == "" {
		return helpers.JSONError(c, "username and email are required")
	}

	session := models.LoginSession{
		Username: req.Username,
		Email:    req.Email,
		SignInAt: time.Now(),
	}
	if err := database.DB.Create(&session).Error; err != nil {
		log.Println("❌ POST /logins/start error:", err)
		return helpers.JSONServerError(c, "Failed to create login record")
	}
	return helpers.JSONCreated(c, "Login recorded", session)
}

type EndSessionRequest struct {
	SessionID uint `json:"session_id"`
}

func EndSession(c *fiber.Ctx) error {
	var req EndSessionRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}
	if req.SessionID == 0 {
		return helpers.JSONError(c, "session_id is required")
	}

	var session models.LoginSession
	if err := database.DB.First(&session, req.SessionID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "Session not found")
		}
		log.Println("❌ POST /logins/end error:", err)
		return helpers.JSONServerError(c, "Failed to update login record")
	}

	now := time.Now()
	session.SignOutAt = &now
	if err := database.DB.Save(&session).Error; err != nil {
		log.Println("❌ POST /logins/end error:", err)
		return helpers.JSONServerError(c, "Failed to update login record")
	}
	return helpers.JSONSuccess(c, "Logout recorded", session)
}

func GetSession(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "Invalid session id")
	}

	var session models.LoginSession
	if err := database.DB.First(&session, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "Session not found")
		}
		log.Println("❌ GET /logins/:id error:", err)
		return helpers.JSONServerError(c, "Failed to fetch login record")
	}
	return helpers.JSONSuccess(c, "Login record loaded", session)
}
