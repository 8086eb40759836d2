package adminusers

import (
	"errors"
	"log"
	"strconv"
	"strings"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
)

func ListUsers(c *fiber.Ctx) error {
	var users []models.User
	if err := database.DB.Order("created_at desc").Find(&users).Error; err != nil {
		log.Println("❌ GET /admin/users error:", err)
		return helpers.JSONServerError(c, "Failed to fetch users")
	}
	return helpers.JSONSuccess(c, "Users loaded", users)
}

type UpdateTotalsRequest struct {
	TotalPayments *float64 `json:"total_payments"`
	TotalFreeplay *float64 `json:"total_freeplay"`
	TotalDeposit  *float64 `json:"total_deposit"`
	TotalRedeem   *float64 `json:"total_redeem"`
}

// UpdateTotals is the admin override for per-operator running totals.
func UpdateTotals(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "Invalid user id")
	}

	var req UpdateTotalsRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	var user models.User
	if err := database.DB.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "User not found")
		}
		log.Println("❌ PUT /admin/users/:id error:", err)
		return helpers.JSONServerError(c, "Failed to update user")
	}

	fields := map[string]*float64{
		"total_payments": req.TotalPayments,
		"total_freeplay": req.TotalFreeplay,
		"total_deposit":  req.TotalDeposit,
		"total_redeem":   req.TotalRedeem,
	}
	for name, value := range fields {
		if value == nil {
			continue
		}
		amount, err := helpers.ParseMoney(*value, true)
		if err != nil {
			return helpers.JSONError(c, name+" must be a finite non-negative number")
		}
		switch name {
		case "total_payments":
			user.TotalPayments = amount
		case "total_freeplay":
			user.TotalFreeplay = amount
		case "total_deposit":
			user.TotalDeposit = amount
		case "total_redeem":
			user.TotalRedeem = amount
		}
	}

	if err := database.DB.Save(&user).Error; err != nil {
		log.Println("❌ PUT /admin/users/:id error:", err)
		return helpers.JSONServerError(c, "Failed to update user")
	}
	return helpers.JSONSuccess(c, "User totals updated", user)
}

// DeleteUser removes an operator account. Admin accounts cannot be deleted.
func DeleteUser(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "Invalid user id")
	}

	var user models.User
	if err := database.DB.First(&user, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "User not found")
		}
		log.Println("❌ DELETE /admin/users/:id error:", err)
		return helpers.JSONServerError(c, "Failed to delete user")
	}

	if user.IsAdmin() || strings.EqualFold(user.Username, "admin") {
		return helpers.JSONForbidden(c, "Admin user cannot be deleted")
	}

	if err := database.DB.Delete(&user).Error; err != nil {
		log.Println("❌ DELETE /admin/users/:id error:", err)
		return helpers.JSONServerError(c, "Failed to delete user")
	}
	return helpers.JSONSuccess(c, "User deleted", user)
}
