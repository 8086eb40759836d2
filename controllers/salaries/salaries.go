package salaries

import (
	"errors"
	"log"
	"strconv"

	"coinadmin/helpers"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

func ListSalaries(c *fiber.Ctx) error {
	list, err := services.ListSalaries(c.Query("username"), c.Query("month"))
	if err != nil {
		log.Println("❌ GET /salaries error:", err)
		return helpers.JSONServerError(c, "Failed to load salaries")
	}
	return helpers.JSONSuccess(c, "Salaries loaded", list)
}

// UpsertSalary writes the one row per (username, month): created on first
// write, replaced on the next.
func UpsertSalary(c *fiber.Ctx) error {
	var req services.SalaryInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	record, err := services.UpsertSalary(req)
	switch {
	case err == nil:
		return helpers.JSONCreated(c, "Salary saved", record)
	case services.IsValidation(err):
		return helpers.JSONError(c, err.Error())
	default:
		log.Println("❌ POST /salaries error:", err)
		return helpers.JSONServerError(c, "Failed to save salary")
	}
}

func UpdateSalary(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "Invalid salary id")
	}

	var req services.SalaryPatch
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	record, err := services.UpdateSalary(uint(id), req)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Salary updated", record)
	case errors.Is(err, services.ErrSalaryNotFound):
		return helpers.JSONNotFound(c, err.Error())
	case services.IsValidation(err):
		return helpers.JSONError(c, err.Error())
	default:
		log.Println("❌ PUT /salaries/:id error:", err)
		return helpers.JSONServerError(c, "Failed to update salary")
	}
}

func DeleteSalary(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "Invalid salary id")
	}

	record, err := services.DeleteSalary(uint(id))
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Salary deleted", record)
	case errors.Is(err, services.ErrSalaryNotFound):
		return helpers.JSONNotFound(c, err.Error())
	default:
		log.Println("❌ DELETE /salaries/:id error:", err)
		return helpers.JSONServerError(c, "Failed to delete salary")
	}
}
