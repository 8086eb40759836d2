package payments

import (
	"errors"
	"log"

	"coinadmin/helpers"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

func UpdatePayment(c *fiber.Ctx) error {
	var req services.PaymentPatch
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	payment, totals, err := services.UpdatePayment(c.Params("id"), req)
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Payment updated", fiber.Map{
			"payment": payment,
			"totals":  totals,
		})
	case errors.Is(err, services.ErrPaymentNotFound):
		return helpers.JSONNotFound(c, err.Error())
	case services.IsValidation(err):
		return helpers.JSONError(c, err.Error())
	default:
		log.Println("❌ PUT /payments/:id error:", err)
		return helpers.JSONServerError(c, "Failed to update payment")
	}
}

func DeletePayment(c *fiber.Ctx) error {
	payment, totals, err := services.DeletePayment(c.Params("id"))
	switch {
	case err == nil:
		return helpers.JSONSuccess(c, "Payment deleted", fiber.Map{
			"payment": payment,
			"totals":  totals,
		})
	case errors.Is(err, services.ErrPaymentNotFound):
		return helpers.JSONNotFound(c, err.Error())
	default:
		log.Println("❌ DELETE /payments/:id error:", err)
		return helpers.JSONServerError(c, "Failed to delete payment")
	}
}

// GetTotals recomputes the per-method balances from the full ledger.
func GetTotals(c *fiber.Ctx) error {
	totals, err := services.ComputeTotals()
	if err != nil {
		log.Println("❌ GET /payments/totals error:", err)
		return helpers.JSONServerError(c, "Failed to compute totals")
	}
	return helpers.JSONSuccess(c, "Totals computed", totals)
}
