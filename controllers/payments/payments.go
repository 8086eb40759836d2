package payments

import (
	"log"

	"coinadmin/helpers"
	"coinadmin/services"

	"github.com/gofiber/fiber/v2"
)

// RecordCashIn books money entering the house pool. Fresh totals are
// returned with every mutation so dashboards never show stale balances.
func RecordCashIn(c *fiber.Ctx) error {
	var req services.CashInInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	payment, totals, err := services.RecordCashIn(req)
	if err != nil {
		return paymentError(c, err, "POST /payments/cashin")
	}
	return helpers.JSONCreated(c, "Cash-in recorded", fiber.Map{
		"payment": payment,
		"totals":  totals,
	})
}

func RecordCashOut(c *fiber.Ctx) error {
	var req services.CashOutInput
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}

	payment, totals, err := services.RecordCashOut(req)
	if err != nil {
		return paymentError(c, err, "POST /payments/cashout")
	}
	return helpers.JSONCreated(c, "Cash-out recorded", fiber.Map{
		"payment": payment,
		"totals":  totals,
	})
}

func ListPayments(c *fiber.Ctx) error {
	filter := services.PaymentFilter{
		Method: c.Query("method"),
		TxType: c.Query("tx_type"),
		From:   c.Query("from"),
		To:     c.Query("to"),
		Limit:  c.QueryInt("limit"),
	}

	list, err := services.ListPayments(filter)
	if err != nil {
		return paymentError(c, err, "GET /payments")
	}
	return helpers.JSONSuccess(c, "Payments loaded", list)
}

func paymentError(c *fiber.Ctx, err error, route string) error {
	if services.IsValidation(err) {
		return helpers.JSONError(c, err.Error())
	}
	log.Printf("❌ %s error: %v", route, err)
	return helpers.JSONServerError(c, "Failed to process payment")
}
