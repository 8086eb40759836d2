package leads

import (
	"bytes"
	"encoding/csv"
	"fmt"
	"log"
	"time"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"github.com/gofiber/fiber/v2"
)

// ExportCSV streams the lead table as a spreadsheet-friendly CSV file.
func ExportCSV(c *fiber.Ctx) error {
	var list []models.FacebookLead
	if err := database.DB.Order("created_at desc").Find(&list).Error; err != nil {
		log.Println("❌ GET /facebook-leads/export error:", err)
		return helpers.JSONServerError(c, "Failed to export leads")
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)

	_ = w.Write([]string{"Name", "Email", "Phone", "Contact Preference", "Facebook Link", "Source", "Created At"})
	for _, lead := range list {
		_ = w.Write([]string{
			lead.Name,
			lead.Email,
			lead.Phone,
			lead.ContactPreference,
			lead.FacebookLink,
			lead.Source,
			lead.CreatedAt.UTC().Format(time.RFC3339),
		})
	}
	w.Flush()
	if err := w.Error(); err != nil {
		log.Println("❌ GET /facebook-leads/export error:", err)
		return helpers.JSONServerError(c, "Failed to export leads")
	}

	fileName := fmt.Sprintf("facebook_leads_%d.csv", time.Now().UnixMilli())
	c.Set(fiber.HeaderContentType, "text/csv")
	c.Set(fiber.HeaderContentDisposition, fmt.Sprintf("attachment; filename=%q", fileName))
	return c.Send(buf.Bytes())
}
