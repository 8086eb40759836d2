package leads

import (
	"encoding/json"
	"errors"
	"log"
	"slices"
	"strconv"
	"strings"

	"coinadmin/database"
	"coinadmin/helpers"
	"coinadmin/models"

	"gorm.io/datatypes"
	"gorm.io/gorm"

	"github.com/gofiber/fiber/v2"
)

type LeadRequest struct {
	Name              string `json:"name"`
	Email             string `json:"email"`
	Phone             string `json:"phone"`
	ContactPreference string `json:"contact_preference"`
	FacebookLink      string `json:"facebook_link"`
}

func (r *LeadRequest) validate() error {
	r.Name = strings.TrimSpace(r.Name)
	r.Email = strings.ToLower(strings.TrimSpace(r.Email))
	if r.Name == "" || r.Email == "" {
		return errors.New("both name and email are required")
	}
	if !slices.Contains(models.ContactPreferences, r.ContactPreference) {
		return errors.New("contact_preference must be whatsapp, telegram or empty")
	}
	return nil
}

func ListLeads(c *fiber.Ctx) error {
	var list []models.FacebookLead
	if err := database.DB.Order("created_at desc").Find(&list).Error; err != nil {
		log.Println("❌ GET /facebook-leads error:", err)
		return helpers.JSONServerError(c, "Failed to load leads")
	}
	return helpers.JSONSuccess(c, "Leads loaded", list)
}

func CreateLead(c *fiber.Ctx) error {
	var req LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}
	if err := req.validate(); err != nil {
		return helpers.JSONError(c, err.Error())
	}

	// keep the submitted payload for later review
	raw, _ := json.Marshal(req)

	lead := models.FacebookLead{
		Name:              req.Name,
		Email:             req.Email,
		Phone:             strings.TrimSpace(req.Phone),
		ContactPreference: req.ContactPreference,
		FacebookLink:      strings.TrimSpace(req.FacebookLink),
		Source:            "facebook",
		Raw:               datatypes.JSON(raw),
	}
	if err := database.DB.Create(&lead).Error; err != nil {
		log.Println("❌ POST /facebook-leads error:", err)
		return helpers.JSONServerError(c, "Failed to save lead")
	}
	return helpers.JSONCreated(c, "Lead saved", lead)
}

func UpdateLead(c *fiber.Ctx) error {
	id, err := strconv.ParseUint(c.Params("id"), 10, 64)
	if err != nil {
		return helpers.JSONError(c, "Invalid lead id")
	}

	var req LeadRequest
	if err := c.BodyParser(&req); err != nil {
		return helpers.JSONError(c, "Invalid JSON body")
	}
	if err := req.validate(); err != nil {
		return helpers.JSONError(c, err.Error())
	}

	var lead models.FacebookLead
	if err := database.DB.First(&lead, uint(id)).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return helpers.JSONNotFound(c, "Lead not found")
		}
		log.Println("❌ PUT /facebook-leads/:id error:", err)
		return helpers.JSONServerError(c, "Failed to update lead")
	}

	lead.Name = req.Name
	lead.Email = req.Email
	lead.Phone = strings.TrimSpace(req.Phone)
	lead.ContactPreference = req.ContactPreference
	lead.FacebookLink = strings.TrimSpace(req.FacebookLink)

	if err := database.DB.Save(&lead).Error; err != nil {
		log.Println("❌ PUT /facebook-leads/:id error:", err)
		return helpers.JSONServerError(c, "Failed to update lead")
	}
	return helpers.JSONSuccess(c, "Lead updated", lead)
}
