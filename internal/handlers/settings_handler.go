package handlers

import (
	"log"
	"watchstore/internal/models"
	"watchstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// SettingsHandler serves the back-office settings toggles.
type SettingsHandler struct {
	service *services.SettingsService
}

// NewSettingsHandler creates a new SettingsHandler.
func NewSettingsHandler(service *services.SettingsService) *SettingsHandler {
	return &SettingsHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the settings routes.
func (h *SettingsHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/settings", h.HandleGetSettings)
	router.Put("/settings", h.HandleSaveSettings)
}

// HandleGetSettings returns the stored settings merged over defaults.
func (h *SettingsHandler) HandleGetSettings(c *fiber.Ctx) error {
	settings, err := h.service.GetSettings()
	if err != nil {
		log.Printf("Error getting settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not retrieve settings",
		})
	}
	return c.JSON(settings)
}

// HandleSaveSettings upserts every toggle.
func (h *SettingsHandler) HandleSaveSettings(c *fiber.Ctx) error {
	var settings models.StoreSettings
	if err := c.BodyParser(&settings); err != nil {
		log.Printf("Error parsing settings request body: %v", err)
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
			"message": "Invalid request body",
			"error":   err.Error(),
		})
	}

	if err := h.service.SaveSettings(settings); err != nil {
		log.Printf("Error saving settings: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not save settings",
		})
	}
	return c.JSON(fiber.Map{
		"message": "Settings saved successfully",
	})
}
