package handlers

import (
	"log"
	"strings"
	"time"
	"watchstore/internal/models"
	"watchstore/internal/repositories"
	"watchstore/internal/services"

	"github.com/gofiber/fiber/v2"
)

// DashboardHandler serves the admin dashboard statistics.
type DashboardHandler struct {
	service *services.DashboardService
}

// NewDashboardHandler creates a new DashboardHandler.
func NewDashboardHandler(service *services.DashboardService) *DashboardHandler {
	return &DashboardHandler{
		service: service,
	}
}

// RegisterAdminRoutes registers the dashboard routes.
func (h *DashboardHandler) RegisterAdminRoutes(router fiber.Router) {
	router.Get("/dashboard/stats", h.HandleStats)
}

// HandleStats computes dashboard statistics for an optional date range
// (start_date / end_date as 2006-01-02) and status filter (comma
// separated). Omitted parameters use the service defaults.
func (h *DashboardHandler) HandleStats(c *fiber.Ctx) error {
	var period repositories.StatsPeriod

	if raw := c.Query("start_date"); raw != "" {
		start, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "start_date must be formatted as YYYY-MM-DD",
			})
		}
		period.Start = start
	}
	if raw := c.Query("end_date"); raw != "" {
		end, err := time.Parse("2006-01-02", raw)
		if err != nil {
			return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{
				"message": "end_date must be formatted as YYYY-MM-DD",
			})
		}
		// Include the whole end day.
		period.End = end.Add(24*time.Hour - time.Nanosecond)
	}
	if raw := c.Query("status"); raw != "" {
		for _, status := range strings.Split(raw, ",") {
			period.Statuses = append(period.Statuses, models.OrderStatus(strings.TrimSpace(status)))
		}
	}

	stats, err := h.service.Stats(period)
	if err != nil {
		log.Printf("Error computing dashboard stats: %v", err)
		return c.Status(fiber.StatusInternalServerError).JSON(fiber.Map{
			"message": "Could not compute dashboard statistics",
		})
	}
	return c.JSON(stats)
}
