package handlers

import (
	"strconv"

	"github.com/gofiber/fiber/v2"

	"github.com/kyudon/police-intake/internal/dto"
	"github.com/kyudon/police-intake/internal/store"
)

// AdminHandler exposes the ops panel's read and cleanup endpoints over
// the report and case stores.
type AdminHandler struct {
	reports *store.Reports
	cases   *store.Cases
}

func NewAdminHandler(reports *store.Reports, cases *store.Cases) *AdminHandler {
	return &AdminHandler{reports: reports, cases: cases}
}

func (h *AdminHandler) ListReports(c *fiber.Ctx) error {
	guildID := c.Query("guild_id", "")
	status := c.Query("status", "")
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	reports, total, err := h.reports.List(guildID, status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch reports",
		})
	}

	return c.JSON(fiber.Map{
		"reports": reports,
		"total":   total,
		"limit":   limit,
		"offset":  offset,
	})
}

func (h *AdminHandler) DeleteReport(c *fiber.Ctx) error {
	id := c.Params("id")

	_, found, err := h.reports.ByID(id)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch report",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Report not found",
		})
	}

	if err := h.reports.Delete(id); err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to delete report",
		})
	}

	return c.JSON(fiber.Map{"message": "Report deleted successfully"})
}

func (h *AdminHandler) ListCases(c *fiber.Ctx) error {
	guildID := c.Query("guild_id", "")
	status := c.Query("status", "")
	limit, _ := strconv.Atoi(c.Query("limit", "20"))
	offset, _ := strconv.Atoi(c.Query("offset", "0"))

	if limit > 100 {
		limit = 100
	}

	cases, total, err := h.cases.List(guildID, status, limit, offset)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch cases",
		})
	}

	return c.JSON(fiber.Map{
		"cases":  cases,
		"total":  total,
		"limit":  limit,
		"offset": offset,
	})
}

func (h *AdminHandler) GetCase(c *fiber.Ctx) error {
	number := c.Params("number")

	record, found, err := h.cases.ByNumber(number)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{
			Error: true, Message: "Failed to fetch case",
		})
	}
	if !found {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{
			Error: true, Message: "Case not found",
		})
	}

	return c.JSON(record)
}
