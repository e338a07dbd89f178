package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/gstbill/billing-api/internal/application/dto"
	"github.com/gstbill/billing-api/internal/application/usecase"
	"github.com/gstbill/billing-api/pkg/logger"
)

// StatsHandler serves the dashboard aggregates (protected).
type StatsHandler struct {
	uc  *usecase.StatsUseCase
	log *logger.Logger
}

// NewStatsHandler builds the handler.
func NewStatsHandler(uc *usecase.StatsUseCase, log *logger.Logger) *StatsHandler {
	return &StatsHandler{uc: uc, log: log}
}

// GetStats GET /api/stats?companyId
//
// Counts quotations and challans by draft/sent and invoices by
// draft/paid/unpaid with amount totals, for one company of the user.
func (h *StatsHandler) GetStats(c *fiber.Ctx) error {
	userID := GetUserID(c)
	if userID == "" {
		return c.Status(fiber.StatusUnauthorized).JSON(dto.Unauthorized())
	}
	companyID := c.Query("companyId")
	if companyID == "" {
		return badRequest(c, "companyId", "Company ID is required")
	}
	stats, err := h.uc.GetStats(c.Context(), userID, companyID)
	if err != nil {
		return respondError(c, h.log, err)
	}
	return c.JSON(dto.OK(stats))
}
