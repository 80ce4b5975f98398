package http

import (
	"github.com/gofiber/fiber/v2"
	"github.com/jmestre/joyeria-api/internal/application/analytics"
	"github.com/jmestre/joyeria-api/internal/application/dto"
)

// DashboardHandler expone el resumen del back-office (protegido).
type DashboardHandler struct {
	dashboardUC *analytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(dashboardUC *analytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{dashboardUC: dashboardUC}
}

// GetSummary godoc
// @Summary      Resumen del dashboard
// @Description  Totales de la bóveda, lotes con stock bajo, pedidos por estado y movimientos recientes.
// @Tags         dashboard
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryDTO
// @Failure      500  {object}  dto.ErrorResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) GetSummary(c *fiber.Ctx) error {
	summary, err := h.dashboardUC.GetSummary(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(summary)
}
