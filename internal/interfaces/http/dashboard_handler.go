package http

import (
	"github.com/gofiber/fiber/v2"
	appanalytics "github.com/tu-usuario/scrapmaster-api/internal/application/analytics"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
)

// DashboardHandler maneja el endpoint de estadísticas del dashboard.
type DashboardHandler struct {
	uc *appanalytics.DashboardUseCase
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *appanalytics.DashboardUseCase) *DashboardHandler {
	return &DashboardHandler{uc: uc}
}

// Stats godoc
// @Summary      Estadísticas del dashboard (acotadas por rol)
// @Tags         dashboard
// @Security     Session
// @Produce      json
// @Success      200  {object}  dto.AdminStatsResponse
// @Failure      401  {object}  dto.ErrorResponse
// @Router       /api/dashboard/stats [get]
//
// Respuesta para rol user: dto.UserStatsResponse (solo sus ítems y ganancias).
func (h *DashboardHandler) Stats(c *fiber.Ctx) error {
	user := CurrentUser(c)

	if user.IsAdmin() {
		out, err := h.uc.AdminStats(c.Context())
		if err != nil {
			return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
		}
		return c.JSON(out)
	}

	out, err := h.uc.UserStats(c.Context(), user.ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}
