package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/analytics"
)

// DashboardHandler maneja los endpoints del tablero.
type DashboardHandler struct {
	uc          *analytics.DashboardUseCase
	defaultTake int
	defaultDays int
}

// NewDashboardHandler construye el handler.
func NewDashboardHandler(uc *analytics.DashboardUseCase, defaultTake, defaultDays int) *DashboardHandler {
	return &DashboardHandler{uc: uc, defaultTake: defaultTake, defaultDays: defaultDays}
}

// Summary godoc
// @Summary      Resumen del tablero
// @Description  Total de artículos, stock total, artículos en mínimo y
//
//	movimientos de los últimos 7 días. Sin parámetros.
//
// @Tags         dashboard
// @Produce      json
// @Success      200  {object}  dto.DashboardSummaryResponse
// @Router       /api/dashboard/summary [get]
func (h *DashboardHandler) Summary(c *fiber.Ctx) error {
	return c.JSON(h.uc.Summary())
}

// Activity godoc
// @Summary      Actividad reciente
// @Description  Entradas y salidas de todos los artículos, más recientes primero.
// @Tags         dashboard
// @Produce      json
// @Param        take  query  int  false  "Máximo de movimientos (por defecto 20)"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/dashboard/activity [get]
func (h *DashboardHandler) Activity(c *fiber.Ctx) error {
	take := clampQueryInt(c, "take", h.defaultTake, 1, maxTake)
	return c.JSON(h.uc.Activity(take))
}

// Trend godoc
// @Summary      Tendencia diaria de movimientos
// @Description  Un punto por día calendario UTC con los totales de entradas y
//
//	salidas; los días sin actividad reportan cero.
//
// @Tags         dashboard
// @Produce      json
// @Param        days  query  int  false  "Días de la ventana (por defecto 7)"
// @Success      200  {array}  dto.DailyTrendPointResponse
// @Router       /api/dashboard/trend [get]
func (h *DashboardHandler) Trend(c *fiber.Ctx) error {
	days := clampQueryInt(c, "days", h.defaultDays, 1, maxTrendDays)
	return c.JSON(h.uc.Trend(days))
}
