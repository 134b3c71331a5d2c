// Package analytics contiene los casos de uso de lectura para el tablero:
// resumen, tendencia diaria y actividad reciente.
package analytics

import (
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/repository"
)

// trendDateLayout formato de fecha de los puntos de tendencia (fecha UTC).
const trendDateLayout = "2006-01-02"

// DashboardUseCase arma las vistas agregadas del tablero.
//
// Fuente de datos: InventoryRepository (consultas read-only bajo la misma
// sección crítica del almacén); cada método es una foto consistente.
type DashboardUseCase struct {
	repo repository.InventoryRepository
}

// NewDashboardUseCase construye el caso de uso.
func NewDashboardUseCase(repo repository.InventoryRepository) *DashboardUseCase {
	return &DashboardUseCase{repo: repo}
}

// Summary devuelve los agregados del tablero: total de artículos, stock total,
// artículos en mínimo y movimientos de los últimos 7 días.
func (uc *DashboardUseCase) Summary() dto.DashboardSummaryResponse {
	s := uc.repo.DashboardSummary()
	return dto.DashboardSummaryResponse{
		ItemsCount:          s.ItemsCount,
		TotalStock:          s.TotalStock,
		LowStockItemsCount:  s.LowStockItemsCount,
		RecentReceiptsCount: s.RecentReceiptsCount,
		RecentIssuesCount:   s.RecentIssuesCount,
	}
}

// Trend devuelve exactamente days puntos, uno por día calendario UTC en orden
// ascendente, con ceros en los días sin movimientos.
func (uc *DashboardUseCase) Trend(days int) []dto.DailyTrendPointResponse {
	points := uc.repo.DailyTrend(days)
	out := make([]dto.DailyTrendPointResponse, 0, len(points))
	for _, p := range points {
		out = append(out, dto.DailyTrendPointResponse{
			Date:            p.Date.Format(trendDateLayout),
			ReceiptQuantity: p.ReceiptQuantity,
			IssueQuantity:   p.IssueQuantity,
		})
	}
	return out
}

// Activity devuelve el feed de actividad (entradas y salidas de todos los
// artículos), más recientes primero, truncado a take.
func (uc *DashboardUseCase) Activity(take int) []dto.StockMovementResponse {
	rows := uc.repo.RecentActivities(take)
	out := make([]dto.StockMovementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockMovementResponse{
			ItemID:       r.ItemID,
			ItemName:     r.ItemName,
			MovementType: r.MovementType,
			Quantity:     r.Quantity,
			PartyName:    r.PartyName,
			ReferenceNo:  r.ReferenceNo,
			CreatedAtUTC: r.CreatedAtUTC,
		})
	}
	return out
}
