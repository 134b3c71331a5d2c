package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/analytics"
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/usecase"
)

// Topes de los parámetros de consulta: los listados y la tendencia se truncan
// siempre, sin importar lo que pida el cliente.
const (
	maxTake      = 100
	maxTrendDays = 90
)

// RouterDeps dependencias para el router.
type RouterDeps struct {
	ItemUC      *usecase.ItemUseCase
	ReceiptUC   *usecase.ReceiptUseCase
	IssueUC     *usecase.IssueUseCase
	MasterUC    *usecase.MasterDataUseCase
	DashboardUC *analytics.DashboardUseCase

	// RecentTake / TrendDays valores por defecto de take y days.
	RecentTake int
	TrendDays  int
}

// Router registra las rutas de la API.
func Router(app *fiber.App, deps RouterDeps) {
	api := app.Group("/api")

	// Items
	items := api.Group("/items")
	itemHandler := NewItemHandler(deps.ItemUC, deps.RecentTake)
	items.Get("/", itemHandler.List)
	items.Post("/", itemHandler.Create)
	items.Get("/low-stock", itemHandler.LowStock)
	items.Get("/:id", itemHandler.GetByID)
	items.Get("/:id/movements", itemHandler.Movements)

	// Receipts (entradas)
	receipts := api.Group("/receipts")
	receiptHandler := NewReceiptHandler(deps.ReceiptUC, deps.RecentTake)
	receipts.Post("/", receiptHandler.Create)
	receipts.Get("/recent", receiptHandler.Recent)

	// Issues (salidas)
	issues := api.Group("/issues")
	issueHandler := NewIssueHandler(deps.IssueUC, deps.RecentTake)
	issues.Post("/", issueHandler.Create)
	issues.Get("/recent", issueHandler.Recent)

	// Master data (proveedores y áreas)
	masters := api.Group("/masters")
	masterHandler := NewMasterDataHandler(deps.MasterUC)
	masters.Get("/suppliers", masterHandler.ListSuppliers)
	masters.Post("/suppliers", masterHandler.CreateSupplier)
	masters.Get("/departments", masterHandler.ListDepartments)
	masters.Post("/departments", masterHandler.CreateDepartment)

	// Dashboard
	dashboard := api.Group("/dashboard")
	dashboardHandler := NewDashboardHandler(deps.DashboardUC, deps.RecentTake, deps.TrendDays)
	dashboard.Get("/summary", dashboardHandler.Summary)
	dashboard.Get("/activity", dashboardHandler.Activity)
	dashboard.Get("/trend", dashboardHandler.Trend)
}

// clampQueryInt lee un entero de query con valor por defecto y lo acota a [min, max].
func clampQueryInt(c *fiber.Ctx, key string, def, min, max int) int {
	v := c.QueryInt(key, def)
	if v < min {
		v = min
	}
	if v > max {
		v = max
	}
	return v
}
