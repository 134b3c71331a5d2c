package repository

import (
	"time"

	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/entity"
)

// LowStockResult fila cruda del listado de stock bajo.
// La produce el almacén; el use case la convierte en DTO.
type LowStockResult struct {
	ItemID        string
	Code          string
	Name          string
	Unit          string
	CurrentStock  int
	MinStockLevel int
	Shortage      int // max(0, MinStockLevel - CurrentStock)
}

// MovementResult fila cruda de un movimiento (entrada o salida) con el nombre
// del artículo resuelto al momento de la consulta ("-" si ya no resuelve).
type MovementResult struct {
	ID           string
	ItemID       string
	ItemName     string
	MovementType string // entity.MovementTypeReceipt | entity.MovementTypeIssue
	Quantity     int
	PartyName    string // proveedor en entradas, área en salidas
	ReferenceNo  string
	CreatedAtUTC time.Time
}

// TrendPointResult un día de la tendencia (fecha calendario UTC, medianoche).
type TrendPointResult struct {
	Date            time.Time
	ReceiptQuantity int
	IssueQuantity   int
}

// SummaryResult agregados del tablero.
type SummaryResult struct {
	ItemsCount          int
	TotalStock          int
	LowStockItemsCount  int
	RecentReceiptsCount int // entradas de los últimos 7 días
	RecentIssuesCount   int // salidas de los últimos 7 días
}

// InventoryRepository define las operaciones sobre el agregado de inventario.
//
// Todas las operaciones son síncronas, en memoria y atómicas: cada llamada se
// ejecuta completa dentro de la sección crítica de la implementación, de modo
// que ningún lector observa estados intermedios (p. ej. stock descontado sin
// su salida registrada).
type InventoryRepository interface {
	// ── Artículos ─────────────────────────────────────────────────────────────

	// ListItems devuelve todos los artículos ordenados por nombre ascendente.
	ListItems() []entity.Item

	// GetItem devuelve el artículo por ID, o nil si no existe.
	GetItem(id string) *entity.Item

	// GetItemByCode busca por código sin distinguir mayúsculas; nil si no existe.
	GetItemByCode(code string) *entity.Item

	// CreateItem agrega el artículo verificando dentro de la misma sección
	// crítica que el código no colisione. Devuelve domain.ErrDuplicate si ya
	// existe un artículo con ese código.
	CreateItem(item *entity.Item) error

	// ── Movimientos ───────────────────────────────────────────────────────────

	// AddReceipt registra una entrada: valida cantidad positiva
	// (domain.ErrInvalidInput), existencia del artículo (domain.ErrNotFound),
	// aumenta el stock, hace upsert del proveedor y agrega el movimiento.
	// Devuelve la entrada creada y el artículo ya actualizado.
	AddReceipt(itemID string, quantity int, supplierName, referenceNo string) (*entity.StockReceipt, *entity.Item, error)

	// AddIssue registra una salida. Devuelve domain.ErrNotFound si el artículo
	// no existe, o domain.ErrInsufficientStock (junto con el estado actual del
	// artículo) si la cantidad no es positiva o excede el stock; en ambos
	// casos no muta nada. En éxito descuenta stock, hace upsert del área y
	// agrega el movimiento.
	AddIssue(itemID string, quantity int, departmentName, referenceNo string) (*entity.StockIssue, *entity.Item, error)

	// ── Datos maestros ────────────────────────────────────────────────────────

	ListSuppliers() []entity.NamedEntity
	ListDepartments() []entity.NamedEntity

	// UpsertSupplier devuelve el proveedor existente con ese nombre (sin
	// distinguir mayúsculas) o lo crea. Nunca duplica.
	UpsertSupplier(name string) entity.NamedEntity

	// UpsertDepartment análogo a UpsertSupplier para áreas.
	UpsertDepartment(name string) entity.NamedEntity

	// ── Consultas derivadas ───────────────────────────────────────────────────

	// LowStockItems artículos con CurrentStock <= MinStockLevel, ordenados por
	// stock ascendente (los más críticos primero).
	LowStockItems() []LowStockResult

	// ItemMovements entradas y salidas del artículo mezcladas, más recientes
	// primero, truncadas a take. Slice vacío si el artículo no existe.
	ItemMovements(itemID string, take int) []MovementResult

	// RecentReceipts / RecentIssues movimientos más recientes primero, truncados.
	RecentReceipts(take int) []MovementResult
	RecentIssues(take int) []MovementResult

	// RecentActivities unión de todas las entradas y salidas, más recientes
	// primero, truncadas a take.
	RecentActivities(take int) []MovementResult

	// DailyTrend un punto por día calendario UTC en [hoy-days+1, hoy], con los
	// totales de entradas y salidas de cada día (cero si no hubo actividad).
	DailyTrend(days int) []TrendPointResult

	// DashboardSummary agregados del tablero al momento de la llamada.
	DashboardSummary() SummaryResult
}
