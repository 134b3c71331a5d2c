// Package memstore implementa el agregado de inventario en memoria. Vive bajo
// infrastructure para mantener la dependencia en un solo sentido
// (domain -> nada); el dominio solo conoce la interfaz del repositorio.
package memstore

import (
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/entity"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/repository"
)

// unresolvedItemName se usa cuando un movimiento referencia un artículo que ya
// no resuelve. Con el alcance actual los artículos nunca se eliminan, pero el
// contrato de los listados debe sostenerse igual.
const unresolvedItemName = "-"

// receiptEntry / issueEntry envuelven el movimiento con una secuencia de
// inserción monótona. Ante timestamps iguales (resolución gruesa del reloj)
// los ordenamientos descendentes desempatan por secuencia, así las vistas
// truncadas son deterministas entre llamadas repetidas.
type receiptEntry struct {
	entity.StockReceipt
	seq uint64
}

type issueEntry struct {
	entity.StockIssue
	seq uint64
}

// Options parámetros de construcción del almacén.
type Options struct {
	// DefaultSupplier / DefaultDepartment se siembran como datos maestros
	// iniciales (vacío = no sembrar).
	DefaultSupplier   string
	DefaultDepartment string

	// Now reemplaza el reloj en tests. nil = time.Now().UTC.
	Now func() time.Time
}

// Store es el agregado mutable compartido: artículos, movimientos y datos
// maestros bajo una única sección crítica exclusiva.
//
// Un solo mutex grueso sobre todas las colecciones: las operaciones compuestas
// (descontar stock + registrar salida + upsert de área) son atómicas, los
// upserts concurrentes del mismo nombre no duplican entidades y no hay
// actualizaciones perdidas de stock. La sección crítica solo cubre trabajo en
// memoria, nunca I/O.
type Store struct {
	mu          sync.Mutex
	items       []*entity.Item
	receipts    []receiptEntry
	issues      []issueEntry
	suppliers   []entity.NamedEntity
	departments []entity.NamedEntity
	seq         uint64
	now         func() time.Time
}

var _ repository.InventoryRepository = (*Store)(nil)

// New construye el almacén y siembra los datos maestros por defecto.
func New(opts Options) *Store {
	s := &Store{
		now: opts.Now,
	}
	if s.now == nil {
		s.now = func() time.Time { return time.Now().UTC() }
	}
	if opts.DefaultSupplier != "" {
		s.suppliers = append(s.suppliers, entity.NamedEntity{ID: uuid.New().String(), Name: opts.DefaultSupplier})
	}
	if opts.DefaultDepartment != "" {
		s.departments = append(s.departments, entity.NamedEntity{ID: uuid.New().String(), Name: opts.DefaultDepartment})
	}
	return s
}

// ── Artículos ─────────────────────────────────────────────────────────────────

// ListItems devuelve copias de todos los artículos ordenados por nombre ascendente.
func (s *Store) ListItems() []entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]entity.Item, 0, len(s.items))
	for _, it := range s.items {
		out = append(out, *it)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

// GetItem devuelve una copia del artículo por ID, o nil si no existe.
func (s *Store) GetItem(id string) *entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(s.findItem(id))
}

// GetItemByCode busca por código sin distinguir mayúsculas.
func (s *Store) GetItemByCode(code string) *entity.Item {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if strings.EqualFold(it.Code, code) {
			return snapshot(it)
		}
	}
	return nil
}

// CreateItem agrega el artículo. La unicidad del código se verifica aquí,
// dentro de la misma sección crítica que la inserción: una sola autoridad,
// sin carrera entre "verificar" e "insertar".
func (s *Store) CreateItem(item *entity.Item) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	for _, it := range s.items {
		if strings.EqualFold(it.Code, item.Code) {
			return domain.ErrDuplicate
		}
	}
	cp := *item
	s.items = append(s.items, &cp)
	return nil
}

// ── Movimientos ───────────────────────────────────────────────────────────────

// AddReceipt registra una entrada de stock de forma atómica: aumenta el stock,
// hace upsert del proveedor y agrega el movimiento con timestamp UTC actual.
//
// A diferencia del aumento incondicional clásico, aquí la cantidad no positiva
// se rechaza también en el almacén: el caller valida, pero la última palabra
// la tiene quien sostiene el lock.
func (s *Store) AddReceipt(itemID string, quantity int, supplierName, referenceNo string) (*entity.StockReceipt, *entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if quantity <= 0 {
		return nil, nil, domain.ErrInvalidInput
	}
	item := s.findItem(itemID)
	if item == nil {
		return nil, nil, domain.ErrNotFound
	}

	item.IncreaseStock(quantity)
	s.upsertSupplierLocked(supplierName)

	receipt := entity.StockReceipt{
		ID:           uuid.New().String(),
		ItemID:       itemID,
		Quantity:     quantity,
		SupplierName: supplierName,
		ReferenceNo:  referenceNo,
		CreatedAtUTC: s.now(),
	}
	s.seq++
	s.receipts = append(s.receipts, receiptEntry{StockReceipt: receipt, seq: s.seq})

	return &receipt, snapshot(item), nil
}

// AddIssue registra una salida de stock. Tres desenlaces:
//   - artículo inexistente: ErrNotFound, sin mutación;
//   - cantidad no positiva o mayor al stock: ErrInsufficientStock junto con el
//     estado actual del artículo, sin mutación;
//   - éxito: descuenta stock, upsert del área y agrega el movimiento, todo
//     dentro de la misma sección crítica.
func (s *Store) AddIssue(itemID string, quantity int, departmentName, referenceNo string) (*entity.StockIssue, *entity.Item, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(itemID)
	if item == nil {
		return nil, nil, domain.ErrNotFound
	}
	if !item.TryDecreaseStock(quantity) {
		return nil, snapshot(item), domain.ErrInsufficientStock
	}

	s.upsertDepartmentLocked(departmentName)

	issue := entity.StockIssue{
		ID:             uuid.New().String(),
		ItemID:         itemID,
		Quantity:       quantity,
		DepartmentName: departmentName,
		ReferenceNo:    referenceNo,
		CreatedAtUTC:   s.now(),
	}
	s.seq++
	s.issues = append(s.issues, issueEntry{StockIssue: issue, seq: s.seq})

	return &issue, snapshot(item), nil
}

// ── Datos maestros ────────────────────────────────────────────────────────────

// ListSuppliers devuelve los proveedores ordenados por nombre ascendente.
func (s *Store) ListSuppliers() []entity.NamedEntity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByName(s.suppliers)
}

// ListDepartments devuelve las áreas ordenadas por nombre ascendente.
func (s *Store) ListDepartments() []entity.NamedEntity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return sortedByName(s.departments)
}

// UpsertSupplier devuelve el proveedor existente o lo crea (idempotente).
func (s *Store) UpsertSupplier(name string) entity.NamedEntity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertSupplierLocked(name)
}

// UpsertDepartment devuelve el área existente o la crea (idempotente).
func (s *Store) UpsertDepartment(name string) entity.NamedEntity {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.upsertDepartmentLocked(name)
}

func (s *Store) upsertSupplierLocked(name string) entity.NamedEntity {
	for _, e := range s.suppliers {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	e := entity.NamedEntity{ID: uuid.New().String(), Name: name}
	s.suppliers = append(s.suppliers, e)
	return e
}

func (s *Store) upsertDepartmentLocked(name string) entity.NamedEntity {
	for _, e := range s.departments {
		if strings.EqualFold(e.Name, name) {
			return e
		}
	}
	e := entity.NamedEntity{ID: uuid.New().String(), Name: name}
	s.departments = append(s.departments, e)
	return e
}

// ── Consultas derivadas ───────────────────────────────────────────────────────

// LowStockItems artículos en o por debajo de su mínimo, los más críticos primero.
func (s *Store) LowStockItems() []repository.LowStockResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	out := make([]repository.LowStockResult, 0)
	for _, it := range s.items {
		if !it.IsLowStock() {
			continue
		}
		shortage := it.MinStockLevel - it.CurrentStock
		if shortage < 0 {
			shortage = 0
		}
		out = append(out, repository.LowStockResult{
			ItemID:        it.ID,
			Code:          it.Code,
			Name:          it.Name,
			Unit:          it.Unit,
			CurrentStock:  it.CurrentStock,
			MinStockLevel: it.MinStockLevel,
			Shortage:      shortage,
		})
	}
	sort.SliceStable(out, func(i, j int) bool { return out[i].CurrentStock < out[j].CurrentStock })
	return out
}

// ItemMovements entradas y salidas del artículo mezcladas, más recientes
// primero. Slice vacío si el artículo no existe.
func (s *Store) ItemMovements(itemID string, take int) []repository.MovementResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	item := s.findItem(itemID)
	if item == nil {
		return []repository.MovementResult{}
	}

	rows := make([]movementRow, 0)
	for _, r := range s.receipts {
		if r.ItemID == itemID {
			rows = append(rows, movementRow{result: receiptResult(r, item.Name), seq: r.seq})
		}
	}
	for _, i := range s.issues {
		if i.ItemID == itemID {
			rows = append(rows, movementRow{result: issueResult(i, item.Name), seq: i.seq})
		}
	}
	return truncateRecent(rows, take)
}

// RecentReceipts entradas más recientes primero, truncadas a take.
func (s *Store) RecentReceipts(take int) []repository.MovementResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := s.itemNamesLocked()
	rows := make([]movementRow, 0, len(s.receipts))
	for _, r := range s.receipts {
		rows = append(rows, movementRow{result: receiptResult(r, resolveName(names, r.ItemID)), seq: r.seq})
	}
	return truncateRecent(rows, take)
}

// RecentIssues salidas más recientes primero, truncadas a take.
func (s *Store) RecentIssues(take int) []repository.MovementResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := s.itemNamesLocked()
	rows := make([]movementRow, 0, len(s.issues))
	for _, i := range s.issues {
		rows = append(rows, movementRow{result: issueResult(i, resolveName(names, i.ItemID)), seq: i.seq})
	}
	return truncateRecent(rows, take)
}

// RecentActivities unión de todas las entradas y salidas, más recientes
// primero. El nombre del artículo se resuelve al momento de la consulta.
func (s *Store) RecentActivities(take int) []repository.MovementResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	names := s.itemNamesLocked()
	rows := make([]movementRow, 0, len(s.receipts)+len(s.issues))
	for _, r := range s.receipts {
		rows = append(rows, movementRow{result: receiptResult(r, resolveName(names, r.ItemID)), seq: r.seq})
	}
	for _, i := range s.issues {
		rows = append(rows, movementRow{result: issueResult(i, resolveName(names, i.ItemID)), seq: i.seq})
	}
	return truncateRecent(rows, take)
}

// DailyTrend un punto por día calendario UTC en [hoy-days+1, hoy], con ceros
// en los días sin actividad. days <= 0 devuelve un slice vacío.
func (s *Store) DailyTrend(days int) []repository.TrendPointResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	if days <= 0 {
		return []repository.TrendPointResult{}
	}

	receiptTotals := make(map[time.Time]int)
	for _, r := range s.receipts {
		receiptTotals[dateOf(r.CreatedAtUTC)] += r.Quantity
	}
	issueTotals := make(map[time.Time]int)
	for _, i := range s.issues {
		issueTotals[dateOf(i.CreatedAtUTC)] += i.Quantity
	}

	today := dateOf(s.now())
	out := make([]repository.TrendPointResult, 0, days)
	for d := days - 1; d >= 0; d-- {
		date := today.AddDate(0, 0, -d)
		out = append(out, repository.TrendPointResult{
			Date:            date,
			ReceiptQuantity: receiptTotals[date],
			IssueQuantity:   issueTotals[date],
		})
	}
	return out
}

// DashboardSummary agregados del tablero; la ventana "reciente" son los
// últimos 7 días contados desde el momento de la llamada.
func (s *Store) DashboardSummary() repository.SummaryResult {
	s.mu.Lock()
	defer s.mu.Unlock()

	summary := repository.SummaryResult{ItemsCount: len(s.items)}
	for _, it := range s.items {
		summary.TotalStock += it.CurrentStock
		if it.IsLowStock() {
			summary.LowStockItemsCount++
		}
	}

	weekAgo := s.now().AddDate(0, 0, -7)
	for _, r := range s.receipts {
		if !r.CreatedAtUTC.Before(weekAgo) {
			summary.RecentReceiptsCount++
		}
	}
	for _, i := range s.issues {
		if !i.CreatedAtUTC.Before(weekAgo) {
			summary.RecentIssuesCount++
		}
	}
	return summary
}

// ── Helpers internos (requieren el lock tomado) ───────────────────────────────

func (s *Store) findItem(id string) *entity.Item {
	for _, it := range s.items {
		if it.ID == id {
			return it
		}
	}
	return nil
}

func (s *Store) itemNamesLocked() map[string]string {
	names := make(map[string]string, len(s.items))
	for _, it := range s.items {
		names[it.ID] = it.Name
	}
	return names
}

// snapshot copia el artículo para que el caller nunca comparta memoria con el
// estado guardado por el lock.
func snapshot(item *entity.Item) *entity.Item {
	if item == nil {
		return nil
	}
	cp := *item
	return &cp
}

func resolveName(names map[string]string, itemID string) string {
	if name, ok := names[itemID]; ok {
		return name
	}
	return unresolvedItemName
}

func sortedByName(entities []entity.NamedEntity) []entity.NamedEntity {
	out := make([]entity.NamedEntity, len(entities))
	copy(out, entities)
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out
}

type movementRow struct {
	result repository.MovementResult
	seq    uint64
}

func receiptResult(r receiptEntry, itemName string) repository.MovementResult {
	return repository.MovementResult{
		ID:           r.ID,
		ItemID:       r.ItemID,
		ItemName:     itemName,
		MovementType: entity.MovementTypeReceipt,
		Quantity:     r.Quantity,
		PartyName:    r.SupplierName,
		ReferenceNo:  r.ReferenceNo,
		CreatedAtUTC: r.CreatedAtUTC,
	}
}

func issueResult(i issueEntry, itemName string) repository.MovementResult {
	return repository.MovementResult{
		ID:           i.ID,
		ItemID:       i.ItemID,
		ItemName:     itemName,
		MovementType: entity.MovementTypeIssue,
		Quantity:     i.Quantity,
		PartyName:    i.DepartmentName,
		ReferenceNo:  i.ReferenceNo,
		CreatedAtUTC: i.CreatedAtUTC,
	}
}

// truncateRecent ordena más reciente primero (desempate por secuencia de
// inserción, también descendente) y trunca a take.
func truncateRecent(rows []movementRow, take int) []repository.MovementResult {
	sort.Slice(rows, func(i, j int) bool {
		if rows[i].result.CreatedAtUTC.Equal(rows[j].result.CreatedAtUTC) {
			return rows[i].seq > rows[j].seq
		}
		return rows[i].result.CreatedAtUTC.After(rows[j].result.CreatedAtUTC)
	})
	if take < 0 {
		take = 0
	}
	if take > len(rows) {
		take = len(rows)
	}
	out := make([]repository.MovementResult, 0, take)
	for _, row := range rows[:take] {
		out = append(out, row.result)
	}
	return out
}

func dateOf(t time.Time) time.Time {
	t = t.UTC()
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC)
}
