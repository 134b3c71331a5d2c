package memstore_test

import (
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/entity"
	"github.com/majazi041999-spec/anbardarymajazi/internal/infrastructure/memstore"
)

// ──────────────────────────────────────────────────────────────────────────────
// Helpers de test
// ──────────────────────────────────────────────────────────────────────────────

// newStore construye un almacén sin datos maestros sembrados.
func newStore() *memstore.Store {
	return memstore.New(memstore.Options{})
}

// seedItem crea un artículo y, si stock > 0, lo carga con una entrada inicial.
func seedItem(t *testing.T, s *memstore.Store, code, name string, minStock, stock int) *entity.Item {
	t.Helper()
	item := &entity.Item{ID: code + "-id", Code: code, Name: name, Unit: "und", MinStockLevel: minStock}
	require.NoError(t, s.CreateItem(item), "la creación del artículo no debe fallar")
	if stock > 0 {
		_, _, err := s.AddReceipt(item.ID, stock, "Proveedor inicial", "SEED-1")
		require.NoError(t, err, "la carga inicial de stock no debe fallar")
	}
	return item
}

// ──────────────────────────────────────────────────────────────────────────────
// Artículos
// ──────────────────────────────────────────────────────────────────────────────

// Un código repetido (aun con mayúsculas distintas) debe rechazarse y el
// conteo de artículos no debe cambiar.
func TestCreateItem_CodigoDuplicadoRechazado(t *testing.T) {
	s := newStore()
	seedItem(t, s, "A-100", "Papel A4", 5, 0)

	err := s.CreateItem(&entity.Item{ID: "otro-id", Code: "a-100", Name: "Papel carta", Unit: "und"})
	assert.ErrorIs(t, err, domain.ErrDuplicate, "el código duplicado debe rechazarse sin distinguir mayúsculas")
	assert.Len(t, s.ListItems(), 1, "el conteo de artículos no debe cambiar tras el rechazo")
}

func TestGetItemByCode_SinDistinguirMayusculas(t *testing.T) {
	s := newStore()
	seedItem(t, s, "A-100", "Papel A4", 5, 0)

	found := s.GetItemByCode("a-100")
	require.NotNil(t, found, "la búsqueda por código debe ignorar mayúsculas")
	assert.Equal(t, "Papel A4", found.Name)

	assert.Nil(t, s.GetItemByCode("B-200"), "un código inexistente debe devolver nil")
}

func TestListItems_OrdenadosPorNombre(t *testing.T) {
	s := newStore()
	seedItem(t, s, "C-1", "Tóner", 1, 0)
	seedItem(t, s, "A-1", "Papel", 1, 0)
	seedItem(t, s, "B-1", "Resma", 1, 0)

	items := s.ListItems()
	require.Len(t, items, 3)
	assert.Equal(t, "Papel", items[0].Name)
	assert.Equal(t, "Resma", items[1].Name)
	assert.Equal(t, "Tóner", items[2].Name)
}

// Las copias devueltas no deben compartir memoria con el estado interno.
func TestGetItem_DevuelveCopia(t *testing.T) {
	s := newStore()
	item := seedItem(t, s, "A-100", "Papel A4", 5, 10)

	cp := s.GetItem(item.ID)
	require.NotNil(t, cp)
	cp.CurrentStock = 999

	again := s.GetItem(item.ID)
	assert.Equal(t, 10, again.CurrentStock, "mutar la copia no debe afectar el almacén")
}

// ──────────────────────────────────────────────────────────────────────────────
// Entradas (receipts)
// ──────────────────────────────────────────────────────────────────────────────

func TestAddReceipt_ArticuloInexistente(t *testing.T) {
	s := newStore()

	_, _, err := s.AddReceipt("no-existe", 5, "Acme", "FAC-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// La cantidad no positiva se rechaza también en el almacén, sin mutación.
func TestAddReceipt_CantidadNoPositivaRechazada(t *testing.T) {
	s := newStore()
	item := seedItem(t, s, "A-100", "Papel A4", 5, 10)

	for _, qty := range []int{0, -3} {
		_, _, err := s.AddReceipt(item.ID, qty, "Acme", "FAC-1")
		assert.ErrorIs(t, err, domain.ErrInvalidInput, "cantidad %d debe rechazarse", qty)
	}
	assert.Equal(t, 10, s.GetItem(item.ID).CurrentStock, "el stock no debe cambiar tras un rechazo")
}

// Una entrada exitosa aumenta el stock, registra el movimiento y hace upsert
// del proveedor, todo como una sola unidad.
func TestAddReceipt_Exitoso(t *testing.T) {
	s := newStore()
	item := seedItem(t, s, "A-100", "Papel A4", 5, 0)

	receipt, updated, err := s.AddReceipt(item.ID, 7, "Acme", "FAC-9")
	require.NoError(t, err)
	require.NotNil(t, receipt)
	assert.Equal(t, 7, receipt.Quantity)
	assert.Equal(t, 7, updated.CurrentStock, "el artículo devuelto debe reflejar el stock ya actualizado")

	suppliers := s.ListSuppliers()
	require.Len(t, suppliers, 1, "el proveedor debe quedar en datos maestros")
	assert.Equal(t, "Acme", suppliers[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Salidas (issues)
// ──────────────────────────────────────────────────────────────────────────────

func TestAddIssue_ArticuloInexistente(t *testing.T) {
	s := newStore()

	_, _, err := s.AddIssue("no-existe", 1, "Ventas", "SAL-1")
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

// Pedir más de lo disponible no debe mutar nada y debe devolver el estado
// actual del artículo junto con el error.
func TestAddIssue_StockInsuficienteSinMutacion(t *testing.T) {
	s := newStore()
	item := seedItem(t, s, "A-100", "Papel A4", 5, 10)

	issue, current, err := s.AddIssue(item.ID, 11, "Ventas", "SAL-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Nil(t, issue, "no debe crearse el movimiento")
	require.NotNil(t, current, "el error debe venir acompañado del estado actual")
	assert.Equal(t, 10, current.CurrentStock, "el stock no debe cambiar")
	assert.Empty(t, s.RecentIssues(10), "no debe quedar registrada ninguna salida")
}

// La cantidad no positiva cae en el mismo desenlace que el stock insuficiente.
func TestAddIssue_CantidadNoPositiva(t *testing.T) {
	s := newStore()
	item := seedItem(t, s, "A-100", "Papel A4", 5, 10)

	_, _, err := s.AddIssue(item.ID, 0, "Ventas", "SAL-1")
	assert.ErrorIs(t, err, domain.ErrInsufficientStock)
	assert.Equal(t, 10, s.GetItem(item.ID).CurrentStock)
}

// Entrada y salida por la misma cantidad vuelven el stock a su valor original.
func TestAddReceiptLuegoAddIssue_IdaYVuelta(t *testing.T) {
	s := newStore()
	item := seedItem(t, s, "A-100", "Papel A4", 5, 3)

	_, _, err := s.AddReceipt(item.ID, 8, "Acme", "FAC-2")
	require.NoError(t, err)
	_, updated, err := s.AddIssue(item.ID, 8, "Ventas", "SAL-2")
	require.NoError(t, err)

	assert.Equal(t, 3, updated.CurrentStock, "el stock debe volver a su valor original")

	departments := s.ListDepartments()
	require.Len(t, departments, 1, "el área debe quedar en datos maestros")
	assert.Equal(t, "Ventas", departments[0].Name)
}

// Salidas concurrentes que suman más que el stock disponible: deben tener
// éxito exactamente las necesarias para agotar el stock a cero, nunca
// negativo; el resto debe fallar con stock insuficiente.
func TestAddIssue_ConcurrentesNuncaNegativo(t *testing.T) {
	s := newStore()
	item := seedItem(t, s, "A-100", "Papel A4", 0, 50)

	const callers = 20 // 20 salidas de 5 = 100 pedidos contra 50 disponibles

	var wg sync.WaitGroup
	results := make(chan error, callers)
	for i := 0; i < callers; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, _, err := s.AddIssue(item.ID, 5, "Ventas", "SAL-C")
			results <- err
		}()
	}
	wg.Wait()
	close(results)

	var ok, insufficient int
	for err := range results {
		switch {
		case err == nil:
			ok++
		default:
			assert.ErrorIs(t, err, domain.ErrInsufficientStock)
			insufficient++
		}
	}

	assert.Equal(t, 10, ok, "deben tener éxito exactamente las salidas que agotan el stock")
	assert.Equal(t, 10, insufficient, "el resto debe fallar con stock insuficiente")
	assert.Equal(t, 0, s.GetItem(item.ID).CurrentStock, "el stock debe quedar exactamente en cero")
}

// ──────────────────────────────────────────────────────────────────────────────
// Datos maestros
// ──────────────────────────────────────────────────────────────────────────────

// Upsert idempotente: el mismo nombre con otras mayúsculas no duplica.
func TestUpsertSupplier_IdempotenteSinMayusculas(t *testing.T) {
	s := newStore()

	first := s.UpsertSupplier("Acme")
	second := s.UpsertSupplier("acme")

	assert.Equal(t, first.ID, second.ID, "debe devolverse la entidad existente")
	assert.Len(t, s.ListSuppliers(), 1, "debe existir exactamente un proveedor")
}

func TestNew_SiembraDatosMaestrosPorDefecto(t *testing.T) {
	s := memstore.New(memstore.Options{
		DefaultSupplier:   "Proveedor general",
		DefaultDepartment: "Área administrativa",
	})

	suppliers := s.ListSuppliers()
	require.Len(t, suppliers, 1)
	assert.Equal(t, "Proveedor general", suppliers[0].Name)

	departments := s.ListDepartments()
	require.Len(t, departments, 1)
	assert.Equal(t, "Área administrativa", departments[0].Name)
}

// ──────────────────────────────────────────────────────────────────────────────
// Consultas derivadas
// ──────────────────────────────────────────────────────────────────────────────

// Ejemplo del contrato: A (stock=2, min=5), B (stock=5, min=5), C (stock=10,
// min=5) → el listado debe ser [A, B], ordenado por stock ascendente.
func TestLowStockItems_FiltroYOrden(t *testing.T) {
	s := newStore()
	a := seedItem(t, s, "A-1", "Artículo A", 5, 2)
	b := seedItem(t, s, "B-1", "Artículo B", 5, 5)
	seedItem(t, s, "C-1", "Artículo C", 5, 10)

	rows := s.LowStockItems()
	require.Len(t, rows, 2, "solo A y B están en o por debajo del mínimo")
	assert.Equal(t, a.ID, rows[0].ItemID, "el más crítico va primero")
	assert.Equal(t, 3, rows[0].Shortage, "faltante de A: 5 - 2")
	assert.Equal(t, b.ID, rows[1].ItemID)
	assert.Equal(t, 0, rows[1].Shortage, "B está justo en el mínimo, sin faltante")
}

func TestItemMovements_ArticuloInexistenteDevuelveVacio(t *testing.T) {
	s := newStore()
	assert.Empty(t, s.ItemMovements("no-existe", 10))
}

// El historial mezcla entradas y salidas, más recientes primero, truncado a
// take; ante timestamps iguales el desempate por secuencia de inserción hace
// el orden determinista entre llamadas.
func TestItemMovements_OrdenYTruncado(t *testing.T) {
	fixed := time.Date(2026, 3, 10, 12, 0, 0, 0, time.UTC)
	s := memstore.New(memstore.Options{Now: func() time.Time { return fixed }})
	item := &entity.Item{ID: "it-1", Code: "A-1", Name: "Papel", Unit: "und"}
	require.NoError(t, s.CreateItem(item))

	// Tres movimientos con el mismo timestamp (reloj congelado).
	_, _, err := s.AddReceipt(item.ID, 10, "Acme", "FAC-1")
	require.NoError(t, err)
	_, _, err = s.AddIssue(item.ID, 4, "Ventas", "SAL-1")
	require.NoError(t, err)
	_, _, err = s.AddReceipt(item.ID, 2, "Acme", "FAC-2")
	require.NoError(t, err)

	first := s.ItemMovements(item.ID, 2)
	require.Len(t, first, 2, "debe truncarse a take")
	assert.Equal(t, "FAC-2", first[0].ReferenceNo, "el último insertado va primero")
	assert.Equal(t, "SAL-1", first[1].ReferenceNo)
	assert.Equal(t, entity.MovementTypeIssue, first[1].MovementType)
	assert.Equal(t, "Papel", first[0].ItemName)

	second := s.ItemMovements(item.ID, 2)
	assert.Equal(t, first, second, "llamadas repetidas deben devolver el mismo orden")
}

func TestRecentActivities_UnionDeTodosLosArticulos(t *testing.T) {
	s := newStore()
	a := seedItem(t, s, "A-1", "Papel", 0, 10)
	b := seedItem(t, s, "B-1", "Tóner", 0, 10)

	_, _, err := s.AddIssue(a.ID, 1, "Ventas", "SAL-A")
	require.NoError(t, err)
	_, _, err = s.AddIssue(b.ID, 2, "Compras", "SAL-B")
	require.NoError(t, err)

	rows := s.RecentActivities(10)
	require.Len(t, rows, 4, "dos cargas iniciales y dos salidas")
	assert.Equal(t, "SAL-B", rows[0].ReferenceNo, "el movimiento más reciente va primero")
	assert.Equal(t, "Tóner", rows[0].ItemName, "el nombre se resuelve al momento de la consulta")
}

// El contrato del ejemplo: una entrada de 7 ayer y una salida de 2 hoy con
// ventana de 3 días → exactamente 3 puntos, en orden ascendente de fecha.
func TestDailyTrend_VentanaDeTresDias(t *testing.T) {
	current := time.Date(2026, 3, 9, 15, 30, 0, 0, time.UTC)
	s := memstore.New(memstore.Options{Now: func() time.Time { return current }})
	item := &entity.Item{ID: "it-1", Code: "A-1", Name: "Papel", Unit: "und"}
	require.NoError(t, s.CreateItem(item))

	// Ayer: entrada de 7.
	_, _, err := s.AddReceipt(item.ID, 7, "Acme", "FAC-1")
	require.NoError(t, err)

	// Hoy: salida de 2.
	current = current.AddDate(0, 0, 1)
	_, _, err = s.AddIssue(item.ID, 2, "Ventas", "SAL-1")
	require.NoError(t, err)

	points := s.DailyTrend(3)
	require.Len(t, points, 3, "la ventana debe tener exactamente 3 puntos")

	assert.Equal(t, 0, points[0].ReceiptQuantity, "anteayer sin actividad")
	assert.Equal(t, 0, points[0].IssueQuantity)

	assert.Equal(t, "2026-03-09", points[1].Date.Format("2006-01-02"))
	assert.Equal(t, 7, points[1].ReceiptQuantity, "ayer: entrada de 7")
	assert.Equal(t, 0, points[1].IssueQuantity)

	assert.Equal(t, "2026-03-10", points[2].Date.Format("2006-01-02"))
	assert.Equal(t, 0, points[2].ReceiptQuantity)
	assert.Equal(t, 2, points[2].IssueQuantity, "hoy: salida de 2")
}

func TestDailyTrend_DiasNoPositivos(t *testing.T) {
	s := newStore()
	assert.Empty(t, s.DailyTrend(0))
	assert.Empty(t, s.DailyTrend(-1))
}

// 2 artículos, 1 entrada (qty 10), 1 salida (qty 3 sobre un artículo con
// stock suficiente): los agregados del tablero deben cuadrar.
func TestDashboardSummary_Agregados(t *testing.T) {
	s := newStore()
	a := seedItem(t, s, "A-1", "Papel", 5, 0)
	b := seedItem(t, s, "B-1", "Tóner", 0, 20) // carga inicial = 1 entrada

	_, _, err := s.AddReceipt(a.ID, 10, "Acme", "FAC-1")
	require.NoError(t, err)
	_, _, err = s.AddIssue(b.ID, 3, "Ventas", "SAL-1")
	require.NoError(t, err)

	summary := s.DashboardSummary()
	assert.Equal(t, 2, summary.ItemsCount)
	assert.Equal(t, 27, summary.TotalStock, "10 de A + 17 de B")
	assert.Equal(t, 0, summary.LowStockItemsCount, "ninguno quedó en o por debajo del mínimo")
	assert.Equal(t, 2, summary.RecentReceiptsCount, "carga inicial de B + entrada de A")
	assert.Equal(t, 1, summary.RecentIssuesCount)
}
