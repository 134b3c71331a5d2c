package entity

// NamedEntity es un registro de datos maestros con nombre (proveedor o área).
// El upsert por nombre (sin distinción de mayúsculas) lo resuelve el almacén.
type NamedEntity struct {
	ID   string
	Name string
}

// Tipos de movimiento usados en los listados de actividad.
const (
	MovementTypeReceipt = "receipt" // entrada
	MovementTypeIssue   = "issue"   // salida
)
