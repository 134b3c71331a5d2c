package entity

import "time"

// StockIssue representa una salida de stock (movimiento de egreso).
// Solo se crea cuando el artículo tiene stock suficiente; inmutable después.
type StockIssue struct {
	ID             string
	ItemID         string
	Quantity       int // siempre positivo
	DepartmentName string
	ReferenceNo    string
	CreatedAtUTC   time.Time
}
