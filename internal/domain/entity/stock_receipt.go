package entity

import "time"

// StockReceipt representa una entrada de stock (movimiento de ingreso).
// Inmutable una vez creado; nunca se elimina.
type StockReceipt struct {
	ID           string
	ItemID       string
	Quantity     int // siempre positivo
	SupplierName string
	ReferenceNo  string // factura, remisión, orden de compra, etc.
	CreatedAtUTC time.Time
}
