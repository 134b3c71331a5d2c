package dto

import "time"

// CreateReceiptRequest entrada para registrar una entrada de stock.
type CreateReceiptRequest struct {
	ItemID       string `json:"item_id" validate:"required"`
	Quantity     int    `json:"quantity" validate:"required,gt=0"`
	SupplierName string `json:"supplier_name" validate:"required"`
	ReferenceNo  string `json:"reference_no" validate:"required"`
}

// ReceiptResponse salida de una entrada de stock.
type ReceiptResponse struct {
	ID           string    `json:"id"`
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	Quantity     int       `json:"quantity"`
	SupplierName string    `json:"supplier_name"`
	ReferenceNo  string    `json:"reference_no"`
	CreatedAtUTC time.Time `json:"created_at_utc"`
}

// CreateIssueRequest entrada para registrar una salida de stock.
type CreateIssueRequest struct {
	ItemID         string `json:"item_id" validate:"required"`
	Quantity       int    `json:"quantity" validate:"required,gt=0"`
	DepartmentName string `json:"department_name" validate:"required"`
	ReferenceNo    string `json:"reference_no" validate:"required"`
}

// IssueResponse salida de una salida de stock.
type IssueResponse struct {
	ID             string    `json:"id"`
	ItemID         string    `json:"item_id"`
	ItemName       string    `json:"item_name"`
	Quantity       int       `json:"quantity"`
	DepartmentName string    `json:"department_name"`
	ReferenceNo    string    `json:"reference_no"`
	CreatedAtUTC   time.Time `json:"created_at_utc"`
}

// StockMovementResponse fila genérica de movimiento (historial y actividad).
// PartyName es el proveedor en entradas y el área en salidas.
type StockMovementResponse struct {
	ItemID       string    `json:"item_id"`
	ItemName     string    `json:"item_name"`
	MovementType string    `json:"movement_type"` // receipt | issue
	Quantity     int       `json:"quantity"`
	PartyName    string    `json:"party_name"`
	ReferenceNo  string    `json:"reference_no"`
	CreatedAtUTC time.Time `json:"created_at_utc"`
}
