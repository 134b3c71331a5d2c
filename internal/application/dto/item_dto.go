package dto

// CreateItemRequest entrada para crear un artículo.
type CreateItemRequest struct {
	Code          string `json:"code" validate:"required,min=1,max=50"`
	Name          string `json:"name" validate:"required,min=1,max=200"`
	Unit          string `json:"unit"`
	MinStockLevel int    `json:"min_stock_level" validate:"min=0"`
}

// ItemResponse salida de un artículo.
type ItemResponse struct {
	ID            string `json:"id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	MinStockLevel int    `json:"min_stock_level"`
	CurrentStock  int    `json:"current_stock"`
	IsLowStock    bool   `json:"is_low_stock"`
}

// LowStockItemResponse fila del listado de stock bajo.
type LowStockItemResponse struct {
	ItemID        string `json:"item_id"`
	Code          string `json:"code"`
	Name          string `json:"name"`
	Unit          string `json:"unit"`
	CurrentStock  int    `json:"current_stock"`
	MinStockLevel int    `json:"min_stock_level"`
	Shortage      int    `json:"shortage"`
}
