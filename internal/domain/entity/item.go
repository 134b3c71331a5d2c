package entity

// Item representa un artículo del inventario con código único y nivel de stock.
//
// CurrentStock solo debe mutarse a través de IncreaseStock/TryDecreaseStock,
// y siempre dentro de la sección crítica del almacén que posee el agregado.
type Item struct {
	ID            string
	Code          string // código único por almacén (sin distinción de mayúsculas)
	Name          string
	Unit          string
	MinStockLevel int // umbral de reposición, nunca negativo
	CurrentStock  int // nunca negativo
}

// IncreaseStock suma la cantidad al stock actual. La validación de cantidad
// positiva es responsabilidad del almacén antes de llamar.
func (i *Item) IncreaseStock(quantity int) {
	i.CurrentStock += quantity
}

// TryDecreaseStock descuenta la cantidad si es positiva y hay stock suficiente.
// Si no, devuelve false y deja el artículo intacto.
func (i *Item) TryDecreaseStock(quantity int) bool {
	if quantity <= 0 || i.CurrentStock < quantity {
		return false
	}
	i.CurrentStock -= quantity
	return true
}

// IsLowStock indica si el artículo está en o por debajo de su mínimo configurado.
func (i *Item) IsLowStock() bool {
	return i.CurrentStock <= i.MinStockLevel
}
