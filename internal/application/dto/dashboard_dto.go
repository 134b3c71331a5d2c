package dto

// DashboardSummaryResponse resumen del tablero.
type DashboardSummaryResponse struct {
	ItemsCount          int `json:"items_count"`
	TotalStock          int `json:"total_stock"`
	LowStockItemsCount  int `json:"low_stock_items_count"`
	RecentReceiptsCount int `json:"recent_receipts_count"`
	RecentIssuesCount   int `json:"recent_issues_count"`
}

// DailyTrendPointResponse un día de la tendencia de entradas/salidas.
// Date en formato YYYY-MM-DD (fecha calendario UTC).
type DailyTrendPointResponse struct {
	Date            string `json:"date"`
	ReceiptQuantity int    `json:"receipt_quantity"`
	IssueQuantity   int    `json:"issue_quantity"`
}
