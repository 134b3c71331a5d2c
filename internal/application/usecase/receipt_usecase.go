package usecase

import (
	"strings"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/repository"
)

// ReceiptUseCase registra y lista entradas de stock.
type ReceiptUseCase struct {
	repo repository.InventoryRepository
}

// NewReceiptUseCase construye el caso de uso.
func NewReceiptUseCase(repo repository.InventoryRepository) *ReceiptUseCase {
	return &ReceiptUseCase{repo: repo}
}

// Create valida y registra una entrada de stock. El almacén aumenta el stock,
// hace upsert del proveedor y agrega el movimiento en una sola operación
// atómica. Devuelve domain.ErrInvalidInput ante campos vacíos o cantidad no
// positiva y domain.ErrNotFound si el artículo no existe.
func (uc *ReceiptUseCase) Create(in dto.CreateReceiptRequest) (*dto.ReceiptResponse, error) {
	supplier := strings.TrimSpace(in.SupplierName)
	reference := strings.TrimSpace(in.ReferenceNo)

	if in.ItemID == "" || in.Quantity <= 0 || supplier == "" || reference == "" {
		return nil, domain.ErrInvalidInput
	}

	receipt, item, err := uc.repo.AddReceipt(in.ItemID, in.Quantity, supplier, reference)
	if err != nil {
		return nil, err
	}
	return &dto.ReceiptResponse{
		ID:           receipt.ID,
		ItemID:       receipt.ItemID,
		ItemName:     item.Name,
		Quantity:     receipt.Quantity,
		SupplierName: receipt.SupplierName,
		ReferenceNo:  receipt.ReferenceNo,
		CreatedAtUTC: receipt.CreatedAtUTC,
	}, nil
}

// Recent devuelve las entradas más recientes primero, truncadas a take, con el
// nombre del artículo resuelto al momento de la consulta.
func (uc *ReceiptUseCase) Recent(take int) []dto.ReceiptResponse {
	rows := uc.repo.RecentReceipts(take)
	out := make([]dto.ReceiptResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.ReceiptResponse{
			ID:           r.ID,
			ItemID:       r.ItemID,
			ItemName:     r.ItemName,
			Quantity:     r.Quantity,
			SupplierName: r.PartyName,
			ReferenceNo:  r.ReferenceNo,
			CreatedAtUTC: r.CreatedAtUTC,
		})
	}
	return out
}
