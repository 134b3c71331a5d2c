package usecase

import (
	"strings"

	"github.com/google/uuid"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/entity"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/repository"
)

// ItemUseCase casos de uso de artículos. El stock no se edita aquí: solo se
// mueve vía entradas y salidas.
type ItemUseCase struct {
	repo        repository.InventoryRepository
	defaultUnit string
}

// NewItemUseCase construye el caso de uso.
func NewItemUseCase(repo repository.InventoryRepository, defaultUnit string) *ItemUseCase {
	return &ItemUseCase{repo: repo, defaultUnit: defaultUnit}
}

// Create crea un artículo con stock inicial cero. Código y nombre son
// obligatorios; si la unidad viene vacía se aplica la configurada por defecto.
// Devuelve domain.ErrDuplicate si el código ya existe (sin distinguir mayúsculas).
func (uc *ItemUseCase) Create(in dto.CreateItemRequest) (*dto.ItemResponse, error) {
	code := strings.TrimSpace(in.Code)
	name := strings.TrimSpace(in.Name)
	unit := strings.TrimSpace(in.Unit)

	if code == "" || name == "" || in.MinStockLevel < 0 {
		return nil, domain.ErrInvalidInput
	}
	if unit == "" {
		unit = uc.defaultUnit
	}

	item := &entity.Item{
		ID:            uuid.New().String(),
		Code:          code,
		Name:          name,
		Unit:          unit,
		MinStockLevel: in.MinStockLevel,
	}
	if err := uc.repo.CreateItem(item); err != nil {
		return nil, err
	}
	return toItemResponse(item), nil
}

// List devuelve todos los artículos ordenados por nombre.
func (uc *ItemUseCase) List() []dto.ItemResponse {
	items := uc.repo.ListItems()
	out := make([]dto.ItemResponse, 0, len(items))
	for i := range items {
		out = append(out, *toItemResponse(&items[i]))
	}
	return out
}

// GetByID obtiene un artículo por ID; nil si no existe.
func (uc *ItemUseCase) GetByID(id string) *dto.ItemResponse {
	return toItemResponse(uc.repo.GetItem(id))
}

// LowStock devuelve los artículos en o por debajo de su mínimo, los más
// críticos primero, con el faltante calculado.
func (uc *ItemUseCase) LowStock() []dto.LowStockItemResponse {
	rows := uc.repo.LowStockItems()
	out := make([]dto.LowStockItemResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.LowStockItemResponse{
			ItemID:        r.ItemID,
			Code:          r.Code,
			Name:          r.Name,
			Unit:          r.Unit,
			CurrentStock:  r.CurrentStock,
			MinStockLevel: r.MinStockLevel,
			Shortage:      r.Shortage,
		})
	}
	return out
}

// Movements devuelve el historial de movimientos del artículo, más recientes
// primero, truncado a take. Vacío si el artículo no existe.
func (uc *ItemUseCase) Movements(itemID string, take int) []dto.StockMovementResponse {
	return toMovementResponses(uc.repo.ItemMovements(itemID, take))
}

func toItemResponse(item *entity.Item) *dto.ItemResponse {
	if item == nil {
		return nil
	}
	return &dto.ItemResponse{
		ID:            item.ID,
		Code:          item.Code,
		Name:          item.Name,
		Unit:          item.Unit,
		MinStockLevel: item.MinStockLevel,
		CurrentStock:  item.CurrentStock,
		IsLowStock:    item.IsLowStock(),
	}
}

func toMovementResponses(rows []repository.MovementResult) []dto.StockMovementResponse {
	out := make([]dto.StockMovementResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.StockMovementResponse{
			ItemID:       r.ItemID,
			ItemName:     r.ItemName,
			MovementType: r.MovementType,
			Quantity:     r.Quantity,
			PartyName:    r.PartyName,
			ReferenceNo:  r.ReferenceNo,
			CreatedAtUTC: r.CreatedAtUTC,
		})
	}
	return out
}
