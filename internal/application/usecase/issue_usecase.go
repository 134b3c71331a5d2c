package usecase

import (
	"strings"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/repository"
)

// IssueUseCase registra y lista salidas de stock.
type IssueUseCase struct {
	repo repository.InventoryRepository
}

// NewIssueUseCase construye el caso de uso.
func NewIssueUseCase(repo repository.InventoryRepository) *IssueUseCase {
	return &IssueUseCase{repo: repo}
}

// Create valida y registra una salida de stock. Tres desenlaces del almacén:
// domain.ErrNotFound (artículo inexistente), domain.ErrInsufficientStock
// (sin mutación; current trae el estado actual del artículo para que el
// adaptador informe el disponible) o éxito con el movimiento creado.
func (uc *IssueUseCase) Create(in dto.CreateIssueRequest) (resp *dto.IssueResponse, current *dto.ItemResponse, err error) {
	department := strings.TrimSpace(in.DepartmentName)
	reference := strings.TrimSpace(in.ReferenceNo)

	if in.ItemID == "" || in.Quantity <= 0 || department == "" || reference == "" {
		return nil, nil, domain.ErrInvalidInput
	}

	issue, item, err := uc.repo.AddIssue(in.ItemID, in.Quantity, department, reference)
	if err != nil {
		return nil, toItemResponse(item), err
	}
	return &dto.IssueResponse{
		ID:             issue.ID,
		ItemID:         issue.ItemID,
		ItemName:       item.Name,
		Quantity:       issue.Quantity,
		DepartmentName: issue.DepartmentName,
		ReferenceNo:    issue.ReferenceNo,
		CreatedAtUTC:   issue.CreatedAtUTC,
	}, toItemResponse(item), nil
}

// Recent devuelve las salidas más recientes primero, truncadas a take.
func (uc *IssueUseCase) Recent(take int) []dto.IssueResponse {
	rows := uc.repo.RecentIssues(take)
	out := make([]dto.IssueResponse, 0, len(rows))
	for _, r := range rows {
		out = append(out, dto.IssueResponse{
			ID:             r.ID,
			ItemID:         r.ItemID,
			ItemName:       r.ItemName,
			Quantity:       r.Quantity,
			DepartmentName: r.PartyName,
			ReferenceNo:    r.ReferenceNo,
			CreatedAtUTC:   r.CreatedAtUTC,
		})
	}
	return out
}
