package usecase

import (
	"strings"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/entity"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain/repository"
)

// MasterDataUseCase administra los registros de proveedores y áreas.
//
// El alta es un upsert idempotente: repetir un nombre (aun cambiando
// mayúsculas) devuelve el registro existente en lugar de duplicarlo.
type MasterDataUseCase struct {
	repo repository.InventoryRepository
}

// NewMasterDataUseCase construye el caso de uso.
func NewMasterDataUseCase(repo repository.InventoryRepository) *MasterDataUseCase {
	return &MasterDataUseCase{repo: repo}
}

// Suppliers lista los proveedores ordenados por nombre.
func (uc *MasterDataUseCase) Suppliers() []dto.NamedEntityResponse {
	return toNamedEntityResponses(uc.repo.ListSuppliers())
}

// Departments lista las áreas ordenadas por nombre.
func (uc *MasterDataUseCase) Departments() []dto.NamedEntityResponse {
	return toNamedEntityResponses(uc.repo.ListDepartments())
}

// AddSupplier hace upsert del proveedor por nombre.
func (uc *MasterDataUseCase) AddSupplier(name string) (*dto.NamedEntityResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	e := uc.repo.UpsertSupplier(name)
	return &dto.NamedEntityResponse{ID: e.ID, Name: e.Name}, nil
}

// AddDepartment hace upsert del área por nombre.
func (uc *MasterDataUseCase) AddDepartment(name string) (*dto.NamedEntityResponse, error) {
	name = strings.TrimSpace(name)
	if name == "" {
		return nil, domain.ErrInvalidInput
	}
	e := uc.repo.UpsertDepartment(name)
	return &dto.NamedEntityResponse{ID: e.ID, Name: e.Name}, nil
}

func toNamedEntityResponses(entities []entity.NamedEntity) []dto.NamedEntityResponse {
	out := make([]dto.NamedEntityResponse, 0, len(entities))
	for _, e := range entities {
		out = append(out, dto.NamedEntityResponse{ID: e.ID, Name: e.Name})
	}
	return out
}
