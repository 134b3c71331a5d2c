package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/usecase"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
)

// MasterDataHandler maneja los registros de proveedores y áreas.
type MasterDataHandler struct {
	uc *usecase.MasterDataUseCase
}

// NewMasterDataHandler construye el handler.
func NewMasterDataHandler(uc *usecase.MasterDataUseCase) *MasterDataHandler {
	return &MasterDataHandler{uc: uc}
}

// ListSuppliers godoc
// @Summary      Listar proveedores
// @Tags         masters
// @Produce      json
// @Success      200  {array}  dto.NamedEntityResponse
// @Router       /api/masters/suppliers [get]
func (h *MasterDataHandler) ListSuppliers(c *fiber.Ctx) error {
	return c.JSON(h.uc.Suppliers())
}

// CreateSupplier godoc
// @Summary      Crear proveedor (upsert por nombre)
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNamedEntityRequest  true  "name"
// @Success      201   {object}  dto.NamedEntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/masters/suppliers [post]
func (h *MasterDataHandler) CreateSupplier(c *fiber.Ctx) error {
	return h.createNamed(c, h.uc.AddSupplier, "el nombre del proveedor es obligatorio")
}

// ListDepartments godoc
// @Summary      Listar áreas
// @Tags         masters
// @Produce      json
// @Success      200  {array}  dto.NamedEntityResponse
// @Router       /api/masters/departments [get]
func (h *MasterDataHandler) ListDepartments(c *fiber.Ctx) error {
	return c.JSON(h.uc.Departments())
}

// CreateDepartment godoc
// @Summary      Crear área (upsert por nombre)
// @Tags         masters
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateNamedEntityRequest  true  "name"
// @Success      201   {object}  dto.NamedEntityResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/masters/departments [post]
func (h *MasterDataHandler) CreateDepartment(c *fiber.Ctx) error {
	return h.createNamed(c, h.uc.AddDepartment, "el nombre del área es obligatorio")
}

func (h *MasterDataHandler) createNamed(c *fiber.Ctx, add func(string) (*dto.NamedEntityResponse, error), requiredMsg string) error {
	var in dto.CreateNamedEntityRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	entity, err := add(in.Name)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: requiredMsg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(entity)
}
