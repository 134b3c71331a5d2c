package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/usecase"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
)

// ItemHandler maneja las peticiones HTTP de artículos.
type ItemHandler struct {
	uc          *usecase.ItemUseCase
	defaultTake int
}

// NewItemHandler construye el handler.
func NewItemHandler(uc *usecase.ItemUseCase, defaultTake int) *ItemHandler {
	return &ItemHandler{uc: uc, defaultTake: defaultTake}
}

// List godoc
// @Summary      Listar artículos
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.ItemResponse
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	return c.JSON(h.uc.List())
}

// Create godoc
// @Summary      Crear artículo
// @Tags         items
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "code, name, unit (opcional), min_stock_level"
// @Success      201   {object}  dto.ItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	item, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "código y nombre son obligatorios; el mínimo no puede ser negativo"})
		}
		if errors.Is(err, domain.ErrDuplicate) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "DUPLICATE_CODE", Message: "el código de artículo ya existe"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(item)
}

// GetByID godoc
// @Summary      Obtener artículo por ID
// @Tags         items
// @Produce      json
// @Param        id   path  string  true  "ID del artículo"
// @Success      200  {object}  dto.ItemResponse
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	item := h.uc.GetByID(c.Params("id"))
	if item == nil {
		return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
	}
	return c.JSON(item)
}

// LowStock godoc
// @Summary      Artículos con stock bajo
// @Description  Artículos con stock en o por debajo del mínimo configurado,
//
//	ordenados con los más críticos primero, con el faltante calculado.
//
// @Tags         items
// @Produce      json
// @Success      200  {array}  dto.LowStockItemResponse
// @Router       /api/items/low-stock [get]
func (h *ItemHandler) LowStock(c *fiber.Ctx) error {
	return c.JSON(h.uc.LowStock())
}

// Movements godoc
// @Summary      Historial de movimientos de un artículo
// @Tags         items
// @Produce      json
// @Param        id    path   string  true   "ID del artículo"
// @Param        take  query  int     false  "Máximo de movimientos (por defecto 20)"
// @Success      200  {array}  dto.StockMovementResponse
// @Router       /api/items/{id}/movements [get]
func (h *ItemHandler) Movements(c *fiber.Ctx) error {
	take := clampQueryInt(c, "take", h.defaultTake, 1, maxTake)
	return c.JSON(h.uc.Movements(c.Params("id"), take))
}
