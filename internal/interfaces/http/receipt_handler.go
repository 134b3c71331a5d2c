package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/usecase"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
)

// ReceiptHandler maneja las peticiones HTTP de entradas de stock.
type ReceiptHandler struct {
	uc          *usecase.ReceiptUseCase
	defaultTake int
}

// NewReceiptHandler construye el handler.
func NewReceiptHandler(uc *usecase.ReceiptUseCase, defaultTake int) *ReceiptHandler {
	return &ReceiptHandler{uc: uc, defaultTake: defaultTake}
}

// Create godoc
// @Summary      Registrar entrada de stock
// @Tags         receipts
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateReceiptRequest  true  "item_id, quantity, supplier_name, reference_no"
// @Success      201   {object}  dto.ReceiptResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/receipts [post]
func (h *ReceiptHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateReceiptRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	receipt, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "artículo, cantidad positiva, proveedor y referencia son obligatorios"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(receipt)
}

// Recent godoc
// @Summary      Entradas recientes
// @Tags         receipts
// @Produce      json
// @Param        take  query  int  false  "Máximo de entradas (por defecto 20)"
// @Success      200  {array}  dto.ReceiptResponse
// @Router       /api/receipts/recent [get]
func (h *ReceiptHandler) Recent(c *fiber.Ctx) error {
	take := clampQueryInt(c, "take", h.defaultTake, 1, maxTake)
	return c.JSON(h.uc.Recent(take))
}
