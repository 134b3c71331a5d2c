package http

import (
	"errors"
	"fmt"

	"github.com/gofiber/fiber/v2"

	"github.com/majazi041999-spec/anbardarymajazi/internal/application/dto"
	"github.com/majazi041999-spec/anbardarymajazi/internal/application/usecase"
	"github.com/majazi041999-spec/anbardarymajazi/internal/domain"
)

// IssueHandler maneja las peticiones HTTP de salidas de stock.
type IssueHandler struct {
	uc          *usecase.IssueUseCase
	defaultTake int
}

// NewIssueHandler construye el handler.
func NewIssueHandler(uc *usecase.IssueUseCase, defaultTake int) *IssueHandler {
	return &IssueHandler{uc: uc, defaultTake: defaultTake}
}

// Create godoc
// @Summary      Registrar salida de stock
// @Tags         issues
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateIssueRequest  true  "item_id, quantity, department_name, reference_no"
// @Success      201   {object}  dto.IssueResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/issues [post]
func (h *IssueHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateIssueRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}

	issue, current, err := h.uc.Create(in)
	if err != nil {
		if errors.Is(err, domain.ErrInvalidInput) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "artículo, cantidad positiva, área y referencia son obligatorios"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "artículo no encontrado"})
		}
		if errors.Is(err, domain.ErrInsufficientStock) {
			// current trae el estado del artículo sin mutar: se informa el disponible.
			msg := "stock insuficiente"
			if current != nil {
				msg = fmt.Sprintf("stock insuficiente: disponible %d %s", current.CurrentStock, current.Unit)
			}
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INSUFFICIENT_STOCK", Message: msg})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(issue)
}

// Recent godoc
// @Summary      Salidas recientes
// @Tags         issues
// @Produce      json
// @Param        take  query  int  false  "Máximo de salidas (por defecto 20)"
// @Success      200  {array}  dto.IssueResponse
// @Router       /api/issues/recent [get]
func (h *IssueHandler) Recent(c *fiber.Ctx) error {
	take := clampQueryInt(c, "take", h.defaultTake, 1, maxTake)
	return c.JSON(h.uc.Recent(take))
}
