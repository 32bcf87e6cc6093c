package http

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/tu-usuario/scrapmaster-api/internal/application/dto"
	"github.com/tu-usuario/scrapmaster-api/internal/application/scrap"
	"github.com/tu-usuario/scrapmaster-api/internal/domain"
	"github.com/tu-usuario/scrapmaster-api/internal/domain/entity"
)

// ScrapHandler maneja las peticiones HTTP del ciclo de vida de ítems.
type ScrapHandler struct {
	uc *scrap.ScrapUseCase
}

// NewScrapHandler construye el handler.
func NewScrapHandler(uc *scrap.ScrapUseCase) *ScrapHandler {
	return &ScrapHandler{uc: uc}
}

// Create godoc
// @Summary      Enviar ítem de chatarra
// @Tags         scrap-items
// @Security     Session
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateScrapItemRequest  true  "scrap_type, weight, price_offered, description"
// @Success      201   {object}  dto.ScrapItemResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/scrap-items [post]
func (h *ScrapHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateScrapItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	out, err := h.uc.Submit(c.Context(), CurrentUser(c), in)
	if err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "scrap_type debe ser del catálogo, weight > 0 y price_offered >= 0"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar mis ítems
// @Tags         scrap-items
// @Security     Session
// @Produce      json
// @Success      200  {array}  dto.ScrapItemResponse
// @Router       /api/scrap-items [get]
func (h *ScrapHandler) List(c *fiber.Ctx) error {
	out, err := h.uc.ListOwn(c.Context(), CurrentUser(c).ID)
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// ListAll godoc
// @Summary      Listar todos los ítems con su dueño
// @Tags         scrap-items
// @Security     Session
// @Produce      json
// @Success      200  {array}   dto.ScrapItemWithOwnerResponse
// @Failure      403  {object}  dto.ErrorResponse
// @Router       /api/scrap-items/all [get]
func (h *ScrapHandler) ListAll(c *fiber.Ctx) error {
	out, err := h.uc.ListAll(c.Context())
	if err != nil {
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(out)
}

// UpdateStatus godoc
// @Summary      Decidir sobre un ítem pendiente
// @Tags         scrap-items
// @Security     Session
// @Accept       json
// @Produce      json
// @Param        id    path  string  true  "ID del ítem"
// @Param        body  body  dto.DecideScrapItemRequest  true  "status: approved | rejected"
// @Success      200   {object}  dto.MessageResponse
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/scrap-items/{id}/status [put]
func (h *ScrapHandler) UpdateStatus(c *fiber.Ctx) error {
	id := c.Params("id")
	var in dto.DecideScrapItemRequest
	if err := c.BodyParser(&in); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "INVALID_BODY", Message: "cuerpo inválido"})
	}
	if err := h.uc.Decide(c.Context(), id, in.Status); err != nil {
		if errors.Is(err, domain.ErrValidation) {
			return c.Status(fiber.StatusBadRequest).JSON(dto.ErrorResponse{Code: "VALIDATION", Message: "status debe ser approved o rejected"})
		}
		if errors.Is(err, domain.ErrNotFound) {
			return c.Status(fiber.StatusNotFound).JSON(dto.ErrorResponse{Code: "NOT_FOUND", Message: "ítem no encontrado"})
		}
		if errors.Is(err, domain.ErrConflict) {
			return c.Status(fiber.StatusConflict).JSON(dto.ErrorResponse{Code: "CONFLICT", Message: "el ítem ya no está pendiente"})
		}
		return c.Status(fiber.StatusInternalServerError).JSON(dto.ErrorResponse{Code: "INTERNAL", Message: err.Error()})
	}
	return c.JSON(dto.MessageResponse{Message: "estado actualizado"})
}

// Types godoc
// @Summary      Catálogo de tipos de chatarra
// @Tags         scrap-items
// @Produce      json
// @Success      200  {object}  dto.ScrapTypesResponse
// @Router       /api/scrap-types [get]
func (h *ScrapHandler) Types(c *fiber.Ctx) error {
	return c.JSON(dto.ScrapTypesResponse{ScrapTypes: entity.ScrapTypes()})
}
