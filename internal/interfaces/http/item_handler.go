package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/usecase"
)

// ItemHandler maneja el catálogo de ítems de inventario (protegido).
type ItemHandler struct {
	items *usecase.ItemUseCase
}

// NewItemHandler construye el handler.
func NewItemHandler(items *usecase.ItemUseCase) *ItemHandler {
	return &ItemHandler{items: items}
}

// Create godoc
// @Summary      Crear ítem de inventario
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateItemRequest  true  "Ítem"
// @Success      201   {object}  entity.InventoryItem
// @Failure      409   {object}  dto.ErrorResponse  "SKU duplicado"
// @Router       /api/items [post]
func (h *ItemHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.items.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar ítem de inventario
// @Description  Actualización parcial: solo los campos presentes en el cuerpo.
// @Tags         items
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del ítem"
// @Param        body  body  dto.UpdateItemRequest  true  "Campos a cambiar"
// @Success      200   {object}  entity.InventoryItem
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/items/{id} [put]
func (h *ItemHandler) Update(c *fiber.Ctx) error {
	var in dto.UpdateItemRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.items.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener ítem de inventario
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del ítem"
// @Success      200  {object}  entity.InventoryItem
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/items/{id} [get]
func (h *ItemHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.items.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar ítems de inventario
// @Tags         items
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.InventoryItem
// @Router       /api/items [get]
func (h *ItemHandler) List(c *fiber.Ctx) error {
	out, err := h.items.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
