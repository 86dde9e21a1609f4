package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/usecase"
)

// SupplierHandler maneja el catálogo de proveedores (protegido).
type SupplierHandler struct {
	suppliers *usecase.SupplierUseCase
}

// NewSupplierHandler construye el handler.
func NewSupplierHandler(suppliers *usecase.SupplierUseCase) *SupplierHandler {
	return &SupplierHandler{suppliers: suppliers}
}

// Create godoc
// @Summary      Crear proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.SupplierRequest  true  "Proveedor"
// @Success      201   {object}  entity.Supplier
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/suppliers [post]
func (h *SupplierHandler) Create(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.suppliers.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar proveedor
// @Tags         suppliers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del proveedor"
// @Param        body  body  dto.SupplierRequest  true  "Proveedor"
// @Success      200   {object}  entity.Supplier
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [put]
func (h *SupplierHandler) Update(c *fiber.Ctx) error {
	var in dto.SupplierRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.suppliers.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener proveedor
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del proveedor"
// @Success      200  {object}  entity.Supplier
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/suppliers/{id} [get]
func (h *SupplierHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.suppliers.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar proveedores
// @Description  search busca por nombre sin distinguir mayúsculas ni tildes.
// @Tags         suppliers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Texto a buscar en el nombre"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  entity.Supplier
// @Router       /api/suppliers [get]
func (h *SupplierHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	out, err := h.suppliers.List(c.Context(), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
