package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/usecase"
)

// CustomerHandler maneja el catálogo de clientes (protegido).
type CustomerHandler struct {
	customers *usecase.CustomerUseCase
}

// NewCustomerHandler construye el handler.
func NewCustomerHandler(customers *usecase.CustomerUseCase) *CustomerHandler {
	return &CustomerHandler{customers: customers}
}

// Create godoc
// @Summary      Crear cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CustomerRequest  true  "Cliente"
// @Success      201   {object}  entity.Customer
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/customers [post]
func (h *CustomerHandler) Create(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.customers.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Update godoc
// @Summary      Actualizar cliente
// @Tags         customers
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string               true  "ID del cliente"
// @Param        body  body  dto.CustomerRequest  true  "Cliente"
// @Success      200   {object}  entity.Customer
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [put]
func (h *CustomerHandler) Update(c *fiber.Ctx) error {
	var in dto.CustomerRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.customers.Update(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener cliente
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del cliente"
// @Success      200  {object}  entity.Customer
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/customers/{id} [get]
func (h *CustomerHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.customers.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar clientes
// @Description  search busca por nombre sin distinguir mayúsculas ni tildes.
// @Tags         customers
// @Security     Bearer
// @Produce      json
// @Param        search  query  string  false  "Texto a buscar en el nombre"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}  entity.Customer
// @Router       /api/customers [get]
func (h *CustomerHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	out, err := h.customers.List(c.Context(), c.Query("search"), page)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
