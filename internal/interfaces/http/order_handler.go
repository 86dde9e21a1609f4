package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/lifecycle"
	"github.com/jhoicas/Cerveceria-api/internal/application/orders"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// OrderHandler maneja las peticiones HTTP de pedidos de venta (protegido).
type OrderHandler struct {
	uc         *orders.OrderUseCase
	transition *lifecycle.OrderTransitionUseCase
}

// NewOrderHandler construye el handler.
func NewOrderHandler(uc *orders.OrderUseCase, transition *lifecycle.OrderTransitionUseCase) *OrderHandler {
	return &OrderHandler{uc: uc, transition: transition}
}

// Create godoc
// @Summary      Crear pedido
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateOrderRequest  true  "customer_id, lines"
// @Success      201   {object}  entity.Order
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/orders [post]
func (h *OrderHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateOrderRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// List godoc
// @Summary      Listar pedidos
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   entity.Order
// @Router       /api/orders [get]
func (h *OrderHandler) List(c *fiber.Ctx) error {
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	limit, offset := page.LimitOffset()
	out, err := h.uc.List(c.Context(), c.Query("status"), limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener pedido por ID
// @Tags         orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del pedido"
// @Success      200  {object}  entity.Order
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/orders/{id} [get]
func (h *OrderHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReplaceLines godoc
// @Summary      Reemplazar renglones del pedido
// @Description  Solo en estado draft. Recalcula totales transaccionalmente.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID del pedido"
// @Param        body  body  []dto.OrderLineRequest  true  "renglones nuevos"
// @Success      200   {object}  entity.Order
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/lines [put]
func (h *OrderHandler) ReplaceLines(c *fiber.Ctx) error {
	var in []dto.OrderLineRequest
	if err := c.BodyParser(&in); err != nil {
		return badRequest(c, "cuerpo inválido")
	}
	if len(in) == 0 {
		return badRequest(c, "se requiere al menos un renglón")
	}
	out, err := h.uc.ReplaceLines(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Cambiar estado del pedido
// @Description  Repetir el estado actual es un no-op idempotente. cancelled
//               libera las reservas de producto terminado de los renglones.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del pedido"
// @Param        body  body  dto.TransitionRequest  true  "status destino"
// @Success      200   {object}  entity.Order
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/status [put]
func (h *OrderHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	target, err := entity.ParseOrderStatus(in.Status)
	if err != nil {
		return badRequest(c, "estado de pedido desconocido")
	}
	out, err := h.transition.Transition(c.Context(), c.Params("id"), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// PickLine godoc
// @Summary      Asignar producto terminado a un renglón
// @Description  El pedido debe estar en picking; el producto debe coincidir en
//               receta y formato y tener disponible suficiente. Reasignar libera
//               la reserva anterior.
// @Tags         orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id      path  string               true  "ID del pedido"
// @Param        lineId  path  string               true  "ID del renglón"
// @Param        body    body  dto.PickLineRequest  true  "finished_goods_id"
// @Success      200   {object}  entity.OrderLine
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/lines/{lineId}/pick [post]
func (h *OrderHandler) PickLine(c *fiber.Ctx) error {
	var in dto.PickLineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.PickLine(c.Context(), c.Params("id"), c.Params("lineId"), in.FinishedGoodsID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
