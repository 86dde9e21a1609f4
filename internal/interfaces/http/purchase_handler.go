package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/lifecycle"
	"github.com/jhoicas/Cerveceria-api/internal/application/purchasing"
	"github.com/jhoicas/Cerveceria-api/internal/application/receiving"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// PurchaseHandler maneja las peticiones HTTP de órdenes de compra y recepción (protegido).
type PurchaseHandler struct {
	uc         *purchasing.PurchaseOrderUseCase
	transition *lifecycle.PurchaseOrderTransitionUseCase
	receive    *receiving.ReceiveLineUseCase
}

// NewPurchaseHandler construye el handler.
func NewPurchaseHandler(
	uc *purchasing.PurchaseOrderUseCase,
	transition *lifecycle.PurchaseOrderTransitionUseCase,
	receive *receiving.ReceiveLineUseCase,
) *PurchaseHandler {
	return &PurchaseHandler{uc: uc, transition: transition, receive: receive}
}

// Create godoc
// @Summary      Crear orden de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreatePurchaseOrderRequest  true  "supplier_id, lines"
// @Success      201   {object}  entity.PurchaseOrder
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders [post]
func (h *PurchaseHandler) Create(c *fiber.Ctx) error {
	var in dto.CreatePurchaseOrderRequest
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
// @Summary      Listar órdenes de compra
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   entity.PurchaseOrder
// @Router       /api/purchase-orders [get]
func (h *PurchaseHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener orden de compra por ID
// @Tags         purchase-orders
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID de la orden"
// @Success      200  {object}  entity.PurchaseOrder
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id} [get]
func (h *PurchaseHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Cambiar estado de la orden de compra
// @Description  partially_received no se acepta como destino: lo deriva el
//               conciliador de recepciones. received exige todos los renglones
//               completos.
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID de la orden"
// @Param        body  body  dto.TransitionRequest  true  "status destino"
// @Success      200   {object}  entity.PurchaseOrder
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/status [put]
func (h *PurchaseHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	target, err := entity.ParsePurchaseOrderStatus(in.Status)
	if err != nil {
		return badRequest(c, "estado de orden de compra desconocido")
	}
	out, err := h.transition.Transition(c.Context(), c.Params("id"), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// ReceiveLine godoc
// @Summary      Recibir mercancía de un renglón
// @Description  Crea el lote con número y vencimiento del proveedor, registra el
//               asiento received, actualiza el costo promedio del ítem y deriva
//               el estado de la orden desde sus renglones. Sobre-recepción -> 409.
// @Tags         purchase-orders
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                  true  "ID de la orden"
// @Param        body  body  dto.ReceiveLineRequest  true  "line_id, quantity, lot_number"
// @Success      201   {object}  receiving.ReceiveLineResult
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/purchase-orders/{id}/receipts [post]
func (h *PurchaseHandler) ReceiveLine(c *fiber.Ctx) error {
	var in dto.ReceiveLineRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.receive.ReceiveLine(c.Context(), receiving.ReceiveLineInput{
		LineID:    in.LineID,
		Quantity:  in.Quantity,
		LotNumber: in.LotNumber,
		ExpiresAt: in.ExpiresAt,
		Notes:     in.Notes,
		UserID:    GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}
