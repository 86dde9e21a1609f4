package http

import (
	"time"

	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/inventory"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
	"github.com/jhoicas/Cerveceria-api/internal/domain/repository"
)

// InventoryHandler maneja posiciones, ajustes y consultas del libro (protegido).
type InventoryHandler struct {
	positions *inventory.PositionsUseCase
	adjust    *inventory.AdjustStockUseCase
	movements repository.StockMovementRepository
	lots      repository.LotRepository
}

// NewInventoryHandler construye el handler.
func NewInventoryHandler(
	positions *inventory.PositionsUseCase,
	adjust *inventory.AdjustStockUseCase,
	movements repository.StockMovementRepository,
	lots repository.LotRepository,
) *InventoryHandler {
	return &InventoryHandler{positions: positions, adjust: adjust, movements: movements, lots: lots}
}

// Positions godoc
// @Summary      Posiciones de materia prima
// @Description  on_hand, allocated, available y projected por ítem, calculados
//               contra el libro al instante de la consulta. available negativo
//               señala sobre-compromiso y se muestra tal cual.
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  false  "Un solo ítem (vacío = todos)"
// @Success      200  {array}   dto.ItemPositionDTO
// @Router       /api/inventory/positions [get]
func (h *InventoryHandler) Positions(c *fiber.Ctx) error {
	itemID := c.Query("item_id")
	if itemID != "" {
		out, err := h.positions.PositionForItem(c.Context(), itemID)
		if err != nil {
			return respondError(c, err)
		}
		return c.JSON(out)
	}
	out, err := h.positions.PositionForAll(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// FinishedPositions godoc
// @Summary      Posiciones de producto terminado
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        recipe_id  query  string  false  "Filtrar por receta"
// @Success      200  {array}   dto.FinishedPositionDTO
// @Router       /api/inventory/finished [get]
func (h *InventoryHandler) FinishedPositions(c *fiber.Ctx) error {
	out, err := h.positions.FinishedPositions(c.Context(), c.Query("recipe_id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Adjust godoc
// @Summary      Registrar ajuste manual sobre un lote
// @Description  adjusted (con signo), written_off (siempre resta) o returned.
//               Nunca deja el on-hand del lote por debajo de cero.
// @Tags         inventory
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.AdjustStockRequest  true  "lot_id, type, quantity"
// @Success      201   {object}  entity.StockMovement
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/inventory/adjustments [post]
func (h *InventoryHandler) Adjust(c *fiber.Ctx) error {
	var in dto.AdjustStockRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	movType, err := entity.ParseMovementType(in.Type)
	if err != nil {
		return badRequest(c, "tipo de movimiento desconocido")
	}
	out, err := h.adjust.Adjust(c.Context(), inventory.AdjustInput{
		LotID:    in.LotID,
		Type:     movType,
		Quantity: in.Quantity,
		Notes:    in.Notes,
		UserID:   GetUserID(c),
	})
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Movements godoc
// @Summary      Movimientos de un ítem
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  true   "Ítem a consultar"
// @Param        from     query  string  false  "Desde (RFC3339)"
// @Param        to       query  string  false  "Hasta (RFC3339)"
// @Param        limit    query  int     false  "Máximo de filas (default 20)"
// @Param        offset   query  int     false  "Desplazamiento"
// @Success      200  {array}   entity.StockMovement
// @Router       /api/inventory/movements [get]
func (h *InventoryHandler) Movements(c *fiber.Ctx) error {
	itemID := c.Query("item_id")
	if itemID == "" {
		return badRequest(c, "item_id es requerido")
	}
	var from, to *time.Time
	if s := c.Query("from"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return badRequest(c, "from inválido (RFC3339)")
		}
		from = &t
	}
	if s := c.Query("to"); s != "" {
		t, err := time.Parse(time.RFC3339, s)
		if err != nil {
			return badRequest(c, "to inválido (RFC3339)")
		}
		to = &t
	}
	var page dto.PageRequest
	if err := c.QueryParser(&page); err != nil {
		return badRequest(c, "parámetros de paginación inválidos")
	}
	limit, offset := page.LimitOffset()
	out, err := h.movements.ListByItem(c.Context(), itemID, from, to, limit, offset)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Lots godoc
// @Summary      Lotes de un ítem
// @Tags         inventory
// @Security     Bearer
// @Produce      json
// @Param        item_id  query  string  true  "Ítem a consultar"
// @Success      200  {array}   entity.Lot
// @Router       /api/inventory/lots [get]
func (h *InventoryHandler) Lots(c *fiber.Ctx) error {
	itemID := c.Query("item_id")
	if itemID == "" {
		return badRequest(c, "item_id es requerido")
	}
	out, err := h.lots.ListByItem(c.Context(), itemID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
