package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/lifecycle"
	"github.com/jhoicas/Cerveceria-api/internal/application/production"
	"github.com/jhoicas/Cerveceria-api/internal/domain/entity"
)

// BatchHandler maneja las peticiones HTTP de lotes de producción (protegido).
type BatchHandler struct {
	uc         *production.BatchUseCase
	transition *lifecycle.BatchTransitionUseCase
}

// NewBatchHandler construye el handler.
func NewBatchHandler(uc *production.BatchUseCase, transition *lifecycle.BatchTransitionUseCase) *BatchHandler {
	return &BatchHandler{uc: uc, transition: transition}
}

// Create godoc
// @Summary      Planear lote de producción
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateBatchRequest  true  "recipe_id, batch_size, planned_date"
// @Success      201   {object}  entity.Batch
// @Failure      400   {object}  dto.ErrorResponse
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches [post]
func (h *BatchHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateBatchRequest
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
// @Summary      Listar lotes
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        status  query  string  false  "Filtrar por estado"
// @Param        limit   query  int     false  "Máximo de filas (default 20)"
// @Param        offset  query  int     false  "Desplazamiento"
// @Success      200  {array}   entity.Batch
// @Router       /api/batches [get]
func (h *BatchHandler) List(c *fiber.Ctx) error {
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
// @Summary      Obtener lote por ID
// @Tags         batches
// @Security     Bearer
// @Produce      json
// @Param        id   path  string  true  "ID del lote"
// @Success      200  {object}  entity.Batch
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/batches/{id} [get]
func (h *BatchHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.uc.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// Transition godoc
// @Summary      Cambiar estado del lote
// @Description  Aplica la transición del ciclo de vida. Repetir el estado actual
//               es un no-op idempotente. packaged dispara el empaque (consumo de
//               ingredientes y alta de producto terminado) tras el commit.
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del lote"
// @Param        body  body  dto.TransitionRequest  true  "status destino"
// @Success      200   {object}  entity.Batch
// @Failure      404   {object}  dto.ErrorResponse
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/status [put]
func (h *BatchHandler) Transition(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	target, err := entity.ParseBatchStatus(in.Status)
	if err != nil {
		return badRequest(c, "estado de lote desconocido")
	}
	out, err := h.transition.Transition(c.Context(), c.Params("id"), target)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// AssignVessel godoc
// @Summary      Asignar tanque al lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                   true  "ID del lote"
// @Param        body  body  dto.AssignVesselRequest  true  "vessel_id"
// @Success      200   {object}  entity.Batch
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/vessel [put]
func (h *BatchHandler) AssignVessel(c *fiber.Ctx) error {
	var in dto.AssignVesselRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.AssignVessel(c.Context(), c.Params("id"), in.VesselID)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// RecordMeasurements godoc
// @Summary      Registrar mediciones del lote
// @Tags         batches
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                        true  "ID del lote"
// @Param        body  body  dto.BatchMeasurementsRequest  true  "volumen, OG, FG, ABV"
// @Success      200   {object}  entity.Batch
// @Failure      404   {object}  dto.ErrorResponse
// @Router       /api/batches/{id}/measurements [put]
func (h *BatchHandler) RecordMeasurements(c *fiber.Ctx) error {
	var in dto.BatchMeasurementsRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.uc.RecordMeasurements(c.Context(), c.Params("id"), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
