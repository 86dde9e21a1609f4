package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/planning"
)

// PlanningHandler expone la vista de demanda agregada (protegido).
type PlanningHandler struct {
	demand *planning.DemandUseCase
}

// NewPlanningHandler construye el handler.
func NewPlanningHandler(demand *planning.DemandUseCase) *PlanningHandler {
	return &PlanningHandler{demand: demand}
}

// Demand godoc
// @Summary      Vista de demanda
// @Description  Pedidos abiertos, demanda agregada por (receta, formato) contra
//               disponible de producto terminado, y grupos con faltante.
// @Tags         planning
// @Security     Bearer
// @Produce      json
// @Success      200  {object}  dto.DemandViewDTO
// @Router       /api/planning/demand [get]
func (h *PlanningHandler) Demand(c *fiber.Ctx) error {
	out, err := h.demand.DemandView(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
