package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/usecase"
)

// VesselHandler maneja los tanques de la planta (protegido).
type VesselHandler struct {
	vessels *usecase.VesselUseCase
}

// NewVesselHandler construye el handler.
func NewVesselHandler(vessels *usecase.VesselUseCase) *VesselHandler {
	return &VesselHandler{vessels: vessels}
}

// Create godoc
// @Summary      Registrar tanque
// @Tags         vessels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateVesselRequest  true  "Tanque"
// @Success      201   {object}  entity.Vessel
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/vessels [post]
func (h *VesselHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateVesselRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.vessels.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// SetStatus godoc
// @Summary      Cambiar estado de un tanque
// @Description  Solo available, maintenance y cleaning se fijan a mano. Un
//               tanque ocupado se libera con la transición del lote, no aquí.
// @Tags         vessels
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        id    path  string                 true  "ID del tanque"
// @Param        body  body  dto.TransitionRequest  true  "Estado destino"
// @Success      200   {object}  entity.Vessel
// @Failure      409   {object}  dto.ErrorResponse
// @Router       /api/vessels/{id}/status [put]
func (h *VesselHandler) SetStatus(c *fiber.Ctx) error {
	var in dto.TransitionRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.vessels.SetStatus(c.Context(), c.Params("id"), in.Status)
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// GetByID godoc
// @Summary      Obtener tanque
// @Tags         vessels
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID del tanque"
// @Success      200  {object}  entity.Vessel
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/vessels/{id} [get]
func (h *VesselHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.vessels.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar tanques
// @Tags         vessels
// @Security     Bearer
// @Produce      json
// @Success      200  {array}  entity.Vessel
// @Router       /api/vessels [get]
func (h *VesselHandler) List(c *fiber.Ctx) error {
	out, err := h.vessels.List(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
