package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
	"github.com/jhoicas/Cerveceria-api/internal/application/usecase"
)

// RecipeHandler maneja el catálogo de recetas (protegido).
type RecipeHandler struct {
	recipes *usecase.RecipeUseCase
}

// NewRecipeHandler construye el handler.
func NewRecipeHandler(recipes *usecase.RecipeUseCase) *RecipeHandler {
	return &RecipeHandler{recipes: recipes}
}

// Create godoc
// @Summary      Crear receta
// @Description  Crea la versión 1 de una receta con su lista de ingredientes y
//               precios por formato. Los ingredientes quedan congelados; los
//               cambios se hacen clonando una versión nueva.
// @Tags         recipes
// @Security     Bearer
// @Accept       json
// @Produce      json
// @Param        body  body  dto.CreateRecipeRequest  true  "Receta"
// @Success      201   {object}  entity.Recipe
// @Failure      400   {object}  dto.ErrorResponse
// @Router       /api/recipes [post]
func (h *RecipeHandler) Create(c *fiber.Ctx) error {
	var in dto.CreateRecipeRequest
	if ok, err := parseBody(c, &in); !ok {
		return err
	}
	out, err := h.recipes.Create(c.Context(), in)
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// Clone godoc
// @Summary      Clonar receta como versión nueva
// @Description  Copia ingredientes y precios a una versión nueva y desactiva la
//               versión origen.
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la receta origen"
// @Success      201  {object}  entity.Recipe
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id}/clone [post]
func (h *RecipeHandler) Clone(c *fiber.Ctx) error {
	out, err := h.recipes.CloneVersion(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.Status(fiber.StatusCreated).JSON(out)
}

// GetByID godoc
// @Summary      Obtener receta
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        id  path  string  true  "ID de la receta"
// @Success      200  {object}  entity.Recipe
// @Failure      404  {object}  dto.ErrorResponse
// @Router       /api/recipes/{id} [get]
func (h *RecipeHandler) GetByID(c *fiber.Ctx) error {
	out, err := h.recipes.GetByID(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}

// List godoc
// @Summary      Listar recetas
// @Tags         recipes
// @Security     Bearer
// @Produce      json
// @Param        active  query  bool  false  "Solo versiones activas"
// @Success      200  {array}  entity.Recipe
// @Router       /api/recipes [get]
func (h *RecipeHandler) List(c *fiber.Ctx) error {
	out, err := h.recipes.List(c.Context(), c.QueryBool("active"))
	if err != nil {
		return respondError(c, err)
	}
	return c.JSON(out)
}
