package http

import (
	"github.com/gofiber/fiber/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/reports"
)

// ReportHandler sirve los documentos descargables (protegido).
type ReportHandler struct {
	reports *reports.UseCase
}

// NewReportHandler construye el handler.
func NewReportHandler(uc *reports.UseCase) *ReportHandler {
	return &ReportHandler{reports: uc}
}

// DispatchNote godoc
// @Summary      Remisión de despacho en PDF
// @Description  Genera la remisión del pedido. Borradores y pedidos cancelados
//               no admiten remisión.
// @Tags         reports
// @Security     Bearer
// @Produce      application/pdf
// @Param        id  path  string  true  "ID del pedido"
// @Success      200  {file}    file
// @Failure      409  {object}  dto.ErrorResponse
// @Router       /api/orders/{id}/dispatch-note [get]
func (h *ReportHandler) DispatchNote(c *fiber.Ctx) error {
	pdf, filename, err := h.reports.DispatchNotePDF(c.Context(), c.Params("id"))
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/pdf")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(pdf)
}

// PositionsReport godoc
// @Summary      Reporte de posiciones en XLSX
// @Description  Libro con materias primas y producto terminado al instante de
//               la descarga.
// @Tags         reports
// @Security     Bearer
// @Produce      application/vnd.openxmlformats-officedocument.spreadsheetml.sheet
// @Success      200  {file}  file
// @Router       /api/reports/positions [get]
func (h *ReportHandler) PositionsReport(c *fiber.Ctx) error {
	book, filename, err := h.reports.PositionsXLSX(c.Context())
	if err != nil {
		return respondError(c, err)
	}
	c.Set(fiber.HeaderContentType, "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	c.Set(fiber.HeaderContentDisposition, `attachment; filename="`+filename+`"`)
	return c.Send(book)
}
