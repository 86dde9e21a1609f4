// Package xlsx genera el reporte de posiciones de inventario como libro Excel
// con una hoja de materias primas y otra de producto terminado.
package xlsx

import (
	"context"
	"fmt"

	"github.com/xuri/excelize/v2"

	"github.com/jhoicas/Cerveceria-api/internal/application/dto"
)

const (
	sheetItems    = "Materias primas"
	sheetFinished = "Producto terminado"
)

// PositionReport implementa reports.PositionReportGenerator usando excelize.
type PositionReport struct{}

// NewPositionReport construye el generador.
func NewPositionReport() *PositionReport { return &PositionReport{} }

// GeneratePositionsXLSX arma el libro y devuelve sus bytes.
func (g *PositionReport) GeneratePositionsXLSX(
	_ context.Context,
	items []dto.ItemPositionDTO,
	finished []dto.FinishedPositionDTO,
) ([]byte, error) {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", sheetItems); err != nil {
		return nil, fmt.Errorf("xlsx: renombrar hoja: %w", err)
	}
	if _, err := f.NewSheet(sheetFinished); err != nil {
		return nil, fmt.Errorf("xlsx: crear hoja: %w", err)
	}

	if err := writeItemsSheet(f, items); err != nil {
		return nil, err
	}
	if err := writeFinishedSheet(f, finished); err != nil {
		return nil, err
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("xlsx: escribir libro: %w", err)
	}
	return buf.Bytes(), nil
}

func writeItemsSheet(f *excelize.File, items []dto.ItemPositionDTO) error {
	headers := []string{"SKU", "Nombre", "Unidad", "En mano", "Comprometido", "Disponible", "En tránsito", "Proyectado"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetItems, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera de materias primas: %w", err)
		}
	}
	for r, p := range items {
		values := []interface{}{
			p.SKU, p.Name, p.Unit,
			p.OnHand.InexactFloat64(),
			p.Allocated.InexactFloat64(),
			p.Available.InexactFloat64(),
			p.Incoming.InexactFloat64(),
			p.Projected.InexactFloat64(),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetItems, cell, v); err != nil {
				return fmt.Errorf("xlsx: fila de materias primas: %w", err)
			}
		}
	}
	return nil
}

func writeFinishedSheet(f *excelize.File, finished []dto.FinishedPositionDTO) error {
	headers := []string{"Receta", "Formato", "En mano", "Reservado", "Disponible"}
	for i, h := range headers {
		cell, _ := excelize.CoordinatesToCellName(i+1, 1)
		if err := f.SetCellValue(sheetFinished, cell, h); err != nil {
			return fmt.Errorf("xlsx: cabecera de producto terminado: %w", err)
		}
	}
	for r, p := range finished {
		values := []interface{}{
			p.RecipeName, p.Format,
			p.OnHand.InexactFloat64(),
			p.Reserved.InexactFloat64(),
			p.Available.InexactFloat64(),
		}
		for c, v := range values {
			cell, _ := excelize.CoordinatesToCellName(c+1, r+2)
			if err := f.SetCellValue(sheetFinished, cell, v); err != nil {
				return fmt.Errorf("xlsx: fila de producto terminado: %w", err)
			}
		}
	}
	return nil
}
