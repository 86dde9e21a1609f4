package entity

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// PackFormat formato de empaque de producto terminado.
type PackFormat string

const (
	FormatKeg50   PackFormat = "keg_50l"
	FormatKeg30   PackFormat = "keg_30l"
	FormatBottle330 PackFormat = "bottle_330ml"
	FormatBottle500 PackFormat = "bottle_500ml"
	FormatCan440    PackFormat = "can_440ml"
)

// ParsePackFormat valida un formato recibido del borde.
func ParsePackFormat(s string) (PackFormat, error) {
	switch PackFormat(s) {
	case FormatKeg50, FormatKeg30, FormatBottle330, FormatBottle500, FormatCan440:
		return PackFormat(s), nil
	}
	return "", fmt.Errorf("formato de empaque desconocido: %q", s)
}

// Liters volumen en litros de una unidad del formato.
func (f PackFormat) Liters() decimal.Decimal {
	switch f {
	case FormatKeg50:
		return decimal.NewFromInt(50)
	case FormatKeg30:
		return decimal.NewFromInt(30)
	case FormatBottle330:
		return decimal.NewFromFloat(0.33)
	case FormatBottle500:
		return decimal.NewFromFloat(0.5)
	case FormatCan440:
		return decimal.NewFromFloat(0.44)
	}
	return decimal.Zero
}

// Recipe representa una receta de cerveza. El versionado histórico se maneja solo por
// clonación explícita (CloneVersion): la versión clonada es una receta nueva e independiente.
type Recipe struct {
	ID          string
	Name        string
	Style       string // ej. "IPA", "Stout"
	Version     int
	BatchSize   decimal.Decimal // litros por lote estándar
	TargetOG    *decimal.Decimal
	TargetFG    *decimal.Decimal
	TargetABV   *decimal.Decimal
	TaxRate     decimal.Decimal // IVA aplicable al producto terminado
	DefaultFormat PackFormat    // formato de empaque por defecto del flujo de empaque
	UnitPrices  map[PackFormat]decimal.Decimal
	Ingredients []RecipeIngredient
	Active      bool
	CreatedAt   time.Time
	UpdatedAt   time.Time
}

// RecipeIngredient requerimiento de materia prima para un lote estándar de la receta.
// Es la base del cálculo de cantidad asignada (allocated) en el libro de inventario.
type RecipeIngredient struct {
	ID       string
	RecipeID string
	ItemID   string
	Quantity decimal.Decimal // por lote de BatchSize litros, en la unidad del ítem
	Stage    string          // mash, boil, fermentation, packaging
}

// UnitPrice precio de venta para un formato; cero si no está definido.
func (r *Recipe) UnitPrice(f PackFormat) decimal.Decimal {
	if p, ok := r.UnitPrices[f]; ok {
		return p
	}
	return decimal.Zero
}
