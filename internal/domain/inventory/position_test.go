package inventory_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/Cerveceria-api/internal/domain/inventory"
)

func dec(s string) decimal.Decimal {
	d, _ := decimal.NewFromString(s)
	return d
}

func TestComputePosition(t *testing.T) {
	p := inventory.ComputePosition("item-1", dec("100"), dec("30"), dec("50"), decimal.Zero)

	assert.True(t, p.OnHand.Equal(dec("100")))
	assert.True(t, p.Allocated.Equal(dec("30")))
	assert.True(t, p.Available.Equal(dec("70")), "available = onHand - allocated")
	assert.True(t, p.Projected.Equal(dec("120")), "projected = available + incoming")
}

func TestComputePositionNegativeAvailable(t *testing.T) {
	// Sobre-compromiso: se muestra negativo, no se recorta a cero.
	p := inventory.ComputePosition("item-1", dec("10"), dec("25"), decimal.Zero, decimal.Zero)

	assert.True(t, p.Available.Equal(dec("-15")))
	assert.True(t, p.Projected.Equal(dec("-15")))
}

func TestComputePositionFuturePlanned(t *testing.T) {
	p := inventory.ComputePosition("item-1", dec("60"), dec("20"), dec("10"), dec("5"))
	assert.True(t, p.Projected.Equal(dec("45")), "projected descuenta consumo planeado futuro")
}

func TestComputeFinishedPosition(t *testing.T) {
	fp := inventory.ComputeFinishedPosition("recipe-1", "bottle_330", dec("240"), dec("300"))

	assert.True(t, fp.Available.Equal(dec("-60")), "sobre-asignación visible en negativo")
}

func TestWeightedCost(t *testing.T) {
	// 100 uds a $10 + 50 uds a $16 -> promedio $12.
	got := inventory.WeightedCost(dec("100"), dec("10"), dec("50"), dec("16"))
	assert.True(t, got.Equal(dec("12")), "got %s", got)
}

func TestWeightedCostFirstReceipt(t *testing.T) {
	// Sin existencias previas el costo es el de la entrada.
	got := inventory.WeightedCost(decimal.Zero, decimal.Zero, dec("40"), dec("7.5"))
	assert.True(t, got.Equal(dec("7.5")))
}

func TestWeightedCostZeroTotal(t *testing.T) {
	got := inventory.WeightedCost(decimal.Zero, dec("10"), decimal.Zero, dec("20"))
	assert.True(t, got.Equal(decimal.Zero))
}
