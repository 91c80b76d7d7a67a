package sales_test

import (
	"testing"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"

	"github.com/jhoicas/myland-api/internal/domain/sales"
)

func TestNetUnits(t *testing.T) {
	assert.Equal(t, 8, sales.NetUnits(10, 2), "10 vendidas - 2 devueltas = 8 netas")
	assert.Equal(t, 0, sales.NetUnits(2, 5), "las devoluciones que superan las ventas se truncan en cero")
	assert.Equal(t, 0, sales.NetUnits(0, 0))
	assert.Equal(t, 10, sales.NetUnits(10, 0))
}

// Escenario de referencia: precioVenta=20, costo=12, vendidas=10, devueltas=2
// → netas=8, ingreso=160, utilidad=64.
func TestComputeIncome_EscenarioReferencia(t *testing.T) {
	net := sales.NetUnits(10, 2)
	income, profit := sales.ComputeIncome(net, decimal.NewFromInt(20), decimal.NewFromInt(12))

	assert.True(t, income.Equal(decimal.NewFromInt(160)), "ingreso = 8 * 20 = 160, obtuvo %s", income)
	assert.True(t, profit.Equal(decimal.NewFromInt(64)), "utilidad = 8 * (20-12) = 64, obtuvo %s", profit)
}

func TestComputeIncome_CeroUnidades(t *testing.T) {
	income, profit := sales.ComputeIncome(0, decimal.NewFromInt(20), decimal.NewFromInt(12))
	assert.True(t, income.IsZero())
	assert.True(t, profit.IsZero())
}

// Un costo mayor al precio de venta produce utilidad negativa; el ingreso no se ve afectado.
func TestComputeIncome_UtilidadNegativa(t *testing.T) {
	income, profit := sales.ComputeIncome(5, decimal.NewFromInt(10), decimal.NewFromInt(15))
	assert.True(t, income.Equal(decimal.NewFromInt(50)))
	assert.True(t, profit.Equal(decimal.NewFromInt(-25)))
}

func TestComputeIncome_PreciosDecimales(t *testing.T) {
	income, profit := sales.ComputeIncome(3, decimal.RequireFromString("9.99"), decimal.RequireFromString("4.50"))
	assert.True(t, income.Equal(decimal.RequireFromString("29.97")), "obtuvo %s", income)
	assert.True(t, profit.Equal(decimal.RequireFromString("16.47")), "obtuvo %s", profit)
}
