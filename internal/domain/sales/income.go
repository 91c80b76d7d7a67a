package sales

import "github.com/shopspring/decimal"

// NetUnits calcula las unidades netas de una venta: vendidas - devueltas,
// con piso en cero.
func NetUnits(soldUnits, returnedUnits int) int {
	net := soldUnits - returnedUnits
	if net < 0 {
		return 0
	}
	return net
}

// ComputeIncome implementa la derivación de ingreso y utilidad (servicio de dominio).
// Ingreso = unidadesNetas * precioVenta
// Utilidad = unidadesNetas * (precioVenta - costoProducto)
func ComputeIncome(netUnits int, sellingPrice, productCost decimal.Decimal) (income, profit decimal.Decimal) {
	units := decimal.NewFromInt(int64(netUnits))
	income = units.Mul(sellingPrice)
	profit = units.Mul(sellingPrice.Sub(productCost))
	return income, profit
}
