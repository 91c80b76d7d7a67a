package entity

// Shop representa un punto de venta. Posee cero o más ventas; al eliminar
// la tienda se eliminan sus ventas en la misma transacción.
type Shop struct {
	ID            string
	Name          string
	Address       string
	ContactNumber string
	Email         string
	City          string
}
