package dto

// CreateShopRequest entrada para crear una tienda.
type CreateShopRequest struct {
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	City          string `json:"city"`
}

// UpdateShopRequest entrada para actualizar una tienda (campos opcionales).
type UpdateShopRequest struct {
	Name          *string `json:"name"`
	Address       *string `json:"address"`
	ContactNumber *string `json:"contactNumber"`
	Email         *string `json:"email"`
	City          *string `json:"city"`
}

// ShopResponse salida de una tienda.
type ShopResponse struct {
	ID            string `json:"id"`
	Name          string `json:"name"`
	Address       string `json:"address"`
	ContactNumber string `json:"contactNumber"`
	Email         string `json:"email"`
	City          string `json:"city"`
}
