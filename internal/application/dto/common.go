package dto

import "time"

// DateLayout formato de fecha de la API (yyyy-MM-dd).
const DateLayout = "2006-01-02"

// ParseDate interpreta una fecha de la API. Vacío devuelve la fecha actual.
func ParseDate(s string) (time.Time, error) {
	if s == "" {
		now := time.Now()
		return time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, time.UTC), nil
	}
	return time.Parse(DateLayout, s)
}

// ErrorResponse cuerpo de error HTTP. El mensaje legible viaja bajo la clave
// "error"; el código es una etiqueta estable para clientes.
type ErrorResponse struct {
	Code    string `json:"code,omitempty"`
	Message string `json:"error"`
}

// Ref referencia por id a otra entidad en los cuerpos de petición, ej. {"product": {"id": "..."}}.
type Ref struct {
	ID string `json:"id"`
}
