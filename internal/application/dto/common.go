package dto

// PageRequest paginación para listados.
type PageRequest struct {
	Limit  int `query:"limit" validate:"omitempty,min=1,max=100"`
	Offset int `query:"offset" validate:"omitempty,min=0"`
}

// LimitOffset aplica valores por defecto y devuelve el par limit/offset.
func (p PageRequest) LimitOffset() (int, int) {
	limit := p.Limit
	if limit <= 0 {
		limit = 20
	}
	offset := p.Offset
	if offset < 0 {
		offset = 0
	}
	return limit, offset
}

// PageResponse metadatos de página en respuestas.
type PageResponse struct {
	Limit  int `json:"limit"`
	Offset int `json:"offset"`
	Total  int `json:"total,omitempty"`
}

// ErrorResponse cuerpo de error HTTP.
type ErrorResponse struct {
	Code    string `json:"code"`
	Message string `json:"message"`
}

// TransitionRequest body para cambios de estado de lote, pedido u orden de compra.
type TransitionRequest struct {
	Status string `json:"status" validate:"required"`
}
