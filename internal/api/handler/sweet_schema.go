package handler

import (
	"time"

	"github.com/sweetshop/inventory-system/internal/core/domain"
)

// errorResponse is the standard error envelope returned on all 4xx/5xx responses.
type errorResponse struct {
	Error string `json:"error"`
}

// --- Request types ---

type createSweetRequest struct {
	Name     string  `json:"name"     validate:"required"`
	Category string  `json:"category" validate:"required"`
	Price    float64 `json:"price"    validate:"required,gt=0"`
	Quantity int64   `json:"quantity" validate:"gte=0"`
}

// updateSweetRequest is a partial update: absent fields stay unchanged, so
// every field is a pointer. Sending a field set to its zero value is distinct
// from omitting it.
type updateSweetRequest struct {
	Name     *string  `json:"name"     validate:"omitempty,min=1"`
	Category *string  `json:"category" validate:"omitempty,min=1"`
	Price    *float64 `json:"price"    validate:"omitempty,gt=0"`
	Quantity *int64   `json:"quantity" validate:"omitempty,gte=0"`
}

type restockRequest struct {
	Quantity int64 `json:"quantity" validate:"required,gt=0"`
}

// --- Response types ---

// Response-only types owned by the transport layer, intentionally separate
// from domain types so the JSON contract is not coupled to internal changes.

type sweetResponse struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	Price     float64   `json:"price"`
	Quantity  int64     `json:"quantity"`
	InStock   bool      `json:"in_stock"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

type listSweetsResponse struct {
	Data  []sweetResponse `json:"data"`
	Total int             `json:"total"`
}

func toSweetResponse(s *domain.Sweet) sweetResponse {
	return sweetResponse{
		ID:        s.ID,
		Name:      s.Name,
		Category:  s.Category,
		Price:     s.Price,
		Quantity:  s.Quantity,
		InStock:   s.InStock(),
		CreatedAt: s.CreatedAt,
		UpdatedAt: s.UpdatedAt,
	}
}

func toListSweetsResponse(sweets []*domain.Sweet) listSweetsResponse {
	data := make([]sweetResponse, 0, len(sweets))
	for _, s := range sweets {
		data = append(data, toSweetResponse(s))
	}
	return listSweetsResponse{Data: data, Total: len(data)}
}
