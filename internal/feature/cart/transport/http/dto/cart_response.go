package dto

import "store_backend/internal/feature/cart/domain/entity"

// CartResponse is the body returned by mutating cart endpoints: a short
// message plus the user's updated cart lines.
type CartResponse struct {
	Message string            `json:"message"`
	Cart    []entity.CartLine `json:"cart"`
}
