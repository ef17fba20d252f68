// Package dto defines data transfer objects for the products HTTP API.
package dto

// ProductItem represents a product in API responses.
// It contains only the public-facing fields; the internal asset path is
// deliberately omitted.
type ProductItem struct {
	ID          string  `json:"id"`
	Name        string  `json:"name"`
	Description string  `json:"description"`
	Price       float64 `json:"price"`
}
