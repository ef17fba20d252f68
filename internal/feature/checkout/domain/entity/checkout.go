// Package entity defines the domain entities for the checkout feature.
package entity

// CheckoutItem is one priced cart line in a payment-intent request.
type CheckoutItem struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Price     float64 `json:"price"`
}
