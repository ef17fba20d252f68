// Package entity defines the domain entities for the cart feature.
package entity

import "strconv"

// CartLine is one product entry in a user's cart.
// A user's cart never holds two lines for the same product; a repeated add
// increments the quantity instead.
type CartLine struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity"`
	Name      string  `json:"name"`
	Price     float64 `json:"price"`
}

// CartDocument is the persisted shape of the shared cart document: a mapping
// from stringified user id to that user's cart lines. One document holds all
// users' carts.
type CartDocument map[string][]CartLine

// UserKey renders a user id the way it is keyed in the cart document.
func UserKey(userID int) string {
	return strconv.Itoa(userID)
}
