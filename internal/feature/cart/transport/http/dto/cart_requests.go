// Package dto defines data transfer objects for the cart feature's HTTP API.
package dto

// AddToCartReq represents the request body for POST /api/cart/add.
type AddToCartReq struct {
	UserID    int     `json:"userId" binding:"required"`
	ProductID string  `json:"productId" binding:"required"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Name      string  `json:"name" binding:"required"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// RemoveFromCartReq represents the request body for DELETE /api/cart/remove.
type RemoveFromCartReq struct {
	UserID    int    `json:"userId" binding:"required"`
	ProductID string `json:"productId" binding:"required"`
}

// ClearCartReq represents the request body for DELETE /api/cart/clear.
type ClearCartReq struct {
	UserID int `json:"userId" binding:"required"`
}
