// Package dto defines data transfer objects for the licenses HTTP API.
package dto

// OrderItemReq is one purchased product in a license issuance request.
type OrderItemReq struct {
	ID       string `json:"id" binding:"required"`
	Name     string `json:"name" binding:"required"`
	Quantity int    `json:"quantity" binding:"required,min=1"`
}

// IssueLicensesReq represents the request body for POST /api/licenses.
type IssueLicensesReq struct {
	UserID   int            `json:"userId" binding:"required"`
	Products []OrderItemReq `json:"products" binding:"required,min=1,dive"`
}
