// Package dto defines data transfer objects for the checkout HTTP API.
package dto

// CheckoutItemReq is one priced cart line in a payment-intent request.
type CheckoutItemReq struct {
	ProductID string  `json:"productId"`
	Quantity  int     `json:"quantity" binding:"required,min=1"`
	Price     float64 `json:"price" binding:"required,gt=0"`
}

// CreatePaymentIntentReq represents the request body for
// POST /api/checkout/create-payment-intent.
type CreatePaymentIntentReq struct {
	Items []CheckoutItemReq `json:"items" binding:"required,min=1,dive"`
}

// CreatePaymentIntentResponse carries the client secret the storefront needs
// to confirm the payment.
type CreatePaymentIntentResponse struct {
	ClientSecret string `json:"clientSecret"`
}
