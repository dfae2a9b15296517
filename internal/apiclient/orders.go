package apiclient

import (
	"context"
	"net/http"
)

// OrderItem is one purchased line in an order submission.
type OrderItem struct {
	ProductID string  `json:"productId"`
	Title     string  `json:"title"`
	Price     float64 `json:"price"`
	Quantity  int     `json:"quantity"`
}

// Order is the order placement payload. The payment fields mirror the
// checkout form: card details for card payments, a phone number for the
// mobile-money methods.
type Order struct {
	CustomerName  string      `json:"customerName"`
	CustomerEmail string      `json:"customerEmail"`
	PaymentMethod string      `json:"paymentMethod"`
	CardNumber    string      `json:"cardNumber,omitempty"`
	Expiry        string      `json:"expiry,omitempty"`
	CVV           string      `json:"cvv,omitempty"`
	PhoneNumber   string      `json:"phoneNumber,omitempty"`
	Items         []OrderItem `json:"items"`
	TotalAmount   float64     `json:"totalAmount"`
}

// PlaceOrder submits the order. Requires the bearer credential; a 401
// maps to ErrUnauthorized so the caller can prompt for re-authentication.
func (c *Client) PlaceOrder(ctx context.Context, order Order) error {
	return c.doExpectOK(ctx, http.MethodPost, "/order", order)
}
