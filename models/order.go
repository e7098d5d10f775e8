package models

import "time"

type Order struct {
	ID                int         `json:"id"`
	OrderNumber       string      `json:"order_number"`
	Email             string      `json:"email"`
	FullName          string      `json:"full_name"`
	Phone             string      `json:"phone,omitempty"`
	Address           string      `json:"address"`
	Status            string      `json:"status"`
	Subtotal          int         `json:"subtotal"`
	Shipping          int         `json:"shipping"`
	Tax               int         `json:"tax"`
	Total             int         `json:"total"`
	RazorpayOrderID   *string     `json:"razorpay_order_id,omitempty"`
	RazorpayPaymentID *string     `json:"razorpay_payment_id,omitempty"`
	Notes             string      `json:"notes,omitempty"`
	Items             []OrderItem `json:"items,omitempty"`
	CreatedAt         time.Time   `json:"created_at"`
	UpdatedAt         time.Time   `json:"updated_at"`
}

type OrderItem struct {
	ID        int    `json:"id"`
	OrderID   int    `json:"order_id"`
	VariantID int    `json:"variant_id"`
	Name      string `json:"name"`
	PriceInr  int    `json:"price_inr"`
	Qty       int    `json:"qty"`
	PackSizeG int    `json:"pack_size_g,omitempty"`
}
