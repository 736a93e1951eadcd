package models

import "time"

const (
	OrderStatusPending    = "Pending"
	OrderStatusProcessing = "Processing"
	OrderStatusShipped    = "Shipped"
	OrderStatusDelivered  = "Delivered"
	OrderStatusCancelled  = "Cancelled"
)

// OrderStatuses lists every accepted order status. Any status may move
// to any other; only membership is checked.
var OrderStatuses = []string{
	OrderStatusPending,
	OrderStatusProcessing,
	OrderStatusShipped,
	OrderStatusDelivered,
	OrderStatusCancelled,
}

func IsValidOrderStatus(status string) bool {
	for _, s := range OrderStatuses {
		if s == status {
			return true
		}
	}
	return false
}

type Order struct {
	ID              int            `json:"id"`
	OrderNumber     string         `json:"order_number"`
	UserID          int            `json:"user_id"`
	Items           []OrderItem    `json:"items"`
	ShippingAddress Address        `json:"shipping_address"`
	PaymentMethod   string         `json:"payment_method"`
	ItemsPrice      float64        `json:"items_price"`
	TaxPrice        float64        `json:"tax_price"`
	ShippingPrice   float64        `json:"shipping_price"`
	TotalPrice      float64        `json:"total_price"`
	IsPaid          bool           `json:"is_paid"`
	PaidAt          *time.Time     `json:"paid_at,omitempty"`
	PaymentResult   *PaymentResult `json:"payment_result,omitempty"`
	Status          string         `json:"status"`
	CreatedAt       time.Time      `json:"created_at"`
	UpdatedAt       time.Time      `json:"updated_at"`
}

// OrderItem is a snapshot copied from the cart at checkout. Name and
// price are denormalized so later medicine edits never alter the order.
type OrderItem struct {
	ID         int     `json:"id"`
	OrderID    int     `json:"order_id"`
	MedicineID int     `json:"medicine_id"`
	Name       string  `json:"name"`
	Quantity   int     `json:"quantity"`
	Price      float64 `json:"price"`
}

type PaymentResult struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}
