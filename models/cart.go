package models

import "time"

type Cart struct {
	ID         int        `json:"id"`
	UserID     int        `json:"user_id"`
	Items      []CartItem `json:"items"`
	TotalPrice float64    `json:"total_price"`
	CreatedAt  time.Time  `json:"created_at"`
	UpdatedAt  time.Time  `json:"updated_at"`
}

type CartItem struct {
	ID         int       `json:"id"`
	CartID     int       `json:"cart_id"`
	MedicineID int       `json:"medicine_id"`
	Medicine   *Medicine `json:"medicine,omitempty"`
	Quantity   int       `json:"quantity"`
	Price      float64   `json:"price"`
	CreatedAt  time.Time `json:"created_at"`
	UpdatedAt  time.Time `json:"updated_at"`
}
