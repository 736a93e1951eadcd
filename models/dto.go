package models

type RegisterRequest struct {
	Name     string `json:"name" binding:"required,min=2,max=50"`
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required,min=6"`
	Role     string `json:"role" binding:"omitempty,oneof=customer admin"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type UpdateDetailsRequest struct {
	Name    string         `json:"name" binding:"omitempty,min=2,max=50"`
	Email   string         `json:"email" binding:"omitempty,email"`
	Address AddressRequest `json:"address"`
}

type AddressRequest struct {
	Street  string `json:"street"`
	City    string `json:"city"`
	State   string `json:"state"`
	ZipCode string `json:"zipCode"`
	Country string `json:"country"`
}

type CreateMedicineRequest struct {
	Name         string  `json:"name" binding:"required,max=100"`
	Company      string  `json:"company" binding:"required,max=100"`
	Category     string  `json:"category" binding:"required"`
	Description  string  `json:"description" binding:"required"`
	Price        float64 `json:"price" binding:"gte=0"`
	Stock        int     `json:"stock" binding:"gte=0"`
	ExpiryDate   string  `json:"expiryDate" binding:"required"`
	Image        string  `json:"image"`
	Prescription bool    `json:"prescription"`
	Dosage       string  `json:"dosage"`
	SideEffects  string  `json:"sideEffects"`
}

type UpdateMedicineRequest struct {
	Name         *string  `json:"name" binding:"omitempty,max=100"`
	Company      *string  `json:"company" binding:"omitempty,max=100"`
	Category     *string  `json:"category"`
	Description  *string  `json:"description"`
	Price        *float64 `json:"price" binding:"omitempty,gte=0"`
	Stock        *int     `json:"stock" binding:"omitempty,gte=0"`
	ExpiryDate   *string  `json:"expiryDate"`
	Image        *string  `json:"image"`
	Prescription *bool    `json:"prescription"`
	Dosage       *string  `json:"dosage"`
	SideEffects  *string  `json:"sideEffects"`
}

type AddCartItemRequest struct {
	MedicineID int `json:"medicineId" binding:"required,gt=0"`
	Quantity   int `json:"quantity" binding:"required,min=1"`
}

type UpdateCartItemRequest struct {
	Quantity int `json:"quantity" binding:"required,min=1"`
}

type OrderItemRequest struct {
	MedicineID int     `json:"medicine" binding:"required,gt=0"`
	Name       string  `json:"name" binding:"required"`
	Quantity   int     `json:"quantity" binding:"required,min=1"`
	Price      float64 `json:"price"`
}

type CreateOrderRequest struct {
	OrderItems      []OrderItemRequest `json:"orderItems" binding:"required"`
	ShippingAddress AddressRequest     `json:"shippingAddress" binding:"required"`
	PaymentMethod   string             `json:"paymentMethod" binding:"required"`
	ItemsPrice      float64            `json:"itemsPrice"`
	TaxPrice        float64            `json:"taxPrice"`
	ShippingPrice   float64            `json:"shippingPrice"`
	TotalPrice      float64            `json:"totalPrice"`
}

type PayOrderRequest struct {
	ID           string `json:"id"`
	Status       string `json:"status"`
	UpdateTime   string `json:"update_time"`
	EmailAddress string `json:"email_address"`
}

type UpdateOrderStatusRequest struct {
	Status string `json:"status" binding:"required"`
}

type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}
