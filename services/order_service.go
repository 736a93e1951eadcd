package services

import (
	"context"
	"fmt"
	"time"

	"medicine-shop/models"
	"medicine-shop/utils"

	"github.com/google/uuid"
)

type OrderStore interface {
	Insert(ctx context.Context, order *models.Order) error
	GetByID(ctx context.Context, id int) (*models.Order, error)
	ListByUser(ctx context.Context, userID int) ([]models.Order, error)
	ListAll(ctx context.Context) ([]models.Order, error)
	MarkPaid(ctx context.Context, id int, result models.PaymentResult, paidAt time.Time) error
	UpdateStatus(ctx context.Context, id int, status string) error
}

// OrderService creates immutable checkout snapshots and manages the two
// post-creation transitions an order allows: payment confirmation and
// fulfillment status. Stock is not decremented and the cart is not
// cleared here; the client clears its cart after a successful checkout.
type OrderService struct {
	orders OrderStore
}

func NewOrderService(orders OrderStore) *OrderService {
	return &OrderService{orders: orders}
}

// Create builds an order from the submitted cart snapshot. Item names
// and prices are copied, never referenced, so later medicine edits or
// deletions cannot alter a placed order. The grand total is recomputed
// here rather than trusted from the client.
func (s *OrderService) Create(ctx context.Context, userID int, req models.CreateOrderRequest) (*models.Order, error) {
	if len(req.OrderItems) == 0 {
		return nil, models.ErrEmptyOrder
	}
	if req.ItemsPrice < 0 || req.TaxPrice < 0 || req.ShippingPrice < 0 {
		return nil, models.ErrNegativePrice
	}
	for _, item := range req.OrderItems {
		if item.Price < 0 {
			return nil, models.ErrNegativePrice
		}
	}

	order := &models.Order{
		OrderNumber: fmt.Sprintf("ORD-%s", uuid.New().String()[:8]),
		UserID:      userID,
		ShippingAddress: models.Address{
			Street:  req.ShippingAddress.Street,
			City:    req.ShippingAddress.City,
			State:   req.ShippingAddress.State,
			ZipCode: req.ShippingAddress.ZipCode,
			Country: req.ShippingAddress.Country,
		},
		PaymentMethod: req.PaymentMethod,
		ItemsPrice:    utils.Round2(req.ItemsPrice),
		TaxPrice:      utils.Round2(req.TaxPrice),
		ShippingPrice: utils.Round2(req.ShippingPrice),
		Status:        models.OrderStatusPending,
	}
	order.TotalPrice = utils.Round2(order.ItemsPrice + order.TaxPrice + order.ShippingPrice)

	order.Items = make([]models.OrderItem, 0, len(req.OrderItems))
	for _, item := range req.OrderItems {
		order.Items = append(order.Items, models.OrderItem{
			MedicineID: item.MedicineID,
			Name:       item.Name,
			Quantity:   item.Quantity,
			Price:      item.Price,
		})
	}

	if err := s.orders.Insert(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

// Get returns an order to its owner, or to an admin.
func (s *OrderService) Get(ctx context.Context, orderID, userID int, isAdmin bool) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if !isAdmin && order.UserID != userID {
		return nil, models.ErrForbidden
	}
	return order, nil
}

func (s *OrderService) MyOrders(ctx context.Context, userID int) ([]models.Order, error) {
	return s.orders.ListByUser(ctx, userID)
}

func (s *OrderService) AllOrders(ctx context.Context) ([]models.Order, error) {
	return s.orders.ListAll(ctx)
}

// Pay records a payment confirmation. Only the owning user may confirm
// payment for an order.
func (s *OrderService) Pay(ctx context.Context, orderID, userID int, result models.PaymentResult) (*models.Order, error) {
	order, err := s.orders.GetByID(ctx, orderID)
	if err != nil {
		return nil, err
	}
	if order.UserID != userID {
		return nil, models.ErrForbidden
	}

	paidAt := time.Now()
	if err := s.orders.MarkPaid(ctx, orderID, result, paidAt); err != nil {
		return nil, err
	}

	order.IsPaid = true
	order.PaidAt = &paidAt
	order.PaymentResult = &result
	return order, nil
}

// UpdateStatus sets the fulfillment status. Any status may move to any
// other; only membership in the enum is enforced.
func (s *OrderService) UpdateStatus(ctx context.Context, orderID int, status string) (*models.Order, error) {
	if !models.IsValidOrderStatus(status) {
		return nil, models.ErrInvalidStatus
	}

	if err := s.orders.UpdateStatus(ctx, orderID, status); err != nil {
		return nil, err
	}
	return s.orders.GetByID(ctx, orderID)
}
