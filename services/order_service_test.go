package services

import (
	"context"
	"testing"
	"time"

	"medicine-shop/models"
)

// Mock OrderStore
type mockOrderStore struct {
	orders map[int]*models.Order
	nextID int
}

func newMockOrderStore() *mockOrderStore {
	return &mockOrderStore{orders: make(map[int]*models.Order), nextID: 1}
}

func copyOrder(order *models.Order) *models.Order {
	copied := *order
	copied.Items = append([]models.OrderItem{}, order.Items...)
	if order.PaymentResult != nil {
		pr := *order.PaymentResult
		copied.PaymentResult = &pr
	}
	return &copied
}

func (m *mockOrderStore) Insert(ctx context.Context, order *models.Order) error {
	order.ID = m.nextID
	m.nextID++
	order.CreatedAt = time.Now()
	order.UpdatedAt = order.CreatedAt
	for i := range order.Items {
		order.Items[i].ID = i + 1
		order.Items[i].OrderID = order.ID
	}
	m.orders[order.ID] = copyOrder(order)
	return nil
}

func (m *mockOrderStore) GetByID(ctx context.Context, id int) (*models.Order, error) {
	order, ok := m.orders[id]
	if !ok {
		return nil, models.ErrOrderNotFound
	}
	return copyOrder(order), nil
}

func (m *mockOrderStore) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	orders := []models.Order{}
	for id := m.nextID - 1; id >= 1; id-- {
		if order, ok := m.orders[id]; ok && order.UserID == userID {
			orders = append(orders, *copyOrder(order))
		}
	}
	return orders, nil
}

func (m *mockOrderStore) ListAll(ctx context.Context) ([]models.Order, error) {
	orders := []models.Order{}
	for id := m.nextID - 1; id >= 1; id-- {
		if order, ok := m.orders[id]; ok {
			orders = append(orders, *copyOrder(order))
		}
	}
	return orders, nil
}

func (m *mockOrderStore) MarkPaid(ctx context.Context, id int, result models.PaymentResult, paidAt time.Time) error {
	order, ok := m.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.IsPaid = true
	order.PaidAt = &paidAt
	order.PaymentResult = &result
	return nil
}

func (m *mockOrderStore) UpdateStatus(ctx context.Context, id int, status string) error {
	order, ok := m.orders[id]
	if !ok {
		return models.ErrOrderNotFound
	}
	order.Status = status
	return nil
}

func checkoutRequest() models.CreateOrderRequest {
	return models.CreateOrderRequest{
		OrderItems: []models.OrderItemRequest{
			{MedicineID: 1, Name: "Aspirin", Quantity: 3, Price: 10},
		},
		ShippingAddress: models.AddressRequest{
			Street: "1 Main St", City: "Springfield", State: "IL",
			ZipCode: "62704", Country: "USA",
		},
		PaymentMethod: "Credit Card",
		ItemsPrice:    30,
		TaxPrice:      3,
		ShippingPrice: 5,
		TotalPrice:    38,
	}
}

func TestCreateOrder_ComputesExactTotal(t *testing.T) {
	store := newMockOrderStore()
	svc := NewOrderService(store)

	order, err := svc.Create(context.Background(), 1, checkoutRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if order.TotalPrice != 38.00 {
		t.Errorf("expected total 38.00 exactly, got %v", order.TotalPrice)
	}
	if order.Status != models.OrderStatusPending {
		t.Errorf("expected initial status Pending, got %s", order.Status)
	}
	if order.IsPaid {
		t.Error("expected new order to be unpaid")
	}
	if order.OrderNumber == "" {
		t.Error("expected an order number")
	}
}

func TestCreateOrder_EmptyItems(t *testing.T) {
	svc := NewOrderService(newMockOrderStore())

	req := checkoutRequest()
	req.OrderItems = nil

	if _, err := svc.Create(context.Background(), 1, req); err != models.ErrEmptyOrder {
		t.Errorf("expected ErrEmptyOrder, got %v", err)
	}
}

func TestCreateOrder_NegativePrices(t *testing.T) {
	svc := NewOrderService(newMockOrderStore())

	req := checkoutRequest()
	req.ShippingPrice = -5
	if _, err := svc.Create(context.Background(), 1, req); err != models.ErrNegativePrice {
		t.Errorf("expected ErrNegativePrice for shipping, got %v", err)
	}

	req = checkoutRequest()
	req.OrderItems[0].Price = -1
	if _, err := svc.Create(context.Background(), 1, req); err != models.ErrNegativePrice {
		t.Errorf("expected ErrNegativePrice for item, got %v", err)
	}
}

func TestCreateOrder_SnapshotIsolation(t *testing.T) {
	store := newMockOrderStore()
	svc := NewOrderService(store)

	req := checkoutRequest()
	order, err := svc.Create(context.Background(), 1, req)
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	// Mutating the source request after checkout must not reach the
	// stored order.
	req.OrderItems[0].Price = 999
	req.OrderItems[0].Name = "changed"

	stored, err := store.GetByID(context.Background(), order.ID)
	if err != nil {
		t.Fatalf("GetByID failed: %v", err)
	}
	if stored.Items[0].Price != 10 || stored.Items[0].Name != "Aspirin" {
		t.Errorf("order snapshot mutated: %+v", stored.Items[0])
	}
	if stored.TotalPrice != 38.00 {
		t.Errorf("expected stored total 38.00, got %v", stored.TotalPrice)
	}
}

func TestGetOrder_Ownership(t *testing.T) {
	store := newMockOrderStore()
	svc := NewOrderService(store)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, checkoutRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.Get(ctx, order.ID, 1, false); err != nil {
		t.Errorf("owner should read own order, got %v", err)
	}
	if _, err := svc.Get(ctx, order.ID, 2, false); err != models.ErrForbidden {
		t.Errorf("expected ErrForbidden for other user, got %v", err)
	}
	if _, err := svc.Get(ctx, order.ID, 2, true); err != nil {
		t.Errorf("admin should read any order, got %v", err)
	}
	if _, err := svc.Get(ctx, 999, 1, false); err != models.ErrOrderNotFound {
		t.Errorf("expected ErrOrderNotFound, got %v", err)
	}
}

func TestPayOrder(t *testing.T) {
	store := newMockOrderStore()
	svc := NewOrderService(store)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, checkoutRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	result := models.PaymentResult{ID: "PAY-1", Status: "COMPLETED", EmailAddress: "user@example.com"}

	if _, err := svc.Pay(ctx, order.ID, 2, result); err != models.ErrForbidden {
		t.Errorf("expected ErrForbidden for non-owner, got %v", err)
	}

	paid, err := svc.Pay(ctx, order.ID, 1, result)
	if err != nil {
		t.Fatalf("Pay failed: %v", err)
	}
	if !paid.IsPaid || paid.PaidAt == nil {
		t.Error("expected order to be marked paid")
	}
	if paid.PaymentResult == nil || paid.PaymentResult.ID != "PAY-1" {
		t.Errorf("expected payment result stored, got %+v", paid.PaymentResult)
	}
}

func TestUpdateStatus(t *testing.T) {
	store := newMockOrderStore()
	svc := NewOrderService(store)
	ctx := context.Background()

	order, err := svc.Create(ctx, 1, checkoutRequest())
	if err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	if _, err := svc.UpdateStatus(ctx, order.ID, "Lost"); err != models.ErrInvalidStatus {
		t.Errorf("expected ErrInvalidStatus, got %v", err)
	}

	updated, err := svc.UpdateStatus(ctx, order.ID, models.OrderStatusShipped)
	if err != nil {
		t.Fatalf("UpdateStatus failed: %v", err)
	}
	if updated.Status != models.OrderStatusShipped {
		t.Errorf("expected Shipped, got %s", updated.Status)
	}

	// A subsequent user read sees the new status immediately.
	fetched, err := svc.Get(ctx, order.ID, 1, false)
	if err != nil {
		t.Fatalf("Get failed: %v", err)
	}
	if fetched.Status != models.OrderStatusShipped {
		t.Errorf("expected user fetch to reflect Shipped, got %s", fetched.Status)
	}

	// Prices and items stay frozen through status churn.
	if fetched.TotalPrice != 38.00 || len(fetched.Items) != 1 {
		t.Errorf("order mutated by status update: total %v, %d items", fetched.TotalPrice, len(fetched.Items))
	}
}

func TestMyOrders_NewestFirst(t *testing.T) {
	store := newMockOrderStore()
	svc := NewOrderService(store)
	ctx := context.Background()

	first, _ := svc.Create(ctx, 1, checkoutRequest())
	second, _ := svc.Create(ctx, 1, checkoutRequest())
	if _, err := svc.Create(ctx, 2, checkoutRequest()); err != nil {
		t.Fatalf("Create failed: %v", err)
	}

	orders, err := svc.MyOrders(ctx, 1)
	if err != nil {
		t.Fatalf("MyOrders failed: %v", err)
	}
	if len(orders) != 2 {
		t.Fatalf("expected 2 orders, got %d", len(orders))
	}
	if orders[0].ID != second.ID || orders[1].ID != first.ID {
		t.Errorf("expected newest-first ordering, got %d then %d", orders[0].ID, orders[1].ID)
	}

	all, err := svc.AllOrders(ctx)
	if err != nil {
		t.Fatalf("AllOrders failed: %v", err)
	}
	if len(all) != 3 {
		t.Errorf("expected 3 orders in total, got %d", len(all))
	}
}
