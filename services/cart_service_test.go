package services

import (
	"context"
	"testing"

	"medicine-shop/models"
)

// Mock MedicineStore
type mockMedicineStore struct {
	medicines map[int]models.Medicine
}

func (m *mockMedicineStore) GetByID(ctx context.Context, id int) (*models.Medicine, error) {
	medicine, ok := m.medicines[id]
	if !ok {
		return nil, models.ErrMedicineNotFound
	}
	copied := medicine
	return &copied, nil
}

// Mock CartStore, one in-memory cart per user. Reads hand out copies so
// the service cannot mutate store state without going through a write.
type mockCartStore struct {
	carts      map[int]*models.Cart
	nextCartID int
	nextItemID int
}

func newMockCartStore() *mockCartStore {
	return &mockCartStore{carts: make(map[int]*models.Cart), nextCartID: 1, nextItemID: 1}
}

func copyCart(cart *models.Cart) *models.Cart {
	copied := *cart
	copied.Items = append([]models.CartItem{}, cart.Items...)
	return &copied
}

func (m *mockCartStore) GetByUserID(ctx context.Context, userID int) (*models.Cart, error) {
	cart, ok := m.carts[userID]
	if !ok {
		return nil, models.ErrCartNotFound
	}
	return copyCart(cart), nil
}

func (m *mockCartStore) Create(ctx context.Context, userID int) (*models.Cart, error) {
	cart := &models.Cart{ID: m.nextCartID, UserID: userID, Items: []models.CartItem{}}
	m.nextCartID++
	m.carts[userID] = cart
	return copyCart(cart), nil
}

func (m *mockCartStore) findByCartID(cartID int) *models.Cart {
	for _, cart := range m.carts {
		if cart.ID == cartID {
			return cart
		}
	}
	return nil
}

func (m *mockCartStore) InsertItem(ctx context.Context, cartID int, item *models.CartItem, total float64) error {
	cart := m.findByCartID(cartID)
	if cart == nil {
		return models.ErrCartNotFound
	}
	item.ID = m.nextItemID
	m.nextItemID++
	item.CartID = cartID
	cart.Items = append(cart.Items, *item)
	cart.TotalPrice = total
	return nil
}

func (m *mockCartStore) UpdateItemQuantity(ctx context.Context, cartID, itemID, quantity int, total float64) error {
	cart := m.findByCartID(cartID)
	if cart == nil {
		return models.ErrCartNotFound
	}
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			cart.Items[i].Quantity = quantity
			cart.TotalPrice = total
			return nil
		}
	}
	return models.ErrItemNotFound
}

func (m *mockCartStore) DeleteItem(ctx context.Context, cartID, itemID int, total float64) error {
	cart := m.findByCartID(cartID)
	if cart == nil {
		return models.ErrCartNotFound
	}
	remaining := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID != itemID {
			remaining = append(remaining, item)
		}
	}
	cart.Items = remaining
	cart.TotalPrice = total
	return nil
}

func (m *mockCartStore) Clear(ctx context.Context, cartID int) error {
	cart := m.findByCartID(cartID)
	if cart == nil {
		return models.ErrCartNotFound
	}
	cart.Items = []models.CartItem{}
	cart.TotalPrice = 0
	return nil
}

func newCartFixture(medicines ...models.Medicine) (*CartService, *mockCartStore, *mockMedicineStore) {
	medStore := &mockMedicineStore{medicines: make(map[int]models.Medicine)}
	for _, m := range medicines {
		medStore.medicines[m.ID] = m
	}
	cartStore := newMockCartStore()
	return NewCartService(cartStore, medStore), cartStore, medStore
}

func assertTotalInvariant(t *testing.T, cart *models.Cart) {
	t.Helper()
	sum := 0.0
	for _, item := range cart.Items {
		sum += item.Price * float64(item.Quantity)
	}
	if cart.TotalPrice != sum {
		t.Errorf("total invariant broken: total=%v, sum=%v", cart.TotalPrice, sum)
	}
}

func TestGetCart_CreatesEmptyCartOnFirstAccess(t *testing.T) {
	svc, _, _ := newCartFixture()

	cart, err := svc.GetCart(context.Background(), 1)
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if len(cart.Items) != 0 || cart.TotalPrice != 0 {
		t.Errorf("expected empty cart, got %d items, total %v", len(cart.Items), cart.TotalPrice)
	}

	again, err := svc.GetCart(context.Background(), 1)
	if err != nil {
		t.Fatalf("second GetCart failed: %v", err)
	}
	if again.ID != cart.ID {
		t.Errorf("expected same cart on repeat access, got %d then %d", cart.ID, again.ID)
	}
}

func TestAddItem_SnapshotsPriceAndComputesTotal(t *testing.T) {
	svc, _, medStore := newCartFixture(models.Medicine{ID: 1, Name: "Aspirin", Price: 10, Stock: 5})

	cart, err := svc.AddItem(context.Background(), 1, 1, 2)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if cart.TotalPrice != 20 {
		t.Errorf("expected total 20, got %v", cart.TotalPrice)
	}
	assertTotalInvariant(t, cart)

	// A later price change must not touch the snapshot.
	med := medStore.medicines[1]
	med.Price = 99
	medStore.medicines[1] = med

	cart, err = svc.AddItem(context.Background(), 1, 1, 1)
	if err != nil {
		t.Fatalf("second AddItem failed: %v", err)
	}
	if len(cart.Items) != 1 {
		t.Fatalf("expected one merged line, got %d", len(cart.Items))
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected merged quantity 3, got %d", cart.Items[0].Quantity)
	}
	if cart.Items[0].Price != 10 {
		t.Errorf("expected snapshot price 10, got %v", cart.Items[0].Price)
	}
	if cart.TotalPrice != 30 {
		t.Errorf("expected total 30, got %v", cart.TotalPrice)
	}
}

func TestAddItem_MedicineNotFound(t *testing.T) {
	svc, _, _ := newCartFixture()

	_, err := svc.AddItem(context.Background(), 1, 42, 1)
	if err != models.ErrMedicineNotFound {
		t.Errorf("expected ErrMedicineNotFound, got %v", err)
	}
}

func TestAddItem_InsufficientStock(t *testing.T) {
	svc, _, _ := newCartFixture(models.Medicine{ID: 1, Price: 10, Stock: 5})

	_, err := svc.AddItem(context.Background(), 1, 1, 6)
	if err != models.ErrInsufficientStock {
		t.Errorf("expected ErrInsufficientStock, got %v", err)
	}
}

func TestUpdateItem_QuantityScenario(t *testing.T) {
	svc, _, _ := newCartFixture(models.Medicine{ID: 1, Price: 10, Stock: 5})
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, 1, 1, 2)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if cart.TotalPrice != 20 {
		t.Fatalf("expected total 20, got %v", cart.TotalPrice)
	}
	itemID := cart.Items[0].ID

	cart, err = svc.UpdateItem(ctx, 1, itemID, 3)
	if err != nil {
		t.Fatalf("UpdateItem failed: %v", err)
	}
	if cart.TotalPrice != 30 {
		t.Errorf("expected total 30, got %v", cart.TotalPrice)
	}
	assertTotalInvariant(t, cart)

	// Requesting more than live stock fails and leaves the cart untouched.
	_, err = svc.UpdateItem(ctx, 1, itemID, 6)
	if err != models.ErrInsufficientStock {
		t.Fatalf("expected ErrInsufficientStock, got %v", err)
	}

	cart, err = svc.GetCart(ctx, 1)
	if err != nil {
		t.Fatalf("GetCart failed: %v", err)
	}
	if cart.TotalPrice != 30 {
		t.Errorf("expected total to remain 30 after failed update, got %v", cart.TotalPrice)
	}
	if cart.Items[0].Quantity != 3 {
		t.Errorf("expected quantity to remain 3, got %d", cart.Items[0].Quantity)
	}
}

func TestUpdateItem_ChecksLiveStockNotSnapshot(t *testing.T) {
	svc, _, medStore := newCartFixture(models.Medicine{ID: 1, Price: 10, Stock: 5})
	ctx := context.Background()

	cart, err := svc.AddItem(ctx, 1, 1, 2)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	// Stock drops after the item was added.
	med := medStore.medicines[1]
	med.Stock = 1
	medStore.medicines[1] = med

	_, err = svc.UpdateItem(ctx, 1, cart.Items[0].ID, 2)
	if err != models.ErrInsufficientStock {
		t.Errorf("expected ErrInsufficientStock against live stock, got %v", err)
	}
}

func TestUpdateItem_NotFound(t *testing.T) {
	svc, _, _ := newCartFixture(models.Medicine{ID: 1, Price: 10, Stock: 5})
	ctx := context.Background()

	if _, err := svc.UpdateItem(ctx, 1, 1, 2); err != models.ErrCartNotFound {
		t.Errorf("expected ErrCartNotFound without a cart, got %v", err)
	}

	if _, err := svc.AddItem(ctx, 1, 1, 1); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if _, err := svc.UpdateItem(ctx, 1, 999, 2); err != models.ErrItemNotFound {
		t.Errorf("expected ErrItemNotFound, got %v", err)
	}
}

func TestRemoveItem_RecomputesTotal(t *testing.T) {
	svc, _, _ := newCartFixture(
		models.Medicine{ID: 1, Price: 10, Stock: 5},
		models.Medicine{ID: 2, Price: 4, Stock: 8},
	)
	ctx := context.Background()

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	cart, err := svc.AddItem(ctx, 1, 2, 3)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}
	if cart.TotalPrice != 32 {
		t.Fatalf("expected total 32, got %v", cart.TotalPrice)
	}

	cart, err = svc.RemoveItem(ctx, 1, cart.Items[0].ID)
	if err != nil {
		t.Fatalf("RemoveItem failed: %v", err)
	}
	if len(cart.Items) != 1 || cart.TotalPrice != 12 {
		t.Errorf("expected one item and total 12, got %d items, total %v", len(cart.Items), cart.TotalPrice)
	}
	assertTotalInvariant(t, cart)
}

func TestRemoveItem_MissingItemIsNoop(t *testing.T) {
	svc, _, _ := newCartFixture(models.Medicine{ID: 1, Price: 10, Stock: 5})
	ctx := context.Background()

	before, err := svc.AddItem(ctx, 1, 1, 2)
	if err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	after, err := svc.RemoveItem(ctx, 1, 999)
	if err != nil {
		t.Fatalf("expected no-op, got error: %v", err)
	}
	if len(after.Items) != len(before.Items) || after.TotalPrice != before.TotalPrice {
		t.Errorf("expected unchanged cart, got %d items, total %v", len(after.Items), after.TotalPrice)
	}
}

func TestClearCart(t *testing.T) {
	svc, _, _ := newCartFixture(models.Medicine{ID: 1, Price: 10, Stock: 5})
	ctx := context.Background()

	if _, err := svc.ClearCart(ctx, 1); err != models.ErrCartNotFound {
		t.Errorf("expected ErrCartNotFound, got %v", err)
	}

	if _, err := svc.AddItem(ctx, 1, 1, 2); err != nil {
		t.Fatalf("AddItem failed: %v", err)
	}

	cart, err := svc.ClearCart(ctx, 1)
	if err != nil {
		t.Fatalf("ClearCart failed: %v", err)
	}
	if len(cart.Items) != 0 || cart.TotalPrice != 0 {
		t.Errorf("expected empty cart with zero total, got %d items, total %v", len(cart.Items), cart.TotalPrice)
	}
}
