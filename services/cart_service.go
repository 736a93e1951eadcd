package services

import (
	"context"
	"sync"

	"medicine-shop/models"
	"medicine-shop/utils"
)

type MedicineStore interface {
	GetByID(ctx context.Context, id int) (*models.Medicine, error)
}

type CartStore interface {
	GetByUserID(ctx context.Context, userID int) (*models.Cart, error)
	Create(ctx context.Context, userID int) (*models.Cart, error)
	InsertItem(ctx context.Context, cartID int, item *models.CartItem, total float64) error
	UpdateItemQuantity(ctx context.Context, cartID, itemID, quantity int, total float64) error
	DeleteItem(ctx context.Context, cartID, itemID int, total float64) error
	Clear(ctx context.Context, cartID int) error
}

// CartService owns the cart mutation rules: prices are snapshotted when
// an item is added, stock is re-checked against the live medicine on
// every add or quantity change, and the cart total is recomputed before
// each persist. Mutations for the same user are serialized with a keyed
// mutex since each one is a read-modify-write over the same cart.
type CartService struct {
	carts     CartStore
	medicines MedicineStore

	mu    sync.Mutex
	locks map[int]*sync.Mutex
}

func NewCartService(carts CartStore, medicines MedicineStore) *CartService {
	return &CartService{
		carts:     carts,
		medicines: medicines,
		locks:     make(map[int]*sync.Mutex),
	}
}

func (s *CartService) userLock(userID int) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	lock, ok := s.locks[userID]
	if !ok {
		lock = &sync.Mutex{}
		s.locks[userID] = lock
	}
	return lock
}

func cartTotal(items []models.CartItem) float64 {
	total := 0.0
	for _, item := range items {
		total += item.Price * float64(item.Quantity)
	}
	return utils.Round2(total)
}

// GetCart returns the user's cart, creating an empty one on first access.
func (s *CartService) GetCart(ctx context.Context, userID int) (*models.Cart, error) {
	cart, err := s.carts.GetByUserID(ctx, userID)
	if err == models.ErrCartNotFound {
		return s.carts.Create(ctx, userID)
	}
	return cart, err
}

// AddItem puts quantity units of a medicine into the cart, merging with
// an existing line for the same medicine instead of duplicating it. The
// unit price is captured from the medicine at this moment and not
// re-read afterwards.
func (s *CartService) AddItem(ctx context.Context, userID, medicineID, quantity int) (*models.Cart, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	medicine, err := s.medicines.GetByID(ctx, medicineID)
	if err != nil {
		return nil, err
	}
	if medicine.Stock < quantity {
		return nil, models.ErrInsufficientStock
	}

	cart, err := s.GetCart(ctx, userID)
	if err != nil {
		return nil, err
	}

	merged := false
	for i := range cart.Items {
		if cart.Items[i].MedicineID == medicineID {
			cart.Items[i].Quantity += quantity
			err = s.carts.UpdateItemQuantity(ctx, cart.ID, cart.Items[i].ID,
				cart.Items[i].Quantity, cartTotal(cart.Items))
			merged = true
			break
		}
	}

	if !merged {
		item := models.CartItem{
			MedicineID: medicineID,
			Quantity:   quantity,
			Price:      medicine.Price,
		}
		cart.Items = append(cart.Items, item)
		err = s.carts.InsertItem(ctx, cart.ID, &cart.Items[len(cart.Items)-1], cartTotal(cart.Items))
	}
	if err != nil {
		return nil, err
	}

	return s.carts.GetByUserID(ctx, userID)
}

// UpdateItem sets the quantity of an existing cart line. Stock is
// re-checked against the live medicine, not the snapshot taken at add
// time, so a depleted medicine cannot be over-committed.
func (s *CartService) UpdateItem(ctx context.Context, userID, itemID, quantity int) (*models.Cart, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	var item *models.CartItem
	for i := range cart.Items {
		if cart.Items[i].ID == itemID {
			item = &cart.Items[i]
			break
		}
	}
	if item == nil {
		return nil, models.ErrItemNotFound
	}

	medicine, err := s.medicines.GetByID(ctx, item.MedicineID)
	if err != nil {
		return nil, err
	}
	if medicine.Stock < quantity {
		return nil, models.ErrInsufficientStock
	}

	item.Quantity = quantity
	if err := s.carts.UpdateItemQuantity(ctx, cart.ID, itemID, quantity, cartTotal(cart.Items)); err != nil {
		return nil, err
	}

	return s.carts.GetByUserID(ctx, userID)
}

// RemoveItem deletes a cart line. An item id that is not in the cart is
// a no-op, not an error.
func (s *CartService) RemoveItem(ctx context.Context, userID, itemID int) (*models.Cart, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	found := false
	remaining := cart.Items[:0]
	for _, item := range cart.Items {
		if item.ID == itemID {
			found = true
			continue
		}
		remaining = append(remaining, item)
	}
	if !found {
		return cart, nil
	}
	cart.Items = remaining

	if err := s.carts.DeleteItem(ctx, cart.ID, itemID, cartTotal(cart.Items)); err != nil {
		return nil, err
	}

	return s.carts.GetByUserID(ctx, userID)
}

// ClearCart empties the cart and resets its total to zero.
func (s *CartService) ClearCart(ctx context.Context, userID int) (*models.Cart, error) {
	lock := s.userLock(userID)
	lock.Lock()
	defer lock.Unlock()

	cart, err := s.carts.GetByUserID(ctx, userID)
	if err != nil {
		return nil, err
	}

	if err := s.carts.Clear(ctx, cart.ID); err != nil {
		return nil, err
	}

	return s.carts.GetByUserID(ctx, userID)
}
