package repositories

import (
	"context"
	"errors"
	"time"

	"medicine-shop/models"

	"github.com/jackc/pgx/v5"
)

// CartRepository persists carts as a parent row plus child cart_items
// rows. Mutations that touch an item and the cart total run in a single
// transaction so the total invariant holds even if a write is cut short.
type CartRepository struct{}

func NewCartRepository() *CartRepository {
	return &CartRepository{}
}

func (r *CartRepository) GetByUserID(ctx context.Context, userID int) (*models.Cart, error) {
	var cart models.Cart
	err := models.DB.QueryRow(ctx,
		"SELECT id, user_id, total_price, created_at, updated_at FROM carts WHERE user_id = $1",
		userID).Scan(&cart.ID, &cart.UserID, &cart.TotalPrice, &cart.CreatedAt, &cart.UpdatedAt)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrCartNotFound
	}
	if err != nil {
		return nil, err
	}

	rows, err := models.DB.Query(ctx,
		`SELECT ci.id, ci.cart_id, ci.medicine_id, ci.quantity, ci.price, ci.created_at, ci.updated_at,
			m.id, m.name, m.company, m.category, m.description, m.price, m.stock, m.expiry_date,
			COALESCE(m.image, ''), m.prescription, COALESCE(m.dosage, ''), COALESCE(m.side_effects, ''),
			m.created_at, m.updated_at
		FROM cart_items ci
		JOIN medicines m ON ci.medicine_id = m.id
		WHERE ci.cart_id = $1
		ORDER BY ci.id`,
		cart.ID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	cart.Items = []models.CartItem{}
	for rows.Next() {
		var item models.CartItem
		var m models.Medicine
		err := rows.Scan(&item.ID, &item.CartID, &item.MedicineID, &item.Quantity, &item.Price,
			&item.CreatedAt, &item.UpdatedAt,
			&m.ID, &m.Name, &m.Company, &m.Category, &m.Description, &m.Price, &m.Stock,
			&m.ExpiryDate, &m.Image, &m.Prescription, &m.Dosage, &m.SideEffects,
			&m.CreatedAt, &m.UpdatedAt)
		if err != nil {
			return nil, err
		}
		item.Medicine = &m
		cart.Items = append(cart.Items, item)
	}
	return &cart, rows.Err()
}

func (r *CartRepository) Create(ctx context.Context, userID int) (*models.Cart, error) {
	now := time.Now()
	cart := &models.Cart{UserID: userID, Items: []models.CartItem{}}
	err := models.DB.QueryRow(ctx,
		`INSERT INTO carts (user_id, total_price, created_at, updated_at)
		VALUES ($1, 0, $2, $3)
		ON CONFLICT (user_id) DO UPDATE SET updated_at = EXCLUDED.updated_at
		RETURNING id, total_price, created_at, updated_at`,
		userID, now, now).Scan(&cart.ID, &cart.TotalPrice, &cart.CreatedAt, &cart.UpdatedAt)
	if err != nil {
		return nil, err
	}
	return cart, nil
}

func (r *CartRepository) InsertItem(ctx context.Context, cartID int, item *models.CartItem, total float64) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO cart_items (cart_id, medicine_id, quantity, price, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6) RETURNING id`,
		cartID, item.MedicineID, item.Quantity, item.Price, now, now).Scan(&item.ID)
	if err != nil {
		return err
	}
	item.CartID = cartID

	if _, err = tx.Exec(ctx,
		"UPDATE carts SET total_price=$1, updated_at=$2 WHERE id=$3", total, now, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *CartRepository) UpdateItemQuantity(ctx context.Context, cartID, itemID, quantity int, total float64) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	tag, err := tx.Exec(ctx,
		"UPDATE cart_items SET quantity=$1, updated_at=$2 WHERE id=$3 AND cart_id=$4",
		quantity, now, itemID, cartID)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrItemNotFound
	}

	if _, err = tx.Exec(ctx,
		"UPDATE carts SET total_price=$1, updated_at=$2 WHERE id=$3", total, now, cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

// DeleteItem removes an item if present. A missing item id is not an
// error; the cart total is still rewritten.
func (r *CartRepository) DeleteItem(ctx context.Context, cartID, itemID int, total float64) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx,
		"DELETE FROM cart_items WHERE id=$1 AND cart_id=$2", itemID, cartID); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx,
		"UPDATE carts SET total_price=$1, updated_at=$2 WHERE id=$3", total, time.Now(), cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}

func (r *CartRepository) Clear(ctx context.Context, cartID int) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	if _, err = tx.Exec(ctx, "DELETE FROM cart_items WHERE cart_id=$1", cartID); err != nil {
		return err
	}

	if _, err = tx.Exec(ctx,
		"UPDATE carts SET total_price=0, updated_at=$1 WHERE id=$2", time.Now(), cartID); err != nil {
		return err
	}

	return tx.Commit(ctx)
}
