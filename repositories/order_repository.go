package repositories

import (
	"context"
	"errors"
	"time"

	"medicine-shop/models"

	"github.com/jackc/pgx/v5"
)

type OrderRepository struct{}

func NewOrderRepository() *OrderRepository {
	return &OrderRepository{}
}

const orderColumns = `id, order_number, user_id, street, city, state, zip_code, country,
	payment_method, items_price, tax_price, shipping_price, total_price,
	is_paid, paid_at, COALESCE(payment_id, ''), COALESCE(payment_status, ''),
	COALESCE(payment_update_time, ''), COALESCE(payment_email, ''),
	status, created_at, updated_at`

func scanOrder(row pgx.Row) (*models.Order, error) {
	var o models.Order
	var pr models.PaymentResult
	err := row.Scan(&o.ID, &o.OrderNumber, &o.UserID,
		&o.ShippingAddress.Street, &o.ShippingAddress.City, &o.ShippingAddress.State,
		&o.ShippingAddress.ZipCode, &o.ShippingAddress.Country,
		&o.PaymentMethod, &o.ItemsPrice, &o.TaxPrice, &o.ShippingPrice, &o.TotalPrice,
		&o.IsPaid, &o.PaidAt, &pr.ID, &pr.Status, &pr.UpdateTime, &pr.EmailAddress,
		&o.Status, &o.CreatedAt, &o.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if o.IsPaid {
		o.PaymentResult = &pr
	}
	return &o, nil
}

// Insert writes the order and its snapshot items in one transaction.
func (r *OrderRepository) Insert(ctx context.Context, order *models.Order) error {
	tx, err := models.DB.Begin(ctx)
	if err != nil {
		return err
	}
	defer tx.Rollback(ctx)

	now := time.Now()
	err = tx.QueryRow(ctx,
		`INSERT INTO orders (order_number, user_id, street, city, state, zip_code, country,
			payment_method, items_price, tax_price, shipping_price, total_price,
			is_paid, status, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12,false,$13,$14,$15)
		RETURNING id, created_at, updated_at`,
		order.OrderNumber, order.UserID,
		order.ShippingAddress.Street, order.ShippingAddress.City, order.ShippingAddress.State,
		order.ShippingAddress.ZipCode, order.ShippingAddress.Country,
		order.PaymentMethod, order.ItemsPrice, order.TaxPrice, order.ShippingPrice,
		order.TotalPrice, order.Status, now, now,
	).Scan(&order.ID, &order.CreatedAt, &order.UpdatedAt)
	if err != nil {
		return err
	}

	for i := range order.Items {
		item := &order.Items[i]
		item.OrderID = order.ID
		err = tx.QueryRow(ctx,
			`INSERT INTO order_items (order_id, medicine_id, name, quantity, price)
			VALUES ($1,$2,$3,$4,$5) RETURNING id`,
			order.ID, item.MedicineID, item.Name, item.Quantity, item.Price).Scan(&item.ID)
		if err != nil {
			return err
		}
	}

	return tx.Commit(ctx)
}

func (r *OrderRepository) GetByID(ctx context.Context, id int) (*models.Order, error) {
	order, err := scanOrder(models.DB.QueryRow(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE id = $1", id))
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, models.ErrOrderNotFound
	}
	if err != nil {
		return nil, err
	}

	if err := r.loadItems(ctx, order); err != nil {
		return nil, err
	}
	return order, nil
}

func (r *OrderRepository) loadItems(ctx context.Context, order *models.Order) error {
	rows, err := models.DB.Query(ctx,
		"SELECT id, order_id, medicine_id, name, quantity, price FROM order_items WHERE order_id = $1 ORDER BY id",
		order.ID)
	if err != nil {
		return err
	}
	defer rows.Close()

	order.Items = []models.OrderItem{}
	for rows.Next() {
		var item models.OrderItem
		if err := rows.Scan(&item.ID, &item.OrderID, &item.MedicineID, &item.Name, &item.Quantity, &item.Price); err != nil {
			return err
		}
		order.Items = append(order.Items, item)
	}
	return rows.Err()
}

func (r *OrderRepository) list(ctx context.Context, query string, args ...interface{}) ([]models.Order, error) {
	rows, err := models.DB.Query(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	orders := []models.Order{}
	for rows.Next() {
		order, err := scanOrder(rows)
		if err != nil {
			return nil, err
		}
		orders = append(orders, *order)
	}
	if err := rows.Err(); err != nil {
		return nil, err
	}

	for i := range orders {
		if err := r.loadItems(ctx, &orders[i]); err != nil {
			return nil, err
		}
	}
	return orders, nil
}

func (r *OrderRepository) ListByUser(ctx context.Context, userID int) ([]models.Order, error) {
	return r.list(ctx,
		"SELECT "+orderColumns+" FROM orders WHERE user_id = $1 ORDER BY created_at DESC", userID)
}

func (r *OrderRepository) ListAll(ctx context.Context) ([]models.Order, error) {
	return r.list(ctx, "SELECT "+orderColumns+" FROM orders ORDER BY created_at DESC")
}

func (r *OrderRepository) MarkPaid(ctx context.Context, id int, result models.PaymentResult, paidAt time.Time) error {
	tag, err := models.DB.Exec(ctx,
		`UPDATE orders SET is_paid=true, paid_at=$1, payment_id=$2, payment_status=$3,
			payment_update_time=$4, payment_email=$5, updated_at=$6
		WHERE id=$7`,
		paidAt, result.ID, result.Status, result.UpdateTime, result.EmailAddress, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}

func (r *OrderRepository) UpdateStatus(ctx context.Context, id int, status string) error {
	tag, err := models.DB.Exec(ctx,
		"UPDATE orders SET status=$1, updated_at=$2 WHERE id=$3", status, time.Now(), id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return models.ErrOrderNotFound
	}
	return nil
}
