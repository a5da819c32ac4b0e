package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

// OrderRepository defines the interface for order data access. Lookups
// exclude orders whose status is DELETED.
type OrderRepository interface {
	// Create persists the order and its product associations in one
	// transaction; either everything is written or nothing is.
	Create(ctx context.Context, order *models.Order) error
	GetActiveByID(ctx context.Context, id int64) (*models.Order, error)
	UpdateStatus(ctx context.Context, id int64, status string) error
}

// orderRepository implements OrderRepository using PostgreSQL
type orderRepository struct {
	db *sql.DB
}

// NewOrderRepository creates a new order repository
func NewOrderRepository(db *sql.DB) OrderRepository {
	return &orderRepository{db: db}
}

// Create inserts the order row and one association row per product inside a
// single transaction. The position column preserves the order the caller
// listed the products in.
func (r *orderRepository) Create(ctx context.Context, order *models.Order) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin transaction: %w", err)
	}
	defer tx.Rollback()

	query := `
		INSERT INTO orders (customer_id, order_date, shipping_address, total_price, order_status)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id`

	err = tx.QueryRowContext(
		ctx,
		query,
		order.CustomerID,
		order.OrderDate,
		order.ShippingAddress,
		order.TotalPrice,
		order.Status,
	).Scan(&order.ID)
	if err != nil {
		return fmt.Errorf("failed to create order: %w", err)
	}

	assocQuery := `
		INSERT INTO order_products (order_id, product_id, position)
		VALUES ($1, $2, $3)`

	for i, product := range order.Products {
		if _, err := tx.ExecContext(ctx, assocQuery, order.ID, product.ID, i); err != nil {
			return fmt.Errorf("failed to create order product association: %w", err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit order: %w", err)
	}

	return nil
}

// GetActiveByID retrieves an order that has not been soft-deleted, together
// with its visible (non-deleted) products in their original position.
func (r *orderRepository) GetActiveByID(ctx context.Context, id int64) (*models.Order, error) {
	query := `
		SELECT id, customer_id, order_date, shipping_address, total_price, order_status
		FROM orders
		WHERE id = $1 AND order_status <> $2`

	order := &models.Order{}
	err := r.db.QueryRowContext(ctx, query, id, models.OrderStatusDeleted).Scan(
		&order.ID,
		&order.CustomerID,
		&order.OrderDate,
		&order.ShippingAddress,
		&order.TotalPrice,
		&order.Status,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Order not found for id: %d", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get order: %w", err)
	}

	productsQuery := `
		SELECT p.id, p.name, p.description, p.price, p.quantity_in_stock, p.deleted, p.created_at
		FROM order_products op
		JOIN products p ON p.id = op.product_id
		WHERE op.order_id = $1 AND p.deleted = false
		ORDER BY op.position`

	rows, err := r.db.QueryContext(ctx, productsQuery, order.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to get order products: %w", err)
	}
	defer rows.Close()

	order.Products = []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan order product: %w", err)
		}
		order.Products = append(order.Products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating order products: %w", err)
	}

	return order, nil
}

// UpdateStatus sets the status of an order
func (r *orderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	query := `UPDATE orders SET order_status = $1 WHERE id = $2`

	result, err := r.db.ExecContext(ctx, query, status, id)
	if err != nil {
		return fmt.Errorf("failed to update order status: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("Order not found for id: %d", id))
	}

	return nil
}
