package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/lib/pq"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

// ProductRepository defines the interface for product data access. All
// lookups exclude soft-deleted rows.
type ProductRepository interface {
	Create(ctx context.Context, product *models.Product) error
	GetActiveByID(ctx context.Context, id int64) (*models.Product, error)
	ListActiveByIDs(ctx context.Context, ids []int64) ([]*models.Product, error)
	ListActive(ctx context.Context, page models.PageRequest) ([]*models.Product, int64, error)
	Update(ctx context.Context, product *models.Product) error
}

// productRepository implements ProductRepository using PostgreSQL
type productRepository struct {
	db *sql.DB
}

// NewProductRepository creates a new product repository
func NewProductRepository(db *sql.DB) ProductRepository {
	return &productRepository{db: db}
}

const productColumns = `id, name, description, price, quantity_in_stock, deleted, created_at`

func scanProduct(row interface{ Scan(dest ...interface{}) error }) (*models.Product, error) {
	product := &models.Product{}
	err := row.Scan(
		&product.ID,
		&product.Name,
		&product.Description,
		&product.Price,
		&product.QuantityInStock,
		&product.Deleted,
		&product.CreatedAt,
	)
	if err != nil {
		return nil, err
	}
	return product, nil
}

// Create inserts a new product
func (r *productRepository) Create(ctx context.Context, product *models.Product) error {
	query := `
		INSERT INTO products (name, description, price, quantity_in_stock, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.QuantityInStock,
		product.Deleted,
		product.CreatedAt,
	).Scan(&product.ID)

	if err != nil {
		return fmt.Errorf("failed to create product: %w", err)
	}

	return nil
}

// GetActiveByID retrieves a non-deleted product by ID
func (r *productRepository) GetActiveByID(ctx context.Context, id int64) (*models.Product, error) {
	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = $1 AND deleted = false`

	product, err := scanProduct(r.db.QueryRowContext(ctx, query, id))
	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Product not found for id: %d", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get product: %w", err)
	}

	return product, nil
}

// ListActiveByIDs retrieves every non-deleted product whose id is in ids, in
// a single batch query. Missing or soft-deleted ids are simply absent from
// the result; the caller compares cardinalities.
func (r *productRepository) ListActiveByIDs(ctx context.Context, ids []int64) ([]*models.Product, error) {
	if len(ids) == 0 {
		return []*models.Product{}, nil
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE id = ANY($1) AND deleted = false`

	rows, err := r.db.QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list products by ids: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, fmt.Errorf("error iterating products: %w", err)
	}

	return products, nil
}

// ListActive retrieves non-deleted products with pagination
func (r *productRepository) ListActive(ctx context.Context, page models.PageRequest) ([]*models.Product, int64, error) {
	page.Normalize()

	var totalCount int64
	err := r.db.QueryRowContext(ctx, `SELECT COUNT(*) FROM products WHERE deleted = false`).Scan(&totalCount)
	if err != nil {
		return nil, 0, fmt.Errorf("failed to count products: %w", err)
	}

	query := `
		SELECT ` + productColumns + `
		FROM products
		WHERE deleted = false
		ORDER BY id
		LIMIT $1 OFFSET $2`

	rows, err := r.db.QueryContext(ctx, query, page.PageSize, page.Offset())
	if err != nil {
		return nil, 0, fmt.Errorf("failed to list products: %w", err)
	}
	defer rows.Close()

	products := []*models.Product{}
	for rows.Next() {
		product, err := scanProduct(rows)
		if err != nil {
			return nil, 0, fmt.Errorf("failed to scan product: %w", err)
		}
		products = append(products, product)
	}

	if err = rows.Err(); err != nil {
		return nil, 0, fmt.Errorf("error iterating products: %w", err)
	}

	return products, totalCount, nil
}

// Update persists the mutable fields of an existing product, including the
// deleted flag
func (r *productRepository) Update(ctx context.Context, product *models.Product) error {
	query := `
		UPDATE products
		SET name = $1, description = $2, price = $3, quantity_in_stock = $4, deleted = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(
		ctx,
		query,
		product.Name,
		product.Description,
		product.Price,
		product.QuantityInStock,
		product.Deleted,
		product.ID,
	)
	if err != nil {
		return fmt.Errorf("failed to update product: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("Product not found for id: %d", product.ID))
	}

	return nil
}
