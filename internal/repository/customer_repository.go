package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/lib/pq"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

// uniqueViolation is the Postgres error code for a unique constraint breach
const uniqueViolation = "23505"

// translateConstraintError maps a storage-level uniqueness violation to the
// same conflict shape the service pre-checks produce. The database constraint
// is the backstop for races between a pre-check and the write.
func translateConstraintError(err error, message string) error {
	var pqErr *pq.Error
	if errors.As(err, &pqErr) && pqErr.Code == uniqueViolation {
		return models.ErrConflictWithMsg(message)
	}
	return err
}

// CustomerRepository defines the interface for customer data access. All
// lookups exclude soft-deleted rows.
type CustomerRepository interface {
	Create(ctx context.Context, customer *models.Customer) error
	GetActiveByID(ctx context.Context, id int64) (*models.Customer, error)
	GetActiveByEmail(ctx context.Context, email string) (*models.Customer, error)
	Update(ctx context.Context, customer *models.Customer) error
}

// customerRepository implements CustomerRepository using PostgreSQL
type customerRepository struct {
	db *sql.DB
}

// NewCustomerRepository creates a new customer repository
func NewCustomerRepository(db *sql.DB) CustomerRepository {
	return &customerRepository{db: db}
}

// Create inserts a new customer
func (r *customerRepository) Create(ctx context.Context, customer *models.Customer) error {
	query := `
		INSERT INTO customers (first_name, last_name, email, phone_number, deleted, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id`

	err := r.db.QueryRowContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.Deleted,
		customer.CreatedAt,
	).Scan(&customer.ID)

	if err != nil {
		return translateConstraintError(err,
			fmt.Sprintf("customer with email: %s already registered", customer.Email))
	}

	return nil
}

// GetActiveByID retrieves a non-deleted customer by ID
func (r *customerRepository) GetActiveByID(ctx context.Context, id int64) (*models.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, deleted, created_at
		FROM customers
		WHERE id = $1 AND deleted = false`

	customer := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, id).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.Deleted,
		&customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for id: %d", id))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer: %w", err)
	}

	return customer, nil
}

// GetActiveByEmail retrieves a non-deleted customer by email,
// case-insensitively
func (r *customerRepository) GetActiveByEmail(ctx context.Context, email string) (*models.Customer, error) {
	query := `
		SELECT id, first_name, last_name, email, phone_number, deleted, created_at
		FROM customers
		WHERE LOWER(email) = LOWER($1) AND deleted = false`

	customer := &models.Customer{}
	err := r.db.QueryRowContext(ctx, query, email).Scan(
		&customer.ID,
		&customer.FirstName,
		&customer.LastName,
		&customer.Email,
		&customer.Phone,
		&customer.Deleted,
		&customer.CreatedAt,
	)

	if err == sql.ErrNoRows {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for email: %s", email))
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get customer by email: %w", err)
	}

	return customer, nil
}

// Update persists the mutable fields of an existing customer, including the
// deleted flag
func (r *customerRepository) Update(ctx context.Context, customer *models.Customer) error {
	query := `
		UPDATE customers
		SET first_name = $1, last_name = $2, email = $3, phone_number = $4, deleted = $5
		WHERE id = $6`

	result, err := r.db.ExecContext(
		ctx,
		query,
		customer.FirstName,
		customer.LastName,
		customer.Email,
		customer.Phone,
		customer.Deleted,
		customer.ID,
	)
	if err != nil {
		return translateConstraintError(err,
			fmt.Sprintf("customer with email: %s already registered", customer.Email))
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to get rows affected: %w", err)
	}

	if rowsAffected == 0 {
		return models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for id: %d", customer.ID))
	}

	return nil
}
