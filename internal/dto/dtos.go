// Package dto defines the transfer representations exchanged at the service
// boundary, separate from the persisted entity shapes.
package dto

import (
	"net/mail"
	"strings"
	"time"

	"github.com/shopspring/decimal"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

// CustomerRequest carries the fields needed to create a customer
type CustomerRequest struct {
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone_number"`
}

// Validate checks structural constraints, collecting every violation
func (r *CustomerRequest) Validate() error {
	var errs models.ValidationErrors

	if strings.TrimSpace(r.FirstName) == "" {
		errs = errs.Add("first_name", "first name must not be empty")
	}
	if strings.TrimSpace(r.LastName) == "" {
		errs = errs.Add("last_name", "last name must not be empty")
	}
	if strings.TrimSpace(r.Email) == "" {
		errs = errs.Add("email", "email must not be empty")
	} else if _, err := mail.ParseAddress(r.Email); err != nil {
		errs = errs.Add("email", "email must be valid")
	}
	if strings.TrimSpace(r.Phone) == "" {
		errs = errs.Add("phone_number", "phone number must not be empty")
	}

	return errs.ErrOrNil()
}

// CustomerDTO is the external representation of a customer
type CustomerDTO struct {
	ID        int64  `json:"id"`
	FirstName string `json:"first_name"`
	LastName  string `json:"last_name"`
	Email     string `json:"email"`
	Phone     string `json:"phone_number"`
}

// ProductRequest carries the fields needed to create or fully replace a
// product. Description is optional; Price, when present, must be positive.
type ProductRequest struct {
	Name            string           `json:"name"`
	Description     *string          `json:"description"`
	Price           *decimal.Decimal `json:"price"`
	QuantityInStock *int64           `json:"quantity_in_stock"`
}

// Validate checks structural constraints, collecting every violation
func (r *ProductRequest) Validate() error {
	var errs models.ValidationErrors

	if strings.TrimSpace(r.Name) == "" {
		errs = errs.Add("name", "product name must not be empty")
	}
	if r.Price != nil && !r.Price.IsPositive() {
		errs = errs.Add("price", "price must be positive")
	}
	if r.QuantityInStock == nil {
		errs = errs.Add("quantity_in_stock", "quantity in stock is required")
	} else if *r.QuantityInStock < 0 {
		errs = errs.Add("quantity_in_stock", "quantity in stock must be positive or zero")
	}

	return errs.ErrOrNil()
}

// ProductDTO is the external representation of a product. Description is
// always materialized; a product stored without one renders as "".
type ProductDTO struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int64           `json:"quantity_in_stock"`
	CreatedAt       time.Time       `json:"created_at"`
}

// OrderRequest carries the fields needed to create an order. Only the
// product ids of the listed products are consulted; total price is accepted
// verbatim from the caller.
type OrderRequest struct {
	CustomerID      int64            `json:"customer_id"`
	Products        []ProductDTO     `json:"products"`
	ShippingAddress string           `json:"shipping_address"`
	TotalPrice      *decimal.Decimal `json:"total_price"`
}

// Validate checks structural constraints, collecting every violation
func (r *OrderRequest) Validate() error {
	var errs models.ValidationErrors

	if r.CustomerID <= 0 {
		errs = errs.Add("customer_id", "customer id must be positive")
	}
	if r.Products == nil {
		errs = errs.Add("products", "products must not be null")
	}
	if strings.TrimSpace(r.ShippingAddress) == "" {
		errs = errs.Add("shipping_address", "shipping address must not be empty")
	}
	if r.TotalPrice == nil {
		errs = errs.Add("total_price", "total price is required")
	} else if r.TotalPrice.IsNegative() {
		errs = errs.Add("total_price", "total price must be positive or zero")
	}

	return errs.ErrOrNil()
}

// ProductIDs returns the distinct product ids referenced by the request,
// preserving first-occurrence order
func (r *OrderRequest) ProductIDs() []int64 {
	seen := make(map[int64]struct{}, len(r.Products))
	ids := make([]int64, 0, len(r.Products))
	for _, p := range r.Products {
		if _, ok := seen[p.ID]; ok {
			continue
		}
		seen[p.ID] = struct{}{}
		ids = append(ids, p.ID)
	}
	return ids
}

// OrderDTO is the external representation of an order. Products is omitted
// entirely in the metadata-only variant.
type OrderDTO struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customer_id"`
	Products        []ProductDTO    `json:"products,omitempty"`
	OrderDate       time.Time       `json:"order_date"`
	ShippingAddress string          `json:"shipping_address"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	OrderStatus     string          `json:"order_status"`
}

// ProductListResult represents paginated product list results
type ProductListResult struct {
	Data       []ProductDTO            `json:"data"`
	Pagination models.PaginationResult `json:"pagination"`
}

// ValidateID checks that an identifier argument is positive
func ValidateID(field string, id int64) error {
	if id <= 0 {
		return models.ValidationErrors{}.Add(field, "id must be positive")
	}
	return nil
}
