package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Product represents a product in the catalog
type Product struct {
	ID              int64           `json:"id"`
	Name            string          `json:"name"`
	Description     string          `json:"description"`
	Price           decimal.Decimal `json:"price"`
	QuantityInStock int64           `json:"quantity_in_stock"`
	Deleted         bool            `json:"-"`
	CreatedAt       time.Time       `json:"created_at"`
}

// NewProduct builds a product and stamps its creation time
func NewProduct(name, description string, price decimal.Decimal, quantityInStock int64) *Product {
	return &Product{
		Name:            name,
		Description:     description,
		Price:           price,
		QuantityInStock: quantityInStock,
		CreatedAt:       time.Now().UTC(),
	}
}

// IsVisible reports whether the product appears in active lookups and in
// order association reads
func (p *Product) IsVisible() bool {
	return !p.Deleted
}

// Equal compares products by identity only. Two products without an
// assigned id are never equal.
func (p *Product) Equal(other *Product) bool {
	if p == other {
		return true
	}
	if other == nil {
		return false
	}
	if p.ID == 0 && other.ID == 0 {
		return false
	}
	return p.ID == other.ID
}
