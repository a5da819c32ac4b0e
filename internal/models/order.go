package models

import (
	"time"

	"github.com/shopspring/decimal"
)

// Order status constants. DELETED is terminal: once an order reaches it, no
// further transitions are modeled and the order disappears from lookups.
const (
	OrderStatusProcessing = "PROCESSING"
	OrderStatusDeleted    = "DELETED"
)

// Order represents a customer order. The product association keeps the order
// the caller listed the products in; reads filter out products that were
// soft-deleted after the order was placed.
type Order struct {
	ID              int64           `json:"id"`
	CustomerID      int64           `json:"customer_id"`
	Products        []*Product      `json:"products"`
	OrderDate       time.Time       `json:"order_date"`
	ShippingAddress string          `json:"shipping_address"`
	TotalPrice      decimal.Decimal `json:"total_price"`
	Status          string          `json:"order_status"`
}

// NewOrder builds an order for the given customer with the resolved product
// set, stamping the order date and the initial PROCESSING status. The total
// price is taken verbatim from the caller; the engine never recomputes it
// from product prices.
func NewOrder(customer *Customer, products []*Product, shippingAddress string, totalPrice decimal.Decimal) *Order {
	return &Order{
		CustomerID:      customer.ID,
		Products:        products,
		OrderDate:       time.Now().UTC(),
		ShippingAddress: shippingAddress,
		TotalPrice:      totalPrice,
		Status:          OrderStatusProcessing,
	}
}

// IsVisible reports whether the order appears in active lookups
func (o *Order) IsVisible() bool {
	return o.Status != OrderStatusDeleted
}

// VisibleProducts returns the product association filtered to non-deleted
// products, preserving the original ordering
func (o *Order) VisibleProducts() []*Product {
	visible := make([]*Product, 0, len(o.Products))
	for _, p := range o.Products {
		if p.IsVisible() {
			visible = append(visible, p)
		}
	}
	return visible
}

// Equal compares orders by identity only
func (o *Order) Equal(other *Order) bool {
	if o == other {
		return true
	}
	if other == nil {
		return false
	}
	if o.ID == 0 && other.ID == 0 {
		return false
	}
	return o.ID == other.ID
}
