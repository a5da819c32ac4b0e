package models

import "time"

// Customer represents a customer in the system. Deleted customers stay in
// storage but are excluded from every active lookup.
type Customer struct {
	ID        int64       `json:"id"`
	FirstName string      `json:"first_name"`
	LastName  string      `json:"last_name"`
	Email     string      `json:"email"`
	Phone     PhoneNumber `json:"phone_number"`
	Deleted   bool        `json:"-"`
	CreatedAt time.Time   `json:"created_at"`
}

// NewCustomer builds a customer and stamps its creation time
func NewCustomer(firstName, lastName, email string, phone PhoneNumber) *Customer {
	return &Customer{
		FirstName: firstName,
		LastName:  lastName,
		Email:     email,
		Phone:     phone,
		CreatedAt: time.Now().UTC(),
	}
}

// IsVisible reports whether the customer appears in active lookups
func (c *Customer) IsVisible() bool {
	return !c.Deleted
}

// Equal compares customers by identity only. Two customers without an
// assigned id are never equal.
func (c *Customer) Equal(other *Customer) bool {
	if c == other {
		return true
	}
	if other == nil {
		return false
	}
	if c.ID == 0 && other.ID == 0 {
		return false
	}
	return c.ID == other.ID
}
