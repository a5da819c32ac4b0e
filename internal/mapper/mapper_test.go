package mapper

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jefferson-dev/orders-backend/internal/dto"
	"github.com/jefferson-dev/orders-backend/internal/models"
)

func TestProductFromRequest_DescriptionDefaulting(t *testing.T) {
	qty := int64(5)
	price := decimal.NewFromInt(10)

	// Missing description materializes as ""
	req := &dto.ProductRequest{Name: "keyboard", Price: &price, QuantityInStock: &qty}
	product := ProductFromRequest(req)
	if product.Description != "" {
		t.Errorf("nil description mapped to %q, want \"\"", product.Description)
	}

	// Mapping back keeps it ""; repeated mapping is idempotent
	d := ProductToDTO(product)
	if d.Description != "" {
		t.Errorf("dto description = %q, want \"\"", d.Description)
	}

	again := ProductFromRequest(&dto.ProductRequest{
		Name:            d.Name,
		Description:     &d.Description,
		Price:           &d.Price,
		QuantityInStock: &d.QuantityInStock,
	})
	if again.Description != "" {
		t.Errorf("round-tripped description = %q, want \"\"", again.Description)
	}

	// Present description passes through unchanged
	desc := "mechanical"
	withDesc := ProductFromRequest(&dto.ProductRequest{Name: "keyboard", Description: &desc, QuantityInStock: &qty})
	if withDesc.Description != "mechanical" {
		t.Errorf("description = %q, want %q", withDesc.Description, "mechanical")
	}
}

func TestCustomerFromRequest(t *testing.T) {
	req := &dto.CustomerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@x.com",
		Phone:     "+1 (234) 567-890",
	}

	customer, err := CustomerFromRequest(req)
	if err != nil {
		t.Fatalf("CustomerFromRequest failed: %v", err)
	}
	if customer.Phone.String() != "+1234567890" {
		t.Errorf("phone normalized to %q, want %q", customer.Phone.String(), "+1234567890")
	}
	if customer.CreatedAt.IsZero() {
		t.Error("created customer should have its creation time stamped")
	}

	d := CustomerToDTO(customer)
	if d.Phone != "+1234567890" {
		t.Errorf("dto phone = %q, want normalized form", d.Phone)
	}
}

func TestCustomerFromRequest_InvalidPhone(t *testing.T) {
	req := &dto.CustomerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@x.com",
		Phone:     "abc",
	}

	_, err := CustomerFromRequest(req)
	if !errors.Is(err, models.ErrInvalidPhoneNumber) {
		t.Errorf("expected ErrInvalidPhoneNumber, got %v", err)
	}
}

func TestOrderToDTO_Variants(t *testing.T) {
	order := &models.Order{
		ID:              9,
		CustomerID:      5,
		ShippingAddress: "1 Main St",
		TotalPrice:      decimal.NewFromInt(30),
		Status:          models.OrderStatusProcessing,
		Products: []*models.Product{
			{ID: 1, Name: "keyboard"},
			{ID: 2, Name: "mouse", Deleted: true},
		},
	}

	with := OrderToDTO(order)
	if len(with.Products) != 1 {
		t.Fatalf("expected 1 visible product, got %d", len(with.Products))
	}
	if with.Products[0].ID != 1 {
		t.Errorf("visible product id = %d, want 1", with.Products[0].ID)
	}

	without := OrderToDTOWithoutProducts(order)
	if without.Products != nil {
		t.Errorf("metadata-only dto should omit products, got %v", without.Products)
	}
	if without.ID != 9 || without.CustomerID != 5 || without.OrderStatus != models.OrderStatusProcessing {
		t.Errorf("metadata mismatch: %+v", without)
	}
}
