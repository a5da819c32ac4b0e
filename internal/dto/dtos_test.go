package dto

import (
	"errors"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

func TestCustomerRequest_Validate_CollectsAllViolations(t *testing.T) {
	req := &CustomerRequest{
		FirstName: "",
		LastName:  "  ",
		Email:     "not-an-email",
		Phone:     "",
	}

	err := req.Validate()
	if err == nil {
		t.Fatal("expected validation error")
	}

	var errs models.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}

	fields := errs.AsMap()
	for _, field := range []string{"first_name", "last_name", "email", "phone_number"} {
		if _, ok := fields[field]; !ok {
			t.Errorf("expected violation for %q, got %v", field, fields)
		}
	}
}

func TestCustomerRequest_Validate_Valid(t *testing.T) {
	req := &CustomerRequest{
		FirstName: "John",
		LastName:  "Doe",
		Email:     "john@x.com",
		Phone:     "+1234567890",
	}

	if err := req.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}
}

func TestProductRequest_Validate(t *testing.T) {
	negPrice := decimal.NewFromInt(-1)
	zeroQty := int64(0)
	negQty := int64(-3)

	tests := []struct {
		name       string
		req        ProductRequest
		wantFields []string
	}{
		{
			name: "valid without optional fields",
			req:  ProductRequest{Name: "keyboard", QuantityInStock: &zeroQty},
		},
		{
			name:       "blank name",
			req:        ProductRequest{Name: "   ", QuantityInStock: &zeroQty},
			wantFields: []string{"name"},
		},
		{
			name:       "missing quantity",
			req:        ProductRequest{Name: "keyboard"},
			wantFields: []string{"quantity_in_stock"},
		},
		{
			name:       "negative quantity",
			req:        ProductRequest{Name: "keyboard", QuantityInStock: &negQty},
			wantFields: []string{"quantity_in_stock"},
		},
		{
			name:       "non-positive price",
			req:        ProductRequest{Name: "keyboard", QuantityInStock: &zeroQty, Price: &negPrice},
			wantFields: []string{"price"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.req.Validate()

			if len(tt.wantFields) == 0 {
				if err != nil {
					t.Errorf("unexpected error: %v", err)
				}
				return
			}

			var errs models.ValidationErrors
			if !errors.As(err, &errs) {
				t.Fatalf("expected ValidationErrors, got %v", err)
			}
			fields := errs.AsMap()
			for _, field := range tt.wantFields {
				if _, ok := fields[field]; !ok {
					t.Errorf("expected violation for %q, got %v", field, fields)
				}
			}
		})
	}
}

func TestOrderRequest_Validate(t *testing.T) {
	total := decimal.NewFromInt(100)
	negTotal := decimal.NewFromInt(-1)

	valid := OrderRequest{
		CustomerID:      1,
		Products:        []ProductDTO{{ID: 1}},
		ShippingAddress: "1 Main St",
		TotalPrice:      &total,
	}
	if err := valid.Validate(); err != nil {
		t.Errorf("valid request rejected: %v", err)
	}

	invalid := OrderRequest{
		CustomerID:      0,
		Products:        nil,
		ShippingAddress: "",
		TotalPrice:      &negTotal,
	}
	err := invalid.Validate()

	var errs models.ValidationErrors
	if !errors.As(err, &errs) {
		t.Fatalf("expected ValidationErrors, got %v", err)
	}
	if len(errs) != 4 {
		t.Errorf("expected 4 violations, got %d: %v", len(errs), errs)
	}
}

func TestOrderRequest_ProductIDs_Distinct(t *testing.T) {
	req := OrderRequest{
		Products: []ProductDTO{{ID: 3}, {ID: 1}, {ID: 3}, {ID: 2}, {ID: 1}},
	}

	ids := req.ProductIDs()
	want := []int64{3, 1, 2}
	if len(ids) != len(want) {
		t.Fatalf("expected %d distinct ids, got %d", len(want), len(ids))
	}
	for i := range want {
		if ids[i] != want[i] {
			t.Errorf("ids[%d] = %d, want %d", i, ids[i], want[i])
		}
	}
}

func TestValidateID(t *testing.T) {
	if err := ValidateID("customer_id", 1); err != nil {
		t.Errorf("positive id rejected: %v", err)
	}
	if err := ValidateID("customer_id", 0); err == nil {
		t.Error("zero id accepted")
	}
	if err := ValidateID("customer_id", -5); err == nil {
		t.Error("negative id accepted")
	}
}
