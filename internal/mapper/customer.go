// Package mapper converts between domain entities and their transfer
// representations. All transforms are deterministic and side-effect free.
package mapper

import (
	"github.com/jefferson-dev/orders-backend/internal/dto"
	"github.com/jefferson-dev/orders-backend/internal/models"
)

// CustomerToDTO converts a customer entity to its transfer form, unwrapping
// the phone number to its normalized string
func CustomerToDTO(customer *models.Customer) dto.CustomerDTO {
	return dto.CustomerDTO{
		ID:        customer.ID,
		FirstName: customer.FirstName,
		LastName:  customer.LastName,
		Email:     customer.Email,
		Phone:     customer.Phone.String(),
	}
}

// CustomerFromRequest builds a customer entity from a creation request. The
// raw phone string goes through PhoneNumber construction and may fail.
func CustomerFromRequest(req *dto.CustomerRequest) (*models.Customer, error) {
	phone, err := models.NewPhoneNumber(req.Phone)
	if err != nil {
		return nil, err
	}
	return models.NewCustomer(req.FirstName, req.LastName, req.Email, phone), nil
}
