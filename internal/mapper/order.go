package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/jefferson-dev/orders-backend/internal/dto"
	"github.com/jefferson-dev/orders-backend/internal/models"
)

// OrderToDTO converts an order to its transfer form including the visible
// (non-deleted) product list
func OrderToDTO(order *models.Order) dto.OrderDTO {
	d := orderMetadata(order)
	d.Products = ProductsToDTOs(order.VisibleProducts())
	return d
}

// OrderToDTOWithoutProducts converts an order to its metadata-only transfer
// form; the product list is omitted entirely
func OrderToDTOWithoutProducts(order *models.Order) dto.OrderDTO {
	return orderMetadata(order)
}

func orderMetadata(order *models.Order) dto.OrderDTO {
	return dto.OrderDTO{
		ID:              order.ID,
		CustomerID:      order.CustomerID,
		OrderDate:       order.OrderDate,
		ShippingAddress: order.ShippingAddress,
		TotalPrice:      order.TotalPrice,
		OrderStatus:     order.Status,
	}
}

// OrderShippingDetails extracts the caller-supplied shipping address and
// total price from a creation request. Customer and product associations,
// the order date, and the status are wired exclusively by the order service
// and entity-creation stamping, never here.
func OrderShippingDetails(req *dto.OrderRequest) (shippingAddress string, totalPrice decimal.Decimal) {
	return req.ShippingAddress, *req.TotalPrice
}
