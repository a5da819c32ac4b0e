package mapper

import (
	"github.com/shopspring/decimal"

	"github.com/jefferson-dev/orders-backend/internal/dto"
	"github.com/jefferson-dev/orders-backend/internal/models"
)

// ProductToDTO converts a product entity to its transfer form
func ProductToDTO(product *models.Product) dto.ProductDTO {
	return dto.ProductDTO{
		ID:              product.ID,
		Name:            product.Name,
		Description:     product.Description,
		Price:           product.Price,
		QuantityInStock: product.QuantityInStock,
		CreatedAt:       product.CreatedAt,
	}
}

// ProductsToDTOs converts a slice of product entities, preserving order
func ProductsToDTOs(products []*models.Product) []dto.ProductDTO {
	dtos := make([]dto.ProductDTO, 0, len(products))
	for _, p := range products {
		dtos = append(dtos, ProductToDTO(p))
	}
	return dtos
}

// ProductFromRequest builds a product entity from a request. A missing
// description materializes as "" here, at the mapping boundary.
func ProductFromRequest(req *dto.ProductRequest) *models.Product {
	description := ""
	if req.Description != nil {
		description = *req.Description
	}

	price := decimal.Zero
	if req.Price != nil {
		price = *req.Price
	}

	var quantity int64
	if req.QuantityInStock != nil {
		quantity = *req.QuantityInStock
	}

	return models.NewProduct(req.Name, description, price, quantity)
}
