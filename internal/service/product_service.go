package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jefferson-dev/orders-backend/internal/dto"
	"github.com/jefferson-dev/orders-backend/internal/mapper"
	"github.com/jefferson-dev/orders-backend/internal/models"
	"github.com/jefferson-dev/orders-backend/internal/repository"
)

// ProductService handles product business logic
type ProductService interface {
	List(ctx context.Context, page models.PageRequest) (*dto.ProductListResult, error)
	GetByID(ctx context.Context, id int64) (dto.ProductDTO, error)
	Create(ctx context.Context, req *dto.ProductRequest) (dto.ProductDTO, error)
	Update(ctx context.Context, id int64, req *dto.ProductRequest) (dto.ProductDTO, error)
	SoftDelete(ctx context.Context, id int64) error
}

type productService struct {
	productRepo repository.ProductRepository
	logger      *slog.Logger
}

// NewProductService creates a new product service
func NewProductService(
	productRepo repository.ProductRepository,
	logger *slog.Logger,
) ProductService {
	return &productService{
		productRepo: productRepo,
		logger:      logger,
	}
}

// List retrieves non-deleted products with pagination. The only domain
// filtering applied is the soft-delete visibility rule.
func (s *productService) List(ctx context.Context, page models.PageRequest) (*dto.ProductListResult, error) {
	products, totalCount, err := s.productRepo.ListActive(ctx, page)
	if err != nil {
		return nil, fmt.Errorf("failed to list products: %w", err)
	}

	page.Normalize()

	return &dto.ProductListResult{
		Data:       mapper.ProductsToDTOs(products),
		Pagination: models.NewPaginationResult(page, totalCount),
	}, nil
}

// GetByID retrieves a non-deleted product by ID
func (s *productService) GetByID(ctx context.Context, id int64) (dto.ProductDTO, error) {
	if err := dto.ValidateID("product_id", id); err != nil {
		return dto.ProductDTO{}, err
	}

	product, err := s.productRepo.GetActiveByID(ctx, id)
	if err != nil {
		return dto.ProductDTO{}, err
	}

	return mapper.ProductToDTO(product), nil
}

// Create adds a new product. Products carry no uniqueness constraint.
func (s *productService) Create(ctx context.Context, req *dto.ProductRequest) (dto.ProductDTO, error) {
	if req == nil {
		return dto.ProductDTO{}, models.ErrInvalidInput("product request must not be null")
	}
	if err := req.Validate(); err != nil {
		return dto.ProductDTO{}, err
	}

	product := mapper.ProductFromRequest(req)

	if err := s.productRepo.Create(ctx, product); err != nil {
		s.logger.Error("failed to create product",
			slog.String("name", req.Name),
			slog.String("error", err.Error()),
		)
		return dto.ProductDTO{}, fmt.Errorf("failed to create product: %w", err)
	}

	s.logger.Info("product created",
		slog.Int64("product_id", product.ID),
		slog.String("name", product.Name),
	)

	return mapper.ProductToDTO(product), nil
}

// Update overwrites all four mutable fields of an existing non-deleted
// product. Partial updates are not supported; this is full-replace.
func (s *productService) Update(ctx context.Context, id int64, req *dto.ProductRequest) (dto.ProductDTO, error) {
	if err := dto.ValidateID("product_id", id); err != nil {
		return dto.ProductDTO{}, err
	}
	if req == nil {
		return dto.ProductDTO{}, models.ErrInvalidInput("product request must not be null")
	}
	if err := req.Validate(); err != nil {
		return dto.ProductDTO{}, err
	}

	product, err := s.productRepo.GetActiveByID(ctx, id)
	if err != nil {
		return dto.ProductDTO{}, err
	}

	replacement := mapper.ProductFromRequest(req)
	product.Name = replacement.Name
	product.Description = replacement.Description
	product.Price = replacement.Price
	product.QuantityInStock = replacement.QuantityInStock

	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("failed to update product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()),
		)
		return dto.ProductDTO{}, fmt.Errorf("failed to update product: %w", err)
	}

	s.logger.Info("product updated",
		slog.Int64("product_id", id),
	)

	return mapper.ProductToDTO(product), nil
}

// SoftDelete marks a product as deleted. Deleting a missing or already
// deleted product is a silent no-op. Orders referencing the product keep
// their association rows, but the product stops appearing in their reads.
func (s *productService) SoftDelete(ctx context.Context, id int64) error {
	if err := dto.ValidateID("product_id", id); err != nil {
		return err
	}

	product, err := s.productRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}

	product.Deleted = true
	if err := s.productRepo.Update(ctx, product); err != nil {
		s.logger.Error("failed to soft delete product",
			slog.Int64("product_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to soft delete product: %w", err)
	}

	s.logger.Info("product soft deleted",
		slog.Int64("product_id", id),
	)

	return nil
}
