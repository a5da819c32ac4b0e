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

// CustomerService handles customer business logic
type CustomerService interface {
	GetByID(ctx context.Context, id int64) (dto.CustomerDTO, error)
	Create(ctx context.Context, req *dto.CustomerRequest) (dto.CustomerDTO, error)
	SoftDelete(ctx context.Context, id int64) error
}

type customerService struct {
	customerRepo repository.CustomerRepository
	logger       *slog.Logger
}

// NewCustomerService creates a new customer service
func NewCustomerService(
	customerRepo repository.CustomerRepository,
	logger *slog.Logger,
) CustomerService {
	return &customerService{
		customerRepo: customerRepo,
		logger:       logger,
	}
}

// GetByID retrieves a non-deleted customer by ID
func (s *customerService) GetByID(ctx context.Context, id int64) (dto.CustomerDTO, error) {
	if err := dto.ValidateID("customer_id", id); err != nil {
		return dto.CustomerDTO{}, err
	}

	customer, err := s.customerRepo.GetActiveByID(ctx, id)
	if err != nil {
		return dto.CustomerDTO{}, err
	}

	return mapper.CustomerToDTO(customer), nil
}

// Create registers a new customer. The email must not belong to any
// non-deleted customer, compared case-insensitively; the phone number is
// validated when the entity is constructed.
func (s *customerService) Create(ctx context.Context, req *dto.CustomerRequest) (dto.CustomerDTO, error) {
	if req == nil {
		return dto.CustomerDTO{}, models.ErrInvalidInput("customer request must not be null")
	}
	if err := req.Validate(); err != nil {
		return dto.CustomerDTO{}, err
	}

	existing, err := s.customerRepo.GetActiveByEmail(ctx, req.Email)
	if err != nil && !errors.Is(err, models.ErrNotFound) {
		return dto.CustomerDTO{}, fmt.Errorf("failed to check email uniqueness: %w", err)
	}
	if existing != nil {
		return dto.CustomerDTO{}, models.ErrConflictWithMsg(
			fmt.Sprintf("customer with email: %s already registered", req.Email),
		)
	}

	customer, err := mapper.CustomerFromRequest(req)
	if err != nil {
		return dto.CustomerDTO{}, err
	}

	if err := s.customerRepo.Create(ctx, customer); err != nil {
		s.logger.Error("failed to create customer",
			slog.String("email", req.Email),
			slog.String("error", err.Error()),
		)
		if errors.Is(err, models.ErrConflict) {
			return dto.CustomerDTO{}, err
		}
		return dto.CustomerDTO{}, fmt.Errorf("failed to create customer: %w", err)
	}

	s.logger.Info("customer created",
		slog.Int64("customer_id", customer.ID),
		slog.String("email", customer.Email),
	)

	return mapper.CustomerToDTO(customer), nil
}

// SoftDelete marks a customer as deleted. Deleting a missing or already
// deleted customer is a silent no-op, so the operation is idempotent.
func (s *customerService) SoftDelete(ctx context.Context, id int64) error {
	if err := dto.ValidateID("customer_id", id); err != nil {
		return err
	}

	customer, err := s.customerRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}

	customer.Deleted = true
	if err := s.customerRepo.Update(ctx, customer); err != nil {
		s.logger.Error("failed to soft delete customer",
			slog.Int64("customer_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to soft delete customer: %w", err)
	}

	s.logger.Info("customer soft deleted",
		slog.Int64("customer_id", id),
	)

	return nil
}
