package service

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jefferson-dev/orders-backend/internal/dto"
	"github.com/jefferson-dev/orders-backend/internal/mapper"
	"github.com/jefferson-dev/orders-backend/internal/models"
	"github.com/jefferson-dev/orders-backend/internal/queue"
	"github.com/jefferson-dev/orders-backend/internal/repository"
)

// OrderService handles order business logic
type OrderService interface {
	GetByID(ctx context.Context, id int64) (dto.OrderDTO, error)
	Create(ctx context.Context, req *dto.OrderRequest) (dto.OrderDTO, error)
	SoftDelete(ctx context.Context, id int64) error
}

type orderService struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	productRepo  repository.ProductRepository
	queueClient  queue.Client
	logger       *slog.Logger
}

// NewOrderService creates a new order service
func NewOrderService(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	productRepo repository.ProductRepository,
	queueClient queue.Client,
	logger *slog.Logger,
) OrderService {
	return &orderService{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		productRepo:  productRepo,
		queueClient:  queueClient,
		logger:       logger,
	}
}

// GetByID retrieves an order that has not been soft-deleted. The returned
// representation includes only products that are themselves not deleted.
func (s *orderService) GetByID(ctx context.Context, id int64) (dto.OrderDTO, error) {
	if err := dto.ValidateID("order_id", id); err != nil {
		return dto.OrderDTO{}, err
	}

	order, err := s.orderRepo.GetActiveByID(ctx, id)
	if err != nil {
		return dto.OrderDTO{}, err
	}

	return mapper.OrderToDTO(order), nil
}

// Create places a new order. The referenced customer must be active, and
// every referenced product must resolve to an active product: a single
// missing or soft-deleted product fails the whole request before anything is
// written. The total price is persisted as supplied by the caller.
func (s *orderService) Create(ctx context.Context, req *dto.OrderRequest) (dto.OrderDTO, error) {
	if req == nil {
		return dto.OrderDTO{}, models.ErrInvalidInput("order request must not be null")
	}
	if err := req.Validate(); err != nil {
		return dto.OrderDTO{}, err
	}

	customer, err := s.customerRepo.GetActiveByID(ctx, req.CustomerID)
	if err != nil {
		return dto.OrderDTO{}, err
	}

	productIDs := req.ProductIDs()
	products, err := s.productRepo.ListActiveByIDs(ctx, productIDs)
	if err != nil {
		return dto.OrderDTO{}, fmt.Errorf("failed to resolve order products: %w", err)
	}

	if len(products) != len(productIDs) {
		return dto.OrderDTO{}, models.ErrNotFoundWithMsg(
			fmt.Sprintf("Product not found for ids: %v", missingIDs(productIDs, products)),
		)
	}

	shippingAddress, totalPrice := mapper.OrderShippingDetails(req)
	order := models.NewOrder(customer, inRequestedOrder(productIDs, products), shippingAddress, totalPrice)

	if err := s.orderRepo.Create(ctx, order); err != nil {
		s.logger.Error("failed to create order",
			slog.Int64("customer_id", req.CustomerID),
			slog.String("error", err.Error()),
		)
		return dto.OrderDTO{}, fmt.Errorf("failed to create order: %w", err)
	}

	s.logger.Info("order created",
		slog.Int64("order_id", order.ID),
		slog.Int64("customer_id", order.CustomerID),
		slog.Int("products", len(order.Products)),
		slog.String("total_price", order.TotalPrice.String()),
	)

	s.enqueueConfirmation(ctx, order.ID)

	return mapper.OrderToDTO(order), nil
}

// inRequestedOrder rearranges the batch-resolved products to match the order
// the caller listed them in. Only called once cardinalities match.
func inRequestedOrder(requested []int64, resolved []*models.Product) []*models.Product {
	byID := make(map[int64]*models.Product, len(resolved))
	for _, p := range resolved {
		byID[p.ID] = p
	}

	ordered := make([]*models.Product, 0, len(requested))
	for _, id := range requested {
		ordered = append(ordered, byID[id])
	}
	return ordered
}

// missingIDs returns the requested ids that did not resolve to an active
// product
func missingIDs(requested []int64, resolved []*models.Product) []int64 {
	found := make(map[int64]struct{}, len(resolved))
	for _, p := range resolved {
		found[p.ID] = struct{}{}
	}

	missing := []int64{}
	for _, id := range requested {
		if _, ok := found[id]; !ok {
			missing = append(missing, id)
		}
	}
	return missing
}

// enqueueConfirmation queues the order confirmation notification. A queue
// failure never fails the order itself.
func (s *orderService) enqueueConfirmation(ctx context.Context, orderID int64) {
	if s.queueClient == nil {
		return
	}

	job := &models.ConfirmationJob{OrderID: orderID}
	if err := s.queueClient.Publish(ctx, job); err != nil {
		s.logger.Error("failed to queue order confirmation",
			slog.Int64("order_id", orderID),
			slog.String("error", err.Error()),
		)
	}
}

// SoftDelete transitions an order to the terminal DELETED status. Deleting a
// missing or already deleted order is a silent no-op.
func (s *orderService) SoftDelete(ctx context.Context, id int64) error {
	if err := dto.ValidateID("order_id", id); err != nil {
		return err
	}

	order, err := s.orderRepo.GetActiveByID(ctx, id)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			return nil
		}
		return err
	}

	if err := s.orderRepo.UpdateStatus(ctx, order.ID, models.OrderStatusDeleted); err != nil {
		s.logger.Error("failed to soft delete order",
			slog.Int64("order_id", id),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to soft delete order: %w", err)
	}

	s.logger.Info("order soft deleted",
		slog.Int64("order_id", id),
	)

	return nil
}
