package worker

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/jefferson-dev/orders-backend/internal/mapper"
	"github.com/jefferson-dev/orders-backend/internal/models"
	"github.com/jefferson-dev/orders-backend/internal/queue"
	"github.com/jefferson-dev/orders-backend/internal/repository"
)

// OrderNotifier processes confirmation jobs: it loads the order metadata and
// its customer, composes a confirmation message, and sends it. Failed sends
// are requeued with an incremented attempt count up to maxAttempts.
type OrderNotifier struct {
	orderRepo    repository.OrderRepository
	customerRepo repository.CustomerRepository
	sender       ConfirmationSender
	queueClient  queue.Client
	maxAttempts  int
	logger       *slog.Logger
}

// NewOrderNotifier creates a new order notifier
func NewOrderNotifier(
	orderRepo repository.OrderRepository,
	customerRepo repository.CustomerRepository,
	sender ConfirmationSender,
	queueClient queue.Client,
	maxAttempts int,
	logger *slog.Logger,
) *OrderNotifier {
	return &OrderNotifier{
		orderRepo:    orderRepo,
		customerRepo: customerRepo,
		sender:       sender,
		queueClient:  queueClient,
		maxAttempts:  maxAttempts,
		logger:       logger,
	}
}

// Process handles a single confirmation job
func (n *OrderNotifier) Process(ctx context.Context, job *models.ConfirmationJob) error {
	order, err := n.orderRepo.GetActiveByID(ctx, job.OrderID)
	if err != nil {
		// The order was deleted before the confirmation went out; drop the
		// job rather than retry.
		if errors.Is(err, models.ErrNotFound) {
			n.logger.Warn("order no longer visible, dropping confirmation",
				slog.Int64("order_id", job.OrderID),
			)
			return nil
		}
		return fmt.Errorf("failed to fetch order: %w", err)
	}

	customer, err := n.customerRepo.GetActiveByID(ctx, order.CustomerID)
	if err != nil {
		if errors.Is(err, models.ErrNotFound) {
			n.logger.Warn("customer no longer visible, dropping confirmation",
				slog.Int64("order_id", job.OrderID),
				slog.Int64("customer_id", order.CustomerID),
			)
			return nil
		}
		return fmt.Errorf("failed to fetch customer: %w", err)
	}

	// Only order metadata is needed for the confirmation text.
	metadata := mapper.OrderToDTOWithoutProducts(order)
	content := fmt.Sprintf(
		"Hi %s, your order #%d totalling %s is being processed. It will ship to: %s",
		customer.FirstName,
		metadata.ID,
		metadata.TotalPrice.StringFixed(2),
		metadata.ShippingAddress,
	)

	if err := n.sender.Send(ctx, customer.Phone.String(), content); err != nil {
		n.logger.Warn("confirmation send failed",
			slog.Int64("order_id", job.OrderID),
			slog.Int("attempts", job.Attempts),
			slog.String("error", err.Error()),
		)
		return n.handleFailure(ctx, job, err)
	}

	n.logger.Info("order confirmation sent",
		slog.Int64("order_id", job.OrderID),
		slog.Int64("customer_id", customer.ID),
	)

	return nil
}

// handleFailure requeues the job with an incremented attempt count, or drops
// it permanently once max attempts are exhausted
func (n *OrderNotifier) handleFailure(ctx context.Context, job *models.ConfirmationJob, sendErr error) error {
	attempts := job.Attempts + 1

	if attempts >= n.maxAttempts {
		n.logger.Error("confirmation permanently failed after max attempts",
			slog.Int64("order_id", job.OrderID),
			slog.Int("attempts", attempts),
			slog.Int("max_attempts", n.maxAttempts),
		)
		return fmt.Errorf("max attempts exceeded: %w", sendErr)
	}

	retry := &models.ConfirmationJob{
		OrderID:  job.OrderID,
		Attempts: attempts,
	}
	if err := n.queueClient.Publish(ctx, retry); err != nil {
		n.logger.Error("failed to requeue confirmation",
			slog.Int64("order_id", job.OrderID),
			slog.String("error", err.Error()),
		)
		return fmt.Errorf("failed to requeue confirmation: %w", err)
	}

	return nil
}
