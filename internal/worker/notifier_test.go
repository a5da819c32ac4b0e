package worker

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"
	"testing"

	"github.com/shopspring/decimal"

	"github.com/jefferson-dev/orders-backend/internal/models"
	"github.com/jefferson-dev/orders-backend/internal/queue"
)

type stubOrderRepository struct {
	orders map[int64]*models.Order
}

func (s *stubOrderRepository) Create(ctx context.Context, order *models.Order) error {
	return errors.New("not implemented")
}

func (s *stubOrderRepository) GetActiveByID(ctx context.Context, id int64) (*models.Order, error) {
	o, ok := s.orders[id]
	if !ok || o.Status == models.OrderStatusDeleted {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Order not found for id: %d", id))
	}
	return o, nil
}

func (s *stubOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	return errors.New("not implemented")
}

type stubCustomerRepository struct {
	customers map[int64]*models.Customer
}

func (s *stubCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	return errors.New("not implemented")
}

func (s *stubCustomerRepository) GetActiveByID(ctx context.Context, id int64) (*models.Customer, error) {
	c, ok := s.customers[id]
	if !ok || c.Deleted {
		return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for id: %d", id))
	}
	return c, nil
}

func (s *stubCustomerRepository) GetActiveByEmail(ctx context.Context, email string) (*models.Customer, error) {
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for email: %s", email))
}

func (s *stubCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	return errors.New("not implemented")
}

type recordingSender struct {
	sendErr error
	phones  []string
	bodies  []string
}

func (r *recordingSender) Send(ctx context.Context, phone, content string) error {
	if r.sendErr != nil {
		return r.sendErr
	}
	r.phones = append(r.phones, phone)
	r.bodies = append(r.bodies, content)
	return nil
}

type recordingQueue struct {
	published  []*models.ConfirmationJob
	publishErr error
}

func (r *recordingQueue) Publish(ctx context.Context, job *models.ConfirmationJob) error {
	if r.publishErr != nil {
		return r.publishErr
	}
	r.published = append(r.published, job)
	return nil
}

func (r *recordingQueue) Consume(ctx context.Context, handler queue.JobHandler, concurrency int) error {
	return nil
}

func (r *recordingQueue) Close() error { return nil }

func (r *recordingQueue) Health(ctx context.Context) error { return nil }

type notifierFixture struct {
	notifier *OrderNotifier
	sender   *recordingSender
	queue    *recordingQueue
}

func newNotifierFixture(t *testing.T, maxAttempts int) *notifierFixture {
	t.Helper()

	phone, err := models.NewPhoneNumber("+1234567890")
	if err != nil {
		t.Fatalf("NewPhoneNumber failed: %v", err)
	}

	customer := models.NewCustomer("Jane", "Doe", "jane@x.com", phone)
	customer.ID = 5

	orders := &stubOrderRepository{orders: map[int64]*models.Order{
		1: {
			ID:              1,
			CustomerID:      customer.ID,
			ShippingAddress: "1 Main St",
			TotalPrice:      decimal.NewFromInt(30),
			Status:          models.OrderStatusProcessing,
		},
	}}
	customers := &stubCustomerRepository{customers: map[int64]*models.Customer{
		customer.ID: customer,
	}}

	f := &notifierFixture{
		sender: &recordingSender{},
		queue:  &recordingQueue{},
	}
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	f.notifier = NewOrderNotifier(orders, customers, f.sender, f.queue, maxAttempts, logger)
	return f
}

func TestOrderNotifier_Process(t *testing.T) {
	f := newNotifierFixture(t, 3)

	err := f.notifier.Process(context.Background(), &models.ConfirmationJob{OrderID: 1})
	if err != nil {
		t.Fatalf("Process failed: %v", err)
	}

	if len(f.sender.phones) != 1 {
		t.Fatalf("expected exactly one send, got %d", len(f.sender.phones))
	}
	if f.sender.phones[0] != "+1234567890" {
		t.Errorf("sent to %q, want customer's phone", f.sender.phones[0])
	}

	body := f.sender.bodies[0]
	for _, want := range []string{"Jane", "#1", "30.00", "1 Main St"} {
		if !strings.Contains(body, want) {
			t.Errorf("message %q missing %q", body, want)
		}
	}

	if len(f.queue.published) != 0 {
		t.Error("successful send must not requeue")
	}
}

func TestOrderNotifier_Process_RequeuesOnFailure(t *testing.T) {
	f := newNotifierFixture(t, 3)
	f.sender.sendErr = errors.New("gateway timeout")

	err := f.notifier.Process(context.Background(), &models.ConfirmationJob{OrderID: 1, Attempts: 1})
	if err != nil {
		t.Fatalf("Process should swallow the failure and requeue, got %v", err)
	}

	if len(f.queue.published) != 1 {
		t.Fatalf("expected 1 requeued job, got %d", len(f.queue.published))
	}
	retry := f.queue.published[0]
	if retry.OrderID != 1 {
		t.Errorf("requeued order id = %d, want 1", retry.OrderID)
	}
	if retry.Attempts != 2 {
		t.Errorf("requeued attempts = %d, want 2", retry.Attempts)
	}
}

func TestOrderNotifier_Process_MaxAttemptsExhausted(t *testing.T) {
	f := newNotifierFixture(t, 3)
	f.sender.sendErr = errors.New("gateway timeout")

	err := f.notifier.Process(context.Background(), &models.ConfirmationJob{OrderID: 1, Attempts: 2})
	if err == nil {
		t.Fatal("expected a terminal error once max attempts are exhausted")
	}
	if len(f.queue.published) != 0 {
		t.Error("exhausted job must not be requeued")
	}
}

func TestOrderNotifier_Process_DropsInvisibleOrder(t *testing.T) {
	f := newNotifierFixture(t, 3)

	err := f.notifier.Process(context.Background(), &models.ConfirmationJob{OrderID: 99})
	if err != nil {
		t.Fatalf("missing order should be dropped silently, got %v", err)
	}
	if len(f.sender.phones) != 0 {
		t.Error("nothing should be sent for a missing order")
	}
	if len(f.queue.published) != 0 {
		t.Error("nothing should be requeued for a missing order")
	}
}

func TestOrderNotifier_Process_DropsWhenCustomerDeleted(t *testing.T) {
	f := newNotifierFixture(t, 3)
	f.notifier.customerRepo.(*stubCustomerRepository).customers[5].Deleted = true

	err := f.notifier.Process(context.Background(), &models.ConfirmationJob{OrderID: 1})
	if err != nil {
		t.Fatalf("deleted customer should drop the job silently, got %v", err)
	}
	if len(f.sender.phones) != 0 {
		t.Error("nothing should be sent when the customer is deleted")
	}
}
