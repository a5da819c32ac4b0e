package service

import (
	"context"
	"fmt"
	"strings"

	"github.com/jefferson-dev/orders-backend/internal/models"
	"github.com/jefferson-dev/orders-backend/internal/queue"
)

// mockCustomerRepository is an in-memory CustomerRepository for testing
type mockCustomerRepository struct {
	customers []*models.Customer
	createErr error
}

func (m *mockCustomerRepository) Create(ctx context.Context, customer *models.Customer) error {
	if m.createErr != nil {
		return m.createErr
	}
	customer.ID = int64(len(m.customers) + 1)
	m.customers = append(m.customers, customer)
	return nil
}

func (m *mockCustomerRepository) GetActiveByID(ctx context.Context, id int64) (*models.Customer, error) {
	for _, c := range m.customers {
		if c.ID == id && !c.Deleted {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for id: %d", id))
}

func (m *mockCustomerRepository) GetActiveByEmail(ctx context.Context, email string) (*models.Customer, error) {
	for _, c := range m.customers {
		if strings.EqualFold(c.Email, email) && !c.Deleted {
			return c, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for email: %s", email))
}

func (m *mockCustomerRepository) Update(ctx context.Context, customer *models.Customer) error {
	for i, c := range m.customers {
		if c.ID == customer.ID {
			m.customers[i] = customer
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("Customer not found for id: %d", customer.ID))
}

// mockProductRepository is an in-memory ProductRepository for testing
type mockProductRepository struct {
	products []*models.Product
}

func (m *mockProductRepository) Create(ctx context.Context, product *models.Product) error {
	product.ID = int64(len(m.products) + 1)
	m.products = append(m.products, product)
	return nil
}

func (m *mockProductRepository) GetActiveByID(ctx context.Context, id int64) (*models.Product, error) {
	for _, p := range m.products {
		if p.ID == id && !p.Deleted {
			return p, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Product not found for id: %d", id))
}

func (m *mockProductRepository) ListActiveByIDs(ctx context.Context, ids []int64) ([]*models.Product, error) {
	resolved := []*models.Product{}
	for _, id := range ids {
		for _, p := range m.products {
			if p.ID == id && !p.Deleted {
				resolved = append(resolved, p)
			}
		}
	}
	return resolved, nil
}

func (m *mockProductRepository) ListActive(ctx context.Context, page models.PageRequest) ([]*models.Product, int64, error) {
	active := []*models.Product{}
	for _, p := range m.products {
		if !p.Deleted {
			active = append(active, p)
		}
	}

	totalCount := int64(len(active))

	page.Normalize()
	start := page.Offset()
	if start > len(active) {
		start = len(active)
	}
	end := start + page.PageSize
	if end > len(active) {
		end = len(active)
	}

	return active[start:end], totalCount, nil
}

func (m *mockProductRepository) Update(ctx context.Context, product *models.Product) error {
	for i, p := range m.products {
		if p.ID == product.ID {
			m.products[i] = product
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("Product not found for id: %d", product.ID))
}

// mockOrderRepository is an in-memory OrderRepository for testing
type mockOrderRepository struct {
	orders    []*models.Order
	createErr error
}

func (m *mockOrderRepository) Create(ctx context.Context, order *models.Order) error {
	if m.createErr != nil {
		return m.createErr
	}
	order.ID = int64(len(m.orders) + 1)
	m.orders = append(m.orders, order)
	return nil
}

func (m *mockOrderRepository) GetActiveByID(ctx context.Context, id int64) (*models.Order, error) {
	for _, o := range m.orders {
		if o.ID == id && o.Status != models.OrderStatusDeleted {
			// Mirror the store: association reads filter deleted products
			copied := *o
			copied.Products = o.VisibleProducts()
			return &copied, nil
		}
	}
	return nil, models.ErrNotFoundWithMsg(fmt.Sprintf("Order not found for id: %d", id))
}

func (m *mockOrderRepository) UpdateStatus(ctx context.Context, id int64, status string) error {
	for _, o := range m.orders {
		if o.ID == id {
			o.Status = status
			return nil
		}
	}
	return models.ErrNotFoundWithMsg(fmt.Sprintf("Order not found for id: %d", id))
}

// mockQueueClient records published jobs
type mockQueueClient struct {
	published  []*models.ConfirmationJob
	publishErr error
}

func (m *mockQueueClient) Publish(ctx context.Context, job *models.ConfirmationJob) error {
	if m.publishErr != nil {
		return m.publishErr
	}
	m.published = append(m.published, job)
	return nil
}

func (m *mockQueueClient) Consume(ctx context.Context, handler queue.JobHandler, concurrency int) error {
	return nil
}

func (m *mockQueueClient) Close() error { return nil }

func (m *mockQueueClient) Health(ctx context.Context) error { return nil }
