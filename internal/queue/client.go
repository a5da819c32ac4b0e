package queue

import (
	"context"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

// Client defines the interface for queue operations
type Client interface {
	// Publish sends a confirmation job to the queue
	Publish(ctx context.Context, job *models.ConfirmationJob) error

	// Consume receives jobs from the queue and processes them with the
	// handler; concurrency controls how many jobs run simultaneously
	Consume(ctx context.Context, handler JobHandler, concurrency int) error

	// Close closes the queue connection
	Close() error

	// Health checks if the queue is healthy
	Health(ctx context.Context) error
}

// JobHandler is a function that processes a confirmation job
type JobHandler func(ctx context.Context, job *models.ConfirmationJob) error
