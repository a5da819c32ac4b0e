package queue

import (
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/jefferson-dev/orders-backend/internal/models"
)

// redisClient implements Client using a Redis list
type redisClient struct {
	client    *redis.Client
	queueName string
	logger    *slog.Logger
}

// RedisConfig holds Redis configuration
type RedisConfig struct {
	URL       string
	QueueName string
}

// NewRedisClient creates a new Redis queue client
func NewRedisClient(cfg RedisConfig, logger *slog.Logger) (Client, error) {
	opts, err := redis.ParseURL(cfg.URL)
	if err != nil {
		return nil, fmt.Errorf("failed to parse Redis URL: %w", err)
	}

	client := redis.NewClient(opts)

	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	if err := client.Ping(ctx).Err(); err != nil {
		return nil, fmt.Errorf("failed to connect to Redis: %w", err)
	}

	logger.Info("connected to Redis",
		slog.String("addr", opts.Addr),
		slog.String("queue", cfg.QueueName),
	)

	return &redisClient{
		client:    client,
		queueName: cfg.QueueName,
		logger:    logger,
	}, nil
}

// Publish pushes a confirmation job onto the queue
func (c *redisClient) Publish(ctx context.Context, job *models.ConfirmationJob) error {
	payload, err := json.Marshal(job)
	if err != nil {
		return fmt.Errorf("failed to marshal job: %w", err)
	}

	if err := c.client.LPush(ctx, c.queueName, payload).Err(); err != nil {
		return fmt.Errorf("failed to publish job: %w", err)
	}

	return nil
}

// Consume pops jobs from the queue and dispatches them to the handler with
// bounded concurrency. Blocks until ctx is cancelled.
func (c *redisClient) Consume(ctx context.Context, handler JobHandler, concurrency int) error {
	if concurrency < 1 {
		concurrency = 1
	}
	semaphore := make(chan struct{}, concurrency)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		default:
		}

		result, err := c.client.BRPop(ctx, 5*time.Second, c.queueName).Result()
		if err == redis.Nil {
			continue
		}
		if err != nil {
			if ctx.Err() != nil {
				return ctx.Err()
			}
			c.logger.Error("failed to pop job from queue",
				slog.String("error", err.Error()),
			)
			time.Sleep(time.Second)
			continue
		}

		// BRPop returns [key, value]
		if len(result) < 2 {
			continue
		}

		var job models.ConfirmationJob
		if err := json.Unmarshal([]byte(result[1]), &job); err != nil {
			c.logger.Error("failed to unmarshal job, dropping",
				slog.String("payload", result[1]),
				slog.String("error", err.Error()),
			)
			continue
		}

		semaphore <- struct{}{}

		go func(job models.ConfirmationJob) {
			defer func() { <-semaphore }()

			if err := handler(ctx, &job); err != nil {
				c.logger.Error("handler failed to process job",
					slog.Int64("order_id", job.OrderID),
					slog.String("error", err.Error()),
				)
			}
		}(job)
	}
}

// Close closes the Redis connection
func (c *redisClient) Close() error {
	c.logger.Info("closing Redis connection")
	return c.client.Close()
}

// Health checks if Redis is healthy
func (c *redisClient) Health(ctx context.Context) error {
	if err := c.client.Ping(ctx).Err(); err != nil {
		return fmt.Errorf("Redis health check failed: %w", err)
	}
	return nil
}
