package worker

import (
	"context"
	"fmt"
	"math/rand"
	"time"
)

// ConfirmationSender defines the interface for delivering order
// confirmations
type ConfirmationSender interface {
	Send(ctx context.Context, phone, content string) error
}

// simulatedSender stands in for a real SMS gateway during development
type simulatedSender struct {
	successRate float64
	minDelay    time.Duration
	maxDelay    time.Duration
}

// NewSimulatedSender creates a sender that succeeds with the given
// probability (0.0 to 1.0, default 0.92) after a short simulated delay
func NewSimulatedSender(successRate float64) ConfirmationSender {
	if successRate <= 0 || successRate > 1.0 {
		successRate = 0.92
	}

	return &simulatedSender{
		successRate: successRate,
		minDelay:    50 * time.Millisecond,
		maxDelay:    200 * time.Millisecond,
	}
}

// Send simulates delivering a confirmation
func (s *simulatedSender) Send(ctx context.Context, phone, content string) error {
	delay := s.minDelay + time.Duration(rand.Int63n(int64(s.maxDelay-s.minDelay)))

	select {
	case <-time.After(delay):
	case <-ctx.Done():
		return ctx.Err()
	}

	if rand.Float64() > s.successRate {
		return fmt.Errorf("simulated sender failed: simulated network error")
	}

	return nil
}
