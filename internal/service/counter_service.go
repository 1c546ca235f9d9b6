package service

import (
	"context"

	"github.com/carson-networks/ledger-server/internal/storage"
)

// CounterService handles the singleton counter.
type CounterService struct {
	storage *storage.Storage
}

// NewCounterService creates a new CounterService.
func NewCounterService(store *storage.Storage) *CounterService {
	return &CounterService{storage: store}
}

// Count returns the counter's current value.
func (s *CounterService) Count(ctx context.Context) (int64, error) {
	return s.storage.Counter.Value(ctx)
}

// Increment bumps the counter and returns the value from a follow-up read.
// The two statements are deliberately not wrapped in a transaction: the
// stored count stays correct under concurrency even though the returned
// value can be stale relative to a racing mutation.
func (s *CounterService) Increment(ctx context.Context) (int64, error) {
	if err := s.storage.Counter.Add(ctx, 1); err != nil {
		return 0, err
	}
	return s.storage.Counter.Value(ctx)
}

// Decrement lowers the counter and returns the value from a follow-up read.
// There is no floor at zero.
func (s *CounterService) Decrement(ctx context.Context) (int64, error) {
	if err := s.storage.Counter.Add(ctx, -1); err != nil {
		return 0, err
	}
	return s.storage.Counter.Value(ctx)
}
