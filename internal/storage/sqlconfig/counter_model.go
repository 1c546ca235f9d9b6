package sqlconfig

import "context"

// counterRowID is the fixed key of the singleton counter row, seeded by the
// counter migration.
const counterRowID = 1

// ICounterTable defines the interface for counter storage operations.
type ICounterTable interface {
	Value(ctx context.Context) (int64, error)
	Add(ctx context.Context, delta int64) error
}
