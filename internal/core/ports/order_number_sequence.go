package ports

import (
	"context"
	"time"
)

// OrderNumberSequence hands out the per-day ordinal of order numbers.
// Next must be called inside the transaction that adds the order, so a rolled
// back placement does not leave a gap visible to other transactions.
type OrderNumberSequence interface {
	Next(ctx context.Context, day time.Time) (int64, error)
}
