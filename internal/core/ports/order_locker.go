package ports

import (
	"context"
	"errors"

	"laundry/internal/core/domain/model/kernel"
)

// ErrLockNotAcquired is returned when another request holds the order lock
// for longer than the locker is willing to wait.
var ErrLockNotAcquired = errors.New("order lock not acquired")

// Unlock releases a lock obtained from OrderLocker. Releasing a lock that
// already expired is not an error.
type Unlock func(ctx context.Context) error

// OrderLocker serializes workflow operations on the same order. Operations on
// different orders never wait on each other.
type OrderLocker interface {
	Lock(ctx context.Context, orderID kernel.UUID) (Unlock, error)
}
