package locking

import (
	"context"
	"sync"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/core/ports"
)

var _ ports.OrderLocker = (*KeyedMutex)(nil)

// KeyedMutex serializes operations per order inside one process. Entries are
// reference counted and dropped when the last holder or waiter leaves.
type KeyedMutex struct {
	mu    sync.Mutex
	locks map[kernel.UUID]*entry
}

type entry struct {
	// sem has capacity 1; holding the token means holding the lock.
	sem  chan struct{}
	refs int
}

func NewKeyedMutex() *KeyedMutex {
	return &KeyedMutex{locks: make(map[kernel.UUID]*entry)}
}

// Lock waits until the order is free or ctx is done.
func (m *KeyedMutex) Lock(ctx context.Context, orderID kernel.UUID) (ports.Unlock, error) {
	e := m.acquireEntry(orderID)

	select {
	case e.sem <- struct{}{}:
	case <-ctx.Done():
		m.releaseEntry(orderID, e)
		return nil, ctx.Err()
	}

	var once sync.Once
	return func(context.Context) error {
		once.Do(func() {
			<-e.sem
			m.releaseEntry(orderID, e)
		})
		return nil
	}, nil
}

// Len reports how many orders currently have holders or waiters.
func (m *KeyedMutex) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return len(m.locks)
}

func (m *KeyedMutex) acquireEntry(orderID kernel.UUID) *entry {
	m.mu.Lock()
	defer m.mu.Unlock()

	e, ok := m.locks[orderID]
	if !ok {
		e = &entry{sem: make(chan struct{}, 1)}
		m.locks[orderID] = e
	}
	e.refs++
	return e
}

func (m *KeyedMutex) releaseEntry(orderID kernel.UUID, e *entry) {
	m.mu.Lock()
	defer m.mu.Unlock()

	e.refs--
	if e.refs == 0 {
		delete(m.locks, orderID)
	}
}
