package branch

import (
	"errors"
	"strings"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"
)

var ErrBranchIsNotConstructed = errors.New("Branch must be created via NewBranch")

// Branch is a laundry location processing orders within daily limits.
type Branch struct {
	id            kernel.UUID
	name          string
	capacity      Capacity
	schedule      Schedule
	isActive      bool
	isConstructed bool
}

func NewBranch(id kernel.UUID, name string, capacity Capacity, schedule Schedule) (*Branch, error) {
	b := &Branch{
		capacity:      capacity,
		schedule:      schedule,
		isActive:      true,
		isConstructed: true,
	}
	if err := errors.Join(b.setID(id), b.setName(name)); err != nil {
		return nil, err
	}
	return b, nil
}

// RestoreBranch rebuilds a branch from storage.
func RestoreBranch(id kernel.UUID, name string, capacity Capacity, schedule Schedule, isActive bool) (*Branch, error) {
	b, err := NewBranch(id, name, capacity, schedule)
	if err != nil {
		return nil, err
	}
	b.isActive = isActive
	return b, nil
}

func (b *Branch) Validate() error {
	if b == nil || !b.isConstructed {
		return ErrBranchIsNotConstructed
	}
	return nil
}

func (b *Branch) ID() kernel.UUID {
	return b.id
}

func (b *Branch) Name() string {
	return b.name
}

func (b *Branch) Capacity() Capacity {
	return b.capacity
}

func (b *Branch) Schedule() Schedule {
	return b.schedule
}

func (b *Branch) IsActive() bool {
	return b.isActive
}

func (b *Branch) ReplaceCapacity(c Capacity) {
	b.capacity = c
}

func (b *Branch) ReplaceSchedule(s Schedule) {
	b.schedule = s
}

func (b *Branch) Activate() {
	b.isActive = true
}

func (b *Branch) Deactivate() {
	b.isActive = false
}

func (b *Branch) setID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	b.id = id
	return nil
}

func (b *Branch) setName(name string) error {
	name = strings.TrimSpace(name)
	if name == "" {
		return errs.NewValueIsRequiredError("name")
	}
	b.name = name
	return nil
}
