package services

import (
	"time"

	"laundry/internal/core/domain/model/branch"
	"laundry/internal/core/domain/model/order"
	"laundry/internal/pkg/errs"
)

// CapacityOracle decides whether a branch can accept one more order on its
// current operating day.
type CapacityOracle struct{}

func NewCapacityOracle() CapacityOracle {
	return CapacityOracle{}
}

// Window is the local operating day of b containing now, in UTC bounds. Only
// orders of b created inside this window count towards its load.
func (CapacityOracle) Window(b *branch.Branch, now time.Time) (time.Time, time.Time) {
	start, end := b.Schedule().DayWindow(now)
	return start.UTC(), end.UTC()
}

// Check answers for order o given the load already accepted in Window.
//
// Returns:
//   - BranchFull when the day is closed (non-operating day or holiday), the
//     order count reached the maximum, or the cumulative weight including o
//     would exceed the maximum
func (CapacityOracle) Check(b *branch.Branch, load branch.Load, o *order.Order, now time.Time) error {
	if !b.Schedule().IsOpenOn(now) {
		return errs.NewBranchFullError(b.Name(), "branch is closed today")
	}
	if ok, reason := b.Capacity().Admits(load, o.Weight()); !ok {
		return errs.NewBranchFullError(b.Name(), reason)
	}
	return nil
}
