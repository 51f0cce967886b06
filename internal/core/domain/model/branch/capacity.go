package branch

import (
	"fmt"

	"laundry/internal/core/domain/model/kernel"
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

const maxOrdersPerDayLimit = 100_000

// Capacity is the daily intake limit of a branch. It is replaced as a whole.
type Capacity struct {
	maxOrdersPerDay int
	maxWeightPerDay decimal.Decimal
}

// NewCapacity validates both limits. A branch may be configured with zero to
// stop accepting orders without deactivating it.
func NewCapacity(maxOrdersPerDay int, maxWeightKg decimal.Decimal) (Capacity, error) {
	if maxOrdersPerDay < 0 || maxOrdersPerDay > maxOrdersPerDayLimit {
		return Capacity{}, errs.NewValueIsOutOfRangeError("maxOrdersPerDay", maxOrdersPerDay, 0, maxOrdersPerDayLimit)
	}
	if maxWeightKg.IsNegative() {
		return Capacity{}, errs.NewValueIsOutOfRangeError("maxWeightPerDay", maxWeightKg.String(), 0, "unbounded")
	}
	return Capacity{maxOrdersPerDay: maxOrdersPerDay, maxWeightPerDay: maxWeightKg.Round(3)}, nil
}

func (c Capacity) MaxOrdersPerDay() int {
	return c.maxOrdersPerDay
}

func (c Capacity) MaxWeightPerDay() decimal.Decimal {
	return c.maxWeightPerDay
}

// Load is what a branch has already accepted for one operating day.
type Load struct {
	Orders int
	Weight kernel.Weight
}

// Admits reports whether one more order of weight w fits: the order count
// must be below the maximum and the cumulative weight including w must not
// exceed it. The reason explains a refusal.
func (c Capacity) Admits(load Load, w kernel.Weight) (bool, string) {
	if load.Orders >= c.maxOrdersPerDay {
		return false, fmt.Sprintf("%d/%d orders today", load.Orders, c.maxOrdersPerDay)
	}
	total := load.Weight.Add(w)
	if total.Kg().GreaterThan(c.maxWeightPerDay) {
		return false, fmt.Sprintf("%s of %s kg today", total, c.maxWeightPerDay.StringFixed(3))
	}
	return true, ""
}
