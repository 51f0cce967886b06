package kernel

import (
	"laundry/internal/pkg/errs"

	"github.com/shopspring/decimal"
)

var (
	maxOrderWeightKg = decimal.NewFromInt(500)
	maxOrderAmount   = decimal.NewFromInt(10_000_000)
)

// Weight is a non-negative mass in kilograms with gram precision.
type Weight struct {
	kg decimal.Decimal
}

// NewWeight rounds kg to three decimals and bounds a single order's load to
// 0..500 kg.
func NewWeight(kg decimal.Decimal) (Weight, error) {
	kg = kg.Round(3)
	if kg.IsNegative() || kg.GreaterThan(maxOrderWeightKg) {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), 0, maxOrderWeightKg.String())
	}
	return Weight{kg: kg}, nil
}

// WeightFromKg is NewWeight for float inputs coming from transport layers.
func WeightFromKg(kg float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(kg))
}

// LoadWeight builds an aggregated weight such as a branch's daily total. Only
// negative values are rejected.
func LoadWeight(kg decimal.Decimal) (Weight, error) {
	if kg.IsNegative() {
		return Weight{}, errs.NewValueIsOutOfRangeError("weight", kg.String(), 0, "unbounded")
	}
	return Weight{kg: kg.Round(3)}, nil
}

// ZeroWeight is the neutral element for summing daily load.
func ZeroWeight() Weight {
	return Weight{kg: decimal.Zero}
}

func (w Weight) Kg() decimal.Decimal {
	return w.kg
}

// Add sums two weights without the per-order upper bound.
func (w Weight) Add(other Weight) Weight {
	return Weight{kg: w.kg.Add(other.kg)}
}

func (w Weight) GreaterThan(other Weight) bool {
	return w.kg.GreaterThan(other.kg)
}

func (w Weight) String() string {
	return w.kg.StringFixed(3) + " kg"
}

// Money is a non-negative amount in minor-unit precision (two decimals).
type Money struct {
	amount decimal.Decimal
}

func NewMoney(amount decimal.Decimal) (Money, error) {
	amount = amount.Round(2)
	if amount.IsNegative() || amount.GreaterThan(maxOrderAmount) {
		return Money{}, errs.NewValueIsOutOfRangeError("amount", amount.String(), 0, maxOrderAmount.String())
	}
	return Money{amount: amount}, nil
}

func (m Money) Amount() decimal.Decimal {
	return m.amount
}

func (m Money) String() string {
	return m.amount.StringFixed(2)
}
