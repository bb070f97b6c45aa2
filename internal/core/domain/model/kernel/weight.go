package kernel

import (
	"github.com/shopspring/decimal"

	"shipnotice/internal/pkg/errs"
)

// Weight is an immutable value object for shipment weights in pounds.
// It wraps a decimal value so carton accumulation and cap checks are exact and
// the two-decimal rendering required by the document grammar never suffers
// binary float drift.
//
// Unlike most value objects in this codebase, Weight has no constructor guard:
// the zero value is a meaningful weight of 0.00 lb and is valid everywhere a
// Weight is accepted.
//
// Example:
//
//	unit, _ := kernel.NewWeightFromFloat(2.5)
//	total := unit.MulQuantity(4)
//	fmt.Println(total.Fixed()) // "10.00"
type Weight struct {
	value decimal.Decimal
}

// NewWeight creates a Weight from a decimal value.
// Negative weights are rejected.
func NewWeight(value decimal.Decimal) (Weight, error) {
	if value.IsNegative() {
		return Weight{}, errs.NewValueIsInvalidError("weight must not be negative")
	}
	return Weight{value: value}, nil
}

// NewWeightFromFloat creates a Weight from a float64 value.
// Negative weights are rejected.
func NewWeightFromFloat(value float64) (Weight, error) {
	return NewWeight(decimal.NewFromFloat(value))
}

// Value returns the underlying decimal value.
func (w Weight) Value() decimal.Decimal {
	return w.value
}

// Add returns the sum of two weights.
func (w Weight) Add(other Weight) Weight {
	return Weight{value: w.value.Add(other.value)}
}

// Sub returns the difference of two weights. The result may be negative
// (e.g. remaining capacity computations); callers decide how to treat it.
func (w Weight) Sub(other Weight) Weight {
	return Weight{value: w.value.Sub(other.value)}
}

// MulQuantity returns this weight multiplied by a unit count.
func (w Weight) MulQuantity(quantity int) Weight {
	return Weight{value: w.value.Mul(decimal.NewFromInt(int64(quantity)))}
}

// DivUnits returns how many whole units of unitWeight fit into this weight,
// i.e. floor(w / unitWeight). Division by a zero unit weight returns 0.
func (w Weight) DivUnits(unitWeight Weight) int {
	if unitWeight.value.IsZero() {
		return 0
	}
	return int(w.value.Div(unitWeight.value).Floor().IntPart())
}

// GreaterThan reports whether w exceeds other.
func (w Weight) GreaterThan(other Weight) bool {
	return w.value.GreaterThan(other.value)
}

// IsPositive reports whether w is strictly greater than zero.
func (w Weight) IsPositive() bool {
	return w.value.IsPositive()
}

// IsZero reports whether w is exactly zero.
func (w Weight) IsZero() bool {
	return w.value.IsZero()
}

// IsEqual compares two weights by numeric value.
func (w Weight) IsEqual(other Weight) bool {
	return w.value.Equal(other.value)
}

// Fixed renders the weight with exactly two decimal places, the form every
// weight-bearing document element uses.
func (w Weight) Fixed() string {
	return w.value.StringFixed(2)
}

// String implements fmt.Stringer.
func (w Weight) String() string {
	return w.Fixed()
}
