package kernel_test

import (
	"testing"

	"shipnotice/internal/core/domain/model/kernel"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewWeight(t *testing.T) {
	t.Run("should create weight from non-negative decimal", func(t *testing.T) {
		w, err := kernel.NewWeight(decimal.NewFromFloat(12.5))

		require.NoError(t, err)
		assert.Equal(t, "12.50", w.Fixed())
	})

	t.Run("should create zero weight", func(t *testing.T) {
		w, err := kernel.NewWeightFromFloat(0)

		require.NoError(t, err)
		assert.True(t, w.IsZero())
	})

	t.Run("should reject negative weight", func(t *testing.T) {
		_, err := kernel.NewWeightFromFloat(-0.01)

		require.Error(t, err)
		assert.Contains(t, err.Error(), "weight must not be negative")
	})

	t.Run("zero value is a valid zero weight", func(t *testing.T) {
		var w kernel.Weight

		assert.True(t, w.IsZero())
		assert.Equal(t, "0.00", w.Fixed())
	})
}

func TestWeight_Arithmetic(t *testing.T) {
	half, _ := kernel.NewWeightFromFloat(0.5)
	two, _ := kernel.NewWeightFromFloat(2.0)

	t.Run("Add accumulates exactly", func(t *testing.T) {
		sum := half.Add(half).Add(half)

		assert.Equal(t, "1.50", sum.Fixed())
	})

	t.Run("MulQuantity scales by unit count", func(t *testing.T) {
		assert.Equal(t, "50.00", two.MulQuantity(25).Fixed())
	})

	t.Run("no float drift over many additions", func(t *testing.T) {
		tenth, _ := kernel.NewWeightFromFloat(0.1)
		var sum kernel.Weight
		for i := 0; i < 10; i++ {
			sum = sum.Add(tenth)
		}

		one, _ := kernel.NewWeightFromFloat(1.0)
		assert.True(t, sum.IsEqual(one))
	})

	t.Run("DivUnits floors whole units", func(t *testing.T) {
		cap50, _ := kernel.NewWeightFromFloat(50.0)
		unit, _ := kernel.NewWeightFromFloat(1.2)

		assert.Equal(t, 41, cap50.DivUnits(unit))
	})

	t.Run("DivUnits by zero unit weight returns 0", func(t *testing.T) {
		cap50, _ := kernel.NewWeightFromFloat(50.0)
		var zero kernel.Weight

		assert.Equal(t, 0, cap50.DivUnits(zero))
	})

	t.Run("Sub may go negative for capacity math", func(t *testing.T) {
		remaining := half.Sub(two)

		assert.False(t, remaining.IsPositive())
		assert.Equal(t, "-1.50", remaining.Fixed())
	})
}

func TestWeight_Comparisons(t *testing.T) {
	light, _ := kernel.NewWeightFromFloat(1.0)
	heavy, _ := kernel.NewWeightFromFloat(3.0)

	assert.True(t, heavy.GreaterThan(light))
	assert.False(t, light.GreaterThan(heavy))
	assert.True(t, light.IsPositive())
	assert.True(t, light.IsEqual(light))
	assert.False(t, light.IsEqual(heavy))
}
