package services_test

import (
	"testing"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/services"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func weightOf(t *testing.T, value float64) *kernel.Weight {
	t.Helper()

	w, err := kernel.NewWeightFromFloat(value)
	require.NoError(t, err)
	return &w
}

func lineItem(t *testing.T, sku string, quantity int, unitWeight *kernel.Weight) shipment.LineItem {
	t.Helper()

	item, err := shipment.NewLineItem(sku, "", quantity, "", unitWeight)
	require.NoError(t, err)
	return item
}

func packingConfig(t *testing.T, maxUnits int, maxWeight *kernel.Weight, singleSKU bool) services.PackingConfig {
	t.Helper()

	config, err := services.NewPackingConfig(maxUnits, maxWeight, singleSKU, shipment.Dimensions{}, "")
	require.NoError(t, err)
	return config
}

func totalUnits(cartons []*shipment.Carton) int {
	total := 0
	for _, carton := range cartons {
		total += carton.TotalUnits()
	}
	return total
}

func TestNewPackingConfig(t *testing.T) {
	t.Run("should reject non-positive unit cap", func(t *testing.T) {
		_, err := services.NewPackingConfig(0, nil, false, shipment.Dimensions{}, "")

		require.Error(t, err)
	})

	t.Run("should reject non-positive weight cap", func(t *testing.T) {
		_, err := services.NewPackingConfig(10, weightOf(t, 0), false, shipment.Dimensions{}, "")

		require.Error(t, err)
	})

	t.Run("should build zero-padded carton labels", func(t *testing.T) {
		config := packingConfig(t, 10, nil, false)

		assert.Equal(t, "CTN-0001", config.CartonID(1))
		assert.Equal(t, "CTN-0042", config.CartonID(42))
		assert.Equal(t, "CTN-12345", config.CartonID(12345))
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var config services.PackingConfig

		require.ErrorIs(t, config.Validate(), services.ErrPackingConfigIsNotConstructed)
	})
}

func TestCartonPacker_Pack(t *testing.T) {
	packer := services.NewCartonPacker()

	t.Run("should fail with no line items", func(t *testing.T) {
		_, err := packer.Pack(nil, packingConfig(t, 50, nil, false))

		require.ErrorIs(t, err, services.ErrNoLineItems)
	})

	t.Run("should fail with unconstructed config", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 1, nil)}

		_, err := packer.Pack(items, services.PackingConfig{})

		require.ErrorIs(t, err, services.ErrPackingConfigIsNotConstructed)
	})

	t.Run("25 units under a 50-unit cap fill one carton", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 25, weightOf(t, 2.0))}

		cartons, err := packer.Pack(items, packingConfig(t, 50, nil, false))

		require.NoError(t, err)
		require.Len(t, cartons, 1)
		assert.Equal(t, 25, cartons[0].TotalUnits())
		assert.Equal(t, "50.00", cartons[0].ComputedWeight().Fixed())
		assert.Equal(t, "CTN-0001", cartons[0].ID())
	})

	t.Run("1000 units under a 100-unit cap fill ten full cartons", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 1000, nil)}

		cartons, err := packer.Pack(items, packingConfig(t, 100, nil, false))

		require.NoError(t, err)
		require.Len(t, cartons, 10)
		for i, carton := range cartons {
			assert.Equal(t, 100, carton.TotalUnits())
			assert.Equal(t, i+1, carton.SequenceNumber())
		}
	})

	t.Run("conserves every input unit", func(t *testing.T) {
		items := []shipment.LineItem{
			lineItem(t, "SKU-100", 37, weightOf(t, 1.5)),
			lineItem(t, "SKU-200", 11, nil),
			lineItem(t, "SKU-300", 52, weightOf(t, 0.25)),
		}

		cartons, err := packer.Pack(items, packingConfig(t, 24, nil, false))

		require.NoError(t, err)
		assert.Equal(t, 100, totalUnits(cartons))
		for _, carton := range cartons {
			assert.LessOrEqual(t, carton.TotalUnits(), 24)
		}
	})
}

func TestCartonPacker_PackMixed(t *testing.T) {
	packer := services.NewCartonPacker()

	t.Run("mixes SKUs within one carton", func(t *testing.T) {
		items := []shipment.LineItem{
			lineItem(t, "SKU-100", 3, nil),
			lineItem(t, "SKU-200", 4, nil),
		}

		cartons, err := packer.Pack(items, packingConfig(t, 10, nil, false))

		require.NoError(t, err)
		require.Len(t, cartons, 1)
		require.Len(t, cartons[0].Items(), 2)
		assert.Equal(t, 7, cartons[0].TotalUnits())
	})

	t.Run("weight cap closes a carton mid-item", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 10, weightOf(t, 3.0))}

		cartons, err := packer.Pack(items, packingConfig(t, 50, weightOf(t, 10.0), false))

		require.NoError(t, err)
		// floor(10.0 / 3.0) = 3 units per carton.
		require.Len(t, cartons, 4)
		assert.Equal(t, 3, cartons[0].TotalUnits())
		assert.Equal(t, 3, cartons[1].TotalUnits())
		assert.Equal(t, 3, cartons[2].TotalUnits())
		assert.Equal(t, 1, cartons[3].TotalUnits())
		for _, carton := range cartons {
			assert.False(t, carton.ComputedWeight().GreaterThan(*weightOf(t, 10.0)))
		}
	})

	t.Run("a single over-cap unit ships alone", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 2, weightOf(t, 25.0))}

		cartons, err := packer.Pack(items, packingConfig(t, 50, weightOf(t, 10.0), false))

		require.NoError(t, err)
		require.Len(t, cartons, 2)
		assert.Equal(t, 1, cartons[0].TotalUnits())
		assert.Equal(t, 1, cartons[1].TotalUnits())
		assert.Equal(t, "25.00", cartons[0].ComputedWeight().Fixed())
	})

	t.Run("weightless items ignore the weight cap", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 30, nil)}

		cartons, err := packer.Pack(items, packingConfig(t, 50, weightOf(t, 1.0), false))

		require.NoError(t, err)
		require.Len(t, cartons, 1)
		assert.Equal(t, 30, cartons[0].TotalUnits())
	})
}

func TestCartonPacker_PackGrouped(t *testing.T) {
	packer := services.NewCartonPacker()

	t.Run("keeps each SKU in its own cartons", func(t *testing.T) {
		items := []shipment.LineItem{
			lineItem(t, "SKU-100", 3, nil),
			lineItem(t, "SKU-200", 4, nil),
		}

		cartons, err := packer.Pack(items, packingConfig(t, 10, nil, true))

		require.NoError(t, err)
		require.Len(t, cartons, 2)
		require.Len(t, cartons[0].Items(), 1)
		assert.Equal(t, "SKU-100", cartons[0].Items()[0].SKU())
		assert.Equal(t, "SKU-200", cartons[1].Items()[0].SKU())
	})

	t.Run("applies both caps per SKU", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 10, weightOf(t, 3.0))}

		cartons, err := packer.Pack(items, packingConfig(t, 50, weightOf(t, 10.0), true))

		require.NoError(t, err)
		// floor(10.0 / 3.0) = 3 units per carton.
		require.Len(t, cartons, 4)
		assert.Equal(t, 1, cartons[3].TotalUnits())
	})

	t.Run("a single over-cap unit still gets a carton", func(t *testing.T) {
		items := []shipment.LineItem{lineItem(t, "SKU-100", 3, weightOf(t, 25.0))}

		cartons, err := packer.Pack(items, packingConfig(t, 50, weightOf(t, 10.0), true))

		require.NoError(t, err)
		require.Len(t, cartons, 3)
		for _, carton := range cartons {
			assert.Equal(t, 1, carton.TotalUnits())
		}
	})

	t.Run("sequence numbers are contiguous across SKUs", func(t *testing.T) {
		items := []shipment.LineItem{
			lineItem(t, "SKU-100", 25, nil),
			lineItem(t, "SKU-200", 25, nil),
		}

		cartons, err := packer.Pack(items, packingConfig(t, 10, nil, true))

		require.NoError(t, err)
		require.Len(t, cartons, 6)
		for i, carton := range cartons {
			assert.Equal(t, i+1, carton.SequenceNumber())
		}
	})
}
