package commands_test

import (
	"testing"
	"time"

	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var shipDate = time.Date(2026, time.March, 15, 0, 0, 0, 0, time.UTC)

func testParty(t *testing.T, name string) shipment.Party {
	t.Helper()

	party, err := shipment.NewParty(name, "123 Main St, Springfield, IL 62701")
	require.NoError(t, err)
	return party
}

func testItem(t *testing.T, sku string, quantity int, unitWeight float64) shipment.LineItem {
	t.Helper()

	var weight *kernel.Weight
	if unitWeight > 0 {
		w, err := kernel.NewWeightFromFloat(unitWeight)
		require.NoError(t, err)
		weight = &w
	}

	item, err := shipment.NewLineItem(sku, "", quantity, "EA", weight)
	require.NoError(t, err)
	return item
}

func TestNewGenerateShipNoticeCommand(t *testing.T) {
	items := []shipment.LineItem{testItem(t, "SKU-100", 25, 2.0)}

	t.Run("should create valid command", func(t *testing.T) {
		cmd, err := commands.NewGenerateShipNoticeCommand(
			"ORD-001", "PO-4567", shipDate,
			testParty(t, "Acme"), testParty(t, "Retail DC"),
			"UPSN", "GROUND", items, "",
		)

		require.NoError(t, err)
		assert.Equal(t, "ORD-001", cmd.OrderID())
		assert.Equal(t, "PO-4567", cmd.PurchaseOrder())
		assert.Len(t, cmd.Items(), 1)
		assert.Empty(t, cmd.ControlNumber())
	})

	t.Run("should fail without order id", func(t *testing.T) {
		_, err := commands.NewGenerateShipNoticeCommand(
			"", "PO-4567", shipDate,
			testParty(t, "Acme"), testParty(t, "Retail DC"),
			"", "", items, "",
		)

		require.Error(t, err)
	})

	t.Run("should fail with zero ship date", func(t *testing.T) {
		_, err := commands.NewGenerateShipNoticeCommand(
			"ORD-001", "PO-4567", time.Time{},
			testParty(t, "Acme"), testParty(t, "Retail DC"),
			"", "", items, "",
		)

		require.Error(t, err)
	})

	t.Run("should fail with unconstructed party", func(t *testing.T) {
		_, err := commands.NewGenerateShipNoticeCommand(
			"ORD-001", "PO-4567", shipDate,
			shipment.Party{}, testParty(t, "Retail DC"),
			"", "", items, "",
		)

		require.ErrorIs(t, err, shipment.ErrPartyIsNotConstructed)
	})

	t.Run("zero value fails validation", func(t *testing.T) {
		var cmd commands.GenerateShipNoticeCommand

		require.ErrorIs(t, cmd.Validate(), commands.ErrGenerateShipNoticeCommandIsNotConstructed)
	})
}
