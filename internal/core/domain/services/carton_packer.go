package services

import (
	"errors"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"
)

// ErrNoLineItems is returned when packing is requested for an order that
// carries no line items. An empty order can never produce a valid document,
// so it is rejected before any carton is created.
var ErrNoLineItems = errors.New("order has no line items to pack")

// CartonPacker is a domain service that splits an ordered list of line items
// into an ordered list of cartons. Every input unit lands in exactly one
// carton, and cartons come out in packing order with 1-based contiguous
// sequence numbers.
//
// Two packing modes, chosen by the configuration:
//   - Single-SKU mode: each line item is carved into its own run of cartons,
//     one SKU per carton.
//   - Greedy-mixed mode (default): items fill a running carton across SKU
//     boundaries; the carton is closed when neither the unit cap nor the
//     weight cap admits another unit.
//
// Business rules:
//   - The unit cap always holds.
//   - The weight cap holds with one exception: a single unit is never split,
//     so one unit heavier than the cap still ships alone in its own carton.
//   - Items with no known unit weight are unconstrained by the weight cap.
//
// Container identifiers are not assigned here; that is a separate later pass
// over the packed cartons.
type CartonPacker struct{}

// NewCartonPacker creates a new CartonPacker instance.
func NewCartonPacker() CartonPacker {
	return CartonPacker{}
}

// Pack splits items into cartons under the given configuration.
// It fails with ErrNoLineItems when items is empty, and propagates any
// configuration or construction error.
func (p CartonPacker) Pack(items []shipment.LineItem, config PackingConfig) ([]*shipment.Carton, error) {
	if err := config.Validate(); err != nil {
		return nil, err
	}
	if len(items) == 0 {
		return nil, ErrNoLineItems
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return nil, err
		}
	}

	if config.SingleSKUCartons() {
		return p.packGrouped(items, config)
	}
	return p.packMixed(items, config)
}

// packGrouped carves each line item independently into single-SKU cartons.
func (p CartonPacker) packGrouped(items []shipment.LineItem, config PackingConfig) ([]*shipment.Carton, error) {
	var cartons []*shipment.Carton
	sequence := 1

	for _, item := range items {
		unitsPerCarton := config.MaxUnitsPerCarton()
		if byWeight, constrained := unitsAdmittedByWeight(item, config.MaxWeightPerCarton()); constrained {
			// One unit minimum: a single unit cannot be split, even when it
			// alone exceeds the weight cap.
			if byWeight < 1 {
				byWeight = 1
			}
			if byWeight < unitsPerCarton {
				unitsPerCarton = byWeight
			}
		}

		remaining := item.Quantity()
		for remaining > 0 {
			take := min(remaining, unitsPerCarton)

			chunk, err := item.WithQuantity(take)
			if err != nil {
				return nil, err
			}

			carton, err := shipment.NewCarton(
				config.CartonID(sequence), sequence, []shipment.LineItem{chunk}, config.DefaultDimensions())
			if err != nil {
				return nil, err
			}

			cartons = append(cartons, carton)
			sequence++
			remaining -= take
		}
	}

	return cartons, nil
}

// packMixed fills a running carton across SKU boundaries, closing it whenever
// neither cap admits another unit.
func (p CartonPacker) packMixed(items []shipment.LineItem, config PackingConfig) ([]*shipment.Carton, error) {
	var (
		cartons       []*shipment.Carton
		currentItems  []shipment.LineItem
		currentUnits  int
		currentWeight kernel.Weight
		sequence      = 1
	)

	closeCurrent := func() error {
		if len(currentItems) == 0 {
			return nil
		}

		carton, err := shipment.NewCarton(
			config.CartonID(sequence), sequence, currentItems, config.DefaultDimensions())
		if err != nil {
			return err
		}

		cartons = append(cartons, carton)
		sequence++
		currentItems = nil
		currentUnits = 0
		currentWeight = kernel.Weight{}
		return nil
	}

	for _, item := range items {
		remaining := item.Quantity()

		for remaining > 0 {
			admissible := min(remaining, config.MaxUnitsPerCarton()-currentUnits)

			if weightCap := config.MaxWeightPerCarton(); weightCap != nil {
				if unitWeight, ok := item.UnitWeight(); ok && unitWeight.IsPositive() {
					byWeight := weightCap.Sub(currentWeight).DivUnits(unitWeight)
					if byWeight < admissible {
						admissible = byWeight
					}
					// An over-cap unit still has to go somewhere: into a
					// fresh carton of its own.
					if admissible < 1 && len(currentItems) == 0 {
						admissible = 1
					}
				}
			}

			if admissible <= 0 {
				if err := closeCurrent(); err != nil {
					return nil, err
				}
				continue
			}

			chunk, err := item.WithQuantity(admissible)
			if err != nil {
				return nil, err
			}

			currentItems = append(currentItems, chunk)
			currentUnits += admissible
			if unitWeight, ok := item.UnitWeight(); ok {
				currentWeight = currentWeight.Add(unitWeight.MulQuantity(admissible))
			}
			remaining -= admissible
		}
	}

	if err := closeCurrent(); err != nil {
		return nil, err
	}

	return cartons, nil
}

// unitsAdmittedByWeight returns how many units of item fit under the weight
// cap, and whether the cap applies to this item at all. The cap does not
// apply when it is unset or the item has no known positive unit weight.
func unitsAdmittedByWeight(item shipment.LineItem, weightCap *kernel.Weight) (int, bool) {
	if weightCap == nil {
		return 0, false
	}
	unitWeight, ok := item.UnitWeight()
	if !ok || !unitWeight.IsPositive() {
		return 0, false
	}
	return weightCap.DivUnits(unitWeight), true
}
