package shipment

import (
	"errors"
	"fmt"
	"strings"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// ErrLineItemIsNotConstructed is returned when a LineItem was not created
// through the NewLineItem factory method.
var ErrLineItemIsNotConstructed = errors.New("LineItem must be created via NewLineItem constructor")

// DefaultUnitOfMeasure is used when a line item does not specify one.
const DefaultUnitOfMeasure = "EA"

// LineItem is an immutable value object representing a quantity of one SKU.
// The packer may split a line item across cartons; each split copy keeps the
// original SKU, description, and unit weight and carries only the quantity
// allocated to that carton.
//
// Invariants:
//   - SKU is non-empty (surrounding whitespace is trimmed)
//   - Quantity is at least 1
//   - Unit weight, when known, is non-negative (enforced by kernel.Weight)
type LineItem struct { //nolint:recvcheck //using for validation
	sku         string
	description string
	quantity    int
	uom         string
	unitWeight  *kernel.Weight

	guard guard.ConstructorGuard
}

// NewLineItem creates a validated LineItem. An empty uom defaults to
// DefaultUnitOfMeasure; unitWeight may be nil when the weight is unknown.
func NewLineItem(sku, description string, quantity int, uom string, unitWeight *kernel.Weight) (LineItem, error) {
	item := LineItem{
		description: description,
		unitWeight:  unitWeight,
		guard:       guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		item.setSKU(sku),
		item.setQuantity(quantity),
		item.setUOM(uom),
	); err != nil {
		return LineItem{}, err
	}

	return item, nil
}

// Validate ensures the line item was created through the constructor.
func (i LineItem) Validate() error {
	return i.guard.Validate(ErrLineItemIsNotConstructed)
}

// SKU returns the stock keeping unit.
func (i LineItem) SKU() string {
	return i.sku
}

// Description returns the human-readable item description.
func (i LineItem) Description() string {
	return i.description
}

// Quantity returns the unit count of this line item.
func (i LineItem) Quantity() int {
	return i.quantity
}

// UOM returns the unit of measure code.
func (i LineItem) UOM() string {
	return i.uom
}

// UnitWeight returns the per-unit weight and whether it is known.
func (i LineItem) UnitWeight() (kernel.Weight, bool) {
	if i.unitWeight == nil {
		return kernel.Weight{}, false
	}
	return *i.unitWeight, true
}

// TotalWeight returns quantity × unit weight, and whether a weight is known.
func (i LineItem) TotalWeight() (kernel.Weight, bool) {
	unit, ok := i.UnitWeight()
	if !ok {
		return kernel.Weight{}, false
	}
	return unit.MulQuantity(i.quantity), true
}

// WithQuantity returns a copy of this line item carrying the given quantity.
// Used by the packer to split a line item across cartons.
func (i LineItem) WithQuantity(quantity int) (LineItem, error) {
	if err := i.Validate(); err != nil {
		return LineItem{}, err
	}
	return NewLineItem(i.sku, i.description, quantity, i.uom, i.unitWeight)
}

func (i *LineItem) setSKU(sku string) error {
	sku = strings.TrimSpace(sku)
	if sku == "" {
		return errs.NewValueIsRequiredError("sku")
	}

	i.sku = sku
	return nil
}

func (i *LineItem) setQuantity(quantity int) error {
	if quantity < 1 {
		return errs.NewValueIsInvalidErrorWithCause("quantity",
			fmt.Errorf("%d is not at least 1", quantity))
	}

	i.quantity = quantity
	return nil
}

func (i *LineItem) setUOM(uom string) error {
	if uom == "" {
		uom = DefaultUnitOfMeasure
	}

	i.uom = uom
	return nil
}
