package shipment

import (
	"errors"
	"fmt"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/pkg/errs"
)

var (
	// ErrCartonIsNotConstructed is returned when a Carton was not created
	// through the NewCarton factory method.
	ErrCartonIsNotConstructed = errors.New("Carton must be created via NewCarton constructor")

	// ErrContainerIDAlreadyAssigned is returned when a carton that already
	// carries a container identifier is assigned a second one. Identifiers are
	// assigned exactly once, after packing.
	ErrContainerIDAlreadyAssigned = errors.New("carton already has a container identifier assigned")
)

// DefaultPackagingCode is the packaging type reported for cartons.
const DefaultPackagingCode = "CTN"

// Dimensions holds the physical size of a carton in inches. Dimensions are
// carried through to labels and reporting; they do not participate in packing.
type Dimensions struct {
	Length float64
	Width  float64
	Height float64
}

// Carton is an entity representing one packed physical carton in a shipment.
//
// Invariants:
//   - Has at least one line item, each with quantity ≥ 1
//   - Sequence numbers are 1-based and contiguous within a shipment (the
//     packer assigns them in packing order)
//   - The container identifier is assigned at most once, after packing
//
// Weight is either set explicitly or derived as the sum of quantity × unit
// weight across the carton's items, with unknown unit weights contributing 0.
type Carton struct {
	id             string
	sequenceNumber int
	items          []LineItem
	containerID    *sscc.ContainerID
	weight         *kernel.Weight
	dimensions     Dimensions
	packagingCode  string

	isConstructed bool
}

// NewCarton creates a validated Carton. The id is the internal carton label
// (e.g. "CTN-0001"), distinct from the container identifier assigned later.
func NewCarton(id string, sequenceNumber int, items []LineItem, dimensions Dimensions) (*Carton, error) {
	carton := &Carton{
		dimensions:    dimensions,
		packagingCode: DefaultPackagingCode,
		isConstructed: true,
	}

	if err := errors.Join(
		carton.setID(id),
		carton.setSequenceNumber(sequenceNumber),
		carton.setItems(items),
	); err != nil {
		return nil, err
	}

	return carton, nil
}

// Validate ensures the Carton instance was properly constructed through NewCarton.
func (c *Carton) Validate() error {
	if c == nil || !c.isConstructed {
		return ErrCartonIsNotConstructed
	}

	return nil
}

// ID returns the internal carton label.
func (c *Carton) ID() string {
	return c.id
}

// SequenceNumber returns the 1-based position of this carton in the shipment.
func (c *Carton) SequenceNumber() int {
	return c.sequenceNumber
}

// Items returns the line items packed in this carton.
func (c *Carton) Items() []LineItem {
	return c.items
}

// ContainerID returns the assigned container identifier, or nil before assignment.
func (c *Carton) ContainerID() *sscc.ContainerID {
	return c.containerID
}

// Dimensions returns the carton's physical dimensions.
func (c *Carton) Dimensions() Dimensions {
	return c.dimensions
}

// PackagingCode returns the packaging type code reported in the document.
func (c *Carton) PackagingCode() string {
	return c.packagingCode
}

// AssignContainerID stores the container identifier on the carton.
// Assignment happens exactly once; a second call fails with
// ErrContainerIDAlreadyAssigned.
func (c *Carton) AssignContainerID(id sscc.ContainerID) error {
	if err := id.Validate(); err != nil {
		return err
	}
	if c.containerID != nil {
		return ErrContainerIDAlreadyAssigned
	}

	c.containerID = &id
	return nil
}

// SetWeight sets an explicit carton weight, overriding the derived value.
func (c *Carton) SetWeight(weight kernel.Weight) {
	c.weight = &weight
}

// Weight returns the carton's weight: the explicit weight if one was set,
// otherwise the value computed from its items.
func (c *Carton) Weight() kernel.Weight {
	if c.weight != nil {
		return *c.weight
	}
	return c.ComputedWeight()
}

// ComputedWeight sums quantity × unit weight across the carton's items.
// Items with unknown unit weight contribute nothing.
func (c *Carton) ComputedWeight() kernel.Weight {
	var total kernel.Weight
	for _, item := range c.items {
		if itemWeight, ok := item.TotalWeight(); ok {
			total = total.Add(itemWeight)
		}
	}
	return total
}

// HasKnownWeight reports whether any item in the carton carries a unit weight
// or an explicit weight was set.
func (c *Carton) HasKnownWeight() bool {
	if c.weight != nil {
		return true
	}
	for _, item := range c.items {
		if _, ok := item.UnitWeight(); ok {
			return true
		}
	}
	return false
}

// TotalUnits returns the unit count across all items in the carton.
func (c *Carton) TotalUnits() int {
	total := 0
	for _, item := range c.items {
		total += item.Quantity()
	}
	return total
}

func (c *Carton) setID(id string) error {
	if id == "" {
		return errs.NewValueIsRequiredError("carton id")
	}

	c.id = id
	return nil
}

func (c *Carton) setSequenceNumber(sequenceNumber int) error {
	if sequenceNumber < 1 {
		return errs.NewValueIsInvalidErrorWithCause("sequence number",
			fmt.Errorf("%d is not at least 1", sequenceNumber))
	}

	c.sequenceNumber = sequenceNumber
	return nil
}

func (c *Carton) setItems(items []LineItem) error {
	if len(items) == 0 {
		return errs.NewValueIsRequiredError("carton items")
	}
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
