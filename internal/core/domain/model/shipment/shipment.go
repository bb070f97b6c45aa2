package shipment

import (
	"errors"
	"fmt"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/pkg/errs"
)

var (
	// ErrShipmentIsNotConstructed is returned when a Shipment was not created
	// through the NewShipment factory method.
	ErrShipmentIsNotConstructed = errors.New("Shipment must be created via NewShipment constructor")

	// ErrShipmentHasNoOrders is returned when a document is requested for a
	// shipment without any orders.
	ErrShipmentHasNoOrders = errors.New("shipment must have at least one order")

	// ErrShipmentHasNoCartons is returned when a document is requested for a
	// shipment without any cartons.
	ErrShipmentHasNoCartons = errors.New("shipment must have at least one carton")
)

// Shipment is the aggregate root for one outbound shipment. It owns its
// Orders and Cartons; orders reference cartons by label.
//
// Invariants:
//   - TotalCartons always equals the number of owned cartons
//   - Total weight is the sum of carton weights, undefined when no carton
//     carries a known weight
type Shipment struct {
	shipmentID   string
	shipDate     time.Time
	shipFrom     Party
	shipTo       Party
	carrierCode  string
	serviceLevel string
	orders       []Order
	cartons      []*Carton

	totalWeight    kernel.Weight
	hasTotalWeight bool
	totalCartons   int

	isConstructed bool
}

// NewShipment creates a validated Shipment and derives its totals.
// carrierCode and serviceLevel are optional and may be empty.
func NewShipment(
	shipmentID string,
	shipDate time.Time,
	shipFrom Party,
	shipTo Party,
	carrierCode string,
	serviceLevel string,
	orders []Order,
	cartons []*Carton,
) (*Shipment, error) {
	s := &Shipment{
		carrierCode:   carrierCode,
		serviceLevel:  serviceLevel,
		isConstructed: true,
	}

	if err := errors.Join(
		s.setShipmentID(shipmentID),
		s.setShipDate(shipDate),
		s.setShipFrom(shipFrom),
		s.setShipTo(shipTo),
		s.setOrders(orders),
		s.setCartons(cartons),
	); err != nil {
		return nil, err
	}

	s.calculateTotals()
	return s, nil
}

// DeriveShipmentID builds the shipment identifier used for an order's
// shipment, matching the "SHIP-<order id>" convention of the upstream system.
func DeriveShipmentID(orderID string) string {
	return fmt.Sprintf("SHIP-%s", orderID)
}

// Validate ensures the Shipment instance was properly constructed through NewShipment.
func (s *Shipment) Validate() error {
	if s == nil || !s.isConstructed {
		return ErrShipmentIsNotConstructed
	}

	return nil
}

// ShipmentID returns the unique shipment identifier.
func (s *Shipment) ShipmentID() string {
	return s.shipmentID
}

// ShipDate returns the actual or scheduled ship date.
func (s *Shipment) ShipDate() time.Time {
	return s.shipDate
}

// ShipFrom returns the origin party.
func (s *Shipment) ShipFrom() Party {
	return s.shipFrom
}

// ShipTo returns the destination party.
func (s *Shipment) ShipTo() Party {
	return s.shipTo
}

// CarrierCode returns the SCAC carrier code, possibly empty.
func (s *Shipment) CarrierCode() string {
	return s.carrierCode
}

// ServiceLevel returns the carrier service level, possibly empty.
func (s *Shipment) ServiceLevel() string {
	return s.serviceLevel
}

// Orders returns the orders in this shipment.
func (s *Shipment) Orders() []Order {
	return s.orders
}

// Cartons returns all cartons in this shipment, in packing order.
func (s *Shipment) Cartons() []*Carton {
	return s.cartons
}

// TotalCartons returns the number of cartons in the shipment.
func (s *Shipment) TotalCartons() int {
	return s.totalCartons
}

// TotalWeight returns the shipment's total weight and whether it is defined.
// The total is undefined when no carton carries a known weight.
func (s *Shipment) TotalWeight() (kernel.Weight, bool) {
	return s.totalWeight, s.hasTotalWeight
}

// FindCarton resolves a carton by its label. Returns nil and false when no
// carton with that label exists in the shipment.
func (s *Shipment) FindCarton(cartonID string) (*Carton, bool) {
	for _, carton := range s.cartons {
		if carton.ID() == cartonID {
			return carton, true
		}
	}
	return nil, false
}

// ValidateForNotice checks that the shipment is complete enough to produce a
// ship notice: at least one order, at least one carton, and every carton has
// items and an assigned container identifier. It reports the first offending
// carton by label. Nothing is emitted for a shipment that fails this check.
func (s *Shipment) ValidateForNotice() error {
	if err := s.Validate(); err != nil {
		return err
	}

	if len(s.orders) == 0 {
		return ErrShipmentHasNoOrders
	}
	if len(s.cartons) == 0 {
		return ErrShipmentHasNoCartons
	}

	for _, carton := range s.cartons {
		if len(carton.Items()) == 0 {
			return errs.NewValueIsRequiredErrorWithCause("carton items",
				fmt.Errorf("carton %s has no items", carton.ID()))
		}
		if carton.ContainerID() == nil {
			return errs.NewValueIsRequiredErrorWithCause("container identifier",
				fmt.Errorf("carton %s has no container identifier", carton.ID()))
		}
	}

	return nil
}

// calculateTotals derives carton count and total weight from the owned cartons.
func (s *Shipment) calculateTotals() {
	s.totalCartons = len(s.cartons)

	var total kernel.Weight
	known := false
	for _, carton := range s.cartons {
		if carton.HasKnownWeight() {
			known = true
			total = total.Add(carton.Weight())
		}
	}

	s.totalWeight = total
	s.hasTotalWeight = known
}

func (s *Shipment) setShipmentID(shipmentID string) error {
	if shipmentID == "" {
		return errs.NewValueIsRequiredError("shipment id")
	}

	s.shipmentID = shipmentID
	return nil
}

func (s *Shipment) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("ship date")
	}

	s.shipDate = shipDate
	return nil
}

func (s *Shipment) setShipFrom(shipFrom Party) error {
	if err := shipFrom.Validate(); err != nil {
		return err
	}

	s.shipFrom = shipFrom
	return nil
}

func (s *Shipment) setShipTo(shipTo Party) error {
	if err := shipTo.Validate(); err != nil {
		return err
	}

	s.shipTo = shipTo
	return nil
}

func (s *Shipment) setOrders(orders []Order) error {
	for _, order := range orders {
		if err := order.Validate(); err != nil {
			return err
		}
	}

	s.orders = orders
	return nil
}

func (s *Shipment) setCartons(cartons []*Carton) error {
	for _, carton := range cartons {
		if err := carton.Validate(); err != nil {
			return err
		}
	}

	s.cartons = cartons
	return nil
}
