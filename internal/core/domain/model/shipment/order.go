package shipment

import (
	"errors"

	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

// ErrOrderIsNotConstructed is returned when an Order was not created through
// the NewOrder factory method.
var ErrOrderIsNotConstructed = errors.New("Order must be created via NewOrder constructor")

// Order represents one customer order within a shipment. An order references
// the cartons that carry its goods by carton label; the cartons themselves are
// owned by the Shipment.
type Order struct { //nolint:recvcheck //using for validation
	orderID       string
	purchaseOrder string
	cartonIDs     []string

	guard guard.ConstructorGuard
}

// NewOrder creates a validated Order. cartonIDs lists, in packing order, the
// labels of the cartons belonging to this order.
func NewOrder(orderID, purchaseOrder string, cartonIDs []string) (Order, error) {
	order := Order{
		cartonIDs: cartonIDs,
		guard:     guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		order.setOrderID(orderID),
		order.setPurchaseOrder(purchaseOrder),
	); err != nil {
		return Order{}, err
	}

	return order, nil
}

// Validate ensures the order was created through the constructor.
func (o Order) Validate() error {
	return o.guard.Validate(ErrOrderIsNotConstructed)
}

// OrderID returns the unique order identifier.
func (o Order) OrderID() string {
	return o.orderID
}

// PurchaseOrder returns the customer purchase order number.
func (o Order) PurchaseOrder() string {
	return o.purchaseOrder
}

// CartonIDs returns the labels of the cartons belonging to this order.
func (o Order) CartonIDs() []string {
	return o.cartonIDs
}

func (o *Order) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	o.orderID = orderID
	return nil
}

func (o *Order) setPurchaseOrder(purchaseOrder string) error {
	if purchaseOrder == "" {
		return errs.NewValueIsRequiredError("purchase order")
	}

	o.purchaseOrder = purchaseOrder
	return nil
}
