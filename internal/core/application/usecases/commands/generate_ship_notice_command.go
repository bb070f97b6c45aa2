package commands

import (
	"errors"
	"time"

	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/pkg/errs"
	"shipnotice/internal/pkg/guard"
)

var ErrGenerateShipNoticeCommandIsNotConstructed = errors.New(
	"GenerateShipNoticeCommand must be created via NewGenerateShipNoticeCommand constructor",
)

// GenerateShipNoticeCommand represents a request to turn one normalized order
// into a ship-notice document: pack its line items into cartons, assign
// container identifiers, and render the document.
//
// The line item list may be empty at command level; an empty order is
// rejected by the packer before any carton or output is produced. The control
// number is optional; when empty the assembler derives one from the
// generation timestamp.
type GenerateShipNoticeCommand struct { //nolint:recvcheck //using for validation
	orderID       string
	purchaseOrder string
	shipDate      time.Time
	shipFrom      shipment.Party
	shipTo        shipment.Party
	carrierCode   string
	serviceLevel  string
	items         []shipment.LineItem
	controlNumber string

	guard guard.ConstructorGuard
}

// NewGenerateShipNoticeCommand creates a validated command.
// carrierCode, serviceLevel, and controlNumber are optional and may be empty.
func NewGenerateShipNoticeCommand(
	orderID string,
	purchaseOrder string,
	shipDate time.Time,
	shipFrom shipment.Party,
	shipTo shipment.Party,
	carrierCode string,
	serviceLevel string,
	items []shipment.LineItem,
	controlNumber string,
) (GenerateShipNoticeCommand, error) {
	command := GenerateShipNoticeCommand{
		carrierCode:   carrierCode,
		serviceLevel:  serviceLevel,
		controlNumber: controlNumber,
		guard:         guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		command.setOrderID(orderID),
		command.setPurchaseOrder(purchaseOrder),
		command.setShipDate(shipDate),
		command.setShipFrom(shipFrom),
		command.setShipTo(shipTo),
		command.setItems(items),
	); err != nil {
		return GenerateShipNoticeCommand{}, err
	}

	return command, nil
}

// Validate ensures the command was created through the constructor.
func (c GenerateShipNoticeCommand) Validate() error {
	return c.guard.Validate(ErrGenerateShipNoticeCommandIsNotConstructed)
}

// OrderID returns the order identifier the shipment is derived from.
func (c GenerateShipNoticeCommand) OrderID() string {
	return c.orderID
}

// PurchaseOrder returns the customer purchase order number.
func (c GenerateShipNoticeCommand) PurchaseOrder() string {
	return c.purchaseOrder
}

// ShipDate returns the scheduled ship date.
func (c GenerateShipNoticeCommand) ShipDate() time.Time {
	return c.shipDate
}

// ShipFrom returns the origin party.
func (c GenerateShipNoticeCommand) ShipFrom() shipment.Party {
	return c.shipFrom
}

// ShipTo returns the destination party.
func (c GenerateShipNoticeCommand) ShipTo() shipment.Party {
	return c.shipTo
}

// CarrierCode returns the optional SCAC carrier code.
func (c GenerateShipNoticeCommand) CarrierCode() string {
	return c.carrierCode
}

// ServiceLevel returns the optional service level description.
func (c GenerateShipNoticeCommand) ServiceLevel() string {
	return c.serviceLevel
}

// Items returns the ordered line items to pack.
func (c GenerateShipNoticeCommand) Items() []shipment.LineItem {
	return c.items
}

// ControlNumber returns the externally supplied control number, or empty when
// the assembler should derive one.
func (c GenerateShipNoticeCommand) ControlNumber() string {
	return c.controlNumber
}

func (c *GenerateShipNoticeCommand) setOrderID(orderID string) error {
	if orderID == "" {
		return errs.NewValueIsRequiredError("order id")
	}

	c.orderID = orderID
	return nil
}

func (c *GenerateShipNoticeCommand) setPurchaseOrder(purchaseOrder string) error {
	if purchaseOrder == "" {
		return errs.NewValueIsRequiredError("purchase order")
	}

	c.purchaseOrder = purchaseOrder
	return nil
}

func (c *GenerateShipNoticeCommand) setShipDate(shipDate time.Time) error {
	if shipDate.IsZero() {
		return errs.NewValueIsRequiredError("ship date")
	}

	c.shipDate = shipDate
	return nil
}

func (c *GenerateShipNoticeCommand) setShipFrom(shipFrom shipment.Party) error {
	if err := shipFrom.Validate(); err != nil {
		return err
	}

	c.shipFrom = shipFrom
	return nil
}

func (c *GenerateShipNoticeCommand) setShipTo(shipTo shipment.Party) error {
	if err := shipTo.Validate(); err != nil {
		return err
	}

	c.shipTo = shipTo
	return nil
}

func (c *GenerateShipNoticeCommand) setItems(items []shipment.LineItem) error {
	for _, item := range items {
		if err := item.Validate(); err != nil {
			return err
		}
	}

	c.items = items
	return nil
}
