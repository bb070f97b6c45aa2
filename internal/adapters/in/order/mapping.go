package order

import (
	"strings"
	"time"

	"shipnotice/internal/core/application/usecases/commands"
	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"
)

// ToCommand maps the parsed request into a ship notice generation command.
// The control number is left empty so the handler derives one from the
// generation time.
func (r *Request) ToCommand() (commands.GenerateShipNoticeCommand, error) {
	shipDate, err := r.ShipDateTime()
	if err != nil {
		return commands.GenerateShipNoticeCommand{}, err
	}
	shipFrom, err := r.ShipFromParty()
	if err != nil {
		return commands.GenerateShipNoticeCommand{}, err
	}
	shipTo, err := r.ShipToParty()
	if err != nil {
		return commands.GenerateShipNoticeCommand{}, err
	}
	items, err := r.LineItems()
	if err != nil {
		return commands.GenerateShipNoticeCommand{}, err
	}

	return commands.NewGenerateShipNoticeCommand(
		r.OrderID,
		r.PurchaseOrder,
		shipDate,
		shipFrom,
		shipTo,
		r.CarrierCode,
		r.ServiceLevel,
		items,
		"",
	)
}

// ShipDateTime parses the request's ship date at midnight UTC.
func (r *Request) ShipDateTime() (time.Time, error) {
	return time.Parse("2006-01-02", r.ShipDate)
}

// LineItems maps the request lines into domain line items, in request order.
func (r *Request) LineItems() ([]shipment.LineItem, error) {
	items := make([]shipment.LineItem, 0, len(r.Items))
	for _, line := range r.Items {
		var unitWeight *kernel.Weight
		if line.UnitWeight != nil {
			weight, err := kernel.NewWeightFromFloat(*line.UnitWeight)
			if err != nil {
				return nil, err
			}
			unitWeight = &weight
		}

		item, err := shipment.NewLineItem(line.SKU, line.Description, line.Quantity, line.UOM, unitWeight)
		if err != nil {
			return nil, err
		}
		items = append(items, item)
	}
	return items, nil
}

// ShipFromParty maps the origin address into a domain party.
func (r *Request) ShipFromParty() (shipment.Party, error) {
	return shipment.NewParty(r.ShipFrom.Name, r.ShipFrom.Format())
}

// ShipToParty maps the destination address into a domain party.
func (r *Request) ShipToParty() (shipment.Party, error) {
	return shipment.NewParty(r.ShipTo.Name, r.ShipTo.Format())
}

// Format renders the address as the free-text form carried through to the
// document: "line1[, line2], city, ST zip".
func (a Address) Format() string {
	parts := []string{a.AddressLine1}
	if a.AddressLine2 != "" {
		parts = append(parts, a.AddressLine2)
	}
	parts = append(parts, a.City+", "+a.State+" "+a.PostalCode)
	return strings.Join(parts, ", ")
}
