// Package shipment contains the domain model for a packed outbound shipment:
// the Shipment aggregate root, its Orders and Cartons, the LineItem value
// object, and the Party descriptor for ship-from/ship-to locations.
//
// The lifecycle is: the carton packer produces Cartons from an order's line
// items, container identifiers are stamped onto the cartons, and the whole
// structure is assembled into a Shipment that the document builders walk.
package shipment
