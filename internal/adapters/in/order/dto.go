package order

// Request is the external order intake contract: what clients submit as JSON
// before it is normalized into domain objects. Field presence, types, and
// ranges are enforced twice, once against the embedded OpenAPI schema and
// once through the struct tags, before any domain constructor runs.
type Request struct {
	OrderID       string `json:"order_id" validate:"required"`
	PurchaseOrder string `json:"purchase_order" validate:"required"`
	ShipDate      string `json:"ship_date" validate:"required,datetime=2006-01-02"`

	ShipFrom Address `json:"ship_from" validate:"required"`
	ShipTo   Address `json:"ship_to" validate:"required"`

	CarrierCode  string `json:"carrier_code,omitempty"`
	ServiceLevel string `json:"service_level,omitempty"`

	Items []LineItem `json:"items" validate:"required,min=1,dive"`

	CustomerAccount string `json:"customer_account,omitempty"`
	Notes           string `json:"notes,omitempty"`
}

// Address is one shipping address of the intake contract.
type Address struct {
	Name         string `json:"name" validate:"required"`
	AddressLine1 string `json:"address_line1" validate:"required"`
	AddressLine2 string `json:"address_line2,omitempty"`
	City         string `json:"city" validate:"required"`
	State        string `json:"state" validate:"required,len=2"`
	PostalCode   string `json:"postal_code" validate:"required"`
	Country      string `json:"country,omitempty"`
}

// LineItem is one order line of the intake contract. Line numbers must be
// unique across the order; that cross-field rule is checked by the Parser.
type LineItem struct {
	LineNumber  int      `json:"line_number" validate:"required,gte=1"`
	SKU         string   `json:"sku" validate:"required"`
	Description string   `json:"description" validate:"required"`
	Quantity    int      `json:"quantity" validate:"required,gte=1"`
	UOM         string   `json:"uom,omitempty"`
	UnitWeight  *float64 `json:"unit_weight,omitempty" validate:"omitempty,gte=0"`
}
