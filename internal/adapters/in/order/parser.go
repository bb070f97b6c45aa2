package order

import (
	"context"
	_ "embed"
	"encoding/json"
	"fmt"
	"strings"

	"github.com/getkin/kin-openapi/openapi3"
	"github.com/go-playground/validator/v10"

	"shipnotice/internal/pkg/errs"
)

//go:embed openapi.json
var intakeSpec []byte

// Parser turns a raw JSON order payload into a validated Request.
//
// Validation runs in three passes, cheapest rejection first:
//  1. the embedded OpenAPI schema (shape: field presence, types, ranges)
//  2. struct-tag validation on the decoded Request
//  3. cross-field rules the schema cannot express (unique line numbers)
//
// After parsing, defaults are normalized in place: country US, unit of
// measure EA, state codes uppercased, SKUs trimmed.
type Parser struct {
	validate *validator.Validate
	schema   *openapi3.Schema
}

// NewParser creates a Parser with the embedded intake schema loaded.
func NewParser() (*Parser, error) {
	loader := openapi3.NewLoader()
	doc, err := loader.LoadFromData(intakeSpec)
	if err != nil {
		return nil, fmt.Errorf("load intake schema: %w", err)
	}
	if err := doc.Validate(context.Background()); err != nil {
		return nil, fmt.Errorf("validate intake schema: %w", err)
	}

	schemaRef, ok := doc.Components.Schemas["OrderRequest"]
	if !ok {
		return nil, errs.NewObjectNotFoundError("intake schema", "OrderRequest")
	}

	return &Parser{
		validate: validator.New(),
		schema:   schemaRef.Value,
	}, nil
}

// Parse validates and decodes one order payload.
func (p *Parser) Parse(payload []byte) (*Request, error) {
	var raw any
	if err := json.Unmarshal(payload, &raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order payload", err)
	}

	if err := p.schema.VisitJSON(raw); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order payload", err)
	}

	var request Request
	if err := json.Unmarshal(payload, &request); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order payload", err)
	}

	if err := p.validate.Struct(&request); err != nil {
		return nil, errs.NewValueIsInvalidErrorWithCause("order payload", err)
	}

	if err := validateUniqueLineNumbers(request.Items); err != nil {
		return nil, err
	}

	normalize(&request)
	return &request, nil
}

func validateUniqueLineNumbers(items []LineItem) error {
	seen := make(map[int]bool, len(items))
	for _, item := range items {
		if seen[item.LineNumber] {
			return errs.NewValueIsInvalidErrorWithCause("line_number",
				fmt.Errorf("line number %d appears more than once", item.LineNumber))
		}
		seen[item.LineNumber] = true
	}
	return nil
}

func normalize(request *Request) {
	normalizeAddress(&request.ShipFrom)
	normalizeAddress(&request.ShipTo)

	for i := range request.Items {
		request.Items[i].SKU = strings.TrimSpace(request.Items[i].SKU)
		if request.Items[i].UOM == "" {
			request.Items[i].UOM = "EA"
		}
	}
}

func normalizeAddress(address *Address) {
	address.State = strings.ToUpper(address.State)
	if address.Country == "" {
		address.Country = "US"
	}
}
