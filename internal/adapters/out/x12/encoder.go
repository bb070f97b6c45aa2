package x12

import (
	"strconv"
	"strings"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
)

// Default separator characters of the document grammar.
const (
	DefaultSegmentTerminator   = "~"
	DefaultElementSeparator    = "*"
	DefaultSubElementSeparator = ":"
)

// Encoder renders single logical records into their fixed-grammar textual
// form. Every method is pure and returns one segment WITHOUT the trailing
// terminator; the Assembler appends terminators when it joins segments.
//
// Field values are inserted verbatim. The separator characters are assumed
// never to appear inside a field value; this is not validated.
type Encoder struct {
	elementSep    string
	subElementSep string
}

// NewEncoder creates an Encoder with the given separators, falling back to
// the defaults for any empty value.
func NewEncoder(elementSeparator, subElementSeparator string) *Encoder {
	if elementSeparator == "" {
		elementSeparator = DefaultElementSeparator
	}
	if subElementSeparator == "" {
		subElementSeparator = DefaultSubElementSeparator
	}

	return &Encoder{
		elementSep:    elementSeparator,
		subElementSep: subElementSeparator,
	}
}

// ISA renders the interchange control header.
//
// Layout: ISA*00*          *00*          *ZZ*SENDER         *ZZ*RECEIVER       *YYMMDD*HHMM*U*00401*000000001*0*P*:
// Sender and receiver ids are space-padded to 15 characters, the control
// number is zero-padded to 9 digits.
func (e *Encoder) ISA(senderID, receiverID, controlNumber string, timestamp time.Time) string {
	elements := []string{
		"ISA",
		"00", strings.Repeat(" ", 10),
		"00", strings.Repeat(" ", 10),
		"ZZ", padRight(senderID, 15),
		"ZZ", padRight(receiverID, 15),
		timestamp.Format("060102"),
		timestamp.Format("1504"),
		"U",
		"00401",
		zeroPad(controlNumber, 9),
		"0",
		"P",
		e.subElementSep,
	}
	return strings.Join(elements, e.elementSep)
}

// GS renders the functional group header for a ship-notice group (SH).
func (e *Encoder) GS(senderCode, receiverCode, controlNumber string, timestamp time.Time) string {
	elements := []string{
		"GS",
		"SH",
		senderCode,
		receiverCode,
		timestamp.Format("20060102"),
		timestamp.Format("1504"),
		zeroPad(controlNumber, 9),
		"X",
		"004010",
	}
	return strings.Join(elements, e.elementSep)
}

// GE renders the functional group trailer. The control number must match GS06.
func (e *Encoder) GE(transactionCount int, controlNumber string) string {
	return strings.Join([]string{
		"GE", strconv.Itoa(transactionCount), zeroPad(controlNumber, 9),
	}, e.elementSep)
}

// IEA renders the interchange control trailer. The control number must match ISA13.
func (e *Encoder) IEA(groupCount int, controlNumber string) string {
	return strings.Join([]string{
		"IEA", strconv.Itoa(groupCount), zeroPad(controlNumber, 9),
	}, e.elementSep)
}

// ST renders the transaction set header for an 856.
func (e *Encoder) ST(controlNumber string) string {
	return strings.Join([]string{"ST", "856", zeroPad(controlNumber, 4)}, e.elementSep)
}

// SE renders the transaction set trailer. segmentCount is the number of
// segments from ST through SE inclusive; the control number must match ST02.
func (e *Encoder) SE(segmentCount int, controlNumber string) string {
	return strings.Join([]string{
		"SE", strconv.Itoa(segmentCount), zeroPad(controlNumber, 4),
	}, e.elementSep)
}

// BSN renders the beginning segment for a ship notice. Purpose code 00 marks
// an original transmission.
func (e *Encoder) BSN(shipmentID string, shipDate time.Time) string {
	return strings.Join([]string{
		"BSN",
		"00",
		shipmentID,
		shipDate.Format("20060102"),
		shipDate.Format("1504"),
	}, e.elementSep)
}

// HL renders a hierarchical level segment. parentHL 0 renders an empty parent
// element, allowed only for the single root node of a document.
func (e *Encoder) HL(hlNumber, parentHL int, levelCode string, hasChildren bool) string {
	parent := ""
	if parentHL > 0 {
		parent = strconv.Itoa(parentHL)
	}
	child := "0"
	if hasChildren {
		child = "1"
	}

	return strings.Join([]string{
		"HL", strconv.Itoa(hlNumber), parent, levelCode, child,
	}, e.elementSep)
}

// REF renders a reference identification segment. The description element is
// omitted entirely when empty.
func (e *Encoder) REF(qualifier, referenceID, description string) string {
	segment := strings.Join([]string{"REF", qualifier, referenceID}, e.elementSep)
	if description != "" {
		segment += e.elementSep + description
	}
	return segment
}

// DTM renders a date/time reference segment with format code 204 (CCYYMMDD).
func (e *Encoder) DTM(qualifier string, date time.Time) string {
	return strings.Join([]string{
		"DTM", qualifier, date.Format("20060102"), "204",
	}, e.elementSep)
}

// N1 renders a party identification segment (SF ship-from, ST ship-to).
func (e *Encoder) N1(entityCode, name string) string {
	return strings.Join([]string{"N1", entityCode, name}, e.elementSep)
}

// N3 renders a party location segment. The second address line is omitted
// when empty.
func (e *Encoder) N3(addressLine1, addressLine2 string) string {
	segment := strings.Join([]string{"N3", addressLine1}, e.elementSep)
	if addressLine2 != "" {
		segment += e.elementSep + addressLine2
	}
	return segment
}

// N4 renders a geographic location segment.
func (e *Encoder) N4(city, state, postalCode, country string) string {
	return strings.Join([]string{"N4", city, state, postalCode, country}, e.elementSep)
}

// TD1 renders carrier quantity and weight details for one carton. A nil
// weight drops the TD106-108 weight elements; lading quantity 0 renders as an
// empty element to preserve field positions.
func (e *Encoder) TD1(packagingCode string, ladingQuantity int, weight *kernel.Weight) string {
	quantity := ""
	if ladingQuantity > 0 {
		quantity = strconv.Itoa(ladingQuantity)
	}

	segment := strings.Join([]string{
		"TD1", packagingCode, quantity, "", "", "",
	}, e.elementSep)

	if weight != nil {
		segment += strings.Join([]string{"", "G", weight.Fixed(), "LB"}, e.elementSep)
	}
	return segment
}

// TD5 renders carrier routing details. Routing code B is origin and
// destination carrier; qualifier 2 marks the carrier code as a SCAC.
func (e *Encoder) TD5(carrierCode string) string {
	segment := strings.Join([]string{"TD5", "B"}, e.elementSep)
	if carrierCode != "" {
		segment += strings.Join([]string{"", "2", carrierCode}, e.elementSep)
	}
	return segment
}

// LIN renders an item identification segment with an SK (stock keeping unit)
// qualifier. LIN01 stays blank.
func (e *Encoder) LIN(sku string) string {
	return strings.Join([]string{"LIN", "", "SK", sku}, e.elementSep)
}

// SN1 renders an item shipment detail segment. SN101 stays blank.
func (e *Encoder) SN1(quantity int, uom string) string {
	return strings.Join([]string{"SN1", "", strconv.Itoa(quantity), uom}, e.elementSep)
}

// CTT renders the transaction totals segment. A nil total weight drops the
// CTT02-05 elements.
func (e *Encoder) CTT(lineCount int, totalWeight *kernel.Weight) string {
	segment := strings.Join([]string{"CTT", strconv.Itoa(lineCount)}, e.elementSep)
	if totalWeight != nil {
		segment += strings.Join([]string{"", "", "", totalWeight.Fixed(), "LB"}, e.elementSep)
	}
	return segment
}

// padRight space-pads s to exactly width characters, truncating when longer.
func padRight(s string, width int) string {
	if len(s) >= width {
		return s[:width]
	}
	return s + strings.Repeat(" ", width-len(s))
}

// zeroPad left-pads s with zeros to at least width characters.
func zeroPad(s string, width int) string {
	if len(s) >= width {
		return s
	}
	return strings.Repeat("0", width-len(s)) + s
}
