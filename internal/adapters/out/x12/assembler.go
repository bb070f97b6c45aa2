package x12

import (
	"fmt"
	"strings"
	"time"

	"shipnotice/internal/core/domain/model/shipment"
)

// Assembler orchestrates a complete 856 document: envelope headers, the
// transaction set with its HL hierarchy body and totals, and the envelope
// trailers, all joined with the configured segment terminator (one after the
// final record included).
//
// Structural invariants of the produced text:
//   - every HL parent field names the sequence number of its containing node,
//     empty only for the single root
//   - the SE segment count equals the number of records from ST through SE
//     inclusive
//   - the CTT line count equals the number of item-level nodes in the body
//   - the trailer control numbers echo their header counterparts
//
// Assembly either completes fully or fails before emitting any text; no
// partial document is ever returned.
type Assembler struct {
	terminator string
	encoder    *Encoder
	hierarchy  *HierarchyBuilder
}

// NewAssembler creates an Assembler with the given separator characters,
// falling back to the defaults for any empty value.
func NewAssembler(segmentTerminator, elementSeparator, subElementSeparator string) *Assembler {
	if segmentTerminator == "" {
		segmentTerminator = DefaultSegmentTerminator
	}

	encoder := NewEncoder(elementSeparator, subElementSeparator)
	return &Assembler{
		terminator: segmentTerminator,
		encoder:    encoder,
		hierarchy:  NewHierarchyBuilder(encoder),
	}
}

// Assemble builds the full document text for a shipment. The shipment must
// pass ValidateForNotice. An empty controlNumber is defaulted from
// generatedAt: the last 9 digits of its YYYYMMDDHHMMSS rendering.
func (a *Assembler) Assemble(
	s *shipment.Shipment,
	senderID string,
	receiverID string,
	controlNumber string,
	generatedAt time.Time,
) (string, error) {
	if err := s.ValidateForNotice(); err != nil {
		return "", err
	}

	if controlNumber == "" {
		controlNumber = DeriveControlNumber(generatedAt)
	}

	root, err := a.hierarchy.Build(s)
	if err != nil {
		return "", err
	}

	segments := []string{
		a.encoder.ISA(senderID, receiverID, controlNumber, s.ShipDate()),
		a.encoder.GS(senderID, receiverID, controlNumber, s.ShipDate()),
		a.encoder.ST(controlNumber),
		a.encoder.BSN(s.ShipmentID(), s.ShipDate()),
	}
	segments = append(segments, root.Flatten()...)

	lineCount := CountLeafNodes(root)
	if totalWeight, ok := s.TotalWeight(); ok {
		segments = append(segments, a.encoder.CTT(lineCount, &totalWeight))
	} else {
		segments = append(segments, a.encoder.CTT(lineCount, nil))
	}

	// Self-referential count: everything from ST through the SE segment
	// itself, so the two envelope headers are excluded and SE adds one.
	transactionSegmentCount := len(segments) - 2 + 1
	segments = append(segments,
		a.encoder.SE(transactionSegmentCount, controlNumber),
		a.encoder.GE(1, controlNumber),
		a.encoder.IEA(1, controlNumber),
	)

	return strings.Join(segments, a.terminator) + a.terminator, nil
}

// CountSegments counts the records in a produced document by counting
// terminator occurrences.
func (a *Assembler) CountSegments(document string) int {
	return strings.Count(document, a.terminator)
}

// FormatForDisplay splits a produced document into one segment per line with
// 1-based line numbers, for human inspection and CLI summaries.
func (a *Assembler) FormatForDisplay(document string) string {
	segments := strings.Split(document, a.terminator)
	if len(segments) > 0 && segments[len(segments)-1] == "" {
		segments = segments[:len(segments)-1]
	}

	lines := make([]string, 0, len(segments))
	for i, segment := range segments {
		lines = append(lines, fmt.Sprintf("%3d  %s", i+1, segment))
	}
	return strings.Join(lines, "\n")
}

// DeriveControlNumber derives the default control number from a generation
// timestamp: the last 9 digits of its YYYYMMDDHHMMSS rendering.
func DeriveControlNumber(generatedAt time.Time) string {
	stamp := generatedAt.Format("20060102150405")
	return stamp[len(stamp)-9:]
}

// DeriveControlNumber exposes the package-level derivation through the
// NoticeAssembler contract.
func (a *Assembler) DeriveControlNumber(generatedAt time.Time) string {
	return DeriveControlNumber(generatedAt)
}
