// Package x12 renders shipments as EDI X12 856 ship-notice documents.
//
// The package is split along the document's own seams:
//   - Encoder: pure per-segment rendering with configurable separators
//   - HierarchyBuilder: the 4-level HL loop tree (shipment/order/carton/item)
//     and its depth-first flattening
//   - Assembler: envelope framing, transaction totals, self-referential
//     trailer counts, and the final terminator-joined text
//
// All rendering is synchronous and deterministic; the same shipment,
// configuration, and control number always produce byte-identical output.
package x12
