package x12

import (
	"strings"

	"shipnotice/internal/core/domain/model/shipment"
)

// Level tags a hierarchy node with its kind. The four levels mirror the HL
// loop structure of an 856: shipment, order, tare (carton), item.
type Level int

const (
	LevelShipment Level = iota
	LevelOrder
	LevelCarton
	LevelItem
)

// Code returns the single-letter HL03 level code.
func (l Level) Code() string {
	switch l {
	case LevelShipment:
		return "S"
	case LevelOrder:
		return "O"
	case LevelCarton:
		return "T"
	case LevelItem:
		return "I"
	}
	return ""
}

// Node is one node of the HL hierarchy tree. HLNumber is the globally unique,
// monotonically increasing sequence number assigned in construction order;
// ParentHL is 0 only for the root. Segments holds the node's rendered records
// starting with its own HL segment.
type Node struct {
	HLNumber int
	ParentHL int
	Level    Level
	Segments []string
	Children []*Node
}

// Flatten returns all segments of the subtree in depth-first pre-order, the
// same order the tree was constructed in. Downstream consumers depend on this
// ordering: shipment header segments first, then each order with its cartons
// and items as one unbroken nested sequence.
func (n *Node) Flatten() []string {
	segments := make([]string, 0, len(n.Segments))
	segments = append(segments, n.Segments...)
	for _, child := range n.Children {
		segments = append(segments, child.Flatten()...)
	}
	return segments
}

// CountNodes returns the number of nodes in the subtree, this node included.
func (n *Node) CountNodes() int {
	count := 1
	for _, child := range n.Children {
		count += child.CountNodes()
	}
	return count
}

// CountLeafNodes returns the number of item-level nodes in the subtree,
// which is the document's line-item total.
func CountLeafNodes(n *Node) int {
	if n.Level == LevelItem {
		return 1
	}

	count := 0
	for _, child := range n.Children {
		count += CountLeafNodes(child)
	}
	return count
}

// HierarchyBuilder builds the 4-level HL tree over a shipment. The builder
// itself is stateless; the sequence counter lives inside each Build call, so
// one builder can serve any number of sequential builds and two builds of the
// same shipment produce structurally identical trees.
type HierarchyBuilder struct {
	encoder *Encoder
}

// NewHierarchyBuilder creates a HierarchyBuilder rendering through encoder.
func NewHierarchyBuilder(encoder *Encoder) *HierarchyBuilder {
	return &HierarchyBuilder{encoder: encoder}
}

// Build constructs the complete hierarchy for a shipment, depth-first:
// one shipment node, then per order an order node, per referenced carton a
// carton node, per packed item an item node. An order referencing a carton id
// that does not exist in the shipment is skipped silently, matching the
// upstream system's leniency.
func (b *HierarchyBuilder) Build(s *shipment.Shipment) (*Node, error) {
	if err := s.Validate(); err != nil {
		return nil, err
	}

	counter := 0
	next := func() int {
		counter++
		return counter
	}

	return b.buildShipmentLevel(s, next), nil
}

func (b *HierarchyBuilder) buildShipmentLevel(s *shipment.Shipment, next func() int) *Node {
	hlNumber := next()

	segments := []string{b.encoder.HL(hlNumber, 0, LevelShipment.Code(), true)}
	if s.CarrierCode() != "" {
		segments = append(segments, b.encoder.TD5(s.CarrierCode()))
	}
	segments = append(segments, b.encoder.DTM("011", s.ShipDate()))
	segments = append(segments, b.partySegments("SF", s.ShipFrom())...)
	segments = append(segments, b.partySegments("ST", s.ShipTo())...)

	node := &Node{
		HLNumber: hlNumber,
		Level:    LevelShipment,
		Segments: segments,
	}
	for _, order := range s.Orders() {
		node.Children = append(node.Children, b.buildOrderLevel(order, s, hlNumber, next))
	}
	return node
}

// partySegments renders the N1 identification for one party plus, when the
// free-text address carries a comma-separated street line, an N3 with that
// first line.
func (b *HierarchyBuilder) partySegments(entityCode string, party shipment.Party) []string {
	segments := []string{b.encoder.N1(entityCode, party.Name())}
	if street, _, found := strings.Cut(party.Address(), ", "); found {
		segments = append(segments, b.encoder.N3(street, ""))
	}
	return segments
}

func (b *HierarchyBuilder) buildOrderLevel(
	order shipment.Order, s *shipment.Shipment, parentHL int, next func() int,
) *Node {
	hlNumber := next()

	node := &Node{
		HLNumber: hlNumber,
		ParentHL: parentHL,
		Level:    LevelOrder,
		Segments: []string{
			b.encoder.HL(hlNumber, parentHL, LevelOrder.Code(), true),
			b.encoder.REF("PO", order.PurchaseOrder(), ""),
		},
	}
	for _, cartonID := range order.CartonIDs() {
		carton, ok := s.FindCarton(cartonID)
		if !ok {
			continue
		}
		node.Children = append(node.Children, b.buildCartonLevel(carton, hlNumber, next))
	}
	return node
}

func (b *HierarchyBuilder) buildCartonLevel(carton *shipment.Carton, parentHL int, next func() int) *Node {
	hlNumber := next()

	segments := []string{b.encoder.HL(hlNumber, parentHL, LevelCarton.Code(), true)}
	if containerID := carton.ContainerID(); containerID != nil {
		segments = append(segments, b.encoder.REF("0J", containerID.String(), ""))
	}
	weight := carton.Weight()
	segments = append(segments, b.encoder.TD1(carton.PackagingCode(), 1, &weight))

	node := &Node{
		HLNumber: hlNumber,
		ParentHL: parentHL,
		Level:    LevelCarton,
		Segments: segments,
	}
	for _, item := range carton.Items() {
		node.Children = append(node.Children, b.buildItemLevel(item, hlNumber, next))
	}
	return node
}

func (b *HierarchyBuilder) buildItemLevel(item shipment.LineItem, parentHL int, next func() int) *Node {
	hlNumber := next()

	return &Node{
		HLNumber: hlNumber,
		ParentHL: parentHL,
		Level:    LevelItem,
		Segments: []string{
			b.encoder.HL(hlNumber, parentHL, LevelItem.Code(), false),
			b.encoder.LIN(item.SKU()),
			b.encoder.SN1(item.Quantity(), item.UOM()),
		},
	}
}
