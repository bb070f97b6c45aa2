package commands

import (
	"context"
	"time"

	"shipnotice/internal/core/domain/model/kernel"
	"shipnotice/internal/core/domain/model/shipment"
	"shipnotice/internal/core/domain/model/sscc"
	"shipnotice/internal/core/domain/services"
	"shipnotice/internal/core/ports"
	"shipnotice/internal/pkg/errs"
)

// GenerateShipNoticeResponse reports the outcome of one generation run.
type GenerateShipNoticeResponse struct {
	NoticeID      kernel.UUID
	ShipmentID    string
	ControlNumber string
	Document      string
	DocumentPath  string
	SegmentCount  int
	TotalCartons  int
	TotalUnits    int
	ContainerIDs  []string
}

// GenerateShipNoticeCommandHandler runs the full generation pipeline for one
// order, strictly sequentially: pack the line items into cartons, assign one
// container identifier per carton in packing order, build the shipment
// aggregate, render the document, and persist it through the document store.
//
// The handler owns the container identifier generator, whose serial counter
// advances across calls so consecutive shipments get consecutive serials. It
// is not safe for concurrent use.
type GenerateShipNoticeCommandHandler struct {
	packer        services.CartonPacker
	packingConfig services.PackingConfig
	generator     *sscc.Generator
	assembler     ports.NoticeAssembler
	store         ports.DocumentStore
	senderID      string
	receiverID    string
	now           func() time.Time
}

// NewGenerateShipNoticeCommandHandler creates a handler wired to its
// collaborators. senderID and receiverID identify the trading partners in the
// document envelope.
func NewGenerateShipNoticeCommandHandler(
	packingConfig services.PackingConfig,
	generator *sscc.Generator,
	assembler ports.NoticeAssembler,
	store ports.DocumentStore,
	senderID string,
	receiverID string,
) (*GenerateShipNoticeCommandHandler, error) {
	if err := packingConfig.Validate(); err != nil {
		return nil, err
	}
	if generator == nil {
		return nil, errs.NewValueIsRequiredError("generator")
	}
	if assembler == nil {
		return nil, errs.NewValueIsRequiredError("assembler")
	}
	if store == nil {
		return nil, errs.NewValueIsRequiredError("store")
	}
	if senderID == "" {
		return nil, errs.NewValueIsRequiredError("senderID")
	}
	if receiverID == "" {
		return nil, errs.NewValueIsRequiredError("receiverID")
	}

	return &GenerateShipNoticeCommandHandler{
		packer:        services.NewCartonPacker(),
		packingConfig: packingConfig,
		generator:     generator,
		assembler:     assembler,
		store:         store,
		senderID:      senderID,
		receiverID:    receiverID,
		now:           time.Now,
	}, nil
}

// Handle processes one generation command. On any failure no document is
// written; the identifier generator may have advanced for cartons that were
// assigned before the failure.
func (h *GenerateShipNoticeCommandHandler) Handle(
	ctx context.Context, cmd GenerateShipNoticeCommand,
) (*GenerateShipNoticeResponse, error) {
	if err := cmd.Validate(); err != nil {
		return nil, err
	}

	cartons, err := h.packer.Pack(cmd.Items(), h.packingConfig)
	if err != nil {
		return nil, err
	}

	containerIDs := make([]string, 0, len(cartons))
	cartonIDs := make([]string, 0, len(cartons))
	for _, carton := range cartons {
		containerID, err := h.generator.Next()
		if err != nil {
			return nil, err
		}
		if err := carton.AssignContainerID(containerID); err != nil {
			return nil, err
		}
		containerIDs = append(containerIDs, containerID.String())
		cartonIDs = append(cartonIDs, carton.ID())
	}

	order, err := shipment.NewOrder(cmd.OrderID(), cmd.PurchaseOrder(), cartonIDs)
	if err != nil {
		return nil, err
	}

	s, err := shipment.NewShipment(
		shipment.DeriveShipmentID(cmd.OrderID()),
		cmd.ShipDate(),
		cmd.ShipFrom(),
		cmd.ShipTo(),
		cmd.CarrierCode(),
		cmd.ServiceLevel(),
		[]shipment.Order{order},
		cartons,
	)
	if err != nil {
		return nil, err
	}

	generatedAt := h.now()
	controlNumber := cmd.ControlNumber()
	if controlNumber == "" {
		controlNumber = h.assembler.DeriveControlNumber(generatedAt)
	}

	document, err := h.assembler.Assemble(s, h.senderID, h.receiverID, controlNumber, generatedAt)
	if err != nil {
		return nil, err
	}

	path, err := h.store.Save(ctx, s.ShipmentID(), document)
	if err != nil {
		return nil, err
	}

	totalUnits := 0
	for _, carton := range cartons {
		totalUnits += carton.TotalUnits()
	}

	return &GenerateShipNoticeResponse{
		NoticeID:      kernel.NewUUID(),
		ShipmentID:    s.ShipmentID(),
		ControlNumber: controlNumber,
		Document:      document,
		DocumentPath:  path,
		SegmentCount:  h.assembler.CountSegments(document),
		TotalCartons:  s.TotalCartons(),
		TotalUnits:    totalUnits,
		ContainerIDs:  containerIDs,
	}, nil
}
