package ports

import (
	"time"

	"shipnotice/internal/core/domain/model/shipment"
)

// NoticeAssembler defines the contract for rendering a shipment as a
// ship-notice document. The application layer stays ignorant of the concrete
// wire grammar; the x12 adapter provides the production implementation.
type NoticeAssembler interface {
	// Assemble renders the full document text. The shipment must be complete
	// (ValidateForNotice); an empty controlNumber is defaulted from generatedAt.
	Assemble(s *shipment.Shipment, senderID, receiverID, controlNumber string, generatedAt time.Time) (string, error)

	// CountSegments counts the records of a produced document.
	CountSegments(document string) int

	// DeriveControlNumber returns the control number an empty controlNumber
	// argument would default to for the given generation timestamp.
	DeriveControlNumber(generatedAt time.Time) string
}
