// Package ports defines the outbound interfaces of the shipping context.
// These interfaces establish contracts between the application layer and
// infrastructure, enabling dependency inversion and testability.
package ports

import "context"

// DocumentStore defines the contract for persisting produced ship-notice
// documents. The application layer hands over the finished document text;
// where and how it lands (outbox directory, object store, queue) is an
// adapter concern.
type DocumentStore interface {
	// Save persists one document and returns the location it was written to
	// (e.g. the output file path). The shipmentID is used to derive a stable,
	// traceable document name.
	Save(ctx context.Context, shipmentID string, document string) (string, error)
}
