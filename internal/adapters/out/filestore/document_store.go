// Package filestore implements the DocumentStore port on the local
// filesystem. Documents land in a configured outbox directory as
// 856_<shipment id>_<timestamp>.edi files, the naming downstream EDI
// pipelines pick up on.
package filestore

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"time"

	"shipnotice/internal/pkg/errs"
)

// DocumentStore writes produced documents into an outbox directory.
type DocumentStore struct {
	outboxDir string
	now       func() time.Time
}

// NewDocumentStore creates a DocumentStore writing into outboxDir. The
// directory is created on first use if it does not exist.
func NewDocumentStore(outboxDir string) (*DocumentStore, error) {
	if outboxDir == "" {
		return nil, errs.NewValueIsRequiredError("outboxDir")
	}

	return &DocumentStore{
		outboxDir: outboxDir,
		now:       time.Now,
	}, nil
}

// Save writes the document and returns the full path of the written file.
func (s *DocumentStore) Save(ctx context.Context, shipmentID string, document string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if shipmentID == "" {
		return "", errs.NewValueIsRequiredError("shipmentID")
	}
	if document == "" {
		return "", errs.NewValueIsRequiredError("document")
	}

	if err := os.MkdirAll(s.outboxDir, 0o755); err != nil {
		return "", fmt.Errorf("create outbox directory: %w", err)
	}

	name := fmt.Sprintf("856_%s_%s.edi", shipmentID, s.now().Format("20060102150405"))
	path := filepath.Join(s.outboxDir, name)

	if err := os.WriteFile(path, []byte(document), 0o644); err != nil {
		return "", fmt.Errorf("write document: %w", err)
	}

	return path, nil
}
