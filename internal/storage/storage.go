// Package storage defines persistence of the credential document.
//
// Every backend stores the whole document as one unit: Load returns a full
// snapshot, Save replaces it. A backend with nothing persisted yet returns an
// empty document, while a persisted document that cannot be decoded yields
// ErrCorruptDocument.
package storage

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/iudanet/campusauth/internal/models"
)

// DocumentStorage defines interface for credential document persistence
type DocumentStorage interface {
	// Load reads the whole document
	// Returns an empty document if nothing was saved yet
	// Returns ErrCorruptDocument if the stored data cannot be decoded
	Load(ctx context.Context) (*models.Document, error)

	// Save replaces the stored document with doc
	Save(ctx context.Context, doc *models.Document) error

	// Close releases the underlying resources
	Close() error
}

// Encode serializes the document in its on-disk JSON form.
func Encode(doc *models.Document) ([]byte, error) {
	if doc == nil {
		doc = models.NewDocument()
	}
	data, err := json.MarshalIndent(doc, "", "  ")
	if err != nil {
		return nil, fmt.Errorf("failed to marshal document: %w", err)
	}
	return data, nil
}

// Decode parses a document produced by Encode. A null document or a null
// user entry is reported as ErrCorruptDocument rather than skipped.
func Decode(data []byte) (*models.Document, error) {
	var doc *models.Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, fmt.Errorf("%w: %w", ErrCorruptDocument, err)
	}
	// Литерал null - это не документ
	if doc == nil {
		return nil, fmt.Errorf("%w: document is null", ErrCorruptDocument)
	}
	for i, user := range doc.Users {
		if user == nil {
			return nil, fmt.Errorf("%w: user entry %d is null", ErrCorruptDocument, i)
		}
	}
	doc.Normalize()
	return doc, nil
}
