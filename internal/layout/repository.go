package layout

import (
	repository "github.com/goliatone/go-repository-bun"
	"github.com/google/uuid"
	"github.com/uptrace/bun"
)

// NewDocumentModelRepository creates the generic repository for layout
// documents, identified by their document key.
func NewDocumentModelRepository(db *bun.DB) repository.Repository[*Document] {
	return repository.MustNewRepository(db, repository.ModelHandlers[*Document]{
		NewRecord:          func() *Document { return &Document{} },
		GetID:              func(doc *Document) uuid.UUID { return doc.ID },
		SetID:              func(doc *Document, id uuid.UUID) { doc.ID = id },
		GetIdentifier:      func() string { return "key" },
		GetIdentifierValue: func(doc *Document) string { return doc.Key },
	})
}
