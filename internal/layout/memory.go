package layout

import (
	"context"
	"sync"

	"github.com/google/uuid"
)

// NewMemoryDocumentRepository constructs an in-memory layout document
// repository. It deep-clones on every read and write so callers never share
// state with the stored records.
func NewMemoryDocumentRepository() DocumentRepository {
	return &memoryDocumentRepository{
		byKey: make(map[string]*Document),
	}
}

type memoryDocumentRepository struct {
	mu    sync.RWMutex
	byKey map[string]*Document
}

func (m *memoryDocumentRepository) Get(_ context.Context, key string) (*Document, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	record, ok := m.byKey[key]
	if !ok {
		return nil, &NotFoundError{Resource: "layout_document", Key: key}
	}
	return cloneDocument(record), nil
}

func (m *memoryDocumentRepository) Put(_ context.Context, document *Document) (*Document, error) {
	m.mu.Lock()
	defer m.mu.Unlock()

	cloned := cloneDocument(document)
	if existing, ok := m.byKey[cloned.Key]; ok {
		cloned.ID = existing.ID
		cloned.CreatedAt = existing.CreatedAt
	} else if cloned.ID == uuid.Nil {
		cloned.ID = uuid.New()
	}
	m.byKey[cloned.Key] = cloned
	return cloneDocument(cloned), nil
}

func (m *memoryDocumentRepository) Delete(_ context.Context, key string) error {
	m.mu.Lock()
	defer m.mu.Unlock()

	delete(m.byKey, key)
	return nil
}
