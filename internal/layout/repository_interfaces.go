package layout

import (
	"context"
	"fmt"
)

// DocumentRepository persists the layout document. Put has upsert semantics
// keyed by Document.Key.
type DocumentRepository interface {
	Get(ctx context.Context, key string) (*Document, error)
	Put(ctx context.Context, document *Document) (*Document, error)
	Delete(ctx context.Context, key string) error
}

// NotFoundError is returned when a layout document cannot be located.
type NotFoundError struct {
	Resource string
	Key      string
}

func (e *NotFoundError) Error() string {
	if e.Key == "" {
		return fmt.Sprintf("%s not found", e.Resource)
	}
	return fmt.Sprintf("%s %q not found", e.Resource, e.Key)
}
