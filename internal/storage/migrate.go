package storage

import (
	"context"
	"fmt"

	"github.com/uptrace/bun"

	"github.com/goliatone/go-storefront/internal/layout"
)

// EnsureSchema creates the layout document table when it does not exist.
// The layout document is the only table the module owns.
func EnsureSchema(ctx context.Context, db *bun.DB) error {
	if _, err := db.NewCreateTable().
		Model((*layout.Document)(nil)).
		IfNotExists().
		Exec(ctx); err != nil {
		return fmt.Errorf("storage: create layout_documents: %w", err)
	}
	return nil
}
