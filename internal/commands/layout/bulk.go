package layoutcmd

import (
	"context"
	"fmt"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/history"
	"github.com/goliatone/go-storefront/internal/layout"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const (
	bulkToggleMessageType    = "storefront.layout.bulk.toggle"
	bulkDeleteMessageType    = "storefront.layout.bulk.delete"
	bulkDuplicateMessageType = "storefront.layout.bulk.duplicate"
)

// BulkToggleCommand enables or disables a selection of sections.
type BulkToggleCommand struct {
	SectionIDs []string `json:"section_ids"`
	Enabled    bool     `json:"enabled"`
}

// Type implements command.Message.
func (BulkToggleCommand) Type() string { return bulkToggleMessageType }

// Validate ensures the selection is not empty.
func (m BulkToggleCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.SectionIDs, validation.Required.Error("section_ids must not be empty")),
	)
}

// BulkToggleHandler applies a bulk enable/disable through the layout store.
type BulkToggleHandler struct {
	inner *commands.Handler[BulkToggleCommand]
}

// NewBulkToggleHandler constructs the handler wired to the provided store.
func NewBulkToggleHandler(store layout.Store, trail *history.Trail, logger interfaces.Logger, opts ...commands.HandlerOption[BulkToggleCommand]) *BulkToggleHandler {
	exec := func(ctx context.Context, msg BulkToggleCommand) error {
		changed := store.BulkSetEnabled(msg.SectionIDs, msg.Enabled)
		recordTrail(trail, "bulk.toggle", "", fmt.Sprintf("enabled=%t changed=%d", msg.Enabled, changed))
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[BulkToggleCommand]{
		commands.WithLogger[BulkToggleCommand](logger),
		commands.WithOperation[BulkToggleCommand]("layout.bulk.toggle"),
	}, opts...)

	return &BulkToggleHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *BulkToggleHandler) Execute(ctx context.Context, msg BulkToggleCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BulkDeleteCommand removes a selection of sections. Confirmation happens at
// the UI boundary before the command is dispatched.
type BulkDeleteCommand struct {
	SectionIDs []string `json:"section_ids"`
}

// Type implements command.Message.
func (BulkDeleteCommand) Type() string { return bulkDeleteMessageType }

// Validate ensures the selection is not empty.
func (m BulkDeleteCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.SectionIDs, validation.Required.Error("section_ids must not be empty")),
	)
}

// BulkDeleteHandler applies a bulk delete through the layout store.
type BulkDeleteHandler struct {
	inner *commands.Handler[BulkDeleteCommand]
}

// NewBulkDeleteHandler constructs the handler wired to the provided store.
func NewBulkDeleteHandler(store layout.Store, trail *history.Trail, logger interfaces.Logger, opts ...commands.HandlerOption[BulkDeleteCommand]) *BulkDeleteHandler {
	exec := func(ctx context.Context, msg BulkDeleteCommand) error {
		removed := store.BulkDelete(msg.SectionIDs)
		recordTrail(trail, "bulk.delete", "", fmt.Sprintf("removed=%d", removed))
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[BulkDeleteCommand]{
		commands.WithLogger[BulkDeleteCommand](logger),
		commands.WithOperation[BulkDeleteCommand]("layout.bulk.delete"),
	}, opts...)

	return &BulkDeleteHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *BulkDeleteHandler) Execute(ctx context.Context, msg BulkDeleteCommand) error {
	return h.inner.Execute(ctx, msg)
}

// BulkDuplicateCommand copies a selection of sections, appending each copy
// to the end of the collection.
type BulkDuplicateCommand struct {
	SectionIDs []string `json:"section_ids"`
}

// Type implements command.Message.
func (BulkDuplicateCommand) Type() string { return bulkDuplicateMessageType }

// Validate ensures the selection is not empty.
func (m BulkDuplicateCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.SectionIDs, validation.Required.Error("section_ids must not be empty")),
	)
}

// BulkDuplicateHandler applies a bulk duplicate through the layout store.
type BulkDuplicateHandler struct {
	inner *commands.Handler[BulkDuplicateCommand]
}

// NewBulkDuplicateHandler constructs the handler wired to the provided store.
func NewBulkDuplicateHandler(store layout.Store, trail *history.Trail, logger interfaces.Logger, opts ...commands.HandlerOption[BulkDuplicateCommand]) *BulkDuplicateHandler {
	exec := func(ctx context.Context, msg BulkDuplicateCommand) error {
		created := store.BulkDuplicate(msg.SectionIDs)
		for _, section := range created {
			recordTrail(trail, "section.duplicate", section.ID, section.Title)
		}
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[BulkDuplicateCommand]{
		commands.WithLogger[BulkDuplicateCommand](logger),
		commands.WithOperation[BulkDuplicateCommand]("layout.bulk.duplicate"),
	}, opts...)

	return &BulkDuplicateHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *BulkDuplicateHandler) Execute(ctx context.Context, msg BulkDuplicateCommand) error {
	return h.inner.Execute(ctx, msg)
}

func recordTrail(trail *history.Trail, action, sectionID, details string) {
	if trail == nil {
		return
	}
	trail.Record(action, sectionID, details)
}
