package layoutcmd

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/history"
	"github.com/goliatone/go-storefront/internal/layout"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const (
	importLayoutMessageType = "storefront.layout.import"
	exportLayoutMessageType = "storefront.layout.export"
)

// ExportSink receives a finished export document under its conventional
// filename. Implementations typically stream it to the browser as a file
// download.
type ExportSink interface {
	Write(filename string, payload []byte) error
}

// ImportLayoutCommand appends the sections contained in a JSON export
// document to the current layout.
type ImportLayoutCommand struct {
	Payload json.RawMessage `json:"payload"`
}

// Type implements command.Message.
func (ImportLayoutCommand) Type() string { return importLayoutMessageType }

// Validate ensures a payload is present.
func (m ImportLayoutCommand) Validate() error {
	return validation.ValidateStruct(&m,
		validation.Field(&m.Payload, validation.Required.Error("payload is required")),
	)
}

// ImportLayoutHandler runs the atomic import through the layout store.
type ImportLayoutHandler struct {
	inner *commands.Handler[ImportLayoutCommand]
}

// NewImportLayoutHandler constructs the handler wired to the provided store.
func NewImportLayoutHandler(store layout.Store, trail *history.Trail, logger interfaces.Logger, opts ...commands.HandlerOption[ImportLayoutCommand]) *ImportLayoutHandler {
	exec := func(ctx context.Context, msg ImportLayoutCommand) error {
		appended, err := store.Import(msg.Payload)
		if err != nil {
			return err
		}
		recordTrail(trail, "layout.import", "", fmt.Sprintf("appended=%d", len(appended)))
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[ImportLayoutCommand]{
		commands.WithLogger[ImportLayoutCommand](logger),
		commands.WithOperation[ImportLayoutCommand]("layout.import"),
	}, opts...)

	return &ImportLayoutHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *ImportLayoutHandler) Execute(ctx context.Context, msg ImportLayoutCommand) error {
	return h.inner.Execute(ctx, msg)
}

// ExportLayoutCommand serializes the layout, or a selected subset, to an
// export document. Theme exports wrap the sections in the metadata envelope.
type ExportLayoutCommand struct {
	Name       string   `json:"name"`
	Version    string   `json:"version,omitempty"`
	SectionIDs []string `json:"section_ids,omitempty"`
	Theme      bool     `json:"theme,omitempty"`
}

// Type implements command.Message.
func (ExportLayoutCommand) Type() string { return exportLayoutMessageType }

// Validate ensures the export is named and theme exports are whole-layout.
func (m ExportLayoutCommand) Validate() error {
	errs := validation.Errors{}
	if m.Name == "" {
		errs["name"] = validation.NewError("storefront.layout.export.name_required", "name is required")
	}
	if m.Theme && len(m.SectionIDs) > 0 {
		errs["section_ids"] = validation.NewError("storefront.layout.export.theme_subset", "theme exports cover the whole layout")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ExportLayoutHandler serializes the layout and hands it to the sink.
type ExportLayoutHandler struct {
	inner *commands.Handler[ExportLayoutCommand]
}

// NewExportLayoutHandler constructs the handler. The clock is injectable so
// tests can pin the filename date.
func NewExportLayoutHandler(store layout.Store, sink ExportSink, trail *history.Trail, logger interfaces.Logger, clock interfaces.Clock, opts ...commands.HandlerOption[ExportLayoutCommand]) *ExportLayoutHandler {
	if clock == nil {
		clock = time.Now
	}

	exec := func(ctx context.Context, msg ExportLayoutCommand) error {
		var payload []byte
		var err error
		if msg.Theme {
			payload, err = store.ExportTheme(msg.Name, msg.Version)
		} else {
			payload, err = store.Export(msg.SectionIDs...)
		}
		if err != nil {
			return err
		}

		if sink != nil {
			if err := sink.Write(layout.ExportFilename(msg.Name, clock()), payload); err != nil {
				return err
			}
		}
		recordTrail(trail, "layout.export", "", msg.Name)
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[ExportLayoutCommand]{
		commands.WithLogger[ExportLayoutCommand](logger),
		commands.WithOperation[ExportLayoutCommand]("layout.export"),
	}, opts...)

	return &ExportLayoutHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *ExportLayoutHandler) Execute(ctx context.Context, msg ExportLayoutCommand) error {
	return h.inner.Execute(ctx, msg)
}
