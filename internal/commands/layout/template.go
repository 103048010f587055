package layoutcmd

import (
	"context"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/goliatone/go-storefront/internal/commands"
	"github.com/goliatone/go-storefront/internal/history"
	"github.com/goliatone/go-storefront/internal/layout"
	"github.com/goliatone/go-storefront/internal/templates"
	"github.com/goliatone/go-storefront/pkg/interfaces"
)

const (
	applyTemplateMessageType = "storefront.layout.template.apply"
	appendSectionMessageType = "storefront.layout.section.append"
)

// TemplateCatalog resolves templates by key. The embedded catalog satisfies
// it; hosts can substitute their own source.
type TemplateCatalog func(key string) (templates.Template, error)

// ApplyTemplateCommand replaces the whole layout with a named template,
// discarding the prior sections.
type ApplyTemplateCommand struct {
	TemplateKey string `json:"template_key"`
}

// Type implements command.Message.
func (ApplyTemplateCommand) Type() string { return applyTemplateMessageType }

// Validate ensures a template key is provided.
func (m ApplyTemplateCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.TemplateKey) == "" {
		errs["template_key"] = validation.NewError("storefront.layout.template.apply.key_required", "template_key is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// ApplyTemplateHandler resolves the template and installs its sections.
type ApplyTemplateHandler struct {
	inner *commands.Handler[ApplyTemplateCommand]
}

// NewApplyTemplateHandler constructs the handler. A nil catalog defaults to
// the embedded template catalog.
func NewApplyTemplateHandler(store layout.Store, catalog TemplateCatalog, trail *history.Trail, logger interfaces.Logger, opts ...commands.HandlerOption[ApplyTemplateCommand]) *ApplyTemplateHandler {
	if catalog == nil {
		catalog = templates.Get
	}

	exec := func(ctx context.Context, msg ApplyTemplateCommand) error {
		template, err := catalog(strings.TrimSpace(msg.TemplateKey))
		if err != nil {
			return err
		}
		store.ApplyTemplate(template.Sections)
		recordTrail(trail, "template.apply", "", template.Key)
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[ApplyTemplateCommand]{
		commands.WithLogger[ApplyTemplateCommand](logger),
		commands.WithOperation[ApplyTemplateCommand]("layout.template.apply"),
	}, opts...)

	return &ApplyTemplateHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *ApplyTemplateHandler) Execute(ctx context.Context, msg ApplyTemplateCommand) error {
	return h.inner.Execute(ctx, msg)
}

// AppendSectionCommand appends one new section of the given type, seeded
// from registry defaults, without touching the rest of the layout.
type AppendSectionCommand struct {
	SectionType string `json:"section_type"`
}

// Type implements command.Message.
func (AppendSectionCommand) Type() string { return appendSectionMessageType }

// Validate ensures a section type is provided.
func (m AppendSectionCommand) Validate() error {
	errs := validation.Errors{}
	if strings.TrimSpace(m.SectionType) == "" {
		errs["section_type"] = validation.NewError("storefront.layout.section.append.type_required", "section_type is required")
	}
	if len(errs) > 0 {
		return errs
	}
	return nil
}

// AppendSectionHandler creates and appends a section through the store.
type AppendSectionHandler struct {
	inner *commands.Handler[AppendSectionCommand]
}

// NewAppendSectionHandler constructs the handler wired to the provided store.
func NewAppendSectionHandler(store layout.Store, trail *history.Trail, logger interfaces.Logger, opts ...commands.HandlerOption[AppendSectionCommand]) *AppendSectionHandler {
	exec := func(ctx context.Context, msg AppendSectionCommand) error {
		section := store.CreateSection(strings.TrimSpace(msg.SectionType))
		recordTrail(trail, "section.add", section.ID, section.Type)
		return nil
	}

	handlerOpts := append([]commands.HandlerOption[AppendSectionCommand]{
		commands.WithLogger[AppendSectionCommand](logger),
		commands.WithOperation[AppendSectionCommand]("layout.section.append"),
	}, opts...)

	return &AppendSectionHandler{inner: commands.NewHandler(exec, handlerOpts...)}
}

// Execute satisfies command.Commander.
func (h *AppendSectionHandler) Execute(ctx context.Context, msg AppendSectionCommand) error {
	return h.inner.Execute(ctx, msg)
}
