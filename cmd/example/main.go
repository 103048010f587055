package main

import (
	"context"
	"fmt"
	"log"

	storefront "github.com/goliatone/go-storefront"
	layoutcmd "github.com/goliatone/go-storefront/internal/commands/layout"
	"github.com/goliatone/go-storefront/internal/logging"
)

type stdoutSink struct{}

func (stdoutSink) Write(filename string, payload []byte) error {
	fmt.Printf("export -> %s (%d bytes)\n", filename, len(payload))
	return nil
}

func main() {
	ctx := context.Background()

	cfg := storefront.DefaultConfig()
	cfg.Autosave.Enabled = false

	module, err := storefront.New(cfg)
	if err != nil {
		log.Fatalf("initialise storefront: %v", err)
	}
	defer module.Close()

	store := module.Layout()
	if err := store.Load(ctx); err != nil {
		log.Fatalf("load layout: %v", err)
	}
	fmt.Printf("loaded %d sections from the default template\n", store.Len())

	// Append a newsletter section through the command layer so the change
	// lands in the audit trail.
	appendHandler := layoutcmd.NewAppendSectionHandler(store, module.Trail(), logging.NoOp())
	if err := appendHandler.Execute(ctx, layoutcmd.AppendSectionCommand{SectionType: "newsletter"}); err != nil {
		log.Fatalf("append section: %v", err)
	}

	// Record the current state, disable everything, then undo the change.
	history := module.History()
	history.RecordBeforeMutation(store.Sections())

	var ids []string
	for _, section := range store.Sections() {
		ids = append(ids, section.ID)
	}
	store.BulkSetEnabled(ids, false)
	fmt.Printf("render plan while disabled: %d units\n", len(module.Render().Plan(store.Sections(), storefront.PlanOptions{})))

	if snapshot, ok := history.Undo(store.Sections()); ok {
		store.ReplaceAll(snapshot)
	}

	units := module.Render().Plan(store.Sections(), storefront.PlanOptions{})
	fmt.Printf("render plan after undo: %d units\n", len(units))
	for _, unit := range units {
		fmt.Printf("  %-20s -> %s\n", unit.Type, unit.Renderer.Name)
	}

	exportHandler := layoutcmd.NewExportLayoutHandler(store, stdoutSink{}, module.Trail(), logging.NoOp(), nil)
	if err := exportHandler.Execute(ctx, layoutcmd.ExportLayoutCommand{Name: "Demo Layout"}); err != nil {
		log.Fatalf("export layout: %v", err)
	}

	for _, entry := range module.Trail().Entries() {
		fmt.Printf("trail: %-18s %s\n", entry.Action, entry.Details)
	}
}
