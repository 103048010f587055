package commands

import (
	"context"

	goerrors "github.com/goliatone/go-errors"
)

// Text codes attached to wrapped handler errors so hosts can map layout
// command failures to UI notifications without string matching.
const (
	textCodeValidation      = "LAYOUT_COMMAND_VALIDATION_FAILED"
	textCodeContextCanceled = "LAYOUT_COMMAND_CANCELED"
	textCodeContextTimeout  = "LAYOUT_COMMAND_TIMEOUT"
	textCodeContextError    = "LAYOUT_COMMAND_CONTEXT_ERROR"
	textCodeExecuteFailed   = "LAYOUT_COMMAND_FAILED"
)

// wrapValidationError tags message validation failures so they surface as
// user-correctable input problems rather than engine faults.
func wrapValidationError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryValidation, "layout command rejected by validation").
		WithTextCode(textCodeValidation)
}

// wrapContextError distinguishes cancellation from deadline expiry; both
// mean the layout mutation did not run to completion.
func wrapContextError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	switch err {
	case context.Canceled:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "layout command canceled").
			WithTextCode(textCodeContextCanceled)
	case context.DeadlineExceeded:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "layout command timed out").
			WithTextCode(textCodeContextTimeout)
	default:
		return goerrors.Wrap(err, goerrors.CategoryCommand, "layout command context error").
			WithTextCode(textCodeContextError)
	}
}

// wrapExecuteError tags store-level failures; already-wrapped errors pass
// through so import/export sentinels keep their original category.
func wrapExecuteError(err error) error {
	if err == nil {
		return nil
	}
	if goerrors.IsWrapped(err) {
		return err
	}
	return goerrors.Wrap(err, goerrors.CategoryCommand, "layout command failed").
		WithTextCode(textCodeExecuteFailed)
}
