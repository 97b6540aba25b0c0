// Package form drives the create/edit dialog shared by both record variants:
// a small state machine around a draft record, validation, and the save
// dispatch between create and full overwrite.
package form

import (
	"context"
	"errors"
	"fmt"

	"github.com/candrasdkd/easywork/internal/model"
)

// Mode is the dialog state.
type Mode int

const (
	Closed Mode = iota
	EditingNew
	EditingExisting
)

// Saver persists a draft. Create returns the stored record with its assigned
// identifier; Replace overwrites the whole document addressed by the draft's
// identifier.
type Saver[T any] interface {
	Create(ctx context.Context, rec T) (T, error)
	Replace(ctx context.Context, rec T) error
}

// Controller owns one dialog. It is not safe for concurrent use; a page holds
// exactly one.
type Controller[T any] struct {
	variant Variant[T]
	saver   Saver[T]

	mode  Mode
	draft T
	// Defaults carried into the next fresh draft after a successful save.
	last T
}

func NewController[T any](variant Variant[T], saver Saver[T]) *Controller[T] {
	return &Controller[T]{variant: variant, saver: saver}
}

func (c *Controller[T]) Mode() Mode { return c.mode }
func (c *Controller[T]) Draft() T   { return c.draft }

// OpenNew starts a blank draft, carrying over the sticky defaults from the
// last saved record (room, and unit for inventory).
func (c *Controller[T]) OpenNew() {
	c.mode = EditingNew
	c.draft = c.variant.Fresh(c.last)
}

// OpenEdit loads an existing record into the dialog.
func (c *Controller[T]) OpenEdit(rec T) {
	c.mode = EditingExisting
	c.draft = rec
}

// SetDraft replaces the draft with the current input. A no-op when closed.
func (c *Controller[T]) SetDraft(rec T) {
	if c.mode == Closed {
		return
	}
	id := c.variant.ID(c.draft)
	c.draft = rec
	// The identifier is not an editable field.
	c.variant.SetID(&c.draft, id)
}

// Cancel discards the draft without touching the store.
func (c *Controller[T]) Cancel() {
	c.mode = Closed
	var zero T
	c.draft = zero
}

// Save validates, normalizes and persists the draft on behalf of the acting
// profile. On success the dialog closes, the sticky defaults are remembered
// and refetch is true so the caller reloads the month. On failure the dialog
// stays open with the input intact.
func (c *Controller[T]) Save(ctx context.Context, profile model.UserProfile) (refetch bool, err error) {
	const op = "form.Save"

	if c.mode == Closed {
		return false, errors.Join(model.ErrInvalidArgument, fmt.Errorf("%s: no open dialog", op))
	}

	if c.variant.EnforceRequired {
		if missing := c.variant.Missing(c.draft); len(missing) > 0 {
			return false, &ValidationError{Missing: missing}
		}
	}

	rec := c.variant.Normalize(c.draft, profile.UID, profile.PICName)

	switch c.mode {
	case EditingNew:
		stored, err := c.saver.Create(ctx, rec)
		if err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
		rec = stored
	case EditingExisting:
		if err := c.saver.Replace(ctx, rec); err != nil {
			return false, fmt.Errorf("%s: %w", op, err)
		}
	}

	c.last = rec
	c.mode = Closed
	var zero T
	c.draft = zero
	return true, nil
}
