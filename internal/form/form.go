// Package form implements the create/edit controller bound to a single draft
// record.
package form

import (
	"errors"

	"github.com/gleydi12/web-inventario/internal/model"
)

// Mode is the controller state.
type Mode int

const (
	Creating Mode = iota
	Editing
)

func (m Mode) String() string {
	if m == Editing {
		return "editing"
	}
	return "creating"
}

// ErrValidationSkip is returned by Submit when required fields are missing.
// The draft is left as it was.
var ErrValidationSkip = errors.New("form: faltan campos requeridos")

// Target receives committed drafts. *store.List satisfies it.
type Target[T any] interface {
	Add(rec T) T
	Update(id uint, patch T) bool
}

// Lookup resolves the record to edit. *store.List satisfies it.
type Lookup[T any] interface {
	Get(id uint) (T, bool)
}

// Config describes one entity's form.
type Config[T any] struct {
	// Blank returns the empty draft used in Creating mode.
	Blank func() T
	// Valid is the minimal presence check run on Submit.
	Valid func(T) bool
	// Prepare derives computed fields after every draft change. Optional.
	Prepare func(T) T
}

// Controller holds the draft record and the create/edit state.
type Controller[T model.Entity[T]] struct {
	cfg    Config[T]
	draft  T
	mode   Mode
	target uint
}

func New[T model.Entity[T]](cfg Config[T]) *Controller[T] {
	c := &Controller[T]{cfg: cfg}
	c.reset()
	return c
}

func (c *Controller[T]) Mode() Mode { return c.mode }

// Target returns the identifier being edited.
func (c *Controller[T]) Target() (uint, bool) {
	return c.target, c.mode == Editing
}

// Draft returns a copy of the current draft.
func (c *Controller[T]) Draft() T { return c.draft }

// Edit applies fn to the draft, as an input change would.
func (c *Controller[T]) Edit(fn func(*T)) {
	fn(&c.draft)
	c.prepare()
}

// Set replaces the whole draft.
func (c *Controller[T]) Set(draft T) {
	c.draft = draft
	c.prepare()
}

// StartEdit loads the record with the given id into the draft and enters
// Editing. An unknown id is a silent no-op and returns false.
func (c *Controller[T]) StartEdit(src Lookup[T], id uint) bool {
	rec, ok := src.Get(id)
	if !ok {
		return false
	}
	c.draft = rec
	c.prepare()
	c.mode = Editing
	c.target = id
	return true
}

// Cancel discards the draft and returns to Creating.
func (c *Controller[T]) Cancel() { c.reset() }

// Valid runs the entity's presence check against the current draft.
func (c *Controller[T]) Valid() bool {
	return c.cfg.Valid == nil || c.cfg.Valid(c.draft)
}

// Submit commits the draft to t: Add in Creating mode, Update in Editing mode.
// On success the controller returns to Creating with a blank draft and the
// committed record is returned.
func (c *Controller[T]) Submit(t Target[T]) (T, error) {
	if !c.Valid() {
		var zero T
		return zero, ErrValidationSkip
	}
	c.prepare()
	var rec T
	if c.mode == Editing {
		rec = c.draft.WithID(c.target)
		t.Update(c.target, rec)
	} else {
		rec = t.Add(c.draft)
	}
	c.reset()
	return rec, nil
}

func (c *Controller[T]) reset() {
	if c.cfg.Blank != nil {
		c.draft = c.cfg.Blank()
	} else {
		var zero T
		c.draft = zero
	}
	c.prepare()
	c.mode = Creating
	c.target = 0
}

func (c *Controller[T]) prepare() {
	if c.cfg.Prepare != nil {
		c.draft = c.cfg.Prepare(c.draft)
	}
}
