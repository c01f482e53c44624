// Package view holds the per-entity list views: the in-memory list, the search
// box, the create/edit form and the error banner, bound to a backend that is
// either local state or the REST gateway.
package view

import (
	"context"
	"fmt"

	"github.com/gleydi12/web-inventario/internal/form"
	"github.com/gleydi12/web-inventario/internal/model"
	"github.com/gleydi12/web-inventario/internal/search"
	"github.com/gleydi12/web-inventario/internal/store"

	"github.com/rs/zerolog/log"
)

// Backend confirms list mutations. *gateway.Resource satisfies it; Local
// confirms everything without I/O.
type Backend[T any] interface {
	List(ctx context.Context) ([]T, error)
	Create(ctx context.Context, rec T) (T, error)
	Update(ctx context.Context, id uint, rec T) (T, error)
	Delete(ctx context.Context, id uint) error
}

// Names are the Spanish nouns used in banner messages.
type Names struct {
	Singular string // "el producto"
	Plural   string // "los productos"
}

// Config describes one entity's view.
type Config[T any] struct {
	Names  Names
	Form   form.Config[T]
	Fields search.Fields[T]
	// Scope restricts the records kept after a load. Optional.
	Scope func(T) bool
}

// View is a list + search + form screen for one entity type.
type View[T model.Entity[T]] struct {
	cfg     Config[T]
	backend Backend[T]
	items   *store.List[T]
	form    *form.Controller[T]
	query   string
	loading bool
	banner  string
}

func New[T model.Entity[T]](backend Backend[T], cfg Config[T]) *View[T] {
	return &View[T]{
		cfg:     cfg,
		backend: backend,
		items:   store.New[T](),
		form:    form.New(cfg.Form),
	}
}

func (v *View[T]) Store() *store.List[T] { return v.items }
func (v *View[T]) Form() *form.Controller[T] { return v.form }
func (v *View[T]) Loading() bool { return v.loading }
func (v *View[T]) Query() string { return v.query }
func (v *View[T]) SetQuery(q string) { v.query = q }

// Error returns the banner message of the last failed backend call, or "".
func (v *View[T]) Error() string { return v.banner }

// Load fetches the full list from the backend. On failure the banner is set,
// the loading flag is cleared and the list is left as it was.
func (v *View[T]) Load(ctx context.Context) error {
	v.loading = true
	defer func() { v.loading = false }()

	items, err := v.backend.List(ctx)
	if err != nil {
		return v.fail(err, "obtener "+v.cfg.Names.Plural)
	}
	if v.cfg.Scope != nil {
		scoped := items[:0:0]
		for _, it := range items {
			if v.cfg.Scope(it) {
				scoped = append(scoped, it)
			}
		}
		items = scoped
	}
	v.items.Replace(items)
	v.banner = ""
	return nil
}

// Visible returns the records matching the current query, in list order.
func (v *View[T]) Visible() []T {
	return search.Filter(v.items.All(), v.query, v.cfg.Fields)
}

// StartEdit loads record id into the form. Unknown ids are ignored.
func (v *View[T]) StartEdit(id uint) bool { return v.form.StartEdit(v.items, id) }

// Cancel discards the form draft.
func (v *View[T]) Cancel() { v.form.Cancel() }

// Submit commits the form draft in two phases: the list is changed first, then
// the backend confirms. A confirmed record replaces the tentative one; a
// backend failure restores the list and the draft and sets the banner.
// Submitting an incomplete draft returns form.ErrValidationSkip.
func (v *View[T]) Submit(ctx context.Context) (T, error) {
	var zero T
	mode := v.form.Mode()
	target, _ := v.form.Target()
	draft := v.form.Draft()
	snap := v.items.Snapshot()

	rec, err := v.form.Submit(v.items)
	if err != nil {
		return zero, err
	}

	var confirmed T
	var action string
	if mode == form.Editing {
		action = "actualizar " + v.cfg.Names.Singular
		confirmed, err = v.backend.Update(ctx, rec.GetID(), rec)
	} else {
		action = "crear " + v.cfg.Names.Singular
		confirmed, err = v.backend.Create(ctx, rec)
	}
	if err != nil {
		v.items.Restore(snap)
		if mode == form.Editing {
			v.form.StartEdit(v.items, target)
		}
		v.form.Set(draft)
		return zero, v.fail(err, action)
	}

	if confirmed.GetID() == 0 {
		confirmed = confirmed.WithID(rec.GetID())
	}
	v.items.Swap(rec.GetID(), confirmed)
	v.banner = ""
	return confirmed, nil
}

// Delete removes record id, restoring it when the backend refuses.
// Unknown ids are a silent no-op.
func (v *View[T]) Delete(ctx context.Context, id uint) error {
	if _, ok := v.items.Get(id); !ok {
		return nil
	}
	snap := v.items.Snapshot()
	v.items.Remove(id)
	if err := v.backend.Delete(ctx, id); err != nil {
		v.items.Restore(snap)
		return v.fail(err, "eliminar "+v.cfg.Names.Singular)
	}
	if target, editing := v.form.Target(); editing && target == id {
		v.form.Cancel()
	}
	v.banner = ""
	return nil
}

func (v *View[T]) fail(err error, action string) error {
	v.banner = "Error al " + action
	log.Warn().Err(err).Str("vista", v.cfg.Names.Plural).Msg(v.banner)
	return fmt.Errorf("%s: %w", v.banner, err)
}
