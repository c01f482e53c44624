package view

import (
	"context"

	"github.com/gleydi12/web-inventario/internal/model"
)

// Local is a Backend without I/O: it serves a fixed seed and confirms every
// write as-is, so the view's list is the only state.
type Local[T model.Entity[T]] struct {
	seed []T
}

func NewLocal[T model.Entity[T]](seed ...T) *Local[T] {
	return &Local[T]{seed: seed}
}

func (l *Local[T]) List(context.Context) ([]T, error) {
	out := make([]T, len(l.seed))
	copy(out, l.seed)
	return out, nil
}

func (l *Local[T]) Create(_ context.Context, rec T) (T, error) { return rec, nil }

func (l *Local[T]) Update(_ context.Context, id uint, rec T) (T, error) {
	return rec.WithID(id), nil
}

func (l *Local[T]) Delete(context.Context, uint) error { return nil }
