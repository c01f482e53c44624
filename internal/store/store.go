// Package store holds the in-memory ordered list of records a view works on.
package store

import (
	"sync"

	"github.com/gleydi12/web-inventario/internal/model"
)

// List is an ordered collection of records of one entity type.
// Identifiers are assigned as max(existing)+1, or 1 when the list is empty.
type List[T model.Entity[T]] struct {
	mu    sync.RWMutex
	items []T
}

// New returns a list seeded with items. Seed identifiers are kept as given.
func New[T model.Entity[T]](items ...T) *List[T] {
	l := &List[T]{}
	l.items = append(l.items, items...)
	return l
}

func (l *List[T]) nextID() uint {
	var max uint
	for _, it := range l.items {
		if id := it.GetID(); id > max {
			max = id
		}
	}
	return max + 1
}

// Add assigns a fresh identifier to rec, appends it and returns the stored record.
func (l *List[T]) Add(rec T) T {
	l.mu.Lock()
	defer l.mu.Unlock()
	rec = rec.WithID(l.nextID())
	l.items = append(l.items, rec)
	return rec
}

// Update replaces the record whose identifier is id with patch, keeping id.
// It reports whether a record was replaced.
func (l *List[T]) Update(id uint, patch T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items[i] = patch.WithID(id)
	return true
}

// Swap replaces the record whose identifier is id with rec, including rec's own
// identifier. Used when a remote store hands back the authoritative record.
func (l *List[T]) Swap(id uint, rec T) bool {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.index(id)
	if i < 0 {
		return false
	}
	l.items[i] = rec
	return true
}

// Remove deletes the record with the given identifier. Absent ids are ignored.
func (l *List[T]) Remove(id uint) {
	l.mu.Lock()
	defer l.mu.Unlock()
	i := l.index(id)
	if i < 0 {
		return
	}
	l.items = append(l.items[:i:i], l.items[i+1:]...)
}

// Get returns the record with the given identifier.
func (l *List[T]) Get(id uint) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()
	if i := l.index(id); i >= 0 {
		return l.items[i], true
	}
	var zero T
	return zero, false
}

// All returns a copy of the records in insertion order.
func (l *List[T]) All() []T {
	l.mu.RLock()
	defer l.mu.RUnlock()
	out := make([]T, len(l.items))
	copy(out, l.items)
	return out
}

func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return len(l.items)
}

// Replace discards the current contents and loads items.
func (l *List[T]) Replace(items []T) {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.items = append(l.items[:0:0], items...)
}

// Snapshot returns a copy of the current contents for a later Restore.
func (l *List[T]) Snapshot() []T { return l.All() }

// Restore puts back a snapshot taken with Snapshot.
func (l *List[T]) Restore(snap []T) { l.Replace(snap) }

func (l *List[T]) index(id uint) int {
	for i, it := range l.items {
		if it.GetID() == id {
			return i
		}
	}
	return -1
}
