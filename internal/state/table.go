// Package state holds the locally displayed entities that the presentation
// layer reads and the mutation paths write.
package state

import (
	"errors"
	"sync"
)

var (
	ErrNotTracked     = errors.New("entity is not tracked")
	ErrAlreadyTracked = errors.New("entity is already tracked")
)

// Snapshot is the undo record of one Mutate call.
type Snapshot[T any] struct {
	ID      string
	Prior   T
	Applied T

	priorRev   uint64
	appliedRev uint64
}

type row[T any] struct {
	value T
	rev   uint64
}

// Table is an ordered, revisioned set of entities keyed by id.
// Every write bumps the entity's revision so rollbacks can tell whether
// someone else wrote after them.
type Table[T any] struct {
	mu    sync.RWMutex
	rows  map[string]*row[T]
	order []string
	clone func(T) T
	seq   uint64
}

// NewTable creates a Table. clone must deep-copy T.
func NewTable[T any](clone func(T) T) *Table[T] {
	return &Table[T]{
		rows:  make(map[string]*row[T]),
		clone: clone,
	}
}

func (t *Table[T]) next() uint64 {
	t.seq++
	return t.seq
}

// Track inserts or replaces id. Replacing supersedes any pending rollback.
func (t *Table[T]) Track(id string, v T) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r, ok := t.rows[id]; ok {
		r.value = t.clone(v)
		r.rev = t.next()
		return
	}
	t.rows[id] = &row[T]{value: t.clone(v), rev: t.next()}
	t.order = append(t.order, id)
}

// Untrack removes id and reports whether it was present.
func (t *Table[T]) Untrack(id string) bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.untrackLocked(id)
}

func (t *Table[T]) untrackLocked(id string) bool {
	if _, ok := t.rows[id]; !ok {
		return false
	}
	delete(t.rows, id)
	for i, v := range t.order {
		if v == id {
			t.order = append(t.order[:i], t.order[i+1:]...)
			break
		}
	}
	return true
}

// Get returns a copy of id.
func (t *Table[T]) Get(id string) (T, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()

	r, ok := t.rows[id]
	if !ok {
		var zero T
		return zero, false
	}
	return t.clone(r.value), true
}

// List returns copies of all entities in tracking order.
func (t *Table[T]) List() []T {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]T, 0, len(t.order))
	for _, id := range t.order {
		out = append(out, t.clone(t.rows[id].value))
	}
	return out
}

// IDs returns the tracked ids in tracking order.
func (t *Table[T]) IDs() []string {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make([]string, len(t.order))
	copy(out, t.order)
	return out
}

// Len returns the number of tracked entities.
func (t *Table[T]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}

// Mutate runs fn on a working copy of id and stores the result atomically.
// If fn fails nothing is written.
func (t *Table[T]) Mutate(id string, fn func(v *T) error) (Snapshot[T], error) {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	if !ok {
		return Snapshot[T]{}, ErrNotTracked
	}

	working := t.clone(r.value)
	if err := fn(&working); err != nil {
		return Snapshot[T]{}, err
	}

	snap := Snapshot[T]{
		ID:       id,
		Prior:    t.clone(r.value),
		priorRev: r.rev,
	}
	r.value = working
	r.rev = t.next()
	snap.Applied = t.clone(working)
	snap.appliedRev = r.rev
	return snap, nil
}

// Restore undoes the mutation that produced s, but only while that mutation
// is still the latest write on the entity. It restores the prior revision as
// well, so stacked rollbacks on one entity unwind newest first.
// It reports whether the restore happened.
func (t *Table[T]) Restore(s Snapshot[T]) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[s.ID]
	if !ok || r.rev != s.appliedRev {
		return false
	}
	r.value = t.clone(s.Prior)
	r.rev = s.priorRev
	return true
}

// Insert tracks v under id only if id is new.
func (t *Table[T]) Insert(id string, v T) error {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, ok := t.rows[id]; ok {
		return ErrAlreadyTracked
	}
	t.rows[id] = &row[T]{value: t.clone(v), rev: t.next()}
	t.order = append(t.order, id)
	return nil
}

// Revisions returns the current revision of every tracked entity.
// Revisions start at 1.
func (t *Table[T]) Revisions() map[string]uint64 {
	t.mu.RLock()
	defer t.mu.RUnlock()

	out := make(map[string]uint64, len(t.rows))
	for id, r := range t.rows {
		out[id] = r.rev
	}
	return out
}

// Replace stores v under id only while id is still at rev. A rev of 0
// means id must not be tracked yet. It reports whether v was stored.
func (t *Table[T]) Replace(id string, v T, rev uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	r, ok := t.rows[id]
	switch {
	case !ok && rev == 0:
		t.rows[id] = &row[T]{value: t.clone(v), rev: t.next()}
		t.order = append(t.order, id)
		return true
	case ok && r.rev == rev:
		r.value = t.clone(v)
		r.rev = t.next()
		return true
	}
	return false
}

// UntrackAt removes id only while it is still at rev.
func (t *Table[T]) UntrackAt(id string, rev uint64) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	if r, ok := t.rows[id]; !ok || r.rev != rev {
		return false
	}
	return t.untrackLocked(id)
}
