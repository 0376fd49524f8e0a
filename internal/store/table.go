// Package store keeps marketplace entities in memory, one owned table per
// entity type. Nothing survives a restart; every counter starts again at 1.
package store

import (
	"cmp"
	"slices"
	"sync"
	"time"
)

// Sequence hands out strictly increasing ids starting at 1. It is only
// advanced under its table's write lock.
type Sequence[ID ~int64] struct {
	next ID
}

func (s *Sequence[ID]) nextLocked() ID {
	if s.next == 0 {
		s.next = 1
	}
	id := s.next
	s.next++
	return id
}

// Table maps ids to rows for a single entity type. Rows are held by value;
// callers only ever see copies.
type Table[ID ~int64, E any] struct {
	mu   sync.RWMutex
	seq  Sequence[ID]
	rows map[ID]E
	now  func() time.Time
}

func NewTable[ID ~int64, E any](now func() time.Time) *Table[ID, E] {
	if now == nil {
		now = time.Now
	}
	return &Table[ID, E]{rows: make(map[ID]E), now: now}
}

// Insert assigns the next id and creation time, builds the row and stores it
// in one step.
func (t *Table[ID, E]) Insert(build func(id ID, createdAt time.Time) E) E {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.insertLocked(build)
}

func (t *Table[ID, E]) insertLocked(build func(id ID, createdAt time.Time) E) E {
	id := t.seq.nextLocked()
	row := build(id, t.now())
	t.rows[id] = row
	return row
}

// Get returns false for ids that were never inserted.
func (t *Table[ID, E]) Get(id ID) (E, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	row, ok := t.rows[id]
	return row, ok
}

// Find scans every row and returns the matches ordered by id.
func (t *Table[ID, E]) Find(pred func(E) bool) []E {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return t.findLocked(pred)
}

func (t *Table[ID, E]) findLocked(pred func(E) bool) []E {
	ids := make([]ID, 0, len(t.rows))
	for id, row := range t.rows {
		if pred == nil || pred(row) {
			ids = append(ids, id)
		}
	}
	slices.SortFunc(ids, cmp.Compare[ID])

	out := make([]E, 0, len(ids))
	for _, id := range ids {
		out = append(out, t.rows[id])
	}
	return out
}

// Update applies fn to a copy of the row and stores the result. It returns
// false when the id is unknown.
func (t *Table[ID, E]) Update(id ID, fn func(*E)) (E, bool) {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.updateLocked(id, fn)
}

func (t *Table[ID, E]) updateLocked(id ID, fn func(*E)) (E, bool) {
	row, ok := t.rows[id]
	if !ok {
		var zero E
		return zero, false
	}
	fn(&row)
	t.rows[id] = row
	return row, true
}

func (t *Table[ID, E]) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.rows)
}
