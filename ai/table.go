package ai

import (
	"sync"

	"github.com/tictactician/tictactician/symmetry"
)

type boundType byte

const (
	lowerBound boundType = iota
	exactBound
	upperBound
)

type tableEntry struct {
	value int
	bound boundType
}

// Table memoizes search results by canonical position. A value found
// inside a narrowed window is stored as a bound, so a probe never
// returns a result the full search would not. Table is safe for
// concurrent use and may be shared between engines.
type Table struct {
	mu      sync.RWMutex
	entries map[symmetry.Key]tableEntry
}

func NewTable() *Table {
	return &Table{entries: make(map[symmetry.Key]tableEntry)}
}

func (t *Table) get(k symmetry.Key) (tableEntry, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	te, ok := t.entries[k]
	return te, ok
}

func (t *Table) put(k symmetry.Key, te tableEntry) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if old, ok := t.entries[k]; ok && old.bound == exactBound {
		return
	}
	t.entries[k] = te
}

// Exact returns the stored game value of k, if it has been searched
// with a full window.
func (t *Table) Exact(k symmetry.Key) (int, bool) {
	te, ok := t.get(k)
	if !ok || te.bound != exactBound {
		return 0, false
	}
	return te.value, true
}

func (t *Table) Len() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.entries)
}

func (t *Table) Reset() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.entries = make(map[symmetry.Key]tableEntry)
}
