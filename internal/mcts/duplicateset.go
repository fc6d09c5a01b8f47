package mcts

import "sync"

// DuplicateSet records canonical recipe keys already produced by a
// search session. Spec §4.4/§9 deliberately generalizes the reference's
// process-wide singleton set into a field the Generator owns and passes
// by reference into state transitions — never global state.
type DuplicateSet struct {
	mu   sync.Mutex
	keys map[string]struct{}
}

// NewDuplicateSet returns an empty set.
func NewDuplicateSet() *DuplicateSet {
	return &DuplicateSet{keys: make(map[string]struct{})}
}

// Contains reports whether key has already been recorded.
func (d *DuplicateSet) Contains(key string) bool {
	d.mu.Lock()
	defer d.mu.Unlock()
	_, ok := d.keys[key]
	return ok
}

// Add records key, idempotently.
func (d *DuplicateSet) Add(key string) {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys[key] = struct{}{}
}

// Clear empties the set — the explicit session-boundary reset hook spec
// §5 requires in place of the reference's global mutable state.
func (d *DuplicateSet) Clear() {
	d.mu.Lock()
	defer d.mu.Unlock()
	d.keys = make(map[string]struct{})
}

// Len reports how many canonical keys have been recorded.
func (d *DuplicateSet) Len() int {
	d.mu.Lock()
	defer d.mu.Unlock()
	return len(d.keys)
}
