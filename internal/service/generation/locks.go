package generation

import (
	"sync"

	"github.com/google/uuid"
)

// householdLocks serializes generation runs per household. Two concurrent
// runs sharing a stale existing-task snapshot could both decide the
// household is on its first generation and apply the aggressive ramp twice,
// or double-insert overlap-group winners. Locks are per household; there is
// no cross-household contention.
type householdLocks struct {
	mu    sync.Mutex
	locks map[uuid.UUID]*entry
}

type entry struct {
	mu   sync.Mutex
	refs int
}

func newHouseholdLocks() *householdLocks {
	return &householdLocks{locks: make(map[uuid.UUID]*entry)}
}

// acquire blocks until the household's lock is held and returns the release
// function. Entries are reference-counted so the map does not grow with
// every household ever seen.
func (l *householdLocks) acquire(id uuid.UUID) func() {
	l.mu.Lock()
	e, ok := l.locks[id]
	if !ok {
		e = &entry{}
		l.locks[id] = e
	}
	e.refs++
	l.mu.Unlock()

	e.mu.Lock()
	return func() {
		e.mu.Unlock()
		l.mu.Lock()
		e.refs--
		if e.refs == 0 {
			delete(l.locks, id)
		}
		l.mu.Unlock()
	}
}
