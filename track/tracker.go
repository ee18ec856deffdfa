package track

import (
	"sync"

	"github.com/darksailstudio/resettables/core"
)

// DeletionRecord captures a resettable object at the moment of its deletion
// during an active session: enough metadata to recreate it even though the
// instance itself is gone from durable storage.
type DeletionRecord struct {
	ID       core.ObjectID
	Type     core.TypeName
	Location core.Location
}

// Tracker is the mutex-guarded owner of the session's deletion records.
// Access is logically single-threaded (host control path), but the guard
// makes the no-concurrent-access invariant enforced rather than assumed.
type Tracker struct {
	mu      sync.Mutex
	records []DeletionRecord
}

// NewTracker constructs an empty tracker.
func NewTracker() *Tracker {
	return &Tracker{}
}

// Record appends one deletion record in observation order.
func (t *Tracker) Record(rec DeletionRecord) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = append(t.records, rec)
}

// Records returns a defensive copy of the recorded deletions.
func (t *Tracker) Records() []DeletionRecord {
	t.mu.Lock()
	defer t.mu.Unlock()
	out := make([]DeletionRecord, len(t.records))
	copy(out, t.records)
	return out
}

// Clear drops all records.
func (t *Tracker) Clear() {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.records = nil
}

// Len returns the number of recorded deletions.
func (t *Tracker) Len() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return len(t.records)
}
