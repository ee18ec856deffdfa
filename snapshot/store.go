package snapshot

import (
	"fmt"

	"github.com/darksailstudio/resettables/core"
)

// keyPrefix namespaces snapshot entries so hosts can share one KV between
// the snapshot store and their own data.
const keyPrefix = "snapshot/"

// Store holds at most one captured state per object identity per session.
// Entries exist only between session start and session end; the controller
// drains every entry during the end-of-session pass.
type Store struct {
	kv core.KV
}

// NewStore wraps the given durable KV.
func NewStore(kv core.KV) *Store {
	return &Store{kv: kv}
}

// Capture stores serialized state keyed by the object's identity. Entries
// from the previous session were drained at its end, so this is a plain
// insert; a leftover entry (crashed session) is overwritten.
func (s *Store) Capture(ref core.ObjectRef, state string) error {
	if err := s.kv.Set(keyPrefix+string(ref.ID), state); err != nil {
		return fmt.Errorf("snapshot: capture %q: %w", ref.ID, err)
	}
	return nil
}

// Consume returns the captured state for the identity and erases it in the
// same step. ok is false when nothing was captured; an empty captured state
// still reports ok true.
func (s *Store) Consume(id core.ObjectID) (state string, ok bool, err error) {
	key := keyPrefix + string(id)
	state, ok, err = s.kv.Get(key)
	if err != nil {
		return "", false, fmt.Errorf("snapshot: read %q: %w", id, err)
	}
	if !ok {
		return "", false, nil
	}
	if err := s.kv.Erase(key); err != nil {
		return "", false, fmt.Errorf("snapshot: erase %q: %w", id, err)
	}
	return state, true, nil
}
