package store

import (
	"fmt"
	"sort"
	"sync"

	"github.com/darksailstudio/resettables/core"
)

// Object is the in-memory persistent object. It implements core.Instance as
// a live handle: Load returns the stored object itself, so SetFields writes
// through to durable (process-local) state. Field maps are copied on the way
// in and out to avoid accidental aliasing of internal storage.
type Object struct {
	mu     sync.RWMutex
	ref    core.ObjectRef
	fields map[string]any
}

// Ref returns the object's identity, type and location.
func (o *Object) Ref() core.ObjectRef {
	o.mu.RLock()
	defer o.mu.RUnlock()
	return o.ref
}

// Fields returns a copy of the serializable field state.
func (o *Object) Fields() map[string]any {
	o.mu.RLock()
	defer o.mu.RUnlock()
	out := make(map[string]any, len(o.fields))
	for k, v := range o.fields {
		out[k] = v
	}
	return out
}

// SetFields replaces the field state, leaving identity, type and location
// untouched.
func (o *Object) SetFields(fields map[string]any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields = make(map[string]any, len(fields))
	for k, v := range fields {
		o.fields[k] = v
	}
}

// Set assigns a single field value.
func (o *Object) Set(key string, value any) {
	o.mu.Lock()
	defer o.mu.Unlock()
	o.fields[key] = value
}

// Get returns a single field value and its existence flag.
func (o *Object) Get(key string) (any, bool) {
	o.mu.RLock()
	defer o.mu.RUnlock()
	v, ok := o.fields[key]
	return v, ok
}

// InMemoryStore is a volatile core.ObjectStore keeping all objects in a
// process-local map keyed by location. Identities are UUIDs assigned at
// creation and never reused. Best suited for tests, examples and
// single-process hosts.
type InMemoryStore struct {
	mu      sync.RWMutex
	objects map[core.Location]*Object
}

// NewInMemoryStore constructs an empty in-memory object store.
func NewInMemoryStore() *InMemoryStore {
	return &InMemoryStore{objects: make(map[core.Location]*Object)}
}

// Create allocates a new object of the given type at the location.
func (s *InMemoryStore) Create(t core.TypeName, loc core.Location) (core.Instance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, exists := s.objects[loc]; exists {
		return nil, fmt.Errorf("%w: %q", ErrLocationOccupied, loc)
	}
	obj := &Object{
		ref:    core.ObjectRef{ID: core.NewID(), Type: t, Location: loc},
		fields: make(map[string]any),
	}
	s.objects[loc] = obj
	return obj, nil
}

// Load returns the live object at the location, or (nil, nil) when absent.
func (s *InMemoryStore) Load(loc core.Location) (core.Instance, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[loc]
	if !ok {
		return nil, nil
	}
	return obj, nil
}

// Delete removes the object at the location, reporting whether one existed.
func (s *InMemoryStore) Delete(loc core.Location) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.objects[loc]; !ok {
		return false, nil
	}
	delete(s.objects, loc)
	return true, nil
}

// Enumerate returns references to every stored object of the exact type,
// ordered by location for deterministic traversal.
func (s *InMemoryStore) Enumerate(t core.TypeName) ([]core.ObjectRef, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	refs := make([]core.ObjectRef, 0)
	for _, obj := range s.objects {
		if ref := obj.Ref(); ref.Type == t {
			refs = append(refs, ref)
		}
	}
	sort.Slice(refs, func(i, j int) bool { return refs[i].Location < refs[j].Location })
	return refs, nil
}

// TypeAt returns the type of the object at the location or ErrNotFound.
func (s *InMemoryStore) TypeAt(loc core.Location) (core.TypeName, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	obj, ok := s.objects[loc]
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrNotFound, loc)
	}
	return obj.Ref().Type, nil
}
