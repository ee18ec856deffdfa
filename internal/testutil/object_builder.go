package testutil

import (
	"testing"

	"github.com/darksailstudio/resettables/core"
)

// ObjectBuilder seeds a persistent object into a store for tests.
// Example:
//
//	inst := NewObjectBuilder("Draft", "/drafts/1").Field("value", 100).MustCreate(t, store)
type ObjectBuilder struct {
	typ    core.TypeName
	loc    core.Location
	fields map[string]any
}

// NewObjectBuilder creates a builder for an object of the given type at the
// given location.
func NewObjectBuilder(t core.TypeName, loc core.Location) *ObjectBuilder {
	return &ObjectBuilder{typ: t, loc: loc, fields: map[string]any{}}
}

// Field sets one serializable field on the resulting object (chainable).
func (b *ObjectBuilder) Field(key string, value any) *ObjectBuilder {
	b.fields[key] = value
	return b
}

// CreateIn creates the object in the store and applies the fields.
func (b *ObjectBuilder) CreateIn(s core.ObjectStore) (core.Instance, error) {
	inst, err := s.Create(b.typ, b.loc)
	if err != nil {
		return nil, err
	}
	inst.SetFields(b.fields)
	return inst, nil
}

// MustCreate is CreateIn failing the test on error.
func (b *ObjectBuilder) MustCreate(t *testing.T, s core.ObjectStore) core.Instance {
	t.Helper()
	inst, err := b.CreateIn(s)
	if err != nil {
		t.Fatalf("create %q at %q: %v", b.typ, b.loc, err)
	}
	return inst
}
