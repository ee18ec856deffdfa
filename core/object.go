package core

import "github.com/google/uuid"

// ObjectID is the stable, location-independent identity of a persistent
// object. Identities remain valid across moves and survive a delete/recreate
// cycle within one session.
type ObjectID string

// TypeName names a concrete persistent object type as known to the host's
// type catalog.
type TypeName string

// Location is the store-specific address of a persistent object (a path in a
// file-backed store, a key in a database-backed one). Identity and location
// are resolvable to each other through the store.
type Location string

// ObjectRef bundles the metadata the lifecycle machinery needs to refer to a
// persistent object without owning it: identity, concrete type and current
// location. The external store owns all instances; the core only ever holds
// references.
type ObjectRef struct {
	ID       ObjectID `json:"id"`
	Type     TypeName `json:"type"`
	Location Location `json:"location"`
}

// Instance is a live handle to a persistent object owned by the external
// store. Field access is deliberately map-shaped so codecs can capture and
// overwrite serializable state without knowing concrete host types.
//
// Contract:
//   - Fields returns a copy; mutating it does not affect the object
//   - SetFields replaces the serializable field state in place, leaving
//     identity, type and location untouched
//   - writes through SetFields are visible to subsequent loads from the store
type Instance interface {
	Ref() ObjectRef
	Fields() map[string]any
	SetFields(fields map[string]any)
}

// NewID returns a new unique object identity.
func NewID() ObjectID { return ObjectID(uuid.NewString()) }
