package core

// Marking is the per-type classification datum attaching resettable semantics
// to a persistent type. Presence of a Marking on a TypeInfo is what the
// resolution rules call an explicit marking; Inheritable controls whether it
// extends to derived types that carry no marking of their own.
type Marking struct {
	Inheritable bool
}

// TypeInfo describes one entry of the host's type hierarchy as needed for
// classification: validity preconditions (concrete, persistent-capable),
// the derivation link, and the optional explicit marking.
type TypeInfo struct {
	Name       TypeName
	Parent     TypeName // empty at a hierarchy root
	Abstract   bool
	Generic    bool
	Persistent bool     // derives from the base persistent-object capability
	Marking    *Marking // nil unless the type is explicitly marked
}

// TypeCatalog is the classification metadata source. Types returns the
// universe of known type names so callers can enumerate stored objects per
// resettable type; Describe resolves one name to its hierarchy entry.
type TypeCatalog interface {
	Describe(t TypeName) (TypeInfo, error)
	Types() []TypeName
}
