package core

// ObjectStore is the external persistent object store. The lifecycle
// machinery drives it but never owns the objects it returns.
//
// Contract:
//   - Load returns (nil, nil) when no object exists at the location; a typed
//     nil instance is a contract violation
//   - instances returned by Create and Load are live handles: SetFields on
//     them persists (see Instance)
//   - Enumerate matches the exact type; derived types are enumerated under
//     their own name
//   - Delete reports false when nothing existed at the location
type ObjectStore interface {
	Create(t TypeName, loc Location) (Instance, error)
	Load(loc Location) (Instance, error)
	Delete(loc Location) (bool, error)
	Enumerate(t TypeName) ([]ObjectRef, error)
	TypeAt(loc Location) (TypeName, error)
}
