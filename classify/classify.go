package classify

import (
	"github.com/darksailstudio/resettables/core"
)

// Classifier answers whether a persistent type participates in session
// reset. It holds no state beyond the catalog reference and is safe to share.
type Classifier struct {
	catalog core.TypeCatalog
}

// New creates a Classifier resolving against the given catalog.
func New(catalog core.TypeCatalog) *Classifier {
	return &Classifier{catalog: catalog}
}

// IsResettable reports whether t qualifies for session reset.
//
// A type qualifies only if it is a concrete (non-abstract, non-generic)
// derivative of the base persistent-object capability. An explicit marking on
// the type itself decides immediately; its inheritable flag is irrelevant for
// the carrying type. Otherwise the nearest explicitly marked ancestor
// decides, and only if that marking declares itself inheritable. No marking
// anywhere means not resettable.
func (c *Classifier) IsResettable(t core.TypeName) bool {
	info, err := c.catalog.Describe(t)
	if err != nil {
		return false
	}
	if info.Abstract || info.Generic || !info.Persistent {
		return false
	}
	if info.Marking != nil {
		return true
	}

	// Walk toward the root; the visited set guards malformed catalogs that
	// contain derivation cycles.
	visited := map[core.TypeName]bool{t: true}
	for parent := info.Parent; parent != "" && !visited[parent]; {
		visited[parent] = true
		ancestor, err := c.catalog.Describe(parent)
		if err != nil {
			return false
		}
		if ancestor.Marking != nil {
			return ancestor.Marking.Inheritable
		}
		parent = ancestor.Parent
	}
	return false
}
