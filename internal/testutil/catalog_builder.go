package testutil

import (
	"github.com/darksailstudio/resettables/classify"
	"github.com/darksailstudio/resettables/core"
)

// CatalogBuilder helps construct marking tables with fluent chaining.
// Example:
//
//	catalog := NewCatalogBuilder().
//		Marked("Draft", "", true).
//		Concrete("Sketch", "Draft").
//		Build()
type CatalogBuilder struct {
	catalog *classify.TableCatalog
}

// NewCatalogBuilder creates an empty builder.
func NewCatalogBuilder() *CatalogBuilder {
	return &CatalogBuilder{catalog: classify.NewTableCatalog()}
}

// Concrete registers a concrete persistent type with no explicit marking (chainable).
func (b *CatalogBuilder) Concrete(name, parent core.TypeName) *CatalogBuilder {
	b.catalog.Register(core.TypeInfo{Name: name, Parent: parent, Persistent: true})
	return b
}

// Abstract registers an abstract persistent type with no explicit marking (chainable).
func (b *CatalogBuilder) Abstract(name, parent core.TypeName) *CatalogBuilder {
	b.catalog.Register(core.TypeInfo{Name: name, Parent: parent, Persistent: true, Abstract: true})
	return b
}

// Marked registers a concrete persistent type carrying an explicit marking (chainable).
func (b *CatalogBuilder) Marked(name, parent core.TypeName, inheritable bool) *CatalogBuilder {
	b.catalog.Register(core.TypeInfo{
		Name: name, Parent: parent, Persistent: true,
		Marking: &core.Marking{Inheritable: inheritable},
	})
	return b
}

// Build returns the assembled catalog.
func (b *CatalogBuilder) Build() *classify.TableCatalog {
	return b.catalog
}
