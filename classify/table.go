package classify

import (
	"fmt"

	"github.com/darksailstudio/resettables/core"
)

var (
	// ErrUnknownType is returned by TableCatalog.Describe for a type name
	// that was never registered.
	ErrUnknownType = fmt.Errorf("type not registered")
)

// TableCatalog is an in-memory core.TypeCatalog backed by an explicit
// marking table. It replaces runtime type introspection with registered
// entries, which keeps classification independently unit-testable. Suitable
// for hosts with a fixed type universe and for tests; registration order is
// preserved by Types.
type TableCatalog struct {
	entries map[core.TypeName]core.TypeInfo
	order   []core.TypeName
}

// NewTableCatalog constructs an empty marking table.
func NewTableCatalog() *TableCatalog {
	return &TableCatalog{entries: make(map[core.TypeName]core.TypeInfo)}
}

// Register adds (or overwrites) one hierarchy entry. Chainable.
func (c *TableCatalog) Register(info core.TypeInfo) *TableCatalog {
	if _, exists := c.entries[info.Name]; !exists {
		c.order = append(c.order, info.Name)
	}
	c.entries[info.Name] = info
	return c
}

// Describe resolves a type name to its registered entry or ErrUnknownType.
func (c *TableCatalog) Describe(t core.TypeName) (core.TypeInfo, error) {
	info, ok := c.entries[t]
	if !ok {
		return core.TypeInfo{}, fmt.Errorf("%w: %q", ErrUnknownType, t)
	}
	return info, nil
}

// Types returns the registered type names in registration order. The slice
// is a snapshot and safe for caller mutation.
func (c *TableCatalog) Types() []core.TypeName {
	out := make([]core.TypeName, len(c.order))
	copy(out, c.order)
	return out
}
