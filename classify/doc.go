// Package classify decides which persistent object types are subject to
// session reset. The Classifier is a pure resolver over a core.TypeCatalog:
// it never mutates anything and every validity failure (unknown type,
// abstract, generic, not persistent-capable) reads as "not resettable"
// rather than an error.
//
// Two catalog backends are provided: TableCatalog, an in-memory marking
// table registered in code, and a TOML loader (LoadTable/ParseTable) for
// hosts that declare their type hierarchy in configuration. Custom catalogs
// implement core.TypeCatalog and plug in at wiring time.
package classify
