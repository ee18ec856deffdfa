// Package core provides the foundational domain types and interfaces used by
// resettables. It defines the core abstractions for:
//
//   - Object references and live instances (identity, type, location, fields)
//   - The external persistent object store (create/load/delete/enumerate)
//   - Serialization codecs (field state capture and overwrite)
//   - Classification metadata (type catalog, resettable markings)
//   - Durable key/value storage backing session snapshots
//
// The package intentionally keeps implementation concerns (concrete stores,
// codecs, lifecycle orchestration) out of scope, exposing small interfaces so
// hosts can plug their own backends. Implementations live in sibling packages
// and are selected at wiring time.
package core
