// Package snapshot maps object identity to captured serialized state for
// the duration of one session. The Store is a thin, namespaced layer over a
// durable core.KV so captured state survives a process restart mid-session;
// Consume reads and erases in one step, which is what makes every entry
// single-consumption and keeps a crash mid-restore from double-applying.
//
// MemoryKV is a volatile core.KV for tests and hosts that do not need
// durability. Durable backends (file, bolt, sqlite) implement core.KV and
// plug in at wiring time without changing callers.
package snapshot
