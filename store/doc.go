// Package store houses concrete implementations of core.ObjectStore. The
// interface itself lives in the core package to centralize domain contracts;
// keeping only implementations here lets higher level packages (discovery,
// lifecycle) depend on the contract without pulling in concrete storage.
//
// InMemoryStore below is volatile and single-process. Durable backends
// (filesystem, database) implement core.ObjectStore in their own packages;
// only the wiring layer decides which implementation to instantiate.
package store
