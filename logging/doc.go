// Package logging provides a tiny abstraction over slog so downstream code
// can depend on a minimal interface (Logger) while allowing hosts to plug
// any structured logger. It also offers a richer SessionLogger with
// contextual helpers (component, session counter) and domain specific
// helpers for capture and restore passes.
package logging
