// Package track records resettable objects deleted while a session is
// active, so the lifecycle controller can recreate them at session end. The
// Tracker is an ephemeral, session-scoped owner of DeletionRecords: empty
// outside an active session, always, regardless of restore errors — the
// controller clears it unconditionally on every session-end pass.
package track
