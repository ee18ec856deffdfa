// Package resettables gives persistent, serializable objects the semantics
// of transient, session-scoped state: any resettable object modified,
// created or deleted while a session is active has those changes undone
// automatically when the session ends, while non-resettable objects are left
// untouched. Hosts such as an interactive editor with a simulate/preview
// mode use it to keep simulation-time mutations out of durable storage.
//
// Most applications interact with this package by:
//  1. Declaring a type catalog (classify.TableCatalog in code, or a TOML
//     marking table via classify.LoadTable)
//  2. Creating a Resettables via New() (optionally overriding the default
//     in-memory object store, snapshot KV and codec)
//  3. Calling BeginSession / EndSession from the host's session lifecycle,
//     and routing deletes through Delete (or OnDelete plus the host's own
//     store delete) while a session is active
//
// The façade delegates orchestration to lifecycle.Controller while keeping
// setup and usage ergonomics concise. All defaults are safe for local
// development and testing; hosts that must survive a process restart
// mid-session supply a durable core.KV implementation.
package resettables

import (
	"github.com/darksailstudio/resettables/codec"
	"github.com/darksailstudio/resettables/core"
	"github.com/darksailstudio/resettables/lifecycle"
	"github.com/darksailstudio/resettables/logging"
	"github.com/darksailstudio/resettables/snapshot"
	"github.com/darksailstudio/resettables/store"
)

// Options configures the Resettables instance.
type Options struct {
	// ObjectStore is the persistent object store (defaults to in-memory).
	ObjectStore core.ObjectStore

	// SnapshotKV backs the session snapshot store. It must survive the full
	// session; the in-memory default does not survive a process restart.
	SnapshotKV core.KV

	// Codec turns object field state into snapshot-able captures
	// (defaults to codec.JSON; codec.CBOR is the binary alternative).
	Codec core.Codec

	// Logger (defaults to NoOp logger if nil).
	Logger logging.Logger
}

// Resettables is the high-level façade aggregating the lifecycle controller
// and its collaborators.
type Resettables struct {
	opts Options
	ctrl *lifecycle.Controller
}

// New creates a Resettables instance for the given type catalog with
// optional overrides. Any unset collaborator is initialized with an
// in-memory implementation.
func New(catalog core.TypeCatalog, optFns ...func(o *Options)) *Resettables {
	opts := Options{
		ObjectStore: store.NewInMemoryStore(),
		SnapshotKV:  snapshot.NewMemoryKV(),
		Codec:       codec.JSON{},
		Logger:      logging.NoOpLogger{},
	}

	for _, fn := range optFns {
		fn(&opts)
	}

	ctrl := lifecycle.New(lifecycle.Options{
		ObjectStore: opts.ObjectStore,
		Catalog:     catalog,
		SnapshotKV:  opts.SnapshotKV,
		Codec:       opts.Codec,
		Logger:      opts.Logger,
	})

	return &Resettables{opts: opts, ctrl: ctrl}
}

// BeginSession captures resettable state and activates the session.
func (r *Resettables) BeginSession() error { return r.ctrl.BeginSession() }

// EndSession restores resettable state and deactivates the session.
func (r *Resettables) EndSession() error { return r.ctrl.EndSession() }

// Active reports whether a session is currently running.
func (r *Resettables) Active() bool { return r.ctrl.Active() }

// OnDelete is the delete interception hook for hosts that drive their own
// store deletes. It records resettable deletions during an active session
// and never blocks the actual deletion.
func (r *Resettables) OnDelete(loc core.Location) { r.ctrl.OnDelete(loc) }

// Delete routes a deletion through the interception hook and then performs
// the store delete, the way a hooked delete pathway behaves.
func (r *Resettables) Delete(loc core.Location) (bool, error) {
	r.ctrl.OnDelete(loc)
	return r.opts.ObjectStore.Delete(loc)
}

// Store returns the wired persistent object store.
func (r *Resettables) Store() core.ObjectStore { return r.opts.ObjectStore }
