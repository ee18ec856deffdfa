package lifecycle

import (
	"fmt"
	"sync"

	"github.com/darksailstudio/resettables/classify"
	"github.com/darksailstudio/resettables/core"
	"github.com/darksailstudio/resettables/discover"
	"github.com/darksailstudio/resettables/logging"
	"github.com/darksailstudio/resettables/snapshot"
	"github.com/darksailstudio/resettables/track"
)

// State is the session lifecycle state. The process starts Inactive;
// transitions happen only through BeginSession and EndSession.
type State int

const (
	// Inactive means no session is running; deletes are not tracked.
	Inactive State = iota
	// Active means a session is running; resettable state is captured and
	// deletions of resettable objects are tracked.
	Active
)

// String returns the string representation of the state.
func (s State) String() string {
	if s == Active {
		return "active"
	}
	return "inactive"
}

// Options configures construction of a Controller. ObjectStore, Catalog,
// SnapshotKV and Codec are required; Logger defaults to a no-op.
type Options struct {
	ObjectStore core.ObjectStore
	Catalog     core.TypeCatalog
	SnapshotKV  core.KV
	Codec       core.Codec
	Logger      logging.Logger
}

// Controller owns the session state machine and drives discovery, the
// snapshot store and the delete tracker through the capture and restore
// passes. All work happens synchronously inside the caller's control path;
// the mutex makes the single-caller invariant enforced rather than assumed.
type Controller struct {
	mu         sync.Mutex
	state      State
	store      core.ObjectStore
	codec      core.Codec
	classifier *classify.Classifier
	tracker    *track.Tracker
	snapshots  *snapshot.Store
	discovery  *discover.Discovery
	logger     logging.Logger
}

// New wires a Controller from the given options.
func New(opts Options) *Controller {
	if opts.Logger == nil {
		opts.Logger = logging.NoOpLogger{}
	}
	classifier := classify.New(opts.Catalog)
	tracker := track.NewTracker()
	return &Controller{
		store:      opts.ObjectStore,
		codec:      opts.Codec,
		classifier: classifier,
		tracker:    tracker,
		snapshots:  snapshot.NewStore(opts.SnapshotKV),
		discovery:  discover.New(opts.ObjectStore, opts.Catalog, classifier, tracker),
		logger:     opts.Logger,
	}
}

// Active reports whether a session is currently running.
func (c *Controller) Active() bool {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state == Active
}

// Tracker exposes the delete tracker for inspection. Only the controller
// and its delete hook mutate it.
func (c *Controller) Tracker() *track.Tracker {
	return c.tracker
}

// BeginSession captures the serialized state of every resettable object and
// transitions to Active. A start signal received while a session is already
// active is invalid and ignored.
func (c *Controller) BeginSession() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state == Active {
		c.logger.Warn("session start ignored", "state", c.state.String())
		return nil
	}

	// Deletions cannot have occurred yet, so ghosts are excluded and every
	// candidate carries a live instance.
	cands, err := c.discovery.Candidates(false)
	if err != nil {
		return fmt.Errorf("lifecycle: begin session: %w", err)
	}
	for _, cand := range cands {
		state, err := c.codec.Encode(cand.Instance)
		if err != nil {
			return fmt.Errorf("lifecycle: capture %q: %w", cand.Ref.ID, err)
		}
		if err := c.snapshots.Capture(cand.Ref, state); err != nil {
			return fmt.Errorf("lifecycle: begin session: %w", err)
		}
	}

	// Transition only after the capture pass: a failed capture leaves the
	// session inactive and the next begin re-captures from scratch.
	c.state = Active
	c.logger.Info("session started", "objects", len(cands))
	return nil
}

// EndSession consumes every captured snapshot and applies the restore
// policy, then transitions to Inactive. An end signal received while no
// session is active is invalid and ignored.
//
// The delete tracker is cleared and the Inactive transition performed
// unconditionally, even when an individual object's restore fails and
// aborts the remainder of the pass; stale tracking must never bleed into
// the next session.
func (c *Controller) EndSession() (err error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Active {
		c.logger.Warn("session end ignored", "state", c.state.String())
		return nil
	}

	defer func() {
		c.tracker.Clear()
		c.state = Inactive
		c.logger.Info("session ended", "error", err != nil)
	}()

	cands, err := c.discovery.Candidates(true)
	if err != nil {
		return fmt.Errorf("lifecycle: end session: %w", err)
	}
	for _, cand := range cands {
		if err = c.restore(cand); err != nil {
			return err
		}
	}
	return nil
}

// OnDelete is the delete interception hook. The host calls it from the
// store's delete pathway; it never blocks or performs the deletion itself,
// it only records resettable deletions while a session is active so the
// object can be recreated at session end.
func (c *Controller) OnDelete(loc core.Location) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if c.state != Active {
		return
	}
	t, err := c.store.TypeAt(loc)
	if err != nil || !c.classifier.IsResettable(t) {
		return
	}
	inst, err := c.store.Load(loc)
	if err != nil || inst == nil {
		return
	}
	c.tracker.Record(track.DeletionRecord{ID: inst.Ref().ID, Type: t, Location: loc})
	c.logger.Debug("tracked deletion", "id", string(inst.Ref().ID), "location", string(loc))
}

// restore applies the per-object policy for one discovery candidate. The
// snapshot entry is consumed (read and erased in one step) before any action
// runs, so a crash mid-pass cannot double-restore on retry.
//
//	snapshot | instance | action
//	absent   | live     | discard: the object appeared during the session
//	absent   | ghost    | skip: nothing captured, nothing to restore
//	present  | ghost    | recreate at the recorded location, then decode
//	present  | live     | reset: decode into the live instance in place
//
// Presence decides, not the value: an empty captured state is a real
// snapshot and resets rather than discards.
func (c *Controller) restore(cand discover.Candidate) error {
	state, ok, err := c.snapshots.Consume(cand.Ref.ID)
	if err != nil {
		return fmt.Errorf("lifecycle: restore %q: %w", cand.Ref.ID, err)
	}

	switch {
	case !ok && cand.Instance == nil:
		c.logger.Debug("restore skipped", "id", string(cand.Ref.ID))
		return nil

	case !ok:
		if _, err := c.store.Delete(cand.Ref.Location); err != nil {
			return fmt.Errorf("lifecycle: discard %q: %w", cand.Ref.Location, err)
		}
		c.logger.Debug("discarded session-created object", "id", string(cand.Ref.ID), "location", string(cand.Ref.Location))
		return nil

	case cand.Instance == nil:
		inst, err := c.store.Create(cand.Ref.Type, cand.Ref.Location)
		if err != nil {
			return fmt.Errorf("lifecycle: recreate %q: %w", cand.Ref.Location, err)
		}
		if err := c.codec.Decode(inst, state); err != nil {
			return fmt.Errorf("lifecycle: recreate %q: %w", cand.Ref.Location, err)
		}
		c.logger.Debug("recreated deleted object", "id", string(cand.Ref.ID), "location", string(cand.Ref.Location))
		return nil

	default:
		if err := c.codec.Decode(cand.Instance, state); err != nil {
			return fmt.Errorf("lifecycle: reset %q: %w", cand.Ref.ID, err)
		}
		c.logger.Debug("reset object", "id", string(cand.Ref.ID))
		return nil
	}
}
