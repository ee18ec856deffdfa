package discover

import (
	"fmt"

	"github.com/darksailstudio/resettables/classify"
	"github.com/darksailstudio/resettables/core"
	"github.com/darksailstudio/resettables/track"
)

// Candidate pairs an object reference with its live instance. Instance is
// nil for ghosts, objects that were deleted during the session and exist
// only as tracker records.
type Candidate struct {
	Instance core.Instance
	Ref      core.ObjectRef
}

// Discovery computes the candidate set for a capture or restore pass.
type Discovery struct {
	store      core.ObjectStore
	catalog    core.TypeCatalog
	classifier *classify.Classifier
	tracker    *track.Tracker
}

// New wires a Discovery over the store, catalog, classifier and tracker.
func New(store core.ObjectStore, catalog core.TypeCatalog, classifier *classify.Classifier, tracker *track.Tracker) *Discovery {
	return &Discovery{store: store, catalog: catalog, classifier: classifier, tracker: tracker}
}

// Candidates returns every stored resettable object paired with its live
// instance and, when includeDeleted is set, every delete-tracked ghost
// paired with a nil instance. Results are deduplicated by identity with
// stored instances preceding ghosts, so a discard at a location always runs
// before a recreate at the same location within one restore pass.
func (d *Discovery) Candidates(includeDeleted bool) ([]Candidate, error) {
	seen := make(map[core.ObjectID]bool)
	var out []Candidate

	for _, t := range d.catalog.Types() {
		if !d.classifier.IsResettable(t) {
			continue
		}
		refs, err := d.store.Enumerate(t)
		if err != nil {
			return nil, fmt.Errorf("discover: enumerate %q: %w", t, err)
		}
		for _, ref := range refs {
			if seen[ref.ID] {
				continue
			}
			seen[ref.ID] = true
			inst, err := d.store.Load(ref.Location)
			if err != nil {
				return nil, fmt.Errorf("discover: load %q: %w", ref.Location, err)
			}
			if inst == nil {
				// Enumerated but gone by load time; the tracker record, if
				// any, covers it below.
				continue
			}
			out = append(out, Candidate{Instance: inst, Ref: ref})
		}
	}

	if includeDeleted {
		for _, rec := range d.tracker.Records() {
			if seen[rec.ID] {
				continue
			}
			seen[rec.ID] = true
			out = append(out, Candidate{Ref: core.ObjectRef{ID: rec.ID, Type: rec.Type, Location: rec.Location}})
		}
	}
	return out, nil
}
