// Package lifecycle orchestrates the session state machine that gives
// resettable persistent objects transient semantics. BeginSession captures
// the serialized state of every resettable object; OnDelete records
// resettable deletions while the session is active; EndSession replays the
// captured state, recreating deleted objects, resetting mutated ones and
// discarding objects that appeared during the session.
//
// The controller is the single owner of the snapshot store and the delete
// tracker. Out-of-order lifecycle signals (a start while active, an end
// while inactive) are ignored with a warning, so a double capture or an
// unmatched restore cannot occur. The delete tracker is cleared on every
// end pass unconditionally, even when a restore step fails part way.
package lifecycle
