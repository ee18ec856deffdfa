// Package discover enumerates the current universe of resettable objects:
// every stored object whose type classifies as resettable, deduplicated by
// identity, optionally unioned with the delete-tracked ghosts of objects
// removed during the active session. The lifecycle controller runs the same
// discovery at session start (instances only) and session end (full union).
package discover
