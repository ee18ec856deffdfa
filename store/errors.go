package store

import "fmt"

var (
	// ErrLocationOccupied is returned by Create when an object already
	// exists at the requested location.
	ErrLocationOccupied = fmt.Errorf("location occupied")

	// ErrNotFound is returned by TypeAt when no object exists at the
	// location. Load deliberately returns (nil, nil) instead, per the
	// core.ObjectStore contract.
	ErrNotFound = fmt.Errorf("object not found")
)
