package core

// Codec turns an instance's serializable field state into a snapshot-able
// string and back. Decode overwrites the instance's fields in place without
// altering its identity, type or location. The capture format is opaque to
// the lifecycle machinery; hosts swap codecs at wiring time.
type Codec interface {
	Encode(inst Instance) (string, error)
	Decode(inst Instance, state string) error
}
