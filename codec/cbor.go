package codec

import (
	"fmt"

	"github.com/darksailstudio/resettables/core"
	"github.com/fxamacker/cbor/v2"
)

// encMode applies canonical encoding so equal field state always produces
// an identical capture, matching the JSON codec's determinism.
var encMode = func() cbor.EncMode {
	em, err := cbor.CanonicalEncOptions().EncMode()
	if err != nil {
		panic(err)
	}
	return em
}()

// CBOR captures field state as canonical CBOR (RFC 8949 deterministic
// encoding), stored as a raw byte string.
type CBOR struct{}

// Encode serializes the instance's field state.
func (CBOR) Encode(inst core.Instance) (string, error) {
	data, err := encMode.Marshal(inst.Fields())
	if err != nil {
		return "", fmt.Errorf("codec: encode %q: %w", inst.Ref().ID, err)
	}
	return string(data), nil
}

// Decode overwrites the instance's field state from a capture.
func (CBOR) Decode(inst core.Instance, state string) error {
	var fields map[string]any
	if err := cbor.Unmarshal([]byte(state), &fields); err != nil {
		return fmt.Errorf("codec: decode %q: %w", inst.Ref().ID, err)
	}
	inst.SetFields(fields)
	return nil
}
