package codec

import (
	"encoding/json"
	"fmt"

	"github.com/darksailstudio/resettables/core"
)

// JSON captures field state as a JSON object. Map keys are emitted sorted,
// so equal field state always produces an identical capture.
type JSON struct{}

// Encode serializes the instance's field state.
func (JSON) Encode(inst core.Instance) (string, error) {
	data, err := json.Marshal(inst.Fields())
	if err != nil {
		return "", fmt.Errorf("codec: encode %q: %w", inst.Ref().ID, err)
	}
	return string(data), nil
}

// Decode overwrites the instance's field state from a capture.
func (JSON) Decode(inst core.Instance, state string) error {
	var fields map[string]any
	if err := json.Unmarshal([]byte(state), &fields); err != nil {
		return fmt.Errorf("codec: decode %q: %w", inst.Ref().ID, err)
	}
	inst.SetFields(fields)
	return nil
}
