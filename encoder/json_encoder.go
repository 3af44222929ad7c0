package encoder

import (
	"encoding/json"
	"fmt"
)

// JSONEncoder implements Codec using encoding/json.
// Values control their own keyed form through json.Marshaler and json.Unmarshaler.
type JSONEncoder struct{}

func (JSONEncoder) Marshal(v any) ([]byte, error) {
	data, err := json.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoder: json: %w", err)
	}
	return data, nil
}

func (JSONEncoder) Unmarshal(data []byte, out any) error {
	if err := json.Unmarshal(data, out); err != nil {
		return fmt.Errorf("encoder: json: %w", err)
	}
	return nil
}
