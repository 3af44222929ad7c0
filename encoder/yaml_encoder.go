package encoder

import (
	"fmt"

	"gopkg.in/yaml.v3"
)

// YAMLEncoder implements Codec using gopkg.in/yaml.v3.
//
// RecordUnmarshaler values are decoded from their keyed record, so a null or empty
// document is rejected by the value instead of being skipped by yaml.v3.
type YAMLEncoder struct{}

func (YAMLEncoder) Marshal(v any) ([]byte, error) {
	data, err := yaml.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoder: yaml: %w", err)
	}
	return data, nil
}

func (YAMLEncoder) Unmarshal(data []byte, out any) error {
	ru, ok := out.(RecordUnmarshaler)
	if !ok {
		if err := yaml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("encoder: yaml: %w", err)
		}
		return nil
	}
	var m map[string]any
	if err := yaml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("encoder: yaml: %w", err)
	}
	return ru.UnmarshalRecord(m)
}
