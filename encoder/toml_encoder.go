package encoder

import (
	"bytes"
	"fmt"

	"github.com/BurntSushi/toml"
)

// TOMLEncoder implements Codec using github.com/BurntSushi/toml.
//
// A TOML document is always a table, so RecordMarshaler and RecordUnmarshaler values are
// encoded as their keyed record. Other values are handed to toml as is.
type TOMLEncoder struct{}

func (TOMLEncoder) Marshal(v any) ([]byte, error) {
	if rm, ok := v.(RecordMarshaler); ok {
		m, err := rm.MarshalRecord()
		if err != nil {
			return nil, err
		}
		v = m
	}
	var buf bytes.Buffer
	if err := toml.NewEncoder(&buf).Encode(v); err != nil {
		return nil, fmt.Errorf("encoder: toml: %w", err)
	}
	return buf.Bytes(), nil
}

func (TOMLEncoder) Unmarshal(data []byte, out any) error {
	ru, ok := out.(RecordUnmarshaler)
	if !ok {
		if err := toml.Unmarshal(data, out); err != nil {
			return fmt.Errorf("encoder: toml: %w", err)
		}
		return nil
	}
	var m map[string]any
	if err := toml.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("encoder: toml: %w", err)
	}
	return ru.UnmarshalRecord(m)
}
