package encoder

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
)

// CBOREncoder implements Codec using github.com/fxamacker/cbor/v2.
// RecordMarshaler and RecordUnmarshaler values are encoded as a CBOR map of their record.
type CBOREncoder struct{}

func (CBOREncoder) Marshal(v any) ([]byte, error) {
	if rm, ok := v.(RecordMarshaler); ok {
		m, err := rm.MarshalRecord()
		if err != nil {
			return nil, err
		}
		v = m
	}
	data, err := cbor.Marshal(v)
	if err != nil {
		return nil, fmt.Errorf("encoder: cbor: %w", err)
	}
	return data, nil
}

func (CBOREncoder) Unmarshal(data []byte, out any) error {
	ru, ok := out.(RecordUnmarshaler)
	if !ok {
		if err := cbor.Unmarshal(data, out); err != nil {
			return fmt.Errorf("encoder: cbor: %w", err)
		}
		return nil
	}
	var m map[string]any
	if err := cbor.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("encoder: cbor: %w", err)
	}
	return ru.UnmarshalRecord(m)
}
