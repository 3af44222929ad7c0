package oddnum

import (
	"encoding/json"
	"fmt"

	"github.com/mitchellh/mapstructure"
	"google.golang.org/protobuf/proto"
	"google.golang.org/protobuf/types/known/structpb"
	"gopkg.in/yaml.v3"
)

// RecordField is the single field of the keyed representation of an OddNum.
//
// Keyed structure:
//
//	{"n": "<decimal text>"}
//
// The value is always text, never a native number.
const RecordField = "n"

// record is the decoded form of a keyed OddNum. N is nil if the field is absent or null.
type record struct {
	N *string `mapstructure:"n"`
}

// MarshalRecord returns the keyed representation of o.
func (o OddNum) MarshalRecord() (map[string]any, error) {
	if err := o.validate(); err != nil {
		return nil, fmt.Errorf("oddnum: %w", err)
	}
	return map[string]any{RecordField: o.String()}, nil
}

// UnmarshalRecord decodes the keyed representation of an OddNum into o.
// The field must be present and hold text, which is then run through Parse.
// o is left unchanged on error.
func (o *OddNum) UnmarshalRecord(m map[string]any) error {
	var rec record
	if err := mapstructure.Decode(m, &rec); err != nil {
		return fmt.Errorf("oddnum: failed to decode record: %w", err)
	}
	if rec.N == nil {
		return fmt.Errorf("oddnum: missing field %q", RecordField)
	}
	v, err := Parse(*rec.N)
	if err != nil {
		return fmt.Errorf("oddnum: field %q: %w", RecordField, err)
	}
	*o = v
	return nil
}

// MarshalJSON implements json.Marshaler.
func (o OddNum) MarshalJSON() ([]byte, error) {
	m, err := o.MarshalRecord()
	if err != nil {
		return nil, err
	}
	return json.Marshal(m)
}

// UnmarshalJSON implements json.Unmarshaler.
// A JSON null has no field "n" and is rejected like any other record missing it.
func (o *OddNum) UnmarshalJSON(data []byte) error {
	var m map[string]any
	if err := json.Unmarshal(data, &m); err != nil {
		return fmt.Errorf("oddnum: %w", err)
	}
	return o.UnmarshalRecord(m)
}

// MarshalYAML implements yaml.Marshaler.
func (o OddNum) MarshalYAML() (any, error) {
	return o.MarshalRecord()
}

// UnmarshalYAML implements yaml.Unmarshaler.
//
// yaml.v3 never calls it for a null node or an empty document, which leaves the target
// untouched. Decode through encoder.YAMLEncoder to have those rejected as a missing field.
func (o *OddNum) UnmarshalYAML(value *yaml.Node) error {
	var m map[string]any
	if err := value.Decode(&m); err != nil {
		return fmt.Errorf("oddnum: %w", err)
	}
	return o.UnmarshalRecord(m)
}

// MarshalProto marshals o into a protobuf Struct holding the keyed representation
// (implements encoder.ProtoMarshaler).
func (o OddNum) MarshalProto() ([]byte, error) {
	m, err := o.MarshalRecord()
	if err != nil {
		return nil, err
	}
	pbs, err := structpb.NewStruct(m)
	if err != nil {
		return nil, fmt.Errorf("oddnum: %w", err)
	}
	return proto.Marshal(pbs)
}

// UnmarshalProto unmarshals a protobuf Struct into o (implements encoder.ProtoUnmarshaler).
func (o *OddNum) UnmarshalProto(data []byte) error {
	pbs := &structpb.Struct{}
	if err := proto.Unmarshal(data, pbs); err != nil {
		return fmt.Errorf("oddnum: failed to unmarshal struct: %w", err)
	}
	return o.UnmarshalRecord(pbs.AsMap())
}
