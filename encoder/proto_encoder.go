package encoder

import "fmt"

// ProtoMarshaler is the interface implemented by types that can marshal themselves into valid Protobuf.
type ProtoMarshaler interface {
	MarshalProto() ([]byte, error)
}

// ProtoUnmarshaler is the interface implemented by types that can unmarshal a Protobuf description of themselves.
type ProtoUnmarshaler interface {
	UnmarshalProto([]byte) error
}

// ProtoEncoder implements Codec for ProtoMarshaler and ProtoUnmarshaler values.
type ProtoEncoder struct{}

func (ProtoEncoder) Marshal(v any) ([]byte, error) {
	m, ok := v.(ProtoMarshaler)
	if !ok {
		return nil, fmt.Errorf("encoder: %T does not implement ProtoMarshaler", v)
	}
	return m.MarshalProto()
}

func (ProtoEncoder) Unmarshal(data []byte, out any) error {
	u, ok := out.(ProtoUnmarshaler)
	if !ok {
		return fmt.Errorf("encoder: %T does not implement ProtoUnmarshaler", out)
	}
	return u.UnmarshalProto(data)
}
