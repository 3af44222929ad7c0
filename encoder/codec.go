// Package encoder provides codecs for exchanging values in keyed (structured) formats.
package encoder

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrUnknownFormat = errors.New("encoder: unknown format")
)

// Codec is implemented by every encoder in this package. Codecs are stateless and
// safe for concurrent use.
type Codec interface {
	Marshal(v any) ([]byte, error)
	Unmarshal(data []byte, out any) error
}

// RecordMarshaler is the interface implemented by types that can describe themselves
// as a keyed record.
type RecordMarshaler interface {
	MarshalRecord() (map[string]any, error)
}

// RecordUnmarshaler is the interface implemented by types that can decode a keyed
// record description of themselves.
type RecordUnmarshaler interface {
	UnmarshalRecord(map[string]any) error
}

// ForFormat returns the codec for the named format.
// Supported formats: json, yaml (or yml), toml, cbor and proto.
func ForFormat(name string) (Codec, error) {
	switch strings.ToLower(name) {
	case "json":
		return JSONEncoder{}, nil
	case "yaml", "yml":
		return YAMLEncoder{}, nil
	case "toml":
		return TOMLEncoder{}, nil
	case "cbor":
		return CBOREncoder{}, nil
	case "proto", "protobuf":
		return ProtoEncoder{}, nil
	default:
		return nil, fmt.Errorf("%w: %q", ErrUnknownFormat, name)
	}
}
