// Package oddnum provides OddNum, an unsigned byte that is guaranteed to be odd.
//
// An OddNum can only be obtained through New or Parse, both of which reject even values.
// Text and keyed decoders (JSON, YAML, protobuf and plain maps) go through Parse, so they
// can never yield an even value either.
//
// Example:
//
//	n, err := oddnum.Parse("7")
//	fmt.Println(n, err) // 7 <nil>
//	_, err = oddnum.Parse("8")
//	fmt.Println(errors.Is(err, oddnum.ErrWrongParity)) // true
package oddnum

import (
	"log"
	"strconv"
	"strings"
)

const (
	// ErrNotANumber is returned when text is not a decimal integer in the range of a uint8.
	ErrNotANumber = InvalidOddNumError("not a number")
	// ErrWrongParity is returned when an integer is even.
	ErrWrongParity = InvalidOddNumError("was even, expected odd")
)

// InvalidOddNumError is returned when a value cannot be turned into an OddNum.
// It only ever takes the values ErrNotANumber and ErrWrongParity.
type InvalidOddNumError string

func (e InvalidOddNumError) Error() string { return string(e) }

// OddNum is an odd integer in the range of a uint8.
//
// The zero value holds 0 and is not a valid OddNum; marshaling it fails.
type OddNum struct {
	n uint8
}

// New returns the OddNum holding v.
// ErrWrongParity is returned if v is even.
func New(v uint8) (OddNum, error) {
	if v%2 == 0 {
		return OddNum{}, ErrWrongParity
	}
	return OddNum{n: v}, nil
}

// MustNew is like New but panics if v is even.
func MustNew(v uint8) OddNum {
	o, err := New(v)
	if err != nil {
		log.Panicf("oddnum: New(%d): %v", v, err)
	}
	return o
}

// Parse parses the base-10 text form of an OddNum.
//
// The text must be a decimal integer in [0, 255], optionally prefixed by a single '+'.
// ErrNotANumber is returned if it is not, and ErrWrongParity if it is even.
// The format is always checked before the parity.
func Parse(s string) (OddNum, error) {
	v, err := strconv.ParseUint(strings.TrimPrefix(s, "+"), 10, 8)
	if err != nil {
		return OddNum{}, ErrNotANumber
	}
	return New(uint8(v))
}

// MustParse is like Parse but panics if s is not a valid OddNum.
func MustParse(s string) OddNum {
	o, err := Parse(s)
	if err != nil {
		log.Panicf("oddnum: Parse(%q): %v", s, err)
	}
	return o
}

// Uint8 returns the held value.
func (o OddNum) Uint8() uint8 {
	return o.n
}

// IsZero reports whether o is the zero value, i.e. was not built by New or Parse.
func (o OddNum) IsZero() bool {
	return o.n == 0
}

// String returns the canonical decimal form of o, the inverse of Parse.
func (o OddNum) String() string {
	return strconv.FormatUint(uint64(o.n), 10)
}

// validate guards marshalers against the zero value, the only OddNum not built by New.
func (o OddNum) validate() error {
	if o.IsZero() {
		return ErrWrongParity
	}
	return nil
}

// MarshalText implements encoding.TextMarshaler.
func (o OddNum) MarshalText() ([]byte, error) {
	if err := o.validate(); err != nil {
		return nil, err
	}
	return []byte(o.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler.
func (o *OddNum) UnmarshalText(text []byte) error {
	v, err := Parse(string(text))
	if err != nil {
		return err
	}
	*o = v
	return nil
}
