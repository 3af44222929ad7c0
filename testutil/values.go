package testutil

import "iter"

// OddBytes yields every odd uint8 in ascending order.
func OddBytes() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for v := 1; v <= 255; v += 2 {
			if !yield(uint8(v)) {
				return
			}
		}
	}
}

// EvenBytes yields every even uint8 in ascending order, starting at 0.
func EvenBytes() iter.Seq[uint8] {
	return func(yield func(uint8) bool) {
		for v := 0; v <= 254; v += 2 {
			if !yield(uint8(v)) {
				return
			}
		}
	}
}

// Record returns the keyed representation {"n": n}.
// n is kept as any so tests can build records holding non-text values.
func Record(n any) map[string]any {
	return map[string]any{"n": n}
}
