package hex

import (
	"fmt"

	"github.com/zoskit/ipcskit/pkg/types"
)

// Origin selects which end of the digit string position 0 names. Storage
// layouts index fields from the left; register and low-order views index
// from the right.
type Origin int

const (
	FromLeft Origin = iota
	FromRight
)

// String implements the Stringer interface for Origin.
func (o Origin) String() string {
	if o == FromRight {
		return "from-right"
	}
	return "from-left"
}

// Nibble returns the i-th single digit. The result is unsigned.
func (v Value) Nibble(i int, from Origin) (Value, error) {
	return v.chunk(i, 1, from)
}

// Byte returns the i-th two-digit group. The result is unsigned.
func (v Value) Byte(i int, from Origin) (Value, error) {
	return v.chunk(i, 2, from)
}

// HalfWord returns the i-th four-digit group. The result is unsigned.
func (v Value) HalfWord(i int, from Origin) (Value, error) {
	return v.chunk(i, 4, from)
}

// Word returns the i-th eight-digit group. The result is unsigned.
func (v Value) Word(i int, from Origin) (Value, error) {
	return v.chunk(i, 8, from)
}

// Doubleword returns the i-th sixteen-digit group. The result is unsigned.
func (v Value) Doubleword(i int, from Origin) (Value, error) {
	return v.chunk(i, 16, from)
}

// chunk slices size digits at group index i. The window must lie fully
// inside the digit string; sign is not part of the result.
func (v Value) chunk(i, size int, from Origin) (Value, error) {
	d := v.digs()
	var start int
	if from == FromRight {
		start = len(d) - size - i*size
	} else {
		start = i * size
	}
	if i < 0 || start < 0 || start+size > len(d) {
		return Value{}, fmt.Errorf("hex: chunk %d of %d digits in %q: %w",
			i, size, d, types.ErrOutOfBounds)
	}
	return Value{digits: d[start : start+size]}, nil
}
