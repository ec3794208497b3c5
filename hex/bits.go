package hex

import (
	"fmt"

	"github.com/zoskit/ipcskit/pkg/types"
)

// BitLen returns the width in bits, leading zeros included: four bits per
// digit.
func (v Value) BitLen() int { return len(v.digs()) * 4 }

// MinBitLen returns the magnitude's bit length with leading zeros ignored;
// zero values report 0.
func (v Value) MinBitLen() int { return v.magBig().BitLen() }

// Bit reports whether the bit at pos is set. Positions count from the origin:
// bit 0 from the left is the high bit of the first digit.
func (v Value) Bit(pos int, from Origin) (bool, error) {
	idx, mask, err := v.bitAt(pos, from)
	if err != nil {
		return false, err
	}
	return digitValue(v.digs()[idx])&mask != 0, nil
}

// SetBit returns a copy with the bit at pos turned on. Width and sign are
// preserved.
func (v Value) SetBit(pos int, from Origin) (Value, error) {
	idx, mask, err := v.bitAt(pos, from)
	if err != nil {
		return Value{}, err
	}
	d := []byte(v.digs())
	d[idx] = hexDigits[digitValue(d[idx])|mask]
	return newValue(v.neg, string(d)), nil
}

// ClearBit returns a copy with the bit at pos turned off. Width is preserved;
// a value cleared to zero drops its sign.
func (v Value) ClearBit(pos int, from Origin) (Value, error) {
	idx, mask, err := v.bitAt(pos, from)
	if err != nil {
		return Value{}, err
	}
	d := []byte(v.digs())
	d[idx] = hexDigits[digitValue(d[idx])&^mask]
	return newValue(v.neg, string(d)), nil
}

// bitAt maps a bit position and origin to (digit index, in-digit mask).
func (v Value) bitAt(pos int, from Origin) (int, byte, error) {
	n := v.BitLen()
	p := pos
	if from == FromRight {
		p = n - 1 - pos
	}
	if p < 0 || p >= n {
		return 0, 0, fmt.Errorf("hex: bit %d of %d: %w", pos, n, types.ErrOutOfBounds)
	}
	return p / 4, 1 << (3 - p%4), nil
}
