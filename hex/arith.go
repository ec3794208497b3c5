package hex

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/zoskit/ipcskit/pkg/types"
)

// Arithmetic and logical results keep the left operand's width: a result
// with fewer digits is zero-padded back out, a wider one keeps its natural
// width. The right operand's padding never matters.

// Add returns v + o.
func (v Value) Add(o Value) Value {
	return v.keepWidth(FromBigInt(new(big.Int).Add(v.signedBig(), o.signedBig())))
}

// Sub returns v - o.
func (v Value) Sub(o Value) Value {
	return v.keepWidth(FromBigInt(new(big.Int).Sub(v.signedBig(), o.signedBig())))
}

// Mul returns v * o.
func (v Value) Mul(o Value) Value {
	return v.keepWidth(FromBigInt(new(big.Int).Mul(v.signedBig(), o.signedBig())))
}

// Or returns the bitwise or of the numeric values. Negative operands behave
// as infinitely sign-extended two's complement.
func (v Value) Or(o Value) Value {
	return v.keepWidth(FromBigInt(new(big.Int).Or(v.signedBig(), o.signedBig())))
}

// And returns the bitwise and of the numeric values. Negative operands
// behave as infinitely sign-extended two's complement.
func (v Value) And(o Value) Value {
	return v.keepWidth(FromBigInt(new(big.Int).And(v.signedBig(), o.signedBig())))
}

// Div returns the quotient of v / o, rounded toward negative infinity.
func (v Value) Div(o Value) (Value, error) {
	q, _, err := v.floorQuoRem(o)
	if err != nil {
		return Value{}, err
	}
	return v.keepWidth(FromBigInt(q)), nil
}

// Mod returns the remainder of v / o; it takes the divisor's sign, matching
// the floored quotient of Div.
func (v Value) Mod(o Value) (Value, error) {
	_, r, err := v.floorQuoRem(o)
	if err != nil {
		return Value{}, err
	}
	return v.keepWidth(FromBigInt(r)), nil
}

func (v Value) floorQuoRem(o Value) (*big.Int, *big.Int, error) {
	y := o.signedBig()
	if y.Sign() == 0 {
		return nil, nil, fmt.Errorf("hex: divide %s by %s: %w", v, o, types.ErrDivideByZero)
	}
	q, r := new(big.Int), new(big.Int)
	q.QuoRem(v.signedBig(), y, r)
	// QuoRem truncates toward zero; shift to the floored form when the
	// remainder and divisor disagree in sign.
	if r.Sign() != 0 && r.Sign() != y.Sign() {
		q.Sub(q, big.NewInt(1))
		r.Add(r, y)
	}
	return q, r, nil
}

// Resize returns the value at exactly bits width. Growing zero-extends the
// magnitude. Shrinking masks the magnitude down to the low bits; existing
// padding is not preserved, so the result is the masked magnitude padded to
// ceil(bits/4) digits (minimum one). Sign survives unless the magnitude
// masks to zero.
func (v Value) Resize(bits int) (Value, error) {
	if bits < 0 {
		return Value{}, fmt.Errorf("hex: resize to %d bits: %w", bits, types.ErrInvalidArgument)
	}
	mag := v.magBig()
	if bits < mag.BitLen() {
		mask := new(big.Int).Lsh(big.NewInt(1), uint(bits))
		mask.Sub(mask, big.NewInt(1))
		mag.And(mag, mask)
	}
	d := strings.ToUpper(mag.Text(16))
	if n := (bits + 3) / 4; len(d) < n {
		d = strings.Repeat("0", n-len(d)) + d
	}
	return newValue(v.neg, d), nil
}

// Concat appends the others' digit strings to v's. Only v's sign survives.
func (v Value) Concat(others ...Value) Value {
	d := v.digs()
	for _, o := range others {
		d += o.digs()
	}
	return newValue(v.neg, d)
}

// keepWidth pads res back out to v's digit count when an operation produced
// a narrower result.
func (v Value) keepWidth(res Value) Value {
	if n := len(v.digs()); len(res.digs()) < n {
		res.digits = strings.Repeat("0", n-len(res.digs())) + res.digs()
	}
	return res
}
