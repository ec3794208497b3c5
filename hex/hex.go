// Package hex implements the variable-width signed hexadecimal values that
// dump analysis traffics in: addresses, ASIDs, register contents, PSWs,
// storage keys. Unlike a plain integer, a Value remembers the exact digit
// string it was built from, so "00AB" stays four digits wide through
// formatting, bit addressing, and arithmetic.
//
// Values are immutable; every operation returns a new Value. The zero Value
// behaves as the single-digit number 0.
package hex

import (
	"encoding/json"
	"fmt"
	"math/big"
	"strings"

	"golang.org/x/text/encoding"

	"github.com/zoskit/ipcskit/pkg/types"
)

// Value is a signed hexadecimal scalar of arbitrary width. The digit string
// is kept verbatim (uppercase, leading zeros preserved); a zero magnitude is
// always positive.
//
// Comparisons with == are textual: "AB" and "00AB" are distinct Values that
// compare Equal numerically. Use Equal or Cmp for numeric comparison.
type Value struct {
	neg    bool
	digits string
}

const hexDigits = "0123456789ABCDEF"

// newValue normalizes sign against the digit string: a zero magnitude drops
// the sign.
func newValue(neg bool, digits string) Value {
	if neg {
		neg = false
		for i := 0; i < len(digits); i++ {
			if digits[i] != '0' {
				neg = true
				break
			}
		}
	}
	return Value{neg: neg, digits: digits}
}

// digs returns the digit string, mapping the zero Value to "0".
func (v Value) digs() string {
	if v.digits == "" {
		return "0"
	}
	return v.digits
}

// Parse converts text to a Value. All whitespace is removed, letters are
// uppercased, one leading "-" is taken as the sign, and a leading "0X" is
// dropped. The remaining text must be one or more hex digits.
func Parse(s string) (Value, error) {
	t := strings.ToUpper(strings.Join(strings.Fields(s), ""))
	neg := strings.HasPrefix(t, "-")
	t = strings.TrimPrefix(t, "-")
	t = strings.TrimPrefix(t, "0X")
	if t == "" {
		return Value{}, fmt.Errorf("hex: parse %q: %w", s, types.ErrInvalidValue)
	}
	for i := 0; i < len(t); i++ {
		if !strings.ContainsRune(hexDigits, rune(t[i])) {
			return Value{}, fmt.Errorf("hex: parse %q: %w", s, types.ErrInvalidValue)
		}
	}
	return newValue(neg, t), nil
}

// MustParse is Parse for literals in tests and tables; it panics on error.
func MustParse(s string) Value {
	v, err := Parse(s)
	if err != nil {
		panic(err)
	}
	return v
}

// FromInt converts an integer to a Value of minimal width.
func FromInt(i int64) Value {
	return FromBigInt(big.NewInt(i))
}

// FromBigInt converts a big integer to a Value of minimal width.
func FromBigInt(b *big.Int) Value {
	mag := new(big.Int).Abs(b)
	return newValue(b.Sign() < 0, strings.ToUpper(mag.Text(16)))
}

// FromBytes converts raw bytes to a positive Value, two digits per byte.
// An empty slice yields the zero Value.
func FromBytes(b []byte) Value {
	if len(b) == 0 {
		return Value{}
	}
	d := make([]byte, 0, len(b)*2)
	for _, by := range b {
		d = append(d, hexDigits[by>>4], hexDigits[by&0x0F])
	}
	return Value{digits: string(d)}
}

// String renders the value as its sign followed by the digit string,
// exactly as wide as it was built.
func (v Value) String() string {
	if v.neg {
		return "-" + v.digs()
	}
	return v.digs()
}

// Sign returns "-" for negative values and "" otherwise.
func (v Value) Sign() string {
	if v.neg {
		return "-"
	}
	return ""
}

// Negative reports whether the value is below zero.
func (v Value) Negative() bool { return v.neg }

// Unsigned returns the magnitude with the same padding.
func (v Value) Unsigned() Value { return Value{digits: v.digs()} }

// Digits returns the number of hex digits, padding included.
func (v Value) Digits() int { return len(v.digs()) }

// magBig returns the magnitude as a big integer.
func (v Value) magBig() *big.Int {
	b, _ := new(big.Int).SetString(v.digs(), 16)
	return b
}

// signedBig returns the numeric value as a big integer.
func (v Value) signedBig() *big.Int {
	b := v.magBig()
	if v.neg {
		b.Neg(b)
	}
	return b
}

// BigInt returns the numeric value. The result does not alias the Value.
func (v Value) BigInt() *big.Int { return v.signedBig() }

// Int64 returns the numeric value if it fits in an int64.
func (v Value) Int64() (int64, error) {
	b := v.signedBig()
	if !b.IsInt64() {
		return 0, fmt.Errorf("hex: %s: %w", v, types.ErrRange)
	}
	return b.Int64(), nil
}

// Cmp compares numeric values, ignoring padding: -1 if v < o, 0 if equal,
// +1 if v > o.
func (v Value) Cmp(o Value) int {
	return v.signedBig().Cmp(o.signedBig())
}

// Equal reports numeric equality, ignoring padding.
func (v Value) Equal(o Value) bool { return v.Cmp(o) == 0 }

// CharString decodes the digit pairs as bytes through enc and returns the
// text. A negative value, an odd digit count, or a decode failure yields ""
// rather than an error; undecodable bytes come back as the replacement rune.
func (v Value) CharString(enc encoding.Encoding) string {
	d := v.digs()
	if v.neg || len(d)%2 != 0 {
		return ""
	}
	raw := make([]byte, len(d)/2)
	for i := range raw {
		raw[i] = digitValue(d[2*i])<<4 | digitValue(d[2*i+1])
	}
	decoded, err := enc.NewDecoder().Bytes(raw)
	if err != nil {
		return ""
	}
	return string(decoded)
}

// MarshalJSON renders the value as its String form.
func (v Value) MarshalJSON() ([]byte, error) {
	return json.Marshal(v.String())
}

// UnmarshalJSON parses the String form.
func (v *Value) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*v = parsed
	return nil
}

func digitValue(c byte) byte {
	switch {
	case c >= '0' && c <= '9':
		return c - '0'
	default:
		return c - 'A' + 10
	}
}
