// Package psw interprets program status words as IPCS reports them. Dumps
// carry the full 128-bit PSW; analysis output folds it into the classic
// 64-bit form first ("scrunching") and reads the state fields out of that.
package psw

import (
	"encoding/json"
	"fmt"

	"github.com/zoskit/ipcskit/hex"
	"github.com/zoskit/ipcskit/pkg/types"
)

// Enablement describes the PSW's interrupt mask: I/O and external
// interrupts both enabled, both disabled, or one of each.
type Enablement int

const (
	Disabled Enablement = iota
	Enabled
	PartiallyEnabled
)

func (e Enablement) String() string {
	switch e {
	case Enabled:
		return "ENABLED"
	case PartiallyEnabled:
		return "PARTIALLY ENABLED"
	default:
		return "DISABLED"
	}
}

// MarshalJSON renders the enablement as its name.
func (e Enablement) MarshalJSON() ([]byte, error) {
	return json.Marshal(e.String())
}

// ASCMode is the address-space control mode selected by PSW bits 16-17.
type ASCMode int

const (
	ModePrimary ASCMode = iota
	ModeAR
	ModeSecondary
	ModeHome
)

func (m ASCMode) String() string {
	switch m {
	case ModeAR:
		return "AR"
	case ModeSecondary:
		return "SECONDARY"
	case ModeHome:
		return "HOME"
	default:
		return "PRIMARY"
	}
}

// MarshalJSON renders the mode as its name.
func (m ASCMode) MarshalJSON() ([]byte, error) {
	return json.Marshal(m.String())
}

// Info is the decoded state of a PSW.
type Info struct {
	Enabled    Enablement `json:"enabled"`
	Key        int        `json:"key"` // storage protection key, 0-15
	Privileged bool       `json:"privileged"`
	ASC        ASCMode    `json:"asc_mode"`
	CC         int        `json:"cc"` // condition code, 0-3
	// AMode is the addressing mode: 24, 31, or 64. The bit combination with
	// no defined mode decodes as 0.
	AMode int `json:"amode"`
	// InstrAddr is the instruction address word, padded to its full width.
	InstrAddr hex.Value `json:"instr_addr"`
}

// Scrunch folds a 128-bit PSW into the 64-bit form IPCS reports: the
// extended-addressing bit is turned on in the first word, and the low half's
// address word is or-ed into the second. A 64-bit PSW passes through
// unchanged; any other width is an error.
func Scrunch(v hex.Value) (hex.Value, error) {
	if v.Negative() {
		return hex.Value{}, fmt.Errorf("psw: negative value %s: %w", v, types.ErrInvalidArgument)
	}
	switch v.BitLen() {
	case 64:
		return v, nil
	case 128:
	default:
		return hex.Value{}, fmt.Errorf("psw: %d-bit value %s: %w", v.BitLen(), v, types.ErrInvalidArgument)
	}
	ext, err := v.SetBit(12, hex.FromLeft)
	if err != nil {
		return hex.Value{}, err
	}
	w0, err := ext.Word(0, hex.FromLeft)
	if err != nil {
		return hex.Value{}, err
	}
	w1, err := ext.Word(1, hex.FromLeft)
	if err != nil {
		return hex.Value{}, err
	}
	w3, err := ext.Word(3, hex.FromLeft)
	if err != nil {
		return hex.Value{}, err
	}
	return w0.Concat(w1.Or(w3)), nil
}

// Parse decodes a PSW's state fields. Both the 64-bit scrunched form and
// the raw 128-bit form are accepted.
func Parse(v hex.Value) (Info, error) {
	s, err := Scrunch(v)
	if err != nil {
		return Info{}, err
	}
	addr, err := s.Word(1, hex.FromLeft)
	if err != nil {
		return Info{}, err
	}
	addr, err = addr.ClearBit(0, hex.FromLeft)
	if err != nil {
		return Info{}, err
	}

	u := s.BigInt().Uint64()
	bit := func(pos int) bool { return u>>(63-pos)&1 == 1 }

	info := Info{
		Key:        int(u >> 52 & 0xF),
		Privileged: !bit(15),
		CC:         int(u >> 44 & 0x3),
		InstrAddr:  addr,
	}

	switch {
	case bit(6) && bit(7):
		info.Enabled = Enabled
	case bit(6) || bit(7):
		info.Enabled = PartiallyEnabled
	default:
		info.Enabled = Disabled
	}

	switch {
	case bit(16) && bit(17):
		info.ASC = ModeHome
	case bit(16):
		info.ASC = ModeSecondary
	case bit(17):
		info.ASC = ModeAR
	default:
		info.ASC = ModePrimary
	}

	switch {
	case bit(31) && bit(32):
		info.AMode = 64
	case bit(32):
		info.AMode = 31
	case !bit(31):
		info.AMode = 24
	}
	return info, nil
}
