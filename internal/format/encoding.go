package format

import (
	"encoding/binary"

	"golang.org/x/text/encoding/charmap"
)

// Binary encoding utilities for big-endian integers and EBCDIC text.
//
// z/OS structures are big-endian throughout. These helpers exist mostly for
// tests and tools that synthesize header blocks; the decoder reads through
// internal/buf instead.

// PutU16 writes a uint16 value to the buffer at the specified offset in big-endian format.
func PutU16(b []byte, off int, v uint16) {
	binary.BigEndian.PutUint16(b[off:off+2], v)
}

// PutU32 writes a uint32 value to the buffer at the specified offset in big-endian format.
func PutU32(b []byte, off int, v uint32) {
	binary.BigEndian.PutUint32(b[off:off+4], v)
}

// PutU64 writes a uint64 value to the buffer at the specified offset in big-endian format.
func PutU64(b []byte, off int, v uint64) {
	binary.BigEndian.PutUint64(b[off:off+8], v)
}

// PutChars encodes s through cp starting at off, one byte per rune. Runes the
// code page cannot represent are written as 0x6F (EBCDIC '?').
func PutChars(b []byte, off int, cp *charmap.Charmap, s string) {
	i := 0
	for _, r := range s {
		eb, ok := cp.EncodeRune(r)
		if !ok {
			eb = 0x6F
		}
		b[off+i] = eb
		i++
	}
}

// FillChars writes n copies of the cp encoding of r starting at off. Useful
// for blank-padding fixed character fields.
func FillChars(b []byte, off, n int, cp *charmap.Charmap, r rune) {
	eb, ok := cp.EncodeRune(r)
	if !ok {
		eb = 0x6F
	}
	for i := 0; i < n; i++ {
		b[off+i] = eb
	}
}
