package format

import (
	"bytes"
	"fmt"
)

// FindBase locates the header record inside a raw block read from the front
// of a dump. The eyecatcher normally opens the first record; some dumps carry
// it at the start of the second record instead, and every field offset is
// relative to whichever record holds it. Returns the byte offset of that
// record within b.
//
//	Offset  Size  Description
//	------  ----  ----------------------------------------------------------
//	 0x000   5    0xC4 0xD9 0xF2 0x40 0xC8 ("DR2 H" in EBCDIC)
//	 0x024   1    Dump type code
//	 0x048   8    STCK value at dump time
//	 0x058   100  Dump title (EBCDIC)
//	 0x0CC   8    Dumped system name (EBCDIC)
//	 ...          (see consts.go for the full table)
func FindBase(b []byte) (int, error) {
	if HasSignature(b) {
		if len(b) < PRDMinSize {
			return 0, fmt.Errorf("dump header: %w", ErrTruncated)
		}
		return 0, nil
	}
	if len(b) > RecordLength && HasSignature(b[RecordLength:]) {
		if len(b) < RecordLength+PRDMinSize {
			return 0, fmt.Errorf("dump header: %w", ErrTruncated)
		}
		return RecordLength, nil
	}
	return 0, fmt.Errorf("dump header: %w", ErrSignatureMismatch)
}

// HasSignature reports whether b begins with the dump header eyecatcher.
func HasSignature(b []byte) bool {
	return len(b) >= PRDSignatureSize && bytes.Equal(b[:PRDSignatureSize], PRDSignature)
}
