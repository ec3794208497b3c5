package buf

import (
	"fmt"
	"math"
)

// AddOverflowSafe adds a and b, returning ok = false when the result would overflow int.
func AddOverflowSafe(a, b int) (int, bool) {
	switch {
	case b > 0 && a > math.MaxInt-b:
		return 0, false
	case b < 0 && a < math.MinInt-b:
		return 0, false
	default:
		return a + b, true
	}
}

// MulOverflowSafe multiplies a and b, returning ok = false when the result would overflow int.
// This is essential for count * recordLength calculations in record reads.
func MulOverflowSafe(a, b int) (int, bool) {
	if a == 0 || b == 0 {
		return 0, true
	}
	// For positive numbers, check if result would overflow
	if a > 0 && b > 0 {
		if a > math.MaxInt/b {
			return 0, false
		}
	}
	// For negative numbers
	if a < 0 && b < 0 {
		if a < math.MaxInt/b {
			return 0, false
		}
	}
	// Mixed signs - check against MinInt
	if a > 0 && b < 0 {
		if b < math.MinInt/a {
			return 0, false
		}
	}
	if a < 0 && b > 0 {
		if a < math.MinInt/b {
			return 0, false
		}
	}
	return a * b, true
}

// CheckRecordBounds validates that count records of recordLength bytes fit in a
// buffer starting at offset. Returns the end offset if valid, or an error
// describing the specific failure (overflow or out of bounds).
//
// This is the recommended way to validate a record window before slicing:
//
//	endOff, err := buf.CheckRecordBounds(len(data), offset, count, recLen)
//	if err != nil {
//	    return fmt.Errorf("records: %w", err)
//	}
//	// Safe to slice from offset to endOff
func CheckRecordBounds(bufLen, offset, count, recordLength int) (int, error) {
	if offset < 0 {
		return 0, fmt.Errorf("negative offset: %d", offset)
	}
	if count < 0 {
		return 0, fmt.Errorf("negative count: %d", count)
	}
	if recordLength < 0 {
		return 0, fmt.Errorf("negative record length: %d", recordLength)
	}

	// Check count * recordLength for overflow
	totalSize, ok := MulOverflowSafe(count, recordLength)
	if !ok {
		return 0, fmt.Errorf("overflow: count=%d * reclen=%d", count, recordLength)
	}

	// Check offset + totalSize for overflow
	endOffset, ok := AddOverflowSafe(offset, totalSize)
	if !ok {
		return 0, fmt.Errorf("overflow: offset=%d + size=%d", offset, totalSize)
	}

	// Check bounds
	if endOffset > bufLen {
		return 0, fmt.Errorf("bounds: end=%d > len=%d", endOffset, bufLen)
	}

	return endOffset, nil
}
