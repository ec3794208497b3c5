package format

import "errors"

var (
	// ErrSignatureMismatch indicates a block had no DR2 eyecatcher.
	ErrSignatureMismatch = errors.New("format: signature mismatch")
	// ErrTruncated indicates the buffer lacked the bytes required for a structure.
	ErrTruncated = errors.New("format: truncated buffer")
)
