package dump

import (
	"fmt"
	"io"
	"os"

	"github.com/zoskit/ipcskit/internal/buf"
	"github.com/zoskit/ipcskit/internal/format"
	"github.com/zoskit/ipcskit/pkg/types"
)

// RecordSource reads fixed-length records from a dump dataset image.
type RecordSource interface {
	// ReadRecords returns count records starting at record first,
	// concatenated. A read reaching past the end returns the whole records
	// that exist; a trailing partial record is not served.
	ReadRecords(first, count int) ([]byte, error)
}

// FileSource reads records from a dump dataset copied to a file.
type FileSource struct {
	f      *os.File
	recLen int
}

// OpenFile opens path as a record source. A recLen at or below zero selects
// the standard dump record length.
func OpenFile(path string, recLen int) (*FileSource, error) {
	if recLen <= 0 {
		recLen = format.RecordLength
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	return &FileSource{f: f, recLen: recLen}, nil
}

// RecordLength returns the record length the source reads with.
func (s *FileSource) RecordLength() int { return s.recLen }

// Close closes the underlying file.
func (s *FileSource) Close() error { return s.f.Close() }

// ReadRecords implements RecordSource.
func (s *FileSource) ReadRecords(first, count int) ([]byte, error) {
	if first < 0 || count < 0 {
		return nil, fmt.Errorf("dump: read %d records at %d: %w", count, first, types.ErrInvalidArgument)
	}
	off, ok := buf.MulOverflowSafe(first, s.recLen)
	if !ok {
		return nil, fmt.Errorf("dump: record %d offset overflows: %w", first, types.ErrInvalidArgument)
	}
	size, ok := buf.MulOverflowSafe(count, s.recLen)
	if !ok {
		return nil, fmt.Errorf("dump: %d-record read overflows: %w", count, types.ErrInvalidArgument)
	}
	out := make([]byte, size)
	n, err := s.f.ReadAt(out, int64(off))
	if err != nil && err != io.EOF {
		return nil, err
	}
	n -= n % s.recLen
	return out[:n], nil
}

// BytesSource serves records from a dataset image already in memory.
type BytesSource struct {
	data   []byte
	recLen int
}

// NewBytesSource wraps data as a record source. A recLen at or below zero
// selects the standard dump record length.
func NewBytesSource(data []byte, recLen int) *BytesSource {
	if recLen <= 0 {
		recLen = format.RecordLength
	}
	return &BytesSource{data: data, recLen: recLen}
}

// RecordLength returns the record length the source reads with.
func (s *BytesSource) RecordLength() int { return s.recLen }

// ReadRecords implements RecordSource.
func (s *BytesSource) ReadRecords(first, count int) ([]byte, error) {
	if first < 0 || count < 0 {
		return nil, fmt.Errorf("dump: read %d records at %d: %w", count, first, types.ErrInvalidArgument)
	}
	if have := len(s.data) / s.recLen; count > have-first {
		count = have - first
	}
	if count <= 0 {
		return nil, nil
	}
	off := first * s.recLen
	end, err := buf.CheckRecordBounds(len(s.data), off, count, s.recLen)
	if err != nil {
		return nil, fmt.Errorf("dump: record window: %v: %w", err, types.ErrInvalidArgument)
	}
	return s.data[off:end], nil
}
