package dump

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/require"
	"golang.org/x/text/encoding/charmap"

	"github.com/zoskit/ipcskit/internal/format"
	"github.com/zoskit/ipcskit/pkg/types"
)

// forty bytes: two and a half records of sixteen.
func shortRecordData() []byte {
	data := make([]byte, 40)
	for i := range data {
		data[i] = byte(i)
	}
	return data
}

func TestFileSourceReadRecords(t *testing.T) {
	data := shortRecordData()
	path := filepath.Join(t.TempDir(), "dump.bin")
	require.NoError(t, os.WriteFile(path, data, 0o644))

	src, err := OpenFile(path, 16)
	require.NoError(t, err)
	defer src.Close()
	require.Equal(t, 16, src.RecordLength())

	got, err := src.ReadRecords(0, 2)
	require.NoError(t, err)
	require.Equal(t, data[:32], got)

	// A window past the data keeps whole records and drops the partial tail.
	got, err = src.ReadRecords(1, 2)
	require.NoError(t, err)
	require.Equal(t, data[16:32], got)

	got, err = src.ReadRecords(0, 3)
	require.NoError(t, err)
	require.Equal(t, data[:32], got)

	got, err = src.ReadRecords(5, 1)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = src.ReadRecords(-1, 1)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
	_, err = src.ReadRecords(0, -1)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
}

func TestOpenFileDefaultRecordLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "dump.bin")
	require.NoError(t, os.WriteFile(path, nil, 0o644))

	src, err := OpenFile(path, 0)
	require.NoError(t, err)
	defer src.Close()
	require.Equal(t, format.RecordLength, src.RecordLength())
}

func TestOpenFileMissing(t *testing.T) {
	_, err := OpenFile(filepath.Join(t.TempDir(), "no-such-dump"), 0)
	require.Error(t, err)
}

func TestBytesSourceReadRecords(t *testing.T) {
	data := shortRecordData()
	src := NewBytesSource(data, 16)
	require.Equal(t, 16, src.RecordLength())

	got, err := src.ReadRecords(0, 2)
	require.NoError(t, err)
	require.Equal(t, data[:32], got)

	got, err = src.ReadRecords(1, 1)
	require.NoError(t, err)
	require.Equal(t, data[16:32], got)

	// Counts clamp to the whole records present.
	got, err = src.ReadRecords(0, 10)
	require.NoError(t, err)
	require.Equal(t, data[:32], got)

	got, err = src.ReadRecords(2, 1)
	require.NoError(t, err)
	require.Empty(t, got)

	_, err = src.ReadRecords(-1, 1)
	require.ErrorIs(t, err, types.ErrInvalidArgument)
	_, err = src.ReadRecords(0, -1)
	require.ErrorIs(t, err, types.ErrInvalidArgument)

	require.Equal(t, format.RecordLength, NewBytesSource(nil, 0).RecordLength())
}

func TestReadHeaderFromFile(t *testing.T) {
	raw := defaultImage().build(t)
	path := filepath.Join(t.TempDir(), "slip.dump")
	require.NoError(t, os.WriteFile(path, raw, 0o644))

	src, err := OpenFile(path, 0)
	require.NoError(t, err)
	defer src.Close()

	h, err := ReadHeader(src, charmap.CodePage1047)
	require.NoError(t, err)
	require.Equal(t, TypeSLIP, h.Type)
	require.Equal(t, "SY1", h.Sysname)

	want, err := DecodeHeader(raw, charmap.CodePage1047)
	require.NoError(t, err)
	require.Equal(t, want, h)
}
