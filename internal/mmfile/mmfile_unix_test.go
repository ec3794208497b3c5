//go:build unix

package mmfile

import (
	"os"
	"path/filepath"
	"testing"
)

func TestMapReadOnlyUnix(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping mmap test in short mode")
	}
	dir := t.TempDir()
	path := filepath.Join(dir, "test.bin")
	want := []byte{0xde, 0xad, 0xbe, 0xef, 0x42}
	if err := os.WriteFile(path, want, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	defer func() {
		if closeErr := m.Close(); closeErr != nil {
			t.Fatalf("Close: %v", closeErr)
		}
	}()
	if len(m.Data) != len(want) {
		t.Fatalf("len mismatch: got %d want %d", len(m.Data), len(want))
	}
	for i, b := range want {
		if m.Data[i] != b {
			t.Fatalf("byte %d mismatch: got 0x%x want 0x%x", i, m.Data[i], b)
		}
	}
}

func TestMapReadOnlyUnixZeroLength(t *testing.T) {
	path := filepath.Join(t.TempDir(), "empty.bin")
	if err := os.WriteFile(path, nil, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if len(m.Data) != 0 {
		t.Fatalf("expected zero-length mapping, got %d", len(m.Data))
	}
	if err := m.Close(); err != nil {
		t.Fatalf("Close: %v", err)
	}
}

func TestMappingCloseIdempotent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "twice.bin")
	if err := os.WriteFile(path, []byte{1, 2, 3}, 0o644); err != nil {
		t.Fatalf("WriteFile: %v", err)
	}
	m, err := Map(path)
	if err != nil {
		t.Fatalf("Map: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("first Close: %v", err)
	}
	if err := m.Close(); err != nil {
		t.Fatalf("second Close should be a no-op: %v", err)
	}
	if m.Data != nil {
		t.Fatalf("Data should be nil after Close")
	}
}
