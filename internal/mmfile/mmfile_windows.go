//go:build windows

package mmfile

import (
	"os"
)

// Map reads the entire file; the accessor behaves identically either way.
func Map(path string) (*Mapping, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	return &Mapping{Data: data}, nil
}

func release([]byte) error { return nil }
