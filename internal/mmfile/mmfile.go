// Package mmfile provides platform-specific helpers for memory-mapping dump
// and transcript files. Mappings are read-only views held open by an accessor
// for the life of the session, so Map returns a handle rather than a cleanup
// callback.
package mmfile

// Mapping is a read-only view of a file's contents. Data aliases the mapped
// region (or a heap copy on platforms without mmap) until Close.
type Mapping struct {
	Data []byte

	closed bool
}

// Close releases the mapping. Further calls are no-ops.
func (m *Mapping) Close() error {
	if m == nil || m.closed {
		return nil
	}
	m.closed = true
	data := m.Data
	m.Data = nil
	return release(data)
}
