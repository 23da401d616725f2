// Package mmap provides memory mappings that resize together with their
// backing file.
package mmap

// Map is an active memory mapping identified by its base slice, length and
// backing file descriptor. A Map has a single owner; after Close, or after
// any Resize error, the mapping is invalid and Data returns nil.
type Map struct {
	data     []byte
	fd       int   // Backing file descriptor (POSIX)
	size     int64 // Current mapped size
	writable bool  // True if mapped with write permission
	// Windows-specific handles (zero on POSIX)
	handle  uintptr // Backing file HANDLE
	mapping uintptr // File-mapping object handle
}

// Data returns the mapped byte slice, or nil if the mapping is invalid.
func (m *Map) Data() []byte {
	return m.data
}

// Size returns the current mapped size.
func (m *Map) Size() int64 {
	return m.size
}

// Writable returns true if the mapping has write permission.
func (m *Map) Writable() bool {
	return m.writable
}

// Resize grows or shrinks the mapping together with the backing file,
// which is truncated or zero-extended to newSize. The old mapping is
// consumed: on any error return, no mapping is active and the Map is
// invalid, regardless of which step failed. Resize must only be called on
// writable mappings.
func (m *Map) Resize(newSize int64) error {
	if m.data == nil {
		return ErrNotMapped
	}
	if !m.writable {
		return ErrReadOnly
	}
	if newSize <= 0 {
		return ErrInvalidSize
	}
	if newSize == m.size {
		return nil
	}
	return m.resize(newSize)
}

func (m *Map) invalidate() {
	m.data = nil
	m.size = 0
}

// Error represents an mmap error.
type Error struct {
	Op  string
	Err error
}

func (e *Error) Error() string {
	if e.Err != nil {
		return "mmap: " + e.Op + ": " + e.Err.Error()
	}
	return "mmap: " + e.Op
}

func (e *Error) Unwrap() error {
	return e.Err
}

// Common errors
var (
	ErrInvalidSize = &Error{Op: "invalid size"}
	ErrNotMapped   = &Error{Op: "not mapped"}
	ErrReadOnly    = &Error{Op: "mapping is read-only"}
)
