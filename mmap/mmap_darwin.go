//go:build darwin

package mmap

import "golang.org/x/sys/unix"

// resize has no mremap to lean on: the mapping is unmapped, the file
// truncated or extended, and a fresh mapping created at the new size.
// The three steps are individually fallible and a failure partway leaves
// no mapping active.
func (m *Map) resize(newSize int64) error {
	if err := unix.Munmap(m.data); err != nil {
		m.invalidate()
		return &Error{Op: "munmap for resize", Err: err}
	}
	m.data = nil

	if err := unix.Ftruncate(m.fd, newSize); err != nil {
		m.invalidate()
		return &Error{Op: "ftruncate", Err: err}
	}

	// Resize only runs on writable mappings, so the fresh mapping is
	// always read-write.
	data, err := unix.Mmap(m.fd, 0, int(newSize), unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		m.invalidate()
		return &Error{Op: "mmap for resize", Err: err}
	}

	m.data = data
	m.size = newSize
	return nil
}
