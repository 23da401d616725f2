//go:build linux

package mmap

import (
	"syscall"
	"unsafe"

	"golang.org/x/sys/unix"
)

// resize extends or truncates the backing file, then moves the mapping in
// one step with mremap(MREMAP_MAYMOVE).
func (m *Map) resize(newSize int64) error {
	const mremapMaymove = 1

	if err := unix.Ftruncate(m.fd, newSize); err != nil {
		m.invalidate()
		return &Error{Op: "ftruncate", Err: err}
	}

	newAddr, _, errno := syscall.Syscall6(
		syscall.SYS_MREMAP,
		uintptr(unsafe.Pointer(&m.data[0])),
		uintptr(m.size),
		uintptr(newSize),
		mremapMaymove,
		0, 0)
	if errno != 0 {
		m.invalidate()
		return &Error{Op: "mremap", Err: errno}
	}

	m.data = unsafe.Slice((*byte)(unsafe.Pointer(newAddr)), newSize)
	m.size = newSize
	return nil
}
