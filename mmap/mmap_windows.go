//go:build windows

package mmap

import (
	"unsafe"

	"golang.org/x/sys/windows"
)

// New maps length bytes of the file behind the given handle, starting at
// offset zero.
func New(handle windows.Handle, length int64, writable bool) (*Map, error) {
	if length <= 0 {
		return nil, ErrInvalidSize
	}

	prot := uint32(windows.PAGE_READONLY)
	access := uint32(windows.FILE_MAP_READ)
	if writable {
		prot = windows.PAGE_READWRITE
		access = windows.FILE_MAP_WRITE
	}

	mapping, err := windows.CreateFileMapping(handle, nil, prot,
		uint32(uint64(length)>>32), uint32(length), nil)
	if err != nil {
		return nil, &Error{Op: "CreateFileMapping", Err: err}
	}

	addr, err := windows.MapViewOfFile(mapping, access, 0, 0, uintptr(length))
	if err != nil {
		windows.CloseHandle(mapping)
		return nil, &Error{Op: "MapViewOfFile", Err: err}
	}

	return &Map{
		data:     unsafe.Slice((*byte)(unsafe.Pointer(addr)), length),
		size:     length,
		writable: writable,
		handle:   uintptr(handle),
		mapping:  uintptr(mapping),
	}, nil
}

// resize tears the view down, moves end-of-file to the new size and builds
// a fresh mapping object and view. Every step is individually fallible and
// a failure partway leaves no mapping active.
func (m *Map) resize(newSize int64) error {
	addr := uintptr(unsafe.Pointer(&m.data[0]))
	if err := windows.UnmapViewOfFile(addr); err != nil {
		m.invalidate()
		return &Error{Op: "UnmapViewOfFile for resize", Err: err}
	}
	m.data = nil

	if m.mapping != 0 {
		windows.CloseHandle(windows.Handle(m.mapping))
		m.mapping = 0
	}

	fd := windows.Handle(m.handle)
	if err := windows.Ftruncate(fd, newSize); err != nil {
		m.invalidate()
		return &Error{Op: "SetEndOfFile for resize", Err: err}
	}

	mapping, err := windows.CreateFileMapping(fd, nil, windows.PAGE_READWRITE,
		uint32(uint64(newSize)>>32), uint32(newSize), nil)
	if err != nil {
		m.invalidate()
		return &Error{Op: "CreateFileMapping for resize", Err: err}
	}

	newAddr, err := windows.MapViewOfFile(mapping, windows.FILE_MAP_WRITE, 0, 0, uintptr(newSize))
	if err != nil {
		windows.CloseHandle(mapping)
		m.invalidate()
		return &Error{Op: "MapViewOfFile for resize", Err: err}
	}

	m.data = unsafe.Slice((*byte)(unsafe.Pointer(newAddr)), newSize)
	m.size = newSize
	m.mapping = uintptr(mapping)
	return nil
}

// Sync flushes changes to disk.
func (m *Map) Sync() error {
	if m.data == nil {
		return ErrNotMapped
	}
	if err := windows.FlushViewOfFile(uintptr(unsafe.Pointer(&m.data[0])), uintptr(m.size)); err != nil {
		return &Error{Op: "FlushViewOfFile", Err: err}
	}
	return nil
}

// Close releases the view and the mapping object. It does not close the
// backing file handle, which the caller owns.
func (m *Map) Close() error {
	if m.data == nil {
		return nil
	}

	addr := uintptr(unsafe.Pointer(&m.data[0]))
	err := windows.UnmapViewOfFile(addr)

	if m.mapping != 0 {
		windows.CloseHandle(windows.Handle(m.mapping))
		m.mapping = 0
	}

	m.invalidate()
	if err != nil {
		return &Error{Op: "UnmapViewOfFile", Err: err}
	}
	return nil
}
