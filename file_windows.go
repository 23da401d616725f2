//go:build windows

package sysio

import (
	"golang.org/x/sys/windows"

	"github.com/Giulio2002/sysio/mmap"
)

// sysFD is the raw file handle type on Windows.
type sysFD = windows.Handle

// maxIOChunk caps the byte count handed to a single ReadFile/WriteFile
// call, which takes a 32-bit length. Declared as a variable so the chunk
// loop can be exercised by tests without multi-gigabyte files.
var maxIOChunk int64 = 1<<31 - 1

const shareAll = windows.FILE_SHARE_READ | windows.FILE_SHARE_WRITE | windows.FILE_SHARE_DELETE

// OpenReadable opens a file for reading. CreateFile without
// FILE_FLAG_BACKUP_SEMANTICS refuses directories, so no post-open type
// check is needed here.
func OpenReadable(path Path) (*FileHandle, error) {
	fd, err := windows.CreateFile(path.nativePtr(), windows.GENERIC_READ,
		shareAll, nil, windows.OPEN_EXISTING, windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, pathError("failed to open local file", path, err)
	}
	return &FileHandle{fd: fd, path: path}, nil
}

// OpenWritable opens a file for writing, creating it if absent. With
// appendMode set, write access is narrowed to FILE_APPEND_DATA and the
// position is explicitly moved to end-of-file after opening; the explicit
// seek is required because the append flag alone does not reposition the
// cursor on a reopened handle.
func OpenWritable(path Path, writeOnly, truncate, appendMode bool) (*FileHandle, error) {
	access := uint32(windows.GENERIC_WRITE)
	if !writeOnly {
		access |= windows.GENERIC_READ
	}
	if appendMode {
		access &^= uint32(windows.GENERIC_WRITE)
		access |= windows.FILE_APPEND_DATA
	}
	disposition := uint32(windows.OPEN_ALWAYS)
	if truncate {
		disposition = windows.CREATE_ALWAYS
	}
	fd, err := windows.CreateFile(path.nativePtr(), access, shareAll, nil,
		disposition, windows.FILE_ATTRIBUTE_NORMAL, 0)
	if err != nil {
		return nil, pathError("failed to open local file", path, err)
	}
	h := &FileHandle{fd: fd, path: path}
	if appendMode {
		if _, err := h.rawSeek(0, SeekEnd); err != nil {
			windows.CloseHandle(fd)
			return nil, pathError("seek failed", path, err)
		}
	}
	return h, nil
}

// CreatePipe returns the read and write ends of a new pipe.
func CreatePipe() (r, w *FileHandle, err error) {
	var rh, wh windows.Handle
	if err := windows.CreatePipe(&rh, &wh, nil, 4096); err != nil {
		return nil, nil, ioError("error creating pipe", err)
	}
	return &FileHandle{fd: rh}, &FileHandle{fd: wh}, nil
}

// Fd returns the raw file handle.
func (h *FileHandle) Fd() windows.Handle {
	return h.fd
}

// Map memory-maps length bytes of the open file, starting at offset zero.
// The mapping holds the handle but does not own it; the handle must stay
// open for the mapping's lifetime.
func (h *FileHandle) Map(length int64, writable bool) (*mmap.Map, error) {
	m, err := mmap.New(h.fd, length, writable)
	if err != nil {
		return nil, mapError(h.path, err)
	}
	return m, nil
}

func (h *FileHandle) rawRead(buf []byte) (int, error) {
	var done uint32
	if err := windows.ReadFile(h.fd, buf, &done, nil); err != nil {
		if err == windows.ERROR_BROKEN_PIPE {
			return 0, nil // pipe EOF
		}
		return 0, err
	}
	return int(done), nil
}

func (h *FileHandle) rawPread(buf []byte, offset int64) (int, error) {
	// ReadFile with an OVERLAPPED offset still advances the handle's file
	// position, which is why positioned reads never share a handle's
	// cursor-dependent Read path.
	ov := windows.Overlapped{
		Offset:     uint32(offset),
		OffsetHigh: uint32(offset >> 32),
	}
	var done uint32
	if err := windows.ReadFile(h.fd, buf, &done, &ov); err != nil {
		if err == windows.ERROR_HANDLE_EOF {
			return 0, nil
		}
		return 0, err
	}
	return int(done), nil
}

func (h *FileHandle) rawWrite(buf []byte) (int, error) {
	var done uint32
	if err := windows.WriteFile(h.fd, buf, &done, nil); err != nil {
		return 0, err
	}
	return int(done), nil
}

func (h *FileHandle) rawSeek(offset int64, whence int) (int64, error) {
	return windows.Seek(h.fd, offset, whence)
}

func (h *FileHandle) rawTruncate(size int64) error {
	return windows.Ftruncate(h.fd, size)
}

func (h *FileHandle) rawClose() error {
	return windows.CloseHandle(h.fd)
}

func (h *FileHandle) rawSize() (int64, error) {
	var info windows.ByHandleFileInformation
	if err := windows.GetFileInformationByHandle(h.fd, &info); err != nil {
		return 0, err
	}
	return int64(info.FileSizeHigh)<<32 | int64(info.FileSizeLow), nil
}
