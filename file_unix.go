//go:build unix

package sysio

import (
	"golang.org/x/sys/unix"

	"github.com/Giulio2002/sysio/mmap"
)

// sysFD is the raw file descriptor type on POSIX platforms.
type sysFD = int

// OpenReadable opens a file for reading. open(O_RDONLY) succeeds on
// directories, so a post-open fstat rejects them: the descriptor is closed
// and the open reported as failed.
func OpenReadable(path Path) (*FileHandle, error) {
	fd, err := unix.Open(path.Native(), unix.O_RDONLY|unix.O_CLOEXEC, 0)
	if err != nil {
		return nil, pathError("failed to open local file", path, err)
	}
	var st unix.Stat_t
	if err := unix.Fstat(fd, &st); err != nil {
		unix.Close(fd)
		return nil, pathError("failed to stat opened file", path, err)
	}
	if st.Mode&unix.S_IFMT == unix.S_IFDIR {
		unix.Close(fd)
		return nil, pathError("cannot open for reading: path is a directory", path, nil)
	}
	return &FileHandle{fd: fd, path: path}, nil
}

// OpenWritable opens a file for writing, creating it if absent. With
// appendMode set, the position is explicitly moved to end-of-file after
// opening: O_APPEND alone is not guaranteed to reposition the cursor on a
// reopened handle.
func OpenWritable(path Path, writeOnly, truncate, appendMode bool) (*FileHandle, error) {
	flags := unix.O_CREAT | unix.O_CLOEXEC
	if truncate {
		flags |= unix.O_TRUNC
	}
	if appendMode {
		flags |= unix.O_APPEND
	}
	if writeOnly {
		flags |= unix.O_WRONLY
	} else {
		flags |= unix.O_RDWR
	}
	fd, err := unix.Open(path.Native(), flags, 0o644)
	if err != nil {
		return nil, pathError("failed to open local file", path, err)
	}
	h := &FileHandle{fd: fd, path: path}
	if appendMode {
		if _, err := h.rawSeek(0, SeekEnd); err != nil {
			unix.Close(fd)
			return nil, pathError("lseek failed", path, err)
		}
	}
	return h, nil
}

// CreatePipe returns the read and write ends of a new pipe.
func CreatePipe() (r, w *FileHandle, err error) {
	var fds [2]int
	if err := unix.Pipe(fds[:]); err != nil {
		return nil, nil, ioError("error creating pipe", err)
	}
	return &FileHandle{fd: fds[0]}, &FileHandle{fd: fds[1]}, nil
}

// Fd returns the raw file descriptor.
func (h *FileHandle) Fd() int {
	return h.fd
}

// Map memory-maps length bytes of the open file, starting at offset zero.
// The mapping holds the descriptor but does not own it; the handle must
// stay open for the mapping's lifetime.
func (h *FileHandle) Map(length int64, writable bool) (*mmap.Map, error) {
	m, err := mmap.New(h.fd, length, writable)
	if err != nil {
		return nil, mapError(h.path, err)
	}
	return m, nil
}

func (h *FileHandle) rawRead(buf []byte) (int, error) {
	return unix.Read(h.fd, buf)
}

func (h *FileHandle) rawPread(buf []byte, offset int64) (int, error) {
	return unix.Pread(h.fd, buf, offset)
}

func (h *FileHandle) rawWrite(buf []byte) (int, error) {
	return unix.Write(h.fd, buf)
}

func (h *FileHandle) rawSeek(offset int64, whence int) (int64, error) {
	return unix.Seek(h.fd, offset, whence)
}

func (h *FileHandle) rawTruncate(size int64) error {
	return unix.Ftruncate(h.fd, size)
}

func (h *FileHandle) rawClose() error {
	return unix.Close(h.fd)
}

func (h *FileHandle) rawSize() (int64, error) {
	var st unix.Stat_t
	if err := unix.Fstat(h.fd, &st); err != nil {
		return 0, err
	}
	return st.Size, nil
}
