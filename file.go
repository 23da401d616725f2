package sysio

import "io"

// Whence values for Seek.
const (
	SeekStart   = io.SeekStart
	SeekCurrent = io.SeekCurrent
	SeekEnd     = io.SeekEnd
)

// FileHandle is an open file description with exactly one logical owner.
// Close invalidates it; using a handle after Close is caller error and is
// not defended against internally. A handle must not be used concurrently
// from multiple goroutines without external synchronization, since
// seek-then-read pairs are not atomic. ReadAt is the exception: it does
// not touch the shared file-position cursor, so concurrent ReadAt calls on
// the same handle are safe.
type FileHandle struct {
	fd   sysFD
	path Path
}

// Read reads up to len(buf) bytes at the current file position. A single
// OS read call only transfers up to maxIOChunk bytes, so the read is
// looped over sub-reads until buf is filled or a zero-byte read signals
// end of file. Returning fewer bytes than requested is EOF, not an error.
func (h *FileHandle) Read(buf []byte) (int64, error) {
	var bytesRead int64
	nbytes := int64(len(buf))
	for bytesRead < nbytes {
		chunk := nbytes - bytesRead
		if chunk > maxIOChunk {
			chunk = maxIOChunk
		}
		n, err := h.rawRead(buf[bytesRead : bytesRead+chunk])
		if err != nil {
			return bytesRead, pathError("error reading bytes from file", h.path, err)
		}
		if n == 0 {
			break // EOF
		}
		bytesRead += int64(n)
	}
	return bytesRead, nil
}

// ReadAt reads up to len(buf) bytes starting at the given file offset,
// without depending on or mutating the handle's file-position cursor. The
// same sub-read loop and EOF semantics as Read apply.
func (h *FileHandle) ReadAt(buf []byte, position int64) (int64, error) {
	var bytesRead int64
	nbytes := int64(len(buf))
	for bytesRead < nbytes {
		chunk := nbytes - bytesRead
		if chunk > maxIOChunk {
			chunk = maxIOChunk
		}
		n, err := h.rawPread(buf[bytesRead:bytesRead+chunk], position+bytesRead)
		if err != nil {
			return bytesRead, pathError("error reading bytes from file", h.path, err)
		}
		if n == 0 {
			break // EOF
		}
		bytesRead += int64(n)
	}
	return bytesRead, nil
}

// Write writes all of buf at the current file position, looping over
// sub-writes of at most maxIOChunk bytes. A failed sub-write aborts the
// loop: the operation is all-or-error from the caller's perspective.
func (h *FileHandle) Write(buf []byte) error {
	var bytesWritten int64
	nbytes := int64(len(buf))
	for bytesWritten < nbytes {
		chunk := nbytes - bytesWritten
		if chunk > maxIOChunk {
			chunk = maxIOChunk
		}
		n, err := h.rawWrite(buf[bytesWritten : bytesWritten+chunk])
		if err != nil {
			return pathError("error writing bytes to file", h.path, err)
		}
		bytesWritten += int64(n)
	}
	return nil
}

// Tell returns the current file position.
func (h *FileHandle) Tell() (int64, error) {
	pos, err := h.rawSeek(0, SeekCurrent)
	if err != nil {
		return 0, pathError("lseek failed", h.path, err)
	}
	return pos, nil
}

// Seek moves the file position. whence is one of SeekStart, SeekCurrent,
// SeekEnd.
func (h *FileHandle) Seek(pos int64, whence int) error {
	if _, err := h.rawSeek(pos, whence); err != nil {
		return pathError("lseek failed", h.path, err)
	}
	return nil
}

// Size returns the file size. When the raw size reports zero, a Tell probe
// distinguishes an empty seekable file from a file type that does not
// support sizing; if the probe itself fails, the zero size is returned
// as-is rather than treated as an error.
func (h *FileHandle) Size() (int64, error) {
	size, err := h.rawSize()
	if err != nil {
		return 0, pathError("error stat()ing file", h.path, err)
	}
	if size == 0 {
		if _, err := h.Tell(); err != nil {
			return 0, nil
		}
	}
	return size, nil
}

// Truncate resizes the file to exactly size bytes, zero-extending when
// growing.
func (h *FileHandle) Truncate(size int64) error {
	if err := h.rawTruncate(size); err != nil {
		return pathError("error truncating file", h.path, err)
	}
	return nil
}

// Close closes the underlying descriptor. Closing twice is caller error;
// idempotency is not guaranteed.
func (h *FileHandle) Close() error {
	if err := h.rawClose(); err != nil {
		return pathError("error closing file", h.path, err)
	}
	return nil
}
