package sysio

import (
	"bytes"
	"testing"

	"golang.org/x/sync/errgroup"
)

func TestWriteThenReadBack(t *testing.T) {
	dir, err := MakeTempDir("sysio-test-")
	if err != nil {
		t.Fatalf("MakeTempDir failed: %v", err)
	}
	defer dir.Close()

	path, err := dir.Path().Join("a.bin")
	if err != nil {
		t.Fatal(err)
	}

	w, err := OpenWritable(path, true, true, false)
	if err != nil {
		t.Fatalf("OpenWritable failed: %v", err)
	}
	payload := []byte{1, 2, 3, 4, 5}
	if err := w.Write(payload); err != nil {
		t.Fatalf("Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatalf("Close failed: %v", err)
	}

	r, err := OpenReadable(path)
	if err != nil {
		t.Fatalf("OpenReadable failed: %v", err)
	}
	defer r.Close()

	size, err := r.Size()
	if err != nil {
		t.Fatalf("Size failed: %v", err)
	}
	if size != 5 {
		t.Errorf("Size = %d, want 5", size)
	}

	buf := make([]byte, 5)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if n != 5 || !bytes.Equal(buf, payload) {
		t.Errorf("Read = %d bytes %v, want 5 bytes %v", n, buf, payload)
	}

	// At end of file a further read returns zero bytes, not an error.
	n, err = r.Read(make([]byte, 1))
	if err != nil {
		t.Fatalf("Read at EOF failed: %v", err)
	}
	if n != 0 {
		t.Errorf("Read at EOF = %d bytes, want 0", n)
	}
}

func TestOpenReadableOnDirectory(t *testing.T) {
	dir, err := MakeTempDir("sysio-test-")
	if err != nil {
		t.Fatal(err)
	}
	defer dir.Close()

	if _, err := OpenReadable(dir.Path()); !IsIOError(err) {
		t.Errorf("expected io error opening a directory for reading, got %v", err)
	}
}

func TestOpenReadableMissing(t *testing.T) {
	p := tempPath(t, "missing.bin")
	if _, err := OpenReadable(p); !IsIOError(err) {
		t.Errorf("expected io error for missing file, got %v", err)
	}
}

// Lowering the chunk cap forces the read and write loops through several
// sub-calls, which on a real kernel would only happen past 2 GiB.
func TestChunkedReadWriteLoops(t *testing.T) {
	saved := maxIOChunk
	maxIOChunk = 7
	defer func() { maxIOChunk = saved }()

	payload := make([]byte, 100)
	for i := range payload {
		payload[i] = byte(i * 3)
	}

	p := tempPath(t, "chunked.bin")
	w, err := OpenWritable(p, true, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(payload); err != nil {
		t.Fatalf("chunked Write failed: %v", err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := OpenReadable(p)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	for _, n := range []int{0, 1, 6, 7, 8, 13, 14, 15, 99, 100} {
		buf := make([]byte, n)
		got, err := r.ReadAt(buf, 0)
		if err != nil {
			t.Fatalf("ReadAt(%d) failed: %v", n, err)
		}
		if got != int64(n) || !bytes.Equal(buf, payload[:n]) {
			t.Errorf("ReadAt(%d) returned %d bytes, mismatch", n, got)
		}
	}

	// Reading past the end stops at EOF with fewer bytes, no error.
	buf := make([]byte, 150)
	got, err := r.Read(buf)
	if err != nil {
		t.Fatalf("Read failed: %v", err)
	}
	if got != 100 || !bytes.Equal(buf[:100], payload) {
		t.Errorf("short read = %d bytes, want 100", got)
	}
}

func TestReadAtConcurrent(t *testing.T) {
	const part = 4096
	const parts = 8

	payload := make([]byte, part*parts)
	for i := range payload {
		payload[i] = byte(i / part)
	}

	p := tempPath(t, "concurrent.bin")
	w, err := OpenWritable(p, true, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write(payload); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := OpenReadable(p)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()

	// Positioned reads at disjoint offsets share the handle without
	// external locking: they do not use the file-position cursor.
	var g errgroup.Group
	for i := 0; i < parts; i++ {
		i := i
		g.Go(func() error {
			buf := make([]byte, part)
			n, err := r.ReadAt(buf, int64(i*part))
			if err != nil {
				return err
			}
			if n != part {
				t.Errorf("part %d: read %d bytes, want %d", i, n, part)
			}
			for _, b := range buf {
				if b != byte(i) {
					t.Errorf("part %d: interleaved data, saw byte %d", i, b)
					return nil
				}
			}
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		t.Fatalf("concurrent ReadAt failed: %v", err)
	}
}

func TestAppendAlwaysWritesAtEnd(t *testing.T) {
	p := tempPath(t, "append.bin")

	w, err := OpenWritable(p, true, true, false)
	if err != nil {
		t.Fatal(err)
	}
	if err := w.Write([]byte("base")); err != nil {
		t.Fatal(err)
	}
	if err := w.Close(); err != nil {
		t.Fatal(err)
	}

	// Reopen in append mode, seek to the start, then write: the bytes
	// must still land at end-of-file, never overwriting "base".
	a, err := OpenWritable(p, true, false, true)
	if err != nil {
		t.Fatal(err)
	}
	if pos, err := a.Tell(); err != nil || pos != 4 {
		t.Errorf("append open position = %d (%v), want 4", pos, err)
	}
	if err := a.Seek(0, SeekStart); err != nil {
		t.Fatal(err)
	}
	if err := a.Write([]byte("+tail")); err != nil {
		t.Fatal(err)
	}
	if err := a.Close(); err != nil {
		t.Fatal(err)
	}

	r, err := OpenReadable(p)
	if err != nil {
		t.Fatal(err)
	}
	defer r.Close()
	buf := make([]byte, 16)
	n, err := r.Read(buf)
	if err != nil {
		t.Fatal(err)
	}
	if string(buf[:n]) != "base+tail" {
		t.Errorf("append content = %q, want %q", buf[:n], "base+tail")
	}
}

func TestSeekTell(t *testing.T) {
	p := tempPath(t, "seek.bin")
	w, err := OpenWritable(p, false, true, false)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Write(make([]byte, 64)); err != nil {
		t.Fatal(err)
	}
	if err := w.Seek(10, SeekStart); err != nil {
		t.Fatal(err)
	}
	if pos, err := w.Tell(); err != nil || pos != 10 {
		t.Errorf("Tell = %d (%v), want 10", pos, err)
	}
	if err := w.Seek(-4, SeekEnd); err != nil {
		t.Fatal(err)
	}
	if pos, err := w.Tell(); err != nil || pos != 60 {
		t.Errorf("Tell = %d (%v), want 60", pos, err)
	}
	if err := w.Seek(2, SeekCurrent); err != nil {
		t.Fatal(err)
	}
	if pos, err := w.Tell(); err != nil || pos != 62 {
		t.Errorf("Tell = %d (%v), want 62", pos, err)
	}
}

func TestTruncate(t *testing.T) {
	p := tempPath(t, "trunc.bin")
	w, err := OpenWritable(p, false, true, false)
	if err != nil {
		t.Fatal(err)
	}
	defer w.Close()

	if err := w.Write([]byte{9, 9, 9}); err != nil {
		t.Fatal(err)
	}

	// Growing zero-extends.
	if err := w.Truncate(6); err != nil {
		t.Fatalf("Truncate failed: %v", err)
	}
	if size, err := w.Size(); err != nil || size != 6 {
		t.Errorf("Size after grow = %d (%v), want 6", size, err)
	}
	buf := make([]byte, 6)
	if n, err := w.ReadAt(buf, 0); err != nil || n != 6 {
		t.Fatalf("ReadAt failed: %d, %v", n, err)
	}
	if !bytes.Equal(buf, []byte{9, 9, 9, 0, 0, 0}) {
		t.Errorf("grown content = %v", buf)
	}

	if err := w.Truncate(1); err != nil {
		t.Fatalf("Truncate failed: %v", err)
	}
	if size, err := w.Size(); err != nil || size != 1 {
		t.Errorf("Size after shrink = %d (%v), want 1", size, err)
	}
}

// A pipe descriptor has no size and cannot seek. The zero reported by
// fstat stands, and the failed Tell probe is not an error.
func TestSizeOnPipe(t *testing.T) {
	r, w, err := CreatePipe()
	if err != nil {
		t.Fatalf("CreatePipe failed: %v", err)
	}
	defer r.Close()

	if err := w.Write([]byte("ping")); err != nil {
		t.Fatalf("pipe Write failed: %v", err)
	}

	size, err := r.Size()
	if err != nil {
		t.Fatalf("Size on pipe failed: %v", err)
	}
	if size != 0 {
		t.Errorf("Size on pipe = %d, want 0", size)
	}

	// Positioned reads need a seekable descriptor.
	if _, err := r.ReadAt(make([]byte, 4), 0); !IsIOError(err) {
		t.Errorf("expected io error from ReadAt on pipe, got %v", err)
	}

	if err := w.Close(); err != nil {
		t.Fatal(err)
	}
	got := make([]byte, 16)
	n2, err := r.Read(got)
	if err != nil {
		t.Fatalf("pipe Read failed: %v", err)
	}
	if string(got[:n2]) != "ping" {
		t.Errorf("pipe Read = %q, want %q", got[:n2], "ping")
	}
}
