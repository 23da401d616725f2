package sysio

import (
	"io"
	"os"
)

// ConsoleWriter is a minimal sequential write wrapper over one of the
// process's standard output streams. It tracks a monotonically increasing
// logical position and performs no buffering beyond what the OS stream
// already does.
type ConsoleWriter struct {
	w   io.Writer
	pos int64
}

// NewStdoutStream returns a ConsoleWriter over the process's standard
// output.
func NewStdoutStream() *ConsoleWriter {
	return &ConsoleWriter{w: os.Stdout}
}

// NewStderrStream returns a ConsoleWriter over the process's standard
// error.
func NewStderrStream() *ConsoleWriter {
	return &ConsoleWriter{w: os.Stderr}
}

// Write writes buf sequentially to the stream.
func (s *ConsoleWriter) Write(buf []byte) error {
	n, err := s.w.Write(buf)
	s.pos += int64(n)
	if err != nil {
		return ioError("error writing to console stream", err)
	}
	return nil
}

// Tell returns the logical number of bytes written so far.
func (s *ConsoleWriter) Tell() int64 {
	return s.pos
}

// Close is a no-op: the process's standard streams are not owned by this
// wrapper.
func (s *ConsoleWriter) Close() error {
	return nil
}

// ConsoleReader is a minimal sequential read wrapper over the process's
// standard input.
type ConsoleReader struct {
	r   io.Reader
	pos int64
}

// NewStdinStream returns a ConsoleReader over the process's standard
// input.
func NewStdinStream() *ConsoleReader {
	return &ConsoleReader{r: os.Stdin}
}

// Read fills buf from the stream, looping until buf is full or the stream
// reports end of input. Fewer bytes than requested signals EOF, not an
// error.
func (s *ConsoleReader) Read(buf []byte) (int64, error) {
	var total int
	for total < len(buf) {
		n, err := s.r.Read(buf[total:])
		total += n
		if err == io.EOF {
			break
		}
		if err != nil {
			s.pos += int64(total)
			return int64(total), ioError("error reading from console stream", err)
		}
		if n == 0 {
			break
		}
	}
	s.pos += int64(total)
	return int64(total), nil
}

// Tell returns the logical number of bytes read so far.
func (s *ConsoleReader) Tell() int64 {
	return s.pos
}

// Close is a no-op: the process's standard input is not owned by this
// wrapper.
func (s *ConsoleReader) Close() error {
	return nil
}
