package sysio

import "strings"

// Path is an opaque, platform-correct representation of a filesystem path.
// It holds the native encoding required by OS calls: UTF-8 bytes on POSIX
// platforms, UTF-16 on Windows. A Path is an immutable value; Join returns
// a new Path and never mutates the receiver.
type Path struct {
	native nativePath
}

// FromText builds a Path from UTF-8 text. It fails with ErrInvalid if the
// text contains an embedded NUL byte. All other bytes are converted to the
// native encoding verbatim, without normalization.
func FromText(text string) (Path, error) {
	if strings.IndexByte(text, 0) >= 0 {
		return Path{}, invalidError("embedded NUL char in file name: %q", text)
	}
	return Path{native: nativeFromText(text)}, nil
}

// Join appends a path segment using the platform's directory separator.
// It does not collapse "." or ".." segments. It fails with ErrInvalid if
// the child text contains an embedded NUL byte.
func (p Path) Join(child string) (Path, error) {
	if strings.IndexByte(child, 0) >= 0 {
		return Path{}, invalidError("embedded NUL char in file name: %q", child)
	}
	return Path{native: nativeJoin(p.native, nativeFromText(child))}, nil
}

// ToText renders the path in a forward-slash, UTF-8 form for display.
// On Windows, a native path that cannot be represented as UTF-8 (an
// unpaired surrogate) yields a clearly marked placeholder string rather
// than an error.
func (p Path) ToText() string {
	return nativeDisplay(p.native)
}
