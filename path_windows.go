//go:build windows

package sysio

import (
	"fmt"
	"unicode/utf16"
	"unicode/utf8"
)

// nativePath is the encoding filesystem calls require. On Windows this is
// the UTF-16 wide string, stored without a terminating NUL, with '\' as
// the preferred separator. The UTF-8 display form is recomputed lazily.
type nativePath = []uint16

func nativeFromText(text string) nativePath {
	runes := make([]rune, 0, len(text))
	for _, r := range text {
		if r == '/' {
			r = '\\'
		}
		runes = append(runes, r)
	}
	return utf16.Encode(runes)
}

func nativeJoin(parent, child nativePath) nativePath {
	out := make([]uint16, 0, len(parent)+1+len(child))
	out = append(out, parent...)
	if len(parent) > 0 && parent[len(parent)-1] != uint16('\\') {
		out = append(out, uint16('\\'))
	}
	return append(out, child...)
}

// nativeDisplay decodes strictly: an unpaired surrogate cannot be
// represented as UTF-8, so a marked placeholder is returned instead.
func nativeDisplay(p nativePath) string {
	var b []byte
	for i := 0; i < len(p); i++ {
		c := p[i]
		switch {
		case c >= 0xD800 && c < 0xDC00:
			if i+1 < len(p) && p[i+1] >= 0xDC00 && p[i+1] < 0xE000 {
				b = utf8.AppendRune(b, utf16.DecodeRune(rune(c), rune(p[i+1])))
				i++
			} else {
				return fmt.Sprintf("<unrepresentable filename: unpaired surrogate 0x%04X>", c)
			}
		case c >= 0xDC00 && c < 0xE000:
			return fmt.Sprintf("<unrepresentable filename: unpaired surrogate 0x%04X>", c)
		case c == uint16('\\'):
			b = append(b, '/')
		default:
			b = utf8.AppendRune(b, rune(c))
		}
	}
	return string(b)
}

// Native returns the UTF-16 encoding required by OS calls on this
// platform, without a terminating NUL. The returned slice is a copy.
func (p Path) Native() []uint16 {
	return append([]uint16(nil), p.native...)
}

// nativePtr returns a NUL-terminated UTF-16 pointer for Win32 calls.
func (p Path) nativePtr() *uint16 {
	buf := make([]uint16, len(p.native)+1)
	copy(buf, p.native)
	return &buf[0]
}

// osPath returns the path form accepted by the os package. Unpaired
// surrogates decode to replacement runes here; the os package rejects
// such paths on its own.
func (p Path) osPath() string {
	return string(utf16.Decode(p.native))
}
