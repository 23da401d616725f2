//go:build unix

package sysio

import "strings"

// nativePath is the encoding filesystem calls require. On POSIX platforms
// this is the UTF-8 byte string itself, with '/' as the preferred
// separator, so conversion is the identity.
type nativePath = string

func nativeFromText(text string) nativePath {
	return text
}

func nativeJoin(parent, child nativePath) nativePath {
	if parent == "" {
		return child
	}
	if strings.HasSuffix(parent, "/") {
		return parent + child
	}
	return parent + "/" + child
}

func nativeDisplay(p nativePath) string {
	return p
}

// Native returns the encoding required by OS calls on this platform.
func (p Path) Native() string {
	return p.native
}

// osPath returns the path form accepted by the os package.
func (p Path) osPath() string {
	return p.native
}
