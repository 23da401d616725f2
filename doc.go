// Package sysio is a cross-platform operating-system abstraction layer:
// one logical API for path handling, file descriptor lifecycle, positioned
// and sequential I/O, memory-map resizing, temporary directories,
// environment variables and signal dispositions, with POSIX and Windows
// implementations unified behind the same contract.
//
// The package provides mechanism, not policy: it does not buffer,
// compress, schedule or retry. Every operation performs direct OS calls
// and blocks until the call completes. Failures surface as *Error values
// tagged with an ErrorCode; no OS error escapes untranslated.
//
// Key pieces:
//   - Path: opaque native-encoded filesystem paths (UTF-8 on POSIX,
//     UTF-16 on Windows), convertible to and from display text
//   - Directory operations with explicit created/deleted results
//   - FileHandle: open/read/write/seek with chunked I/O loops that
//     respect per-OS maximum transfer sizes
//   - mmap subpackage: memory mappings resizable together with their
//     backing file
//   - TemporaryDir: uniquely-named, self-cleaning temp directories
//   - Process-global signal disposition registry
//
// Basic usage:
//
//	dir, err := sysio.MakeTempDir("scratch-")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	defer dir.Close()
//
//	path, err := dir.Path().Join("data.bin")
//	if err != nil {
//	    log.Fatal(err)
//	}
//
//	f, err := sysio.OpenWritable(path, true, true, false)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	if err := f.Write([]byte{1, 2, 3, 4, 5}); err != nil {
//	    f.Close()
//	    log.Fatal(err)
//	}
//	if err := f.Close(); err != nil {
//	    log.Fatal(err)
//	}
package sysio
