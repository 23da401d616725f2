//go:build darwin

package sysio

// maxIOChunk caps the byte count handed to a single read/write call.
// macOS read/write fail outright for counts of 2 GiB or more, so the loop
// stays below INT32_MAX. Declared as a variable so the chunk loop can be
// exercised by tests without multi-gigabyte files.
var maxIOChunk int64 = 1<<31 - 1
