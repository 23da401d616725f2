//go:build linux

package sysio

// maxIOChunk caps the byte count handed to a single read/write call. Per
// the Linux read(2)/write(2) man pages, a single call transfers at most
// 0x7ffff000 bytes. Declared as a variable so the chunk loop can be
// exercised by tests without multi-gigabyte files.
var maxIOChunk int64 = 0x7ffff000
