package sysio

import (
	"crypto/rand"
	"os"
	"sync"

	"go.uber.org/zap"
)

const tempNameChars = "0123456789abcdefghijklmnopqrstuvwxyz"

// randomName returns n random characters drawn from the lowercase
// alphanumeric alphabet.
func randomName(n int) string {
	buf := make([]byte, n)
	if _, err := rand.Read(buf); err != nil {
		panic("sysio: crypto/rand unavailable: " + err.Error())
	}
	for i, b := range buf {
		buf[i] = tempNameChars[int(b)%len(tempNameChars)]
	}
	return string(buf)
}

// TemporaryDir owns a uniquely-named directory under the system temp root
// and deletes it recursively on Close. It has a single owner; cleanup runs
// exactly once.
type TemporaryDir struct {
	path    Path
	cleanup sync.Once
}

// MakeTempDir creates a directory named prefix plus an 8-character random
// lowercase-alphanumeric suffix under the system temp root. A name
// collision is an ErrIO failure; there is no retry with a new suffix.
func MakeTempDir(prefix string) (*TemporaryDir, error) {
	root, err := FromText(os.TempDir())
	if err != nil {
		return nil, err
	}
	path, err := root.Join(prefix + randomName(8))
	if err != nil {
		return nil, err
	}
	created, err := CreateDir(path)
	if err != nil {
		return nil, err
	}
	if !created {
		return nil, &Error{Code: ErrIO, Message: "path already exists", Path: path.ToText()}
	}
	return &TemporaryDir{path: path}, nil
}

// Path returns the directory's path.
func (d *TemporaryDir) Path() Path {
	return d.path
}

// Close recursively deletes the directory tree. A deletion failure is
// logged as a warning and swallowed: cleanup must not fail. Close is safe
// to call more than once; deletion runs only the first time.
func (d *TemporaryDir) Close() {
	d.cleanup.Do(func() {
		if _, err := DeleteDirTree(d.path); err != nil {
			Logger().Warn("failed to delete temporary directory",
				zap.String("path", d.path.ToText()),
				zap.Error(err))
		}
	})
}
