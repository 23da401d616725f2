package sysio

import (
	"errors"
	"io/fs"
	"os"
	"path/filepath"
)

// Directory operations are built on Path and report through the uniform
// error result. Type checks (Lstat) and the create/delete that follows are
// separate OS calls: a time-of-check/time-of-use race is possible under
// concurrent external mutation of the filesystem, and this layer does not
// attempt atomic guarantees here.

// CreateDir creates a directory. created is false, with no error, if the
// directory already existed. A pre-existing non-directory at the path is
// an ErrIO failure.
func CreateDir(path Path) (created bool, err error) {
	if err := os.Mkdir(path.osPath(), 0o755); err != nil {
		if errors.Is(err, fs.ErrExist) {
			st, statErr := os.Lstat(path.osPath())
			if statErr == nil && st.IsDir() {
				return false, nil
			}
			return false, pathError("cannot create directory over non-directory", path, err)
		}
		return false, pathError("failed to create directory", path, err)
	}
	return true, nil
}

// CreateDirTree creates a directory and any missing parents. created
// reflects whether the final segment was newly made.
func CreateDirTree(path Path) (created bool, err error) {
	existed := false
	if st, statErr := os.Lstat(path.osPath()); statErr == nil && st.IsDir() {
		existed = true
	}
	if err := os.MkdirAll(path.osPath(), 0o755); err != nil {
		return false, pathError("failed to create directory tree", path, err)
	}
	return !existed, nil
}

// DeleteFile deletes a single file. Deleting an already-absent path is not
// an error (deleted = false). Deleting a directory is an ErrIO failure.
func DeleteFile(path Path) (deleted bool, err error) {
	st, statErr := os.Lstat(path.osPath())
	if statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return false, nil
		}
		return false, pathError("failed to stat file", path, statErr)
	}
	if st.IsDir() {
		return false, pathError("cannot delete directory", path, nil)
	}
	if err := os.Remove(path.osPath()); err != nil {
		return false, pathError("failed to delete file", path, err)
	}
	return true, nil
}

// DeleteDirTree recursively deletes a directory and its contents. Deleting
// a non-existent path is not an error (deleted = false). The type check
// uses Lstat so a symlink to a directory is refused rather than followed.
func DeleteDirTree(path Path) (deleted bool, err error) {
	st, statErr := os.Lstat(path.osPath())
	if statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return false, nil
		}
		return false, pathError("failed to stat directory", path, statErr)
	}
	if !st.IsDir() {
		return false, pathError("cannot delete non-directory", path, nil)
	}
	if err := os.RemoveAll(path.osPath()); err != nil {
		return false, pathError("failed to delete directory tree", path, err)
	}
	return true, nil
}

// DeleteDirContents deletes every immediate child of a directory,
// including subtrees, but leaves the directory itself. A non-existent path
// is not an error (deleted = false); a non-directory path is an ErrIO
// failure.
func DeleteDirContents(path Path) (deleted bool, err error) {
	st, statErr := os.Lstat(path.osPath())
	if statErr != nil {
		if errors.Is(statErr, fs.ErrNotExist) {
			return false, nil
		}
		return false, pathError("failed to stat directory", path, statErr)
	}
	if !st.IsDir() {
		return false, pathError("cannot delete contents of non-directory", path, nil)
	}
	entries, err := os.ReadDir(path.osPath())
	if err != nil {
		return false, pathError("failed to list directory", path, err)
	}
	for _, entry := range entries {
		child := filepath.Join(path.osPath(), entry.Name())
		if err := os.RemoveAll(child); err != nil {
			return false, pathError("failed to delete directory contents", path, err)
		}
	}
	return true, nil
}

// FileExists reports whether the path exists. A non-existent path is never
// an error; only OS-level access failures surface as ErrIO.
func FileExists(path Path) (bool, error) {
	if _, err := os.Stat(path.osPath()); err != nil {
		if errors.Is(err, fs.ErrNotExist) {
			return false, nil
		}
		return false, pathError("failed to stat path", path, err)
	}
	return true, nil
}
