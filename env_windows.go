//go:build windows

package sysio

import "golang.org/x/sys/windows"

// envBufSize is the fixed retrieval buffer size, in UTF-16 units, for
// GetEnvironmentVariable.
const envBufSize = 2000

// GetEnvVar returns the value of an environment variable. It goes through
// GetEnvironmentVariable rather than the C runtime environment copy, which
// does not see later SetEnvironmentVariable calls. An unset variable is an
// ErrKey failure; a value that does not fit the fixed retrieval buffer is
// an ErrCapacity failure.
func GetEnvVar(name string) (string, error) {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return "", invalidError("embedded NUL char in variable name: %q", name)
	}
	buf := make([]uint16, envBufSize)
	n, err := windows.GetEnvironmentVariable(namePtr, &buf[0], envBufSize)
	if n >= envBufSize {
		return "", NewError(ErrCapacity, "environment variable value too long: "+name)
	}
	if n == 0 {
		if err == windows.ERROR_ENVVAR_NOT_FOUND || err == nil {
			return "", NewError(ErrKey, "environment variable undefined: "+name)
		}
		return "", ioError("failed reading environment variable "+name, err)
	}
	return windows.UTF16ToString(buf[:n]), nil
}

// SetEnvVar sets an environment variable, overwriting any previous value.
func SetEnvVar(name, value string) error {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return invalidError("embedded NUL char in variable name: %q", name)
	}
	valuePtr, err := windows.UTF16PtrFromString(value)
	if err != nil {
		return invalidError("embedded NUL char in variable value: %q", value)
	}
	if err := windows.SetEnvironmentVariable(namePtr, valuePtr); err != nil {
		return invalidError("failed setting environment variable %q: %v", name, err)
	}
	return nil
}

// DelEnvVar removes an environment variable. Deleting a variable that is
// already unset is not an error.
func DelEnvVar(name string) error {
	namePtr, err := windows.UTF16PtrFromString(name)
	if err != nil {
		return invalidError("embedded NUL char in variable name: %q", name)
	}
	if err := windows.SetEnvironmentVariable(namePtr, nil); err != nil && err != windows.ERROR_ENVVAR_NOT_FOUND {
		return invalidError("failed deleting environment variable %q: %v", name, err)
	}
	return nil
}
