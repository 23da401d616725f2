//go:build unix

package sysio

import "os"

// GetEnvVar returns the value of an environment variable. An unset
// variable is an ErrKey failure.
func GetEnvVar(name string) (string, error) {
	value, ok := os.LookupEnv(name)
	if !ok {
		return "", NewError(ErrKey, "environment variable undefined: "+name)
	}
	return value, nil
}

// SetEnvVar sets an environment variable, overwriting any previous value.
func SetEnvVar(name, value string) error {
	if err := os.Setenv(name, value); err != nil {
		return invalidError("failed setting environment variable %q: %v", name, err)
	}
	return nil
}

// DelEnvVar removes an environment variable.
func DelEnvVar(name string) error {
	if err := os.Unsetenv(name); err != nil {
		return invalidError("failed deleting environment variable %q: %v", name, err)
	}
	return nil
}
