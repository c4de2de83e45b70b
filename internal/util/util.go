//go:build !windows

// Package util holds platform helpers for the command-line binary.
package util

// IsRunFromGUI reports whether the process was started by a desktop shell
// rather than a terminal. Only Windows can tell; elsewhere it is false.
func IsRunFromGUI() bool {
	return false
}
