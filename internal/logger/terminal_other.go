//go:build !linux && !darwin

package logger

// isTerminal reports false on platforms without a terminal probe;
// output falls back to plain text without color.
func isTerminal(fd uintptr) bool {
	return false
}
