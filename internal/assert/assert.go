// Package assert reports caller-contract violations.
//
// Violations are programming errors, not runtime conditions, so they panic
// instead of returning an error.
package assert

import "fmt"

// That panics with a formatted message if cond is false.
// The message is prefixed with "d20hist: ".
func That(cond bool, format string, args ...any) {
	if !cond {
		panic("d20hist: " + fmt.Sprintf(format, args...))
	}
}
