// Package check provides the assertion discipline for arraykit.
//
// Two severities exist. Require is always compiled in and guards cheap
// preconditions (index ranges, aliasing misuse, backend misuse): a
// failing Require is a caller bug, reported by panicking. Debug guards
// expensive internal invariants and compiles to a no-op unless the
// arraydebug build tag is set.
//
// Allocation failure is not an assertion: it is fatal and reported via
// Fatal, since memory exhaustion is not a condition this layer
// recovers from.
package check

import "fmt"

// Require panics when cond is false. These checks are always enabled.
func Require(cond bool, format string, args ...any) {
	if !cond {
		panic("arraykit: " + fmt.Sprintf(format, args...))
	}
}

// Fatal reports an unrecoverable condition, such as the platform
// allocator running out of memory, and terminates by panicking.
func Fatal(format string, args ...any) {
	panic("arraykit: fatal: " + fmt.Sprintf(format, args...))
}
