//go:build !arraydebug

package check

// Debugging reports whether the expensive invariant class is compiled
// in.
const Debugging = false

// Debug is a no-op without the arraydebug build tag.
func Debug(bool, string, ...any) {}
