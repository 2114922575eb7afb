//go:build arraydebug

package check

import "fmt"

// Debugging reports whether the expensive invariant class is compiled
// in.
const Debugging = true

// Debug panics when cond is false. Only active under the arraydebug
// build tag.
func Debug(cond bool, format string, args ...any) {
	if !cond {
		panic("arraykit: " + fmt.Sprintf(format, args...))
	}
}
