//go:build !arraydebug

package shadow

import "unsafe"

// Enabled reports whether window tracking is compiled in.
const Enabled = false

// Annotate is a no-op without the arraydebug build tag.
func Annotate(unsafe.Pointer, int, int, int) {}

// Forget is a no-op without the arraydebug build tag.
func Forget(unsafe.Pointer) {}
