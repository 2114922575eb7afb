//go:build arraydebug

// Package shadow tracks the live window of growable allocations when
// the arraydebug build tag is set. It is the analog of a sanitizer's
// contiguous-container annotation: for every growable base pointer it
// records which slots inside the capacity window are constructed, and
// verifies on every mutation that the caller's idea of the previous
// window matches what was recorded.
//
// Without the build tag every entry point is a no-op and the tracking
// state does not exist.
package shadow

import (
	"sync"
	"unsafe"

	"github.com/bits-and-blooms/bitset"

	"github.com/arraykit/arraykit/internal/check"
)

// Enabled reports whether window tracking is compiled in.
const Enabled = true

var (
	mu      sync.Mutex
	windows = make(map[unsafe.Pointer]*bitset.BitSet)
)

// Annotate records that the allocation at base now has capacity slots
// of which [0, newLen) are live, after previously having oldLen live
// slots. A mismatch with the recorded state means a mutator skipped
// its bookkeeping.
func Annotate(base unsafe.Pointer, capacity, oldLen, newLen int) {
	if base == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	if prev, ok := windows[base]; ok {
		check.Debug(int(prev.Count()) == oldLen,
			"shadow: allocation %p has %d live slots, mutator expected %d",
			base, prev.Count(), oldLen)
	}
	b := bitset.New(uint(capacity))
	for i := 0; i < newLen; i++ {
		b.Set(uint(i))
	}
	windows[base] = b
}

// Forget drops the tracking state for the allocation at base.
func Forget(base unsafe.Pointer) {
	if base == nil {
		return
	}
	mu.Lock()
	defer mu.Unlock()
	delete(windows, base)
}
