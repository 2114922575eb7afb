// Package mem is the platform byte allocator backing the raw
// allocation backend.
//
// Blocks are anonymous memory mappings on unix platforms (with true
// in-place growth via mremap on linux) and plain Go-heap buffers
// elsewhere. Every block is page-granular, which gives cheap in-place
// growth within the page slack even without mremap.
//
// Freed blocks of a given rounded size are kept in a small FIFO cache
// and reused for subsequent allocations of the same rounded size, so
// tight allocate/free cycles avoid the syscall round trip. Reuse never
// changes observable capacities: capacity bookkeeping lives in the
// callers' headers, not in block sizes.
//
// Allocation failure is fatal. Blocks are owned by exactly one caller
// at a time; the registry pins fallback heap buffers so the garbage
// collector cannot reclaim memory that raw pointers still reference.
package mem

import (
	"os"
	"sync"
	"unsafe"

	"github.com/eapache/queue"

	"github.com/arraykit/arraykit/internal/check"
)

const (
	maxFreePerSize = 8
	maxFreeTotal   = 32
)

var (
	mu        sync.Mutex
	blocks    = make(map[unsafe.Pointer][]byte)
	freeLists = make(map[int]*queue.Queue)
	freeCount int
)

var pageSize = os.Getpagesize()

func roundUp(n int) int {
	return (n + pageSize - 1) / pageSize * pageSize
}

// Alloc returns a block of at least size bytes. The contents are
// unspecified: fresh mappings are zero-filled but reused blocks keep
// whatever they last held.
func Alloc(size int) unsafe.Pointer {
	check.Require(size > 0, "mem: invalid allocation size %d", size)
	mu.Lock()
	defer mu.Unlock()
	buf := allocLocked(roundUp(size))
	p := unsafe.Pointer(&buf[0])
	blocks[p] = buf
	return p
}

// Free returns the block at p to the allocator. p must have been
// produced by Alloc or Grow and not freed since.
func Free(p unsafe.Pointer) {
	mu.Lock()
	defer mu.Unlock()
	buf, ok := blocks[p]
	check.Require(ok, "mem: freeing unknown block %p", p)
	delete(blocks, p)
	freeLocked(buf)
}

// Grow resizes the block at p to hold at least newSize bytes,
// preserving its full previous contents, and returns the (possibly
// relocated) base. Growth within the block's page slack and linux
// mremap are in place; otherwise a fresh block is allocated and the
// old contents copied over.
func Grow(p unsafe.Pointer, newSize int) unsafe.Pointer {
	check.Require(newSize > 0, "mem: invalid allocation size %d", newSize)
	mu.Lock()
	defer mu.Unlock()
	buf, ok := blocks[p]
	check.Require(ok, "mem: growing unknown block %p", p)

	rounded := roundUp(newSize)
	if rounded <= len(buf) {
		return p
	}

	if nb, ok := osRemap(buf, rounded); ok {
		delete(blocks, p)
		np := unsafe.Pointer(&nb[0])
		blocks[np] = nb
		return np
	}

	nb := allocLocked(rounded)
	copy(nb, buf)
	delete(blocks, p)
	freeLocked(buf)
	np := unsafe.Pointer(&nb[0])
	blocks[np] = nb
	return np
}

// BlockSize returns the actual reserved size of the block at p, which
// is at least the size requested and page-granular.
func BlockSize(p unsafe.Pointer) int {
	mu.Lock()
	defer mu.Unlock()
	buf, ok := blocks[p]
	check.Require(ok, "mem: unknown block %p", p)
	return len(buf)
}

// Live returns the number of blocks currently handed out.
func Live() int {
	mu.Lock()
	defer mu.Unlock()
	return len(blocks)
}

// Cached returns the number of freed blocks waiting for reuse.
func Cached() int {
	mu.Lock()
	defer mu.Unlock()
	return freeCount
}

func allocLocked(rounded int) []byte {
	if q := freeLists[rounded]; q != nil && q.Length() > 0 {
		buf := q.Remove().([]byte)
		freeCount--
		return buf
	}
	return osAlloc(rounded)
}

func freeLocked(buf []byte) {
	size := len(buf)
	q := freeLists[size]
	if freeCount >= maxFreeTotal || (q != nil && q.Length() >= maxFreePerSize) {
		osFree(buf)
		return
	}
	if q == nil {
		q = queue.New()
		freeLists[size] = q
	}
	q.Add(buf)
	freeCount++
}
