//go:build !unix

package mem

// Fallback for platforms without anonymous mappings: blocks live on
// the Go heap as pointer-free buffers. The registry in mem.go pins
// them for as long as they are handed out, so raw pointers into them
// stay valid.

func osAlloc(n int) []byte {
	return make([]byte, n)
}

func osFree([]byte) {}

func osRemap([]byte, int) ([]byte, bool) {
	return nil, false
}
