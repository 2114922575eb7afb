//go:build unix && !linux

package mem

// osRemap is unavailable without mremap; callers fall back to
// allocate-copy-free.
func osRemap([]byte, int) ([]byte, bool) {
	return nil, false
}
