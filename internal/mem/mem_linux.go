//go:build linux

package mem

import "golang.org/x/sys/unix"

// osRemap grows a mapping through mremap, allowing the kernel to move
// it if the adjacent address space is taken. Contents are preserved
// either way.
func osRemap(buf []byte, n int) ([]byte, bool) {
	nb, err := unix.Mremap(buf, n, unix.MREMAP_MAYMOVE)
	if err != nil {
		return nil, false
	}
	return nb, true
}
