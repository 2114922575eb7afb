//go:build unix

package mem

import (
	"errors"

	"golang.org/x/sys/unix"

	"github.com/arraykit/arraykit/internal/check"
)

func osAlloc(n int) []byte {
	buf, err := unix.Mmap(-1, 0, n,
		unix.PROT_READ|unix.PROT_WRITE,
		unix.MAP_ANON|unix.MAP_PRIVATE)
	if err != nil {
		check.Fatal("mem: can't map %d bytes: %v", n, err)
	}
	return buf
}

func osFree(buf []byte) {
	err := unix.Munmap(buf)
	if err != nil && !errors.Is(err, unix.EINVAL) {
		check.Fatal("mem: can't unmap %d bytes: %v", len(buf), err)
	}
}
