package alloc

import "github.com/arraykit/arraykit/internal/check"

const (
	// HeaderSize is the out-of-band capacity header in bytes. The heap
	// backend has no physical header but includes the same constant in
	// its growth arithmetic so observable capacities are
	// backend-independent.
	HeaderSize = 8

	// minAllocation is the default allocation alignment: allocations
	// smaller than this are rounded straight up to it.
	minAllocation = 16

	// doubleThreshold is the allocation size up to which capacity
	// doubles; beyond it capacity grows by half.
	doubleThreshold = 64
)

// NextCapacity maps the current capacity of an allocation to the
// capacity it should grow to, both in elements of elemSize bytes. The
// arithmetic is done in bytes including the header: below minAllocation
// grow to minAllocation, below doubleThreshold double, otherwise grow
// by half. The result is clamped up to desired if the computed growth
// falls short.
func NextCapacity(elemSize uintptr, currentCapacity, desired int) int {
	check.Require(elemSize > 0, "alloc: zero-size element type")
	current := int(elemSize)*currentCapacity + HeaderSize

	var grown int
	switch {
	case current < minAllocation:
		grown = minAllocation
	case current < doubleThreshold:
		grown = current * 2
	default:
		grown = current + current/2
	}

	candidate := (grown - HeaderSize) / int(elemSize)
	if desired > candidate {
		return desired
	}
	return candidate
}
