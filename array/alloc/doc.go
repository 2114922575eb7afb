// Package alloc provides the allocation backends behind growable
// arrays.
//
// # Backends
//
// Two backends implement the same Allocator contract:
//
//   - Raw: for trivially relocatable element types (no Go pointers).
//     Allocates off-heap through internal/mem and stores the total
//     allocation size in bytes in an 8-byte header immediately before
//     the first element. Reallocation can grow truly in place (page
//     slack, mremap on linux). Because the header counts bytes rather
//     than elements, a raw allocation can be reinterpreted between
//     element types of the same total size.
//
//   - Heap: for any element type. Allocates ordinary Go-heap slices so
//     the garbage collector scans element pointers; capacity is kept
//     out-of-band in a registry keyed by the base pointer. Reallocation
//     always moves: allocate fresh, copy the preserved prefix, zero the
//     vacated source slots, release the old block.
//
// Default picks Raw when the element type is trivially relocatable and
// Heap otherwise. The choice is a property of the type, not of any
// particular call.
//
// # Ownership tags
//
// Each backend exposes one array.Owner descriptor per element type.
// Comparing an array's Owner against a backend's descriptor is the
// only sanctioned way to learn whether the backend's capacity
// bookkeeping applies to that array.
//
// # Growth policy
//
// NextCapacity implements the growth curve shared by both backends:
// allocations below the 16-byte default alignment jump straight to it,
// allocations below 64 bytes double, larger ones grow by half, always
// measured in bytes including the 8-byte header and clamped up to the
// desired capacity. Doubling keeps small allocations tight against
// allocator size buckets; 1.5x growth for large arrays leaves reusable
// gaps behind previous allocations more often than doubling would.
// Tests assert on the exact resulting capacities.
//
// Allocation failure is fatal in both backends.
package alloc
