// Package growable turns a fixed-capacity array.Array into an
// amortized-growth dynamic array.
//
// # Overview
//
// "Growable" is not a distinct type: it is a runtime state of
// array.Array, entered the first time a mutator here allocates through
// a backend and recognized afterwards by the array's Owner descriptor.
// Arrays with a foreign or nil owner are treated as exactly full; the
// first growth-triggering operation promotes them by moving their
// elements into backend-owned storage.
//
// Every operation takes the allocation backend explicitly;
// alloc.Default picks the right backend for the element type. Mixing
// backends on one array is safe: an array growable under one backend
// is simply foreign to the other and gets promoted on first mutation.
//
//	a := array.Array[int32]{}
//	al := alloc.Default[int32]()
//	growable.Append(al, &a, 7)
//	growable.AppendSlice(al, &a, a.Slice()) // self-append is fine
//	growable.Shrink(al, &a)                 // back to a plain fixed array
//
// # Aliasing
//
// AppendSlice and InsertSlice accept a source that is a slice of the
// array being mutated. The source is recognized by its base address
// falling inside the array's current capacity window and is re-derived
// from the new base after a potential reallocation. A source outside
// the window is treated as foreign memory and used as given; the
// caller is responsible for unrelated-array overlap. InsertSlice
// additionally refuses an insertion point inside the source slice;
// splitting such an insert is the caller's job.
//
// Single-value Append and Insert receive the value by copy, so the
// corresponding aliasing hazard cannot arise for them.
//
// # Complexity
//
// Appending N elements one at a time performs O(log N) reallocations.
// Capacity never shrinks except through Shrink, which converts the
// array back to an exact-size plain allocation.
//
// Operations are synchronous and unsynchronized; concurrent mutation
// of one array is undefined.
package growable
