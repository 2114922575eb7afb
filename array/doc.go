// Package array provides Array, a fixed-capacity owning array of
// elements of any type.
//
// # Overview
//
// An Array owns a contiguous run of elements. Unlike a Go slice it
// carries an explicit ownership tag (an *Owner descriptor) identifying
// which allocation backend, if any, produced its backing memory. A nil
// owner means a plain Go-heap allocation that the garbage collector
// reclaims on its own.
//
// The owner descriptor is how the growable-array layer (package
// array/growable) recognizes memory it manages: comparing the Owner
// pointer against a backend's descriptor is the only sanctioned way to
// decide whether out-of-band capacity bookkeeping exists for an array.
// Arrays with a foreign or nil owner are treated as exactly full, with
// capacity equal to length.
//
// # Ownership
//
// Exactly one Array value owns a given backing allocation at any
// instant. Set and Destroy release the previous contents through the
// owner's destroy function; Release hands ownership out without
// destroying anything. Arrays owned by an off-heap backend must be
// destroyed explicitly or their memory is never returned to the
// system.
//
// # Concurrency
//
// Array values are not synchronized. Concurrent mutation of the same
// value is undefined; callers needing shared access must serialize
// externally.
package array
