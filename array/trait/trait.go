// Package trait classifies element types for allocation backend
// selection.
//
// A type is trivially relocatable when a raw byte copy is a complete
// move: it holds no Go pointers at any nesting level, so the garbage
// collector never needs to see its storage and dropping a copy has no
// observable effect. Such types may live in memory the collector does
// not scan. Everything else must stay on the Go heap and must have
// vacated slots zeroed so the collector can reclaim what they
// referenced.
package trait

import (
	"reflect"
	"sync"
)

var cache sync.Map // reflect.Type -> bool

// TriviallyRelocatable reports whether T contains no Go pointers and
// may therefore be moved with a raw byte copy and stored outside
// GC-scanned memory. The result is cached per type.
func TriviallyRelocatable[T any]() bool {
	t := reflect.TypeOf((*T)(nil)).Elem()
	if v, ok := cache.Load(t); ok {
		return v.(bool)
	}
	v := pointerFree(t)
	cache.Store(t, v)
	return v
}

func pointerFree(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return true
	case reflect.Array:
		return pointerFree(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if !pointerFree(t.Field(i).Type) {
				return false
			}
		}
		return true
	default:
		// Pointer, Map, Chan, Slice, String, Interface, Func,
		// UnsafePointer: all carry references the collector must see.
		return false
	}
}
