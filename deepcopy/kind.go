// Package deepcopy clones values of unknown shape.
//
// Copy is the structural deep copy. JSONCopy, MsgpackCopy and
// InterchangeCopy round-trip a value through a serialization format instead;
// they are lossy and are not equivalent to Copy (see their docs).
package deepcopy

import "reflect"

// Kind is the structural classification used by Copy.
type Kind int

const (
	// KindPrimitive values are returned unchanged by Copy.
	KindPrimitive Kind = iota
	// KindArray values are ordered, index-addressed sequences.
	KindArray
	// KindObject values map keys to values: maps and structs.
	KindObject
)

func (k Kind) String() string {
	switch k {
	case KindArray:
		return "array"
	case KindObject:
		return "object"
	default:
		return "primitive"
	}
}

// KindOf classifies v by its runtime structure rather than its declared
// type, so named types such as `type Tags []string` are arrays.
func KindOf(v any) Kind {
	if v == nil {
		return KindPrimitive
	}

	return kindOfValue(reflect.ValueOf(v))
}

func kindOfValue(v reflect.Value) Kind {
	switch v.Kind() {
	case reflect.Slice, reflect.Array:
		return KindArray
	case reflect.Map, reflect.Struct:
		return KindObject
	default:
		return KindPrimitive
	}
}
