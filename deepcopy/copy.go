package deepcopy

import (
	"reflect"
)

// Copy returns a structurally independent copy of v.
//
// Values are classified with KindOf. Primitives are returned unchanged.
// Arrays (slices and fixed-size arrays) come back as a new sequence of the
// same type and length, each element copied in order. Objects come back as
// a new map of the same type with every entry copied, or, for structs, as a
// new struct whose exported fields are copied recursively and whose
// unexported fields are carried over by value. Map keys are reused as is.
// Nil slices and nil maps are returned as nil.
//
// Pointers are primitives, so a pointer inside the copy still refers to the
// original pointee.
//
// Cyclic input is not supported. A container that reaches itself through an
// interface-typed element recurses until the goroutine stack is exhausted,
// which is fatal. Extremely deep nesting is bounded only by the stack.
func Copy(v any) any {
	if v == nil {
		return nil
	}

	return copyValue(reflect.ValueOf(v)).Interface()
}

// Clone is the typed form of Copy.
func Clone[T any](v T) T {
	out, _ := copyValue(reflect.ValueOf(&v).Elem()).Interface().(T)
	return out
}

func copyValue(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Interface {
		if v.IsNil() {
			return v
		}
		return copyValue(v.Elem())
	}

	switch kindOfValue(v) {
	case KindArray:
		return copyArray(v)
	case KindObject:
		return copyObject(v)
	default:
		return v
	}
}

func copyArray(v reflect.Value) reflect.Value {
	var out reflect.Value

	switch v.Kind() {
	case reflect.Slice:
		if v.IsNil() {
			return v
		}
		out = reflect.MakeSlice(v.Type(), v.Len(), v.Len())
	default:
		out = reflect.New(v.Type()).Elem()
	}

	for i := 0; i < v.Len(); i++ {
		out.Index(i).Set(copyValue(v.Index(i)))
	}

	return out
}

func copyObject(v reflect.Value) reflect.Value {
	if v.Kind() == reflect.Map {
		if v.IsNil() {
			return v
		}

		out := reflect.MakeMapWithSize(v.Type(), v.Len())
		iter := v.MapRange()
		for iter.Next() {
			out.SetMapIndex(iter.Key(), copyValue(iter.Value()))
		}

		return out
	}

	t := v.Type()
	out := reflect.New(t).Elem()
	out.Set(v)

	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		out.Field(i).Set(copyValue(v.Field(i)))
	}

	return out
}
