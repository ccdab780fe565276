package deepcopy

import (
	"fmt"
	"reflect"
)

// HasKeys reports whether every key in keys is an own key of obj: an entry
// of a string-keyed map, or an exported field declared directly on a struct
// (or non-nil pointer to one). Fields promoted from embedded structs are not
// own keys. An empty key list reports false.
//
// Any other obj, including nil, fails with ErrInvalidArgument.
func HasKeys(obj any, keys []string) (bool, error) {
	v := reflect.ValueOf(obj)
	if v.Kind() == reflect.Pointer && !v.IsNil() && v.Elem().Kind() == reflect.Struct {
		v = v.Elem()
	}

	var has func(key string) bool

	switch v.Kind() {
	case reflect.Map:
		if v.Type().Key().Kind() != reflect.String {
			return false, fmt.Errorf("%w: map key type %s is not a string", ErrInvalidArgument, v.Type().Key())
		}

		keyType := v.Type().Key()
		has = func(key string) bool {
			return v.MapIndex(reflect.ValueOf(key).Convert(keyType)).IsValid()
		}
	case reflect.Struct:
		t := v.Type()
		has = func(key string) bool {
			f, ok := t.FieldByName(key)
			return ok && f.IsExported() && len(f.Index) == 1
		}
	default:
		return false, fmt.Errorf("%w: %T is not an object", ErrInvalidArgument, obj)
	}

	if len(keys) == 0 {
		return false, nil
	}

	for _, key := range keys {
		if !has(key) {
			return false, nil
		}
	}

	return true, nil
}
