package extract

import (
	"fmt"
	"iter"
	"reflect"
)

var stringerType = reflect.TypeFor[fmt.Stringer]()

// Classify returns the variant of v. It never fails: values no other rule
// accepts are KindOpaque.
func Classify(v any) Kind {
	switch x := v.(type) {
	case nil:
		return KindNil
	case string:
		return KindText
	case []string:
		return KindSequence
	case iter.Seq[string]:
		if x == nil {
			return KindNil
		}
		return KindSequence
	}

	rv := reflect.ValueOf(v)
	rt := rv.Type()

	if IsSymbolType(rt) {
		return KindSymbol
	}

	switch rt.Kind() {
	case reflect.Slice, reflect.Array:
		if rt.Elem().Kind() == reflect.String {
			return KindSequence
		}
	case reflect.Map:
		if rt.Key().Kind() == reflect.String {
			if rv.IsNil() {
				return KindNil
			}
			return KindMap
		}
	case reflect.Struct:
		return KindRecord
	case reflect.Pointer:
		if rv.IsNil() {
			return KindNil
		}
		if rt.Elem().Kind() == reflect.Struct {
			return KindRecord
		}
	case reflect.Func, reflect.Interface, reflect.Chan:
		if rv.IsNil() {
			return KindNil
		}
	}

	return KindOpaque
}

// IsSymbolType reports whether t is an enumerated symbol type: a defined
// integer type with a String method, or a defined string type.
func IsSymbolType(t reflect.Type) bool {
	if t == nil || t.Name() == "" || t.PkgPath() == "" {
		return false
	}

	switch t.Kind() {
	default:
		return false
	case reflect.String:
		return true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return t.Implements(stringerType)
	}
}

// Strings yields the elements of a KindSequence value.
func Strings(v any) iter.Seq[string] {
	switch x := v.(type) {
	case []string:
		return func(yield func(string) bool) {
			for _, s := range x {
				if !yield(s) {
					return
				}
			}
		}
	case iter.Seq[string]:
		return x
	}

	rv := reflect.ValueOf(v)

	return func(yield func(string) bool) {
		for i := range rv.Len() {
			if !yield(rv.Index(i).String()) {
				return
			}
		}
	}
}

// Lookup returns the value stored under key in a KindMap value. A nil value
// is reported as missing.
func Lookup(m any, key string) (any, bool) {
	switch x := m.(type) {
	case map[string]any:
		val, ok := x[key]
		return val, ok && val != nil
	case map[string]string:
		val, ok := x[key]
		return val, ok
	}

	rv := reflect.ValueOf(m)
	if rv.Kind() != reflect.Map || rv.Type().Key().Kind() != reflect.String || rv.IsNil() {
		return nil, false
	}

	val := rv.MapIndex(reflect.ValueOf(key).Convert(rv.Type().Key()))
	if !val.IsValid() || isNil(val) {
		return nil, false
	}

	return val.Interface(), true
}

// Record returns the struct value behind a KindRecord value.
func Record(v any) (reflect.Value, bool) {
	rv := reflect.ValueOf(v)
	for rv.Kind() == reflect.Pointer {
		if rv.IsNil() {
			return reflect.Value{}, false
		}
		rv = rv.Elem()
	}

	if rv.Kind() != reflect.Struct {
		return reflect.Value{}, false
	}

	return rv, true
}

func isNil(v reflect.Value) bool {
	switch v.Kind() {
	case reflect.Pointer, reflect.Interface, reflect.Map, reflect.Slice, reflect.Func, reflect.Chan:
		return v.IsNil()
	}

	return false
}
