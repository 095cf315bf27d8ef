package extract

import (
	"reflect"

	"attr-builder/naming"
)

// SymbolKey identifies an enumerated symbol. Value holds the underlying
// representation (int64, uint64 or string), so Type is what keeps equal
// ordinals of different enumerations apart.
type SymbolKey struct {
	Type  reflect.Type
	Value any
}

// Symbol returns the cache key and the naming descriptor of a KindSymbol
// value. The descriptor is what a symbol converter receives.
func Symbol(v any) (SymbolKey, naming.Descriptor) {
	rv := reflect.ValueOf(v)
	rt := rv.Type()
	key := SymbolKey{Type: rt}
	desc := naming.Descriptor{Shape: rt.Name()}

	switch rt.Kind() {
	case reflect.String:
		key.Value = rv.String()
		desc.Name = rv.String()
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		key.Value = rv.Uint()
		desc.Name = Text(v)
	default:
		key.Value = rv.Int()
		desc.Name = Text(v)
	}

	return key, desc
}
