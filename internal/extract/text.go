package extract

import (
	"fmt"
	"reflect"
)

// Text coerces v to text: strings as they are, fmt.Stringer and error
// through their methods, pointers through what they point to, everything
// else through fmt.Sprint. nil and nil pointers are empty.
func Text(v any) string {
	if v == nil {
		return ""
	}

	rv := reflect.ValueOf(v)
	if isNil(rv) {
		return ""
	}

	switch x := v.(type) {
	case string:
		return x
	case fmt.Stringer:
		return x.String()
	case error:
		return x.Error()
	default:
		if rv.Kind() == reflect.Pointer {
			return Text(rv.Elem().Interface())
		}
		return fmt.Sprint(x)
	}
}
