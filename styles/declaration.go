package styles

import (
	"fmt"
	"strings"

	"attr-builder/errs"
)

var (
	// ErrEmptyProperty is returned when a declaration has no property.
	ErrEmptyProperty = fmt.Errorf("%w: property cannot be empty", errs.ErrMalformedInput)
	// ErrMalformedStyle is returned when declaration text has a segment
	// that is not exactly one property:value pair.
	ErrMalformedStyle = fmt.Errorf("%w: invalid style", errs.ErrMalformedInput)
)

// Declaration is one property:value pair.
type Declaration struct {
	Property string
	Value    string
}

func (d Declaration) String() string {
	return d.Property + ":" + d.Value
}

// Parse splits declaration text on ";" and every non-blank segment on ":".
// Property and value are trimmed. A segment with no colon or more than one
// fails with ErrMalformedStyle.
func Parse(text string) ([]Declaration, error) {
	var decls []Declaration

	for _, segment := range strings.Split(text, ";") {
		if strings.TrimSpace(segment) == "" {
			continue
		}

		pair := strings.Split(segment, ":")
		if len(pair) != 2 {
			return nil, fmt.Errorf("%w: %q in %q", ErrMalformedStyle, segment, text)
		}

		decls = append(decls, Declaration{
			Property: strings.TrimSpace(pair[0]),
			Value:    strings.TrimSpace(pair[1]),
		})
	}

	return decls, nil
}
