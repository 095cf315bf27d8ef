package naming

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"unicode"
)

const (
	hyphen     = '-'
	underscore = '_'
)

// ErrUnknownConvention is returned by Lookup for a name it does not know.
var ErrUnknownConvention = errors.New("unknown naming convention")

// Descriptor identifies a single nameable member: a struct field or an
// enumerated symbol. Shape is the name of the declaring type.
type Descriptor struct {
	Name  string
	Shape string
}

// String returns "Shape.Name", or just Name when the shape is anonymous.
func (d Descriptor) String() string {
	if d.Shape == "" {
		return d.Name
	}

	return d.Shape + "." + d.Name
}

// Converter maps a descriptor to the output key.
type Converter func(Descriptor) string

// None returns the name without any conversion.
func None(d Descriptor) string {
	return d.Name
}

// UnderscoreToHyphen replaces every underscore with a hyphen.
func UnderscoreToHyphen(d Descriptor) string {
	return strings.ReplaceAll(d.Name, string(underscore), string(hyphen))
}

// KebabCase lower-cases every upper-case letter and, except for the first
// character, puts a hyphen before it. Underscores are left untouched.
//
//	PascalCase_WithUnderScore -> pascal-case_-with-under-score
func KebabCase(d Descriptor) string {
	return kebab(d.Name, false)
}

// KebabCaseWithUnderscoreToHyphen is KebabCase with every underscore mapped
// to a hyphen as well.
//
//	PascalCase_WithUnderScore -> pascal-case--with-under-score
func KebabCaseWithUnderscoreToHyphen(d Descriptor) string {
	return kebab(d.Name, true)
}

func kebab(s string, underscoreToHyphen bool) string {
	var b strings.Builder

	b.Grow(len(s) * 2)

	for i, r := range []rune(s) {
		switch {
		case underscoreToHyphen && r == underscore:
			b.WriteRune(hyphen)
		case unicode.IsUpper(r):
			if i > 0 {
				b.WriteRune(hyphen)
			}

			b.WriteRune(unicode.ToLower(r))
		default:
			b.WriteRune(r)
		}
	}

	return b.String()
}

// Configuration names of the built-in policies.
const (
	NameNone                            = "none"
	NameUnderscoreToHyphen              = "underscore-to-hyphen"
	NameKebabCase                       = "kebab-case"
	NameKebabCaseWithUnderscoreToHyphen = "kebab-case-underscore-to-hyphen"
)

var conventions = map[string]Converter{
	NameNone:                            None,
	NameUnderscoreToHyphen:              UnderscoreToHyphen,
	NameKebabCase:                       KebabCase,
	NameKebabCaseWithUnderscoreToHyphen: KebabCaseWithUnderscoreToHyphen,
}

// Lookup resolves a built-in policy by its configuration name.
// The empty name resolves to KebabCaseWithUnderscoreToHyphen.
func Lookup(name string) (Converter, error) {
	if name == "" {
		return KebabCaseWithUnderscoreToHyphen, nil
	}

	conv, ok := conventions[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%w: %q (known: %s)", ErrUnknownConvention, name, strings.Join(Names(), ", "))
	}

	return conv, nil
}

// Names lists the configuration names of the built-in policies, sorted.
func Names() []string {
	names := make([]string, 0, len(conventions))
	for name := range conventions {
		names = append(names, name)
	}

	sort.Strings(names)

	return names
}
