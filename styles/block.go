package styles

import (
	"slices"
	"strings"

	"attr-builder/errs"
	"attr-builder/internal/extract"
	"attr-builder/options"
)

// AttributeKey is the attribute map key read by AddAttributes.
const AttributeKey = "style"

// Block is an ordered list of declarations. It is not safe for concurrent
// mutation; a finished block may be read from several goroutines.
type Block struct {
	opts   *options.Options
	styles []Declaration
}

// New returns an empty block bound to the caches of opts.
func New(opts *options.Options) (*Block, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &Block{opts: opts}, nil
}

// Add appends property:value. An empty value adds nothing; an empty
// property fails with ErrEmptyProperty.
func (b *Block) Add(property, value string) error {
	return b.insert(property, value, true)
}

// AddIf appends property:value when on is true.
func (b *Block) AddIf(property, value string, on bool) error {
	return b.insert(property, value, on)
}

// AddFunc appends property with the value returned by fn when on is true.
func (b *Block) AddFunc(property string, fn func() string, on bool) error {
	return b.add(FuncIf(property, fn, on))
}

// AddWhen appends property:value when pred returns true.
func (b *Block) AddWhen(property, value string, pred func() bool) error {
	return b.add(When(property, value, pred))
}

// AddFuncWhen appends property with the value returned by fn when pred
// returns true.
func (b *Block) AddFuncWhen(property string, fn func() string, pred func() bool) error {
	return b.add(FuncWhen(property, fn, pred))
}

// AddBlock appends the declarations of other. A nil block adds nothing.
func (b *Block) AddBlock(other *Block) *Block {
	if other == nil {
		return b
	}

	b.styles = append(b.styles, other.styles...)

	return b
}

// AddAttributes parses the value stored under "style" as declaration text
// and appends it. Other keys are ignored.
func (b *Block) AddAttributes(attrs map[string]any) error {
	return b.atomically(func() error {
		return b.addMap(attrs)
	})
}

// AddText parses declaration text and appends it.
func (b *Block) AddText(text string) error {
	return b.atomically(func() error {
		return b.addText(text)
	})
}

// AddStruct appends one declaration per field of the struct v points to or
// holds: the converted field name, or the name from the `attr` tag, with the
// field value as text. Nil and empty values are skipped.
func (b *Block) AddStruct(v any) error {
	return b.atomically(func() error {
		return b.addStruct(v)
	})
}

// AddMultiple appends every value in order. Values are matched in this
// order: nil, Declaration, Pending, string (declaration text), *Block, map
// with a string key, struct. Anything else is converted to text and parsed.
// Either every value is added or, on error, the block is left unchanged.
func (b *Block) AddMultiple(values ...any) error {
	return b.atomically(func() error {
		for _, v := range values {
			if err := b.add(v); err != nil {
				return err
			}
		}
		return nil
	})
}

func (b *Block) add(v any) error {
	switch x := v.(type) {
	case nil:
		return nil
	case Declaration:
		return b.insert(x.Property, x.Value, true)
	case Pending:
		value, on, err := x.resolve()
		if err != nil {
			return err
		}
		return b.insert(x.property, value, on)
	case string:
		return b.addText(x)
	case *Block:
		b.AddBlock(x)
		return nil
	}

	switch extract.Classify(v) {
	case extract.KindNil:
		return nil
	case extract.KindSequence:
		for s := range extract.Strings(v) {
			if err := b.addText(s); err != nil {
				return err
			}
		}
		return nil
	case extract.KindMap:
		return b.addMap(v)
	case extract.KindRecord:
		return b.addStruct(v)
	default:
		return b.addText(extract.Text(v))
	}
}

func (b *Block) addMap(m any) error {
	val, ok := extract.Lookup(m, AttributeKey)
	if !ok {
		return nil
	}

	return b.addText(extract.Text(val))
}

func (b *Block) addText(text string) error {
	decls, err := Parse(text)
	if err != nil {
		return err
	}

	for _, d := range decls {
		if err := b.insert(d.Property, d.Value, true); err != nil {
			return err
		}
	}

	return nil
}

func (b *Block) addStruct(v any) error {
	rv, ok := extract.Record(v)
	if !ok {
		if extract.Classify(v) == extract.KindNil {
			return nil
		}
		return errs.Configuration("type %T is not a struct", v)
	}

	extractor, err := b.opts.StyleExtractor(rv.Type())
	if err != nil {
		return err
	}

	return extractor(rv, func(property, value string) error {
		return b.insert(property, value, true)
	})
}

func (b *Block) insert(property, value string, on bool) error {
	if property == "" {
		return ErrEmptyProperty
	}

	if on && value != "" {
		b.styles = append(b.styles, Declaration{Property: property, Value: value})
	}

	return nil
}

// atomically runs fn and drops whatever it appended when it fails.
func (b *Block) atomically(fn func() error) error {
	n := len(b.styles)

	if err := fn(); err != nil {
		clear(b.styles[n:])
		b.styles = b.styles[:n]
		return err
	}

	return nil
}

// HasStyle reports whether property is declared.
func (b *Block) HasStyle(property string) bool {
	return slices.ContainsFunc(b.styles, func(d Declaration) bool {
		return d.Property == property
	})
}

// Value returns the value of the first declaration of property.
func (b *Block) Value(property string) (string, bool) {
	i := slices.IndexFunc(b.styles, func(d Declaration) bool {
		return d.Property == property
	})
	if i < 0 {
		return "", false
	}

	return b.styles[i].Value, true
}

// Styles returns a copy of the declarations in insertion order.
func (b *Block) Styles() []Declaration {
	return slices.Clone(b.styles)
}

// Len returns the number of declarations.
func (b *Block) Len() int {
	return len(b.styles)
}

// String joins the declarations with ";". An empty block is "".
func (b *Block) String() string {
	var sb strings.Builder

	for i, d := range b.styles {
		if i > 0 {
			sb.WriteByte(';')
		}
		sb.WriteString(d.Property)
		sb.WriteByte(':')
		sb.WriteString(d.Value)
	}

	return sb.String()
}

// MarshalText implements encoding.TextMarshaler.
func (b *Block) MarshalText() ([]byte, error) {
	return []byte(b.String()), nil
}
