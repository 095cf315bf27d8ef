package classes

import (
	"slices"
	"strings"

	"attr-builder/errs"
	"attr-builder/internal/extract"
	"attr-builder/options"
)

// AttributeKey is the attribute map key read by AddAttributes.
const AttributeKey = "class"

// List is an ordered class list. It is not safe for concurrent mutation;
// a finished list may be read from several goroutines.
type List struct {
	opts    *options.Options
	classes []string
}

// New returns an empty list bound to the caches of opts.
func New(opts *options.Options) (*List, error) {
	if err := opts.Validate(); err != nil {
		return nil, err
	}

	return &List{opts: opts}, nil
}

// Add splits class on whitespace and appends every token.
func (l *List) Add(class string) *List {
	l.insert(class, true)
	return l
}

// AddIf adds class when on is true. With deduplication a false condition
// removes every token of class already in the list.
func (l *List) AddIf(class string, on bool) *List {
	l.insert(class, on)
	return l
}

// AddWhen evaluates pred and adds class as AddIf does.
func (l *List) AddWhen(class string, pred func() bool) error {
	return l.add(When(class, pred))
}

// AddSymbol adds the converted name of an enumerated symbol: a defined
// integer type with a String method or a defined string type.
func (l *List) AddSymbol(v any) error {
	switch extract.Classify(v) {
	case extract.KindNil:
		return nil
	case extract.KindSymbol:
		name, err := l.opts.SymbolName(v)
		if err != nil {
			return err
		}
		l.insert(name, true)
		return nil
	default:
		return errs.Configuration("%T is not an enumerated symbol", v)
	}
}

// AddAll adds every element of classes.
func (l *List) AddAll(classes []string) *List {
	for _, c := range classes {
		l.insert(c, true)
	}

	return l
}

// AddList adds the classes of other. A nil list adds nothing.
func (l *List) AddList(other *List) *List {
	if other == nil {
		return l
	}

	// other may be l itself
	for _, c := range slices.Clone(other.classes) {
		l.insert(c, true)
	}

	return l
}

// AddAttributes adds the value stored under "class" as text. Other keys are
// ignored.
func (l *List) AddAttributes(attrs map[string]any) *List {
	l.addMap(attrs)
	return l
}

// AddStruct adds one class per bool field of the struct v points to or
// holds: the converted field name, or the name from the `attr` tag. False
// fields are skipped, or removed with deduplication. A struct with any
// other field type is a configuration error. Values that are not structs
// have no fields and add nothing.
func (l *List) AddStruct(v any) error {
	rv, ok := extract.Record(v)
	if !ok {
		return nil
	}

	extractor, err := l.opts.ClassExtractor(rv.Type())
	if err != nil {
		return err
	}

	extractor(rv, l.insert)

	return nil
}

// AddMultiple adds every value in order. Values are matched in this order:
// nil, string, Pending, *List, enumerated symbol, string sequence, map
// with a string key, struct. Anything else adds nothing.
// Either every value is added or, on error, the list is left unchanged.
func (l *List) AddMultiple(values ...any) error {
	snapshot := slices.Clone(l.classes)

	for _, v := range values {
		if err := l.add(v); err != nil {
			l.classes = snapshot
			return err
		}
	}

	return nil
}

func (l *List) add(v any) error {
	switch x := v.(type) {
	case nil:
		return nil
	case string:
		l.insert(x, true)
		return nil
	case Pending:
		on, err := x.resolve()
		if err != nil {
			return err
		}
		l.insert(x.class, on)
		return nil
	case *List:
		l.AddList(x)
		return nil
	}

	switch extract.Classify(v) {
	case extract.KindNil:
	case extract.KindSymbol:
		return l.AddSymbol(v)
	case extract.KindSequence:
		for s := range extract.Strings(v) {
			l.insert(s, true)
		}
	case extract.KindMap:
		l.addMap(v)
	case extract.KindRecord:
		return l.AddStruct(v)
	}

	return nil
}

func (l *List) addMap(m any) {
	if val, ok := extract.Lookup(m, AttributeKey); ok {
		l.insert(extract.Text(val), true)
	}
}

func (l *List) insert(text string, on bool) {
	dedupe := l.opts.Deduplicates()

	for _, class := range strings.Fields(text) {
		switch {
		case on && dedupe && slices.Contains(l.classes, class):
		case on:
			l.classes = append(l.classes, class)
		case dedupe:
			l.classes = slices.DeleteFunc(l.classes, func(c string) bool { return c == class })
		}
	}
}

// HasClass reports whether class is in the list.
func (l *List) HasClass(class string) bool {
	return slices.Contains(l.classes, class)
}

// Classes returns a copy of the classes in insertion order.
func (l *List) Classes() []string {
	return slices.Clone(l.classes)
}

// Len returns the number of classes.
func (l *List) Len() int {
	return len(l.classes)
}

// String joins the classes with single spaces. An empty list is "".
func (l *List) String() string {
	return strings.Join(l.classes, " ")
}

// MarshalText implements encoding.TextMarshaler.
func (l *List) MarshalText() ([]byte, error) {
	return []byte(l.String()), nil
}
