package extract

//go:generate go tool stringer -type=Kind -output=kind_string.go

// Kind is the variant an input value is classified into. The order of the
// constants is the precedence order Classify tests them in.
type Kind int

const (
	KindNil      Kind = iota // nil, nil pointer, nil map or nil func
	KindText                 // string
	KindSymbol               // named integer type with a String method, or named string type
	KindSequence             // slice/array of strings or iter.Seq[string]
	KindMap                  // map with string keys
	KindRecord               // struct or pointer to struct
	KindOpaque               // anything else

	// KindTotal is the number of kinds defined
	KindTotal = int(iota)
)
