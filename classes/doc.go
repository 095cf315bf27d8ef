// Package classes builds space separated class lists.
//
// A List accepts plain text, conditional text, enumerated symbols, string
// sequences, other lists, attribute maps carrying a "class" key and structs
// whose bool fields name classes. Struct field names and symbols are
// converted by the list's options once per type, not once per value.
//
//	l, _ := classes.New(options.Default())
//	_ = l.AddMultiple("btn", classes.If("active", on), struct{ IsPrimary bool }{true})
//	l.String() // "btn active is-primary"
package classes
