package classes

import "attr-builder/errs"

// Pending is a class whose condition is resolved when it is added.
type Pending struct {
	class string
	cond  func() (bool, error)
}

// If adds class when on is true. With deduplication a false condition
// removes class from the list.
func If(class string, on bool) Pending {
	return Pending{class: class, cond: func() (bool, error) { return on, nil }}
}

// When adds class when pred returns true, otherwise behaves like If with a
// false condition. A nil pred fails the add.
func When(class string, pred func() bool) Pending {
	return Pending{class: class, cond: func() (bool, error) {
		if pred == nil {
			return false, errs.NilArgument("predicate")
		}
		return pred(), nil
	}}
}

// Class returns the class text.
func (p Pending) Class() string {
	return p.class
}

func (p Pending) resolve() (bool, error) {
	if p.cond == nil {
		return true, nil
	}

	return p.cond()
}
