package styles

import "attr-builder/errs"

// Pending is a declaration whose value or condition is resolved when it is
// added. A false condition or an empty value adds nothing.
type Pending struct {
	property string
	value    func() (string, error)
	cond     func() (bool, error)
}

// If declares property:value when on is true.
func If(property, value string, on bool) Pending {
	return Pending{property: property, value: constant(value), cond: condition(on)}
}

// Func declares property with the value returned by fn.
func Func(property string, fn func() string) Pending {
	return FuncIf(property, fn, true)
}

// FuncIf declares property with the value returned by fn when on is true.
func FuncIf(property string, fn func() string, on bool) Pending {
	return Pending{property: property, value: producer(fn), cond: condition(on)}
}

// When declares property:value when pred returns true.
func When(property, value string, pred func() bool) Pending {
	return Pending{property: property, value: constant(value), cond: predicate(pred)}
}

// FuncWhen declares property with the value returned by fn when pred
// returns true.
func FuncWhen(property string, fn func() string, pred func() bool) Pending {
	return Pending{property: property, value: producer(fn), cond: predicate(pred)}
}

// Property returns the declared property.
func (p Pending) Property() string {
	return p.property
}

func (p Pending) resolve() (value string, on bool, err error) {
	if p.value != nil {
		if value, err = p.value(); err != nil {
			return "", false, err
		}
	}

	on = true
	if p.cond != nil {
		if on, err = p.cond(); err != nil {
			return "", false, err
		}
	}

	return value, on, nil
}

func constant(value string) func() (string, error) {
	return func() (string, error) { return value, nil }
}

func condition(on bool) func() (bool, error) {
	return func() (bool, error) { return on, nil }
}

func producer(fn func() string) func() (string, error) {
	return func() (string, error) {
		if fn == nil {
			return "", errs.NilArgument("value")
		}
		return fn(), nil
	}
}

func predicate(pred func() bool) func() (bool, error) {
	return func() (bool, error) {
		if pred == nil {
			return false, errs.NilArgument("predicate")
		}
		return pred(), nil
	}
}
