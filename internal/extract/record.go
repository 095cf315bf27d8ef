package extract

import (
	"fmt"
	"reflect"
	"unsafe"

	"attr-builder/errs"
	"attr-builder/naming"
)

// TagName is the struct tag that overrides the converted name of a field.
// The value "-" excludes the field.
const TagName = "attr"

// ClassEmitter receives one (class, condition) pair per eligible field.
type ClassEmitter func(class string, on bool)

// ClassExtractor emits every bool field of one struct value.
type ClassExtractor func(v reflect.Value, emit ClassEmitter)

// StyleEmitter receives one (property, value) pair per non-nil field.
type StyleEmitter func(property, value string) error

// StyleExtractor emits every non-nil field of one struct value.
type StyleExtractor func(v reflect.Value, emit StyleEmitter) error

// FieldError is returned when a struct used for class extraction has a
// field that is not a bool.
type FieldError struct {
	Shape string
	Field string
	Type  reflect.Type
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("only bool fields are allowed for class extraction, invalid field: %s.%s (type: %s)",
		e.Shape, e.Field, e.Type)
}

func (e *FieldError) Unwrap() error {
	return errs.ErrConfiguration
}

type field struct {
	index []int
	name  string
}

// CompileClass builds the extractor of struct type t for class lists.
// Field names are converted here, once; the extractor only reads values.
func CompileClass(t reflect.Type, namer naming.Converter) (ClassExtractor, error) {
	fields, err := compileFields(t, namer, func(f reflect.StructField) error {
		if f.Type.Kind() != reflect.Bool {
			return &FieldError{Shape: shapeName(t), Field: f.Name, Type: f.Type}
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	return func(v reflect.Value, emit ClassEmitter) {
		for _, f := range fields {
			fv, err := v.FieldByIndexErr(f.index)
			if err != nil {
				continue
			}

			emit(f.name, fv.Bool())
		}
	}, nil
}

// CompileStyle builds the extractor of struct type t for style blocks.
// Every field is eligible; nil values are skipped when extracting.
func CompileStyle(t reflect.Type, namer naming.Converter) (StyleExtractor, error) {
	fields, err := compileFields(t, namer, nil)
	if err != nil {
		return nil, err
	}

	return func(v reflect.Value, emit StyleEmitter) error {
		if !v.CanAddr() {
			// unexported fields are read through an addressable copy
			cp := reflect.New(v.Type()).Elem()
			cp.Set(v)
			v = cp
		}

		for _, f := range fields {
			fv, err := v.FieldByIndexErr(f.index)
			if err != nil || isNil(fv) {
				continue
			}

			if err := emit(f.name, fieldText(fv)); err != nil {
				return err
			}
		}

		return nil
	}, nil
}

func compileFields(t reflect.Type, namer naming.Converter, check func(reflect.StructField) error) ([]field, error) {
	if t.Kind() != reflect.Struct {
		return nil, errs.Configuration("type %s is not a struct", t)
	}

	if namer == nil {
		return nil, errs.Configuration("name converter is not set for %s", t)
	}

	var fields []field

	for _, f := range reflect.VisibleFields(t) {
		if f.Name == "_" {
			continue
		}

		if f.Anonymous && derefKind(f.Type) == reflect.Struct {
			// promoted fields are visited on their own
			continue
		}

		tag := f.Tag.Get(TagName)
		if tag == "-" {
			continue
		}

		if check != nil {
			if err := check(f); err != nil {
				return nil, err
			}
		}

		name := tag
		if name == "" {
			name = namer(naming.Descriptor{Name: f.Name, Shape: shapeName(t)})
		}

		fields = append(fields, field{index: f.Index, name: name})
	}

	return fields, nil
}

// fieldText is Text for a field value. An addressable unexported field is
// reopened at its address so it renders like an exported one.
func fieldText(v reflect.Value) string {
	if !v.CanInterface() && v.CanAddr() {
		v = reflect.NewAt(v.Type(), unsafe.Pointer(v.UnsafeAddr())).Elem()
	}

	if v.CanInterface() {
		return Text(v.Interface())
	}

	return fmt.Sprint(v)
}

func shapeName(t reflect.Type) string {
	if t.Name() != "" {
		return t.Name()
	}

	return t.String()
}

func derefKind(t reflect.Type) reflect.Kind {
	for t.Kind() == reflect.Pointer {
		t = t.Elem()
	}

	return t.Kind()
}
