package options

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"

	"gopkg.in/yaml.v3"

	"attr-builder/errs"
	"attr-builder/naming"
)

// File is the serialized form of Options. Naming fields take the names
// listed by naming.Names; empty fields keep the current converter.
type File struct {
	FieldNaming  string `yaml:"field_naming,omitempty" json:"field_naming,omitempty" jsonschema:"enum=none,enum=underscore-to-hyphen,enum=kebab-case,enum=kebab-case-underscore-to-hyphen,description=Converter for struct field names"`
	SymbolNaming string `yaml:"symbol_naming,omitempty" json:"symbol_naming,omitempty" jsonschema:"enum=none,enum=underscore-to-hyphen,enum=kebab-case,enum=kebab-case-underscore-to-hyphen,description=Converter for enumerated symbols"`
	Deduplicate  *bool  `yaml:"deduplicate,omitempty" json:"deduplicate,omitempty" jsonschema:"description=Keep every class at most once"`
}

// LoadFile reads and parses a YAML options file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read options file %s: %w", path, err)
	}

	return Load(bytes.NewReader(data))
}

// Load parses YAML options. Unknown keys are rejected; an empty document
// yields an empty File.
func Load(r io.Reader) (*File, error) {
	var f File

	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)

	if err := dec.Decode(&f); err != nil && !errors.Is(err, io.EOF) {
		return nil, fmt.Errorf("failed to parse options YAML: %w", err)
	}

	return &f, nil
}

// Apply resolves the converter names and stores them into o. Nothing is
// changed when a name is unknown.
func (f *File) Apply(o *Options) error {
	fieldNamer, err := resolve(f.FieldNaming, o.FieldNamer)
	if err != nil {
		return errs.Configuration("field_naming: %v", err)
	}

	symbolNamer, err := resolve(f.SymbolNaming, o.SymbolNamer)
	if err != nil {
		return errs.Configuration("symbol_naming: %v", err)
	}

	o.FieldNamer = fieldNamer
	o.SymbolNamer = symbolNamer

	if f.Deduplicate != nil {
		o.Deduplicate = *f.Deduplicate
	}

	return nil
}

// Options returns Default options with f applied.
func (f *File) Options() (*Options, error) {
	o := Default()
	if err := f.Apply(o); err != nil {
		return nil, err
	}

	return o, nil
}

// Marshal serializes f to YAML.
func (f *File) Marshal() ([]byte, error) {
	return yaml.Marshal(f)
}

func resolve(name string, current naming.Converter) (naming.Converter, error) {
	if name == "" && current != nil {
		return current, nil
	}

	return naming.Lookup(name)
}
