package options

import (
	"errors"
	"fmt"

	"github.com/joeshaw/envdecode"
)

// Env is the environment form of Options.
type Env struct {
	// FieldNaming. ENV: ATTRS_FIELD_NAMING
	FieldNaming string `env:"ATTRS_FIELD_NAMING,default=kebab-case-underscore-to-hyphen"`
	// SymbolNaming. ENV: ATTRS_SYMBOL_NAMING
	SymbolNaming string `env:"ATTRS_SYMBOL_NAMING,default=kebab-case-underscore-to-hyphen"`
	// Deduplicate. ENV: ATTRS_DEDUPLICATE
	Deduplicate bool `env:"ATTRS_DEDUPLICATE,default=false"`
}

// FromEnv builds Options from ATTRS_* environment variables, falling back
// to the defaults for the unset ones.
func FromEnv() (*Options, error) {
	var env Env
	if err := envdecode.Decode(&env); err != nil && !errors.Is(err, envdecode.ErrNoTargetFieldsAreSet) {
		return nil, fmt.Errorf("failed to decode options from environment: %w", err)
	}

	f := File{
		FieldNaming:  env.FieldNaming,
		SymbolNaming: env.SymbolNaming,
		Deduplicate:  &env.Deduplicate,
	}

	return f.Options()
}
