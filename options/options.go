package options

import (
	"log/slog"
	"reflect"
	"sync"

	"attr-builder/errs"
	"attr-builder/internal/cache"
	"attr-builder/internal/extract"
	"attr-builder/naming"
)

// Options configures how class lists and style blocks name extracted fields
// and symbols. Each *Options owns the caches of everything compiled with it:
// converted names are baked into the cached extractors, so changing a
// converter after first use needs Update or ClearCache to take effect.
//
// Fields may be set directly until the first list or block is created.
// An Options must not be copied after first use.
type Options struct {
	// FieldNamer converts struct field names to class names or style properties.
	FieldNamer naming.Converter
	// SymbolNamer converts enumerated symbols to class names.
	SymbolNamer naming.Converter
	// Deduplicate keeps every class at most once in a list. A class added
	// with a false condition is removed from the list.
	Deduplicate bool
	// Logger receives debug events about compilation and cache clears.
	Logger *slog.Logger

	mu     sync.RWMutex
	once   sync.Once
	caches *cache.Set
}

// Default returns options with kebab-case converters that map underscores
// to hyphens and without deduplication.
func Default() *Options {
	return &Options{
		FieldNamer:  naming.KebabCaseWithUnderscoreToHyphen,
		SymbolNamer: naming.KebabCaseWithUnderscoreToHyphen,
	}
}

// Validate reports a missing converter.
func (o *Options) Validate() error {
	if o == nil {
		return errs.Configuration("options are nil")
	}

	o.mu.RLock()
	defer o.mu.RUnlock()

	if o.FieldNamer == nil {
		return errs.Configuration("field name converter is not set")
	}

	if o.SymbolNamer == nil {
		return errs.Configuration("symbol name converter is not set")
	}

	return nil
}

// Deduplicates reports the Deduplicate setting.
func (o *Options) Deduplicates() bool {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.Deduplicate
}

// Update applies fn under the write lock and, when fn succeeds, clears the
// caches so the new converters are used from then on.
func (o *Options) Update(fn func(*Options) error) error {
	o.mu.Lock()
	defer o.mu.Unlock()

	if err := fn(o); err != nil {
		return err
	}

	o.set().Clear()
	o.log().Debug("options updated, caches cleared")

	return nil
}

// ClearCache drops every compiled extractor and converted symbol name.
func (o *Options) ClearCache() {
	o.mu.Lock()
	defer o.mu.Unlock()

	o.set().Clear()
	o.log().Debug("caches cleared")
}

// CacheStats returns the number of cached class extractors, style
// extractors and symbol names.
func (o *Options) CacheStats() (classes, styles, symbols int) {
	set := o.set()

	return set.Classes.Len(), set.Styles.Len(), set.Symbols.Len()
}

// ClassExtractor returns the class extractor of struct type t, compiling it
// with FieldNamer on first use.
func (o *Options) ClassExtractor(t reflect.Type) (extract.ClassExtractor, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.set().Classes.GetOrBuild(t, func(t reflect.Type) (extract.ClassExtractor, error) {
		o.log().Debug("compiling class extractor", slog.String("type", t.String()))
		return extract.CompileClass(t, o.FieldNamer)
	})
}

// StyleExtractor returns the style extractor of struct type t, compiling it
// with FieldNamer on first use.
func (o *Options) StyleExtractor(t reflect.Type) (extract.StyleExtractor, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	return o.set().Styles.GetOrBuild(t, func(t reflect.Type) (extract.StyleExtractor, error) {
		o.log().Debug("compiling style extractor", slog.String("type", t.String()))
		return extract.CompileStyle(t, o.FieldNamer)
	})
}

// SymbolName returns the converted name of an enumerated symbol, converting
// it with SymbolNamer on first use.
func (o *Options) SymbolName(v any) (string, error) {
	o.mu.RLock()
	defer o.mu.RUnlock()

	key, desc := extract.Symbol(v)
	set := o.set()

	if o.SymbolNamer == nil {
		return "", errs.Configuration("symbol name converter is not set for %s", desc)
	}

	return set.Symbols.GetOrAdd(key, func() string {
		return o.SymbolNamer(desc)
	}), nil
}

func (o *Options) set() *cache.Set {
	o.once.Do(func() {
		o.caches = &cache.Set{}
	})

	return o.caches
}

func (o *Options) log() *slog.Logger {
	if o.Logger != nil {
		return o.Logger
	}

	return slog.Default()
}
