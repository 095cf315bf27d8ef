package builder

import (
	"fmt"
	"log/slog"

	"attr-builder/classes"
	"attr-builder/options"
	"attr-builder/styles"
)

// Option customizes a factory.
type Option func(*options.Options)

// WithLogger sets the logger receiving compilation and cache events.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options.Options) {
		o.Logger = logger
	}
}

type list interface {
	AddMultiple(values ...any) error
}

type factory[L list] struct {
	opts   *options.Options
	create func(*options.Options) (L, error)
}

func newFactory[L list](opts *options.Options, create func(*options.Options) (L, error), opt []Option) (factory[L], error) {
	if opts == nil {
		opts = options.Default()
	}

	for _, o := range opt {
		o(opts)
	}

	if err := opts.Validate(); err != nil {
		return factory[L]{}, err
	}

	return factory[L]{opts: opts, create: create}, nil
}

// Default returns the bound options. They may be changed before the first
// list is built; later changes need ClearCache to reach cached names.
func (f factory[L]) Default() *options.Options {
	return f.opts
}

// Create returns an empty list bound to the default options.
func (f factory[L]) Create() (L, error) {
	return f.create(f.opts)
}

// CreateWith returns an empty list bound to opts and its caches. nil opts
// means the default options.
func (f factory[L]) CreateWith(opts *options.Options) (L, error) {
	if opts == nil {
		opts = f.opts
	}

	return f.create(opts)
}

// Build creates a list and adds values to it.
func (f factory[L]) Build(values ...any) (L, error) {
	l, err := f.Create()
	if err != nil {
		return l, err
	}

	if err := l.AddMultiple(values...); err != nil {
		var zero L
		return zero, err
	}

	return l, nil
}

// MustBuild is Build that panics on error.
func (f factory[L]) MustBuild(values ...any) L {
	l, err := f.Build(values...)
	if err != nil {
		panic(fmt.Sprintf("build failed: %v", err))
	}

	return l
}

// ClearCache drops the compiled extractors and symbol names of the default
// options.
func (f factory[L]) ClearCache() {
	f.opts.ClearCache()
}

// Classes creates class lists.
type Classes struct {
	factory[*classes.List]
}

// NewClasses returns a class list factory bound to opts, or to
// options.Default() when opts is nil.
func NewClasses(opts *options.Options, opt ...Option) (*Classes, error) {
	f, err := newFactory(opts, classes.New, opt)
	if err != nil {
		return nil, err
	}

	return &Classes{factory: f}, nil
}

// Styles creates style blocks.
type Styles struct {
	factory[*styles.Block]
}

// NewStyles returns a style block factory bound to opts, or to
// options.Default() when opts is nil.
func NewStyles(opts *options.Options, opt ...Option) (*Styles, error) {
	f, err := newFactory(opts, styles.New, opt)
	if err != nil {
		return nil, err
	}

	return &Styles{factory: f}, nil
}
