// Package registry wires the class and style factories as process-wide
// singletons for hosts that compose their services at startup.
package registry

import (
	"sync"

	"attr-builder/builder"
	"attr-builder/options"
)

// Configure adjusts options before the factory using them is created.
type Configure func(*options.Options)

type entry[F any] struct {
	once      sync.Once
	configure Configure
	opts      *options.Options
	factory   F
	err       error
}

func (e *entry[F]) get(configure Configure, create func(*options.Options, ...builder.Option) (F, error), opt []builder.Option) (F, *options.Options, error) {
	e.once.Do(func() {
		e.opts = options.Default()
		if configure != nil {
			configure(e.opts)
		}
		e.factory, e.err = create(e.opts, opt...)
	})

	return e.factory, e.opts, e.err
}

// Services holds at most one class factory and one style factory. The
// zero value is ready to use.
type Services struct {
	mu      sync.Mutex
	opt     []builder.Option
	classes entry[*builder.Classes]
	styles  entry[*builder.Styles]
}

// New returns services whose factories are created with opt.
func New(opt ...builder.Option) *Services {
	return &Services{opt: opt}
}

// AddClassBuilder registers the class factory. configure runs once, on the
// default options, right before the factory is first requested. The first
// registration wins.
func (s *Services) AddClassBuilder(configure Configure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.classes.configure == nil {
		s.classes.configure = configure
	}
}

// AddStyleBuilder registers the style factory, as AddClassBuilder does.
func (s *Services) AddStyleBuilder(configure Configure) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.styles.configure == nil {
		s.styles.configure = configure
	}
}

// ClassBuilder returns the class factory singleton.
func (s *Services) ClassBuilder() (*builder.Classes, error) {
	f, _, err := s.classes.get(s.registered(&s.classes.configure), builder.NewClasses, s.opt)
	return f, err
}

// ClassOptions returns the options of the class factory singleton.
func (s *Services) ClassOptions() (*options.Options, error) {
	_, o, err := s.classes.get(s.registered(&s.classes.configure), builder.NewClasses, s.opt)
	return o, err
}

// StyleBuilder returns the style factory singleton.
func (s *Services) StyleBuilder() (*builder.Styles, error) {
	f, _, err := s.styles.get(s.registered(&s.styles.configure), builder.NewStyles, s.opt)
	return f, err
}

// StyleOptions returns the options of the style factory singleton.
func (s *Services) StyleOptions() (*options.Options, error) {
	_, o, err := s.styles.get(s.registered(&s.styles.configure), builder.NewStyles, s.opt)
	return o, err
}

func (s *Services) registered(configure *Configure) Configure {
	s.mu.Lock()
	defer s.mu.Unlock()

	return *configure
}
