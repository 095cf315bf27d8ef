package cache

import (
	"reflect"
	"sync"
	"sync/atomic"
)

// Shapes maps a concrete runtime type to the extractor compiled for it.
type Shapes[E any] struct {
	m     sync.Map // reflect.Type -> E
	count atomic.Int64
}

// GetOrBuild returns the extractor cached for t, building and publishing it
// on a miss. Build errors are returned as they are and never cached.
func (s *Shapes[E]) GetOrBuild(t reflect.Type, build func(reflect.Type) (E, error)) (E, error) {
	if cached, ok := s.m.Load(t); ok {
		return cached.(E), nil
	}

	built, err := build(t)
	if err != nil {
		var zero E
		return zero, err
	}

	actual, loaded := s.m.LoadOrStore(t, built)
	if !loaded {
		s.count.Add(1)
	}

	return actual.(E), nil
}

// Len returns the number of cached shapes.
func (s *Shapes[E]) Len() int {
	return int(s.count.Load())
}

// Clear drops every cached extractor.
func (s *Shapes[E]) Clear() {
	s.m.Range(func(key, _ any) bool {
		if _, deleted := s.m.LoadAndDelete(key); deleted {
			s.count.Add(-1)
		}
		return true
	})
}
