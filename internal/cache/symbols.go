package cache

import (
	"sync"
	"sync/atomic"

	"attr-builder/internal/extract"
)

// Symbols maps an enumerated symbol to its converted name. The key carries
// the enumeration type, so equal ordinals of different enumerations never
// share an entry.
type Symbols struct {
	m     sync.Map // extract.SymbolKey -> string
	count atomic.Int64
}

// GetOrAdd returns the name cached for key, calling create on a miss.
func (s *Symbols) GetOrAdd(key extract.SymbolKey, create func() string) string {
	if cached, ok := s.m.Load(key); ok {
		return cached.(string)
	}

	actual, loaded := s.m.LoadOrStore(key, create())
	if !loaded {
		s.count.Add(1)
	}

	return actual.(string)
}

// Len returns the number of cached symbols.
func (s *Symbols) Len() int {
	return int(s.count.Load())
}

// Clear drops every cached name.
func (s *Symbols) Clear() {
	s.m.Range(func(key, _ any) bool {
		if _, deleted := s.m.LoadAndDelete(key); deleted {
			s.count.Add(-1)
		}
		return true
	})
}
