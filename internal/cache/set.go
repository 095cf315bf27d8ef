package cache

import "attr-builder/internal/extract"

// Set is the cache triple owned by one configuration.
type Set struct {
	Classes Shapes[extract.ClassExtractor]
	Styles  Shapes[extract.StyleExtractor]
	Symbols Symbols
}

// Clear empties all three caches.
func (s *Set) Clear() {
	s.Classes.Clear()
	s.Styles.Clear()
	s.Symbols.Clear()
}
