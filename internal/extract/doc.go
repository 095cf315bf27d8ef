// Package extract classifies builder inputs by runtime shape and compiles
// per-shape extractors for structured records.
//
// Key functions:
//   - Classify: maps a value to one of the Kind variants
//   - CompileClass: builds the bool-field extractor used by class lists
//   - CompileStyle: builds the any-field extractor used by style blocks
//   - Symbol: derives the cache key and descriptor of an enumerated symbol
//   - Text: coerces an opaque value to text
package extract
