// Package cache holds the per-configuration caches of compiled extractors
// and converted symbol names.
//
// Both caches are safe for concurrent first use. A race on an empty slot may
// build the entry more than once; LoadOrStore publishes a single winner and
// every caller observes it.
package cache
