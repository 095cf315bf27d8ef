// Package builder holds the factories that create class lists and style
// blocks bound to one configuration.
//
// A factory owns an *options.Options and, through it, the caches of every
// compiled extractor and converted symbol name. Lists created with
// CreateWith use the caches of the options they are given instead.
package builder
