// Package styles builds inline style blocks: property:value declarations
// joined with semicolons, in insertion order.
//
// A Block accepts declarations, conditional and deferred declarations,
// declaration text, other blocks, attribute maps carrying a "style" key and
// structs whose fields are properties. Blocks never deduplicate.
package styles
