package section

import (
	"fmt"
	"maps"
	"slices"
)

// Registry maps section tags to their properties. Define is an idempotent
// upsert: re-declaring a tag with identical properties is a visible no-op,
// while redefining it with different properties is an error. This replaces
// the pattern of declaring a section against a stateful engine and swallowing
// the "already exists" failure.
type Registry struct {
	defs map[int]Properties
}

// NewRegistry returns an empty registry.
func NewRegistry() *Registry {
	return &Registry{defs: make(map[int]Properties)}
}

// Define records properties under tag. It reports whether a new definition
// was created; created == false means the identical definition already
// existed. Returns ErrConflictingDefinition when the tag is already bound to
// different properties.
func (r *Registry) Define(tag int, p Properties) (created bool, err error) {
	if prev, ok := r.defs[tag]; ok {
		if prev != p {
			return false, fmt.Errorf("%w: tag %d", ErrConflictingDefinition, tag)
		}
		return false, nil
	}
	r.defs[tag] = p
	return true, nil
}

// Lookup returns the properties bound to tag.
func (r *Registry) Lookup(tag int) (Properties, bool) {
	p, ok := r.defs[tag]
	return p, ok
}

// Has reports whether tag is defined.
func (r *Registry) Has(tag int) bool {
	_, ok := r.defs[tag]
	return ok
}

// Tags returns the defined tags in ascending order.
func (r *Registry) Tags() []int {
	return slices.Sorted(maps.Keys(r.defs))
}

// Len returns the number of definitions.
func (r *Registry) Len() int { return len(r.defs) }
