package domain

import "errors"

// Tag identifies which concrete variant an entity is. It is the sole
// persisted discriminator.
type Tag string

// ErrUnknownTag is returned when a tag falls outside a registry's closed set.
var ErrUnknownTag = errors.New("unknown type tag")

// Entity represents one variant of a closed polymorphic set
type Entity interface {
	// Tag returns the variant's type tag.
	Tag() Tag

	// Name returns the variant's display name.
	Name() string

	// DisplayLines returns the exact lines the variant prints when
	// displayed, in order.
	DisplayLines() []string
}
