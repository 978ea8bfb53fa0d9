// Package domain defines the core domain types for the menagerie demo
// pipelines.
//
// Two closed variant sets exist: animals (Dog, Cat, Cow) and shapes
// (Circle, Square, Triangle). Every variant is a stateless value whose
// identity is its type tag; the tag is the only thing ever persisted.
// A Registry reconstructs entities from tags and rejects anything outside
// its closed set.
//
// # Design Principles
//
// - Stateless, interchangeable variant values
// - No database or external dependencies
// - Closed tag sets with explicit rejection of unknown tags
package domain
