// Package store persists ordered entity lists. A Serializer binds one codec
// and one registry; FileStore is the pass-through the orchestration layer
// works against, so the encoding choice stays a construction-time detail.
package store

import (
	"context"

	"menagerie/internal/domain"
)

// Store saves and loads an ordered entity list at a path. Implementations
// hold no resources between calls: each Save or Load opens, finishes, and
// closes whatever it touches.
type Store interface {
	Save(ctx context.Context, entities []domain.Entity, path string) error
	Load(ctx context.Context, path string) ([]domain.Entity, error)
}

// FileStore delegates to a Serializer. It adds no behavior of its own.
type FileStore struct {
	ser *Serializer
}

// NewFileStore creates a file-backed store using the given serializer.
func NewFileStore(ser *Serializer) *FileStore {
	return &FileStore{ser: ser}
}

// Save writes entities to path via the configured serializer.
func (s *FileStore) Save(_ context.Context, entities []domain.Entity, path string) error {
	return s.ser.Serialize(entities, path)
}

// Load reads entities back from path via the configured serializer.
func (s *FileStore) Load(_ context.Context, path string) ([]domain.Entity, error) {
	return s.ser.Deserialize(path)
}
