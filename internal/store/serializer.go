package store

import (
	"fmt"
	"os"

	"menagerie/internal/codec"
	"menagerie/internal/domain"
)

// Serializer converts an entity list to and from its persisted form: the
// codec handles the wire format, the registry reconstructs entities from
// tags on the way back.
type Serializer struct {
	codec    codec.Codec
	registry *domain.Registry
}

// NewSerializer creates a serializer for one codec and one variant registry.
func NewSerializer(c codec.Codec, registry *domain.Registry) *Serializer {
	return &Serializer{codec: c, registry: registry}
}

// Format returns the underlying codec's format identifier.
func (s *Serializer) Format() string {
	return s.codec.Format()
}

// Serialize writes the entities' tags to path, truncating any existing file.
func (s *Serializer) Serialize(entities []domain.Entity, path string) error {
	tags := make([]domain.Tag, 0, len(entities))
	for _, entity := range entities {
		tags = append(tags, entity.Tag())
	}

	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", path, err)
	}

	if err := s.codec.Encode(f, tags); err != nil {
		f.Close()
		return fmt.Errorf("failed to serialize to %s: %w", path, err)
	}

	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to close %s: %w", path, err)
	}
	return nil
}

// Deserialize reads tags from path and reconstructs the entity list through
// the registry. Unknown tags fail the whole load.
func (s *Serializer) Deserialize(path string) ([]domain.Entity, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open %s: %w", path, err)
	}
	defer f.Close()

	tags, err := s.codec.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to deserialize %s: %w", path, err)
	}

	entities, err := s.registry.CreateAll(tags)
	if err != nil {
		return nil, fmt.Errorf("failed to reconstruct entities from %s: %w", path, err)
	}

	return entities, nil
}
