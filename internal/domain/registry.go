package domain

import "fmt"

// Registry maps type tags back to concrete entities for one system. The tag
// set is closed: anything outside it is rejected with ErrUnknownTag.
type Registry struct {
	system   string
	variants map[Tag]func() Entity
}

// AnimalRegistry returns the factory for the animal system.
func AnimalRegistry() *Registry {
	return &Registry{
		system: "animal",
		variants: map[Tag]func() Entity{
			TagDog: func() Entity { return Dog{} },
			TagCat: func() Entity { return Cat{} },
			TagCow: func() Entity { return Cow{} },
		},
	}
}

// ShapeRegistry returns the factory for the shape system.
func ShapeRegistry() *Registry {
	return &Registry{
		system: "shape",
		variants: map[Tag]func() Entity{
			TagCircle:   func() Entity { return Circle{} },
			TagSquare:   func() Entity { return Square{} },
			TagTriangle: func() Entity { return Triangle{} },
		},
	}
}

// System returns the registry's system name.
func (r *Registry) System() string {
	return r.system
}

// Create reconstructs the entity identified by tag.
func (r *Registry) Create(tag Tag) (Entity, error) {
	ctor, ok := r.variants[tag]
	if !ok {
		return nil, fmt.Errorf("%s registry: %w %q", r.system, ErrUnknownTag, tag)
	}
	return ctor(), nil
}

// CreateAll reconstructs entities for every tag in order. It fails fast on
// the first unknown tag and returns no partial results.
func (r *Registry) CreateAll(tags []Tag) ([]Entity, error) {
	entities := make([]Entity, 0, len(tags))
	for _, tag := range tags {
		entity, err := r.Create(tag)
		if err != nil {
			return nil, err
		}
		entities = append(entities, entity)
	}
	return entities, nil
}
