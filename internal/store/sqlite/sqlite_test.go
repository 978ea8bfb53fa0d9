package sqlite

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"menagerie/internal/domain"
)

func TestStoreRoundTrip(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "animals.db")

	st := New(domain.AnimalRegistry())
	animals := domain.DefaultAnimals()

	if err := st.Save(ctx, animals, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	if len(loaded) != len(animals) {
		t.Fatalf("expected %d entities, got %d", len(animals), len(loaded))
	}
	for i := range animals {
		if loaded[i].Tag() != animals[i].Tag() {
			t.Errorf("entity %d: expected %s, got %s", i, animals[i].Tag(), loaded[i].Tag())
		}
	}
}

func TestStoreSaveReplaces(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "shapes.db")

	st := New(domain.ShapeRegistry())

	if err := st.Save(ctx, domain.DefaultShapes(), path); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, []domain.Entity{domain.Triangle{}, domain.Circle{}}, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := st.Load(ctx, path)
	if err != nil {
		t.Fatal(err)
	}

	wantTags := []domain.Tag{domain.TagTriangle, domain.TagCircle}
	if len(loaded) != len(wantTags) {
		t.Fatalf("expected %d entities, got %d", len(wantTags), len(loaded))
	}
	for i, entity := range loaded {
		if entity.Tag() != wantTags[i] {
			t.Errorf("entity %d: expected %s, got %s", i, wantTags[i], entity.Tag())
		}
	}
}

func TestStoreLoadEmptyDatabase(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "animals.db")

	st := New(domain.AnimalRegistry())
	loaded, err := st.Load(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}
	if len(loaded) != 0 {
		t.Errorf("expected empty list from fresh database, got %d entities", len(loaded))
	}
}

func TestStoreCrossRegistry(t *testing.T) {
	// Tags saved by one system must not load through the other's registry.
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "mixed.db")

	if err := New(domain.AnimalRegistry()).Save(ctx, domain.DefaultAnimals(), path); err != nil {
		t.Fatal(err)
	}

	_, err := New(domain.ShapeRegistry()).Load(ctx, path)
	if !errors.Is(err, domain.ErrUnknownTag) {
		t.Errorf("expected ErrUnknownTag, got %v", err)
	}
}
