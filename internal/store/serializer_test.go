package store

import (
	"context"
	"errors"
	"os"
	"path/filepath"
	"testing"

	"menagerie/internal/codec"
	"menagerie/internal/domain"
)

func TestSerializerRoundTrip(t *testing.T) {
	codecs := []codec.Codec{codec.NewJSONCodec(), codec.NewXMLCodec()}

	for _, c := range codecs {
		t.Run(c.Format(), func(t *testing.T) {
			dir := t.TempDir()
			path := filepath.Join(dir, "animals."+c.Extension())

			ser := NewSerializer(c, domain.AnimalRegistry())
			entities := domain.DefaultAnimals()

			if err := ser.Serialize(entities, path); err != nil {
				t.Fatalf("serialize: %v", err)
			}

			loaded, err := ser.Deserialize(path)
			if err != nil {
				t.Fatalf("deserialize: %v", err)
			}

			if len(loaded) != len(entities) {
				t.Fatalf("expected %d entities, got %d", len(entities), len(loaded))
			}
			for i := range entities {
				if loaded[i].Tag() != entities[i].Tag() {
					t.Errorf("entity %d: expected %s, got %s", i, entities[i].Tag(), loaded[i].Tag())
				}
			}
		})
	}
}

func TestSerializerDeserializeErrors(t *testing.T) {
	t.Run("missing file", func(t *testing.T) {
		ser := NewSerializer(codec.NewJSONCodec(), domain.AnimalRegistry())
		_, err := ser.Deserialize(filepath.Join(t.TempDir(), "nope.json"))
		if err == nil {
			t.Error("expected error for missing file")
		}
	})

	t.Run("malformed content", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "animals.json")
		if err := os.WriteFile(path, []byte(`[{"Type":`), 0o644); err != nil {
			t.Fatal(err)
		}

		ser := NewSerializer(codec.NewJSONCodec(), domain.AnimalRegistry())
		_, err := ser.Deserialize(path)
		if err == nil {
			t.Error("expected error for malformed content")
		}
	})

	t.Run("unknown tag in hand-edited file", func(t *testing.T) {
		path := filepath.Join(t.TempDir(), "animals.json")
		if err := os.WriteFile(path, []byte(`[{"Type":"Dog"},{"Type":"Bird"}]`), 0o644); err != nil {
			t.Fatal(err)
		}

		ser := NewSerializer(codec.NewJSONCodec(), domain.AnimalRegistry())
		_, err := ser.Deserialize(path)
		if !errors.Is(err, domain.ErrUnknownTag) {
			t.Errorf("expected ErrUnknownTag, got %v", err)
		}
	})
}

func TestFileStoreDelegates(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()
	path := filepath.Join(dir, "shapes.xml")

	st := NewFileStore(NewSerializer(codec.NewXMLCodec(), domain.ShapeRegistry()))
	shapes := domain.DefaultShapes()

	if err := st.Save(ctx, shapes, path); err != nil {
		t.Fatalf("save: %v", err)
	}

	loaded, err := st.Load(ctx, path)
	if err != nil {
		t.Fatalf("load: %v", err)
	}

	wantTags := []domain.Tag{domain.TagCircle, domain.TagSquare, domain.TagTriangle}
	for i, entity := range loaded {
		if entity.Tag() != wantTags[i] {
			t.Errorf("entity %d: expected %s, got %s", i, wantTags[i], entity.Tag())
		}
	}
}

func TestSerializeTruncatesExisting(t *testing.T) {
	ctx := context.Background()
	path := filepath.Join(t.TempDir(), "animals.json")

	st := NewFileStore(NewSerializer(codec.NewJSONCodec(), domain.AnimalRegistry()))

	if err := st.Save(ctx, domain.DefaultAnimals(), path); err != nil {
		t.Fatal(err)
	}
	if err := st.Save(ctx, []domain.Entity{domain.Cow{}}, path); err != nil {
		t.Fatal(err)
	}

	loaded, err := st.Load(ctx, path)
	if err != nil {
		t.Fatal(err)
	}
	if len(loaded) != 1 || loaded[0].Tag() != domain.TagCow {
		t.Errorf("expected single cow after rewrite, got %v", loaded)
	}
}
