package domain

import "testing"

func TestShapeDisplayLines(t *testing.T) {
	tests := []struct {
		entity   Entity
		nameLine string
		artLines int
	}{
		{Circle{}, "Круг:", 5},
		{Square{}, "Квадрат:", 4},
		{Triangle{}, "Треугольник:", 3},
	}

	for _, tt := range tests {
		t.Run(string(tt.entity.Tag()), func(t *testing.T) {
			lines := tt.entity.DisplayLines()
			if lines[0] != tt.nameLine {
				t.Errorf("expected name line %q, got %q", tt.nameLine, lines[0])
			}
			if len(lines)-1 != tt.artLines {
				t.Errorf("expected %d art lines, got %d", tt.artLines, len(lines)-1)
			}
		})
	}
}

func TestShapeDisplayLinesStable(t *testing.T) {
	// Patterns are fixed constants; two calls must agree.
	first := Circle{}.DisplayLines()
	second := Circle{}.DisplayLines()
	if len(first) != len(second) {
		t.Fatalf("expected stable line count, got %d then %d", len(first), len(second))
	}
	for i := range first {
		if first[i] != second[i] {
			t.Errorf("line %d changed between calls: %q vs %q", i, first[i], second[i])
		}
	}
}

func TestDefaultShapes(t *testing.T) {
	shapes := DefaultShapes()

	if len(shapes) != 3 {
		t.Fatalf("expected 3 shapes, got %d", len(shapes))
	}

	wantTags := []Tag{TagCircle, TagSquare, TagTriangle}
	for i, shape := range shapes {
		if shape.Tag() != wantTags[i] {
			t.Errorf("shape %d: expected tag %s, got %s", i, wantTags[i], shape.Tag())
		}
	}
}
