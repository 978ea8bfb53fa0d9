package domain

// Shape type tags
const (
	TagCircle   Tag = "Circle"
	TagSquare   Tag = "Square"
	TagTriangle Tag = "Triangle"
)

// Fixed ASCII-art patterns, one line per element.
var (
	circleArt = []string{
		"  ***  ",
		" *   * ",
		"*     *",
		" *   * ",
		"  ***  ",
	}
	squareArt = []string{
		"*****",
		"*   *",
		"*   *",
		"*****",
	}
	triangleArt = []string{
		"  *  ",
		" * * ",
		"*****",
	}
)

// Circle renders a circle pattern.
type Circle struct{}

func (Circle) Tag() Tag     { return TagCircle }
func (Circle) Name() string { return "Круг" }

func (c Circle) DisplayLines() []string {
	return append([]string{c.Name() + ":"}, circleArt...)
}

// Square renders a square pattern.
type Square struct{}

func (Square) Tag() Tag     { return TagSquare }
func (Square) Name() string { return "Квадрат" }

func (s Square) DisplayLines() []string {
	return append([]string{s.Name() + ":"}, squareArt...)
}

// Triangle renders a triangle pattern.
type Triangle struct{}

func (Triangle) Tag() Tag     { return TagTriangle }
func (Triangle) Name() string { return "Треугольник" }

func (t Triangle) DisplayLines() []string {
	return append([]string{t.Name() + ":"}, triangleArt...)
}

// DefaultShapes returns the fixed demo list in insertion order.
func DefaultShapes() []Entity {
	return []Entity{Circle{}, Square{}, Triangle{}}
}
