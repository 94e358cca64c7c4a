package playfair

// ShapeKind tags the geometric relation between two positions in the square.
type ShapeKind uint8

const (
	// Rectangle: different row and column.
	Rectangle ShapeKind = iota
	// VerticalLine: same column.
	VerticalLine
	// HorizontalLine: same row.
	HorizontalLine
)

func (k ShapeKind) String() string {
	switch k {
	case VerticalLine:
		return "VerticalLine"
	case HorizontalLine:
		return "HorizontalLine"
	default:
		return "Rectangle"
	}
}

// Shape is the relation of a digraph's two positions.
// For VerticalLine X1 == X2, for HorizontalLine Y1 == Y2.
type Shape struct {
	Kind   ShapeKind
	X1, Y1 int
	X2, Y2 int
}

// Classify returns the shape formed by two square indices.
// A shared column takes precedence over a shared row.
func Classify(pos1, pos2 int) Shape {
	shape := Shape{
		X1: pos1 % Size, Y1: pos1 / Size,
		X2: pos2 % Size, Y2: pos2 / Size,
	}

	switch {
	case shape.X1 == shape.X2:
		shape.Kind = VerticalLine
	case shape.Y1 == shape.Y2:
		shape.Kind = HorizontalLine
	default:
		shape.Kind = Rectangle
	}

	return shape
}
