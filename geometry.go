package layout

// Axis identifies one of the two layout axes. A flex container's main axis
// is Horizontal for row directions and Vertical for column directions.
type Axis uint8

const (
	Horizontal Axis = iota
	Vertical
)

// Other returns the perpendicular axis.
func (a Axis) Other() Axis {
	if a == Horizontal {
		return Vertical
	}
	return Horizontal
}

// Width is a horizontal extent. Height is a vertical extent.
//
// They are deliberately distinct types: a quantity measured along one axis
// cannot be added to or compared with a quantity measured along the other
// without an explicit conversion, so cross-axis mixups fail to compile
// instead of producing silently wrong layout.
type Width float32

// Height is a vertical extent. See [Width].
type Height float32

// Size holds a width and a height of any element type: concrete floats,
// optional floats, available space, dimensions, or constraints.
type Size[T any] struct {
	Width  T
	Height T
}

// Main returns the component of s measured along axis.
func (s Size[T]) Main(axis Axis) T {
	if axis == Horizontal {
		return s.Width
	}
	return s.Height
}

// Cross returns the component of s measured across axis.
func (s Size[T]) Cross(axis Axis) T {
	return s.Main(axis.Other())
}

// SetMain replaces the component of s measured along axis.
func (s *Size[T]) SetMain(axis Axis, v T) {
	if axis == Horizontal {
		s.Width = v
	} else {
		s.Height = v
	}
}

// SetCross replaces the component of s measured across axis.
func (s *Size[T]) SetCross(axis Axis, v T) {
	s.SetMain(axis.Other(), v)
}

// Point is an (X, Y) coordinate pair.
type Point[T any] struct {
	X, Y T
}

// Main returns the coordinate along axis (X for Horizontal, Y for Vertical).
func (p Point[T]) Main(axis Axis) T {
	if axis == Horizontal {
		return p.X
	}
	return p.Y
}

// SetMain replaces the coordinate along axis.
func (p *Point[T]) SetMain(axis Axis, v T) {
	if axis == Horizontal {
		p.X = v
	} else {
		p.Y = v
	}
}

// SetCross replaces the coordinate across axis.
func (p *Point[T]) SetCross(axis Axis, v T) {
	p.SetMain(axis.Other(), v)
}

// Rect is an axis-aligned rectangle: an origin plus a size.
type Rect[T any] struct {
	Origin Point[T]
	Size   Size[T]
}

// Contains reports whether p falls inside r. The top and left edges are
// inclusive, the bottom and right edges exclusive, so adjacent rects
// never both claim a point.
func Contains(r Rect[float32], p Point[float32]) bool {
	return p.X >= r.Origin.X && p.X < r.Origin.X+r.Size.Width &&
		p.Y >= r.Origin.Y && p.Y < r.Origin.Y+r.Size.Height
}

// Insets holds resolved, concrete spacing for the four sides of a box
// (padding, border, or margin after percentage resolution).
type Insets struct {
	Left, Right, Top, Bottom float32
}

// Horizontal returns the sum of Left and Right as a width-axis quantity.
func (i Insets) Horizontal() Width {
	return Width(i.Left + i.Right)
}

// Vertical returns the sum of Top and Bottom as a height-axis quantity.
func (i Insets) Vertical() Height {
	return Height(i.Top + i.Bottom)
}

// Sum returns the two-sided total along axis. This is the explicit
// pick-an-axis conversion out of the Width/Height types.
func (i Insets) Sum(axis Axis) float32 {
	if axis == Horizontal {
		return float32(i.Horizontal())
	}
	return float32(i.Vertical())
}

// MainStart returns the leading inset along axis (Left or Top).
func (i Insets) MainStart(axis Axis) float32 {
	if axis == Horizontal {
		return i.Left
	}
	return i.Top
}

// MainEnd returns the trailing inset along axis (Right or Bottom).
func (i Insets) MainEnd(axis Axis) float32 {
	if axis == Horizontal {
		return i.Right
	}
	return i.Bottom
}

// Add returns the side-by-side sum of two insets.
func (i Insets) Add(other Insets) Insets {
	return Insets{
		Left:   i.Left + other.Left,
		Right:  i.Right + other.Right,
		Top:    i.Top + other.Top,
		Bottom: i.Bottom + other.Bottom,
	}
}
