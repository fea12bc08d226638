package layout

// Unit specifies how a Dimension is interpreted.
type Unit uint8

const (
	// UnitUndefined places no constraint at all. Zero value.
	UnitUndefined Unit = iota
	// UnitAuto lets content or the layout algorithm decide.
	UnitAuto
	// UnitPoints is an absolute length.
	UnitPoints
	// UnitPercent is a fraction (0..1) of the resolved parent dimension.
	UnitPercent
)

// Dimension is a style-level length: absolute, relative, automatic, or
// absent. The zero value is Undefined.
type Dimension struct {
	Amount float32
	Unit   Unit
}

// Points returns an absolute Dimension.
func Points(v float32) Dimension {
	return Dimension{Amount: v, Unit: UnitPoints}
}

// Percent returns a Dimension relative to the parent. The fraction is on a
// 0..1 scale: Percent(0.5) is half the reference dimension.
func Percent(p float32) Dimension {
	return Dimension{Amount: p, Unit: UnitPercent}
}

// Auto returns a Dimension resolved by content or the layout algorithm.
func Auto() Dimension {
	return Dimension{Unit: UnitAuto}
}

// Undefined returns a Dimension that places no constraint.
func Undefined() Dimension {
	return Dimension{}
}

// IsAuto reports whether d is Auto.
func (d Dimension) IsAuto() bool {
	return d.Unit == UnitAuto
}

// IsDefined reports whether d can ever resolve to a definite value.
func (d Dimension) IsDefined() bool {
	return d.Unit == UnitPoints || d.Unit == UnitPercent
}

// Resolve converts d to a definite value where possible. Percentages
// resolve against reference and stay indefinite when the reference is
// indefinite; Auto and Undefined always resolve to None.
func (d Dimension) Resolve(reference Maybe) Maybe {
	switch d.Unit {
	case UnitPoints:
		return Some(d.Amount)
	case UnitPercent:
		if ref, ok := reference.Value(); ok {
			return Some(d.Amount * ref)
		}
		return None()
	default:
		return None()
	}
}

// ResolveOrZero resolves d against reference, treating an indefinite
// result as zero. Used for spacing properties, which cannot be indefinite.
func (d Dimension) ResolveOrZero(reference Maybe) float32 {
	return d.Resolve(reference).Or(0)
}

// Edges holds style-level lengths for the four sides of a box (margin,
// padding, or border widths).
type Edges struct {
	Left, Right, Top, Bottom Dimension
}

// EdgeAll returns Edges with the same length on all four sides.
func EdgeAll(d Dimension) Edges {
	return Edges{Left: d, Right: d, Top: d, Bottom: d}
}

// EdgeSymmetric returns Edges with vertical (top/bottom) and horizontal
// (left/right) lengths.
func EdgeSymmetric(v, h Dimension) Edges {
	return Edges{Left: h, Right: h, Top: v, Bottom: v}
}

// EdgeTRBL returns Edges following CSS order: Top, Right, Bottom, Left.
func EdgeTRBL(t, r, b, l Dimension) Edges {
	return Edges{Top: t, Right: r, Bottom: b, Left: l}
}

// Resolve converts the four sides to concrete values. Left and Right
// percentages resolve against the horizontal reference, Top and Bottom
// against the vertical one: each axis resolves independently.
func (e Edges) Resolve(horizontal, vertical Maybe) Insets {
	return Insets{
		Left:   e.Left.ResolveOrZero(horizontal),
		Right:  e.Right.ResolveOrZero(horizontal),
		Top:    e.Top.ResolveOrZero(vertical),
		Bottom: e.Bottom.ResolveOrZero(vertical),
	}
}
