package layout

import "fmt"

type spaceMode uint8

const (
	definiteSpace spaceMode = iota
	minContentSpace
	maxContentSpace
)

// AvailableSpace is the space a parent offers a child along one axis:
// either a definite extent, or one of two hypothetical sizing modes used
// while probing intrinsic sizes.
//
// MinContent and MaxContent are absorbing for most arithmetic: adding to,
// subtracting from, clamping, or taking the max of an intrinsic mode
// leaves the mode unchanged. The one exception is Min against a definite
// operand, which collapses either intrinsic mode to Definite.
type AvailableSpace struct {
	mode  spaceMode
	value float32
}

// Definite returns available space with a concrete extent.
func Definite(v float32) AvailableSpace {
	return AvailableSpace{mode: definiteSpace, value: v}
}

// MinContent returns the minimum-content sizing hypothesis.
func MinContent() AvailableSpace {
	return AvailableSpace{mode: minContentSpace}
}

// MaxContent returns the maximum-content sizing hypothesis.
func MaxContent() AvailableSpace {
	return AvailableSpace{mode: maxContentSpace}
}

// MaxContentSize is the usual root constraint: unbounded in both axes.
func MaxContentSize() Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: MaxContent(), Height: MaxContent()}
}

// DefiniteSize wraps a concrete size as definite available space on both
// axes.
func DefiniteSize(s Size[float32]) Size[AvailableSpace] {
	return Size[AvailableSpace]{Width: Definite(s.Width), Height: Definite(s.Height)}
}

// IsDefinite reports whether a holds a concrete extent.
func (a AvailableSpace) IsDefinite() bool {
	return a.mode == definiteSpace
}

// ToMaybe returns the definite extent, or None for the intrinsic modes.
func (a AvailableSpace) ToMaybe() Maybe {
	if a.mode == definiteSpace {
		return Some(a.value)
	}
	return None()
}

// OrDefinite replaces a with Definite(m) when m is definite, and leaves a
// unchanged otherwise. Used to substitute an already-resolved dimension
// for the offered space before measuring.
func (a AvailableSpace) OrDefinite(m Maybe) AvailableSpace {
	if v, ok := m.Value(); ok {
		return Definite(v)
	}
	return a
}

// Min returns the smaller of a and rhs. A definite rhs collapses either
// intrinsic mode to Definite(rhs).
func (a AvailableSpace) Min(rhs Maybe) AvailableSpace {
	v, ok := rhs.Value()
	if !ok {
		return a
	}
	if a.mode == definiteSpace {
		return Definite(min(a.value, v))
	}
	return Definite(v)
}

// Max returns the larger of a and rhs. Intrinsic modes absorb.
func (a AvailableSpace) Max(rhs Maybe) AvailableSpace {
	if a.mode != definiteSpace {
		return a
	}
	if v, ok := rhs.Value(); ok {
		return Definite(max(a.value, v))
	}
	return a
}

// Clamp restricts a definite extent to [minBound, maxBound] with the
// minimum-dominant rule. Intrinsic modes absorb.
func (a AvailableSpace) Clamp(minBound, maxBound Maybe) AvailableSpace {
	if a.mode != definiteSpace {
		return a
	}
	return Definite(MaybeClamp(a.value, minBound, maxBound))
}

// Add adds rhs to a definite extent. Intrinsic modes absorb.
func (a AvailableSpace) Add(rhs Maybe) AvailableSpace {
	if a.mode != definiteSpace {
		return a
	}
	if v, ok := rhs.Value(); ok {
		return Definite(a.value + v)
	}
	return a
}

// Sub subtracts rhs from a definite extent. Intrinsic modes absorb.
func (a AvailableSpace) Sub(rhs Maybe) AvailableSpace {
	if a.mode != definiteSpace {
		return a
	}
	if v, ok := rhs.Value(); ok {
		return Definite(a.value - v)
	}
	return a
}

// String implements fmt.Stringer for trace output.
func (a AvailableSpace) String() string {
	switch a.mode {
	case minContentSpace:
		return "min-content"
	case maxContentSpace:
		return "max-content"
	default:
		return fmt.Sprintf("%g", a.value)
	}
}

// ToMaybeSize converts per-axis available space to optional floats.
func ToMaybeSize(s Size[AvailableSpace]) Size[Maybe] {
	return Size[Maybe]{Width: s.Width.ToMaybe(), Height: s.Height.ToMaybe()}
}
