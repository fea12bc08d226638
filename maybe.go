package layout

// Maybe is an optional float32: a dimension that is either definite or not
// yet known. The zero value is None.
//
// Arithmetic over Maybe follows one rule throughout the engine: an
// indefinite left-hand operand stays indefinite, and an indefinite
// right-hand operand contributes nothing to the result.
type Maybe struct {
	value   float32
	defined bool
}

// Some returns a definite Maybe.
func Some(v float32) Maybe {
	return Maybe{value: v, defined: true}
}

// None returns an indefinite Maybe.
func None() Maybe {
	return Maybe{}
}

// IsSome reports whether m holds a definite value.
func (m Maybe) IsSome() bool {
	return m.defined
}

// IsNone reports whether m is indefinite.
func (m Maybe) IsNone() bool {
	return !m.defined
}

// Value returns the contained value and whether it is definite.
func (m Maybe) Value() (float32, bool) {
	return m.value, m.defined
}

// Or returns the contained value, or fallback when indefinite.
func (m Maybe) Or(fallback float32) float32 {
	if m.defined {
		return m.value
	}
	return fallback
}

// OrElse returns m when definite, otherwise other.
func (m Maybe) OrElse(other Maybe) Maybe {
	if m.defined {
		return m
	}
	return other
}

// Min returns the smaller of m and rhs. An indefinite rhs leaves m
// unchanged; an indefinite m stays indefinite.
func (m Maybe) Min(rhs Maybe) Maybe {
	if !m.defined || !rhs.defined {
		return m
	}
	return Some(min(m.value, rhs.value))
}

// Max returns the larger of m and rhs, with the same indefinite handling
// as Min.
func (m Maybe) Max(rhs Maybe) Maybe {
	if !m.defined || !rhs.defined {
		return m
	}
	return Some(max(m.value, rhs.value))
}

// Add returns m + rhs, treating an indefinite rhs as zero.
func (m Maybe) Add(rhs Maybe) Maybe {
	if !m.defined || !rhs.defined {
		return m
	}
	return Some(m.value + rhs.value)
}

// Sub returns m - rhs, treating an indefinite rhs as zero.
func (m Maybe) Sub(rhs Maybe) Maybe {
	if !m.defined || !rhs.defined {
		return m
	}
	return Some(m.value - rhs.value)
}

// Clamp restricts m to [minBound, maxBound], skipping whichever bound is
// indefinite. The minimum is applied last, so when minBound > maxBound the
// minimum wins.
func (m Maybe) Clamp(minBound, maxBound Maybe) Maybe {
	if !m.defined {
		return m
	}
	return Some(MaybeClamp(m.value, minBound, maxBound))
}

// MaybeMin returns the smaller of v and rhs; an indefinite rhs leaves v
// unchanged.
func MaybeMin(v float32, rhs Maybe) float32 {
	if rhs.defined {
		return min(v, rhs.value)
	}
	return v
}

// MaybeMax returns the larger of v and rhs; an indefinite rhs leaves v
// unchanged.
func MaybeMax(v float32, rhs Maybe) float32 {
	if rhs.defined {
		return max(v, rhs.value)
	}
	return v
}

// MaybeAdd returns v + rhs, treating an indefinite rhs as zero.
func MaybeAdd(v float32, rhs Maybe) float32 {
	if rhs.defined {
		return v + rhs.value
	}
	return v
}

// MaybeSub returns v - rhs, treating an indefinite rhs as zero.
func MaybeSub(v float32, rhs Maybe) float32 {
	if rhs.defined {
		return v - rhs.value
	}
	return v
}

// MaybeClamp restricts v to [minBound, maxBound], skipping indefinite
// bounds. The maximum is applied first and the minimum last: when the
// bounds conflict, the minimum has final say.
func MaybeClamp(v float32, minBound, maxBound Maybe) float32 {
	if maxBound.defined {
		v = min(v, maxBound.value)
	}
	if minBound.defined {
		v = max(v, minBound.value)
	}
	return v
}

// SizeMin applies Maybe.Min pointwise across both axes.
func SizeMin(a, b Size[Maybe]) Size[Maybe] {
	return Size[Maybe]{Width: a.Width.Min(b.Width), Height: a.Height.Min(b.Height)}
}

// SizeMax applies Maybe.Max pointwise across both axes.
func SizeMax(a, b Size[Maybe]) Size[Maybe] {
	return Size[Maybe]{Width: a.Width.Max(b.Width), Height: a.Height.Max(b.Height)}
}

// SizeAdd applies Maybe.Add pointwise across both axes.
func SizeAdd(a, b Size[Maybe]) Size[Maybe] {
	return Size[Maybe]{Width: a.Width.Add(b.Width), Height: a.Height.Add(b.Height)}
}

// SizeSub applies Maybe.Sub pointwise across both axes.
func SizeSub(a, b Size[Maybe]) Size[Maybe] {
	return Size[Maybe]{Width: a.Width.Sub(b.Width), Height: a.Height.Sub(b.Height)}
}

// SizeOrElse fills each indefinite axis of a from b.
func SizeOrElse(a, b Size[Maybe]) Size[Maybe] {
	return Size[Maybe]{Width: a.Width.OrElse(b.Width), Height: a.Height.OrElse(b.Height)}
}

// SizeOr unwraps each axis of a, falling back to the corresponding axis
// of b.
func SizeOr(a Size[Maybe], b Size[float32]) Size[float32] {
	return Size[float32]{Width: a.Width.Or(b.Width), Height: a.Height.Or(b.Height)}
}
