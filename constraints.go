package layout

// Constraints is the three-tier sizing descriptor for one axis: a
// suggested size bounded by a minimum and a maximum. All three tiers are
// style-level Dimensions; the zero value leaves every tier undefined.
type Constraints struct {
	Min       Dimension
	Suggested Dimension
	Max       Dimension
}

// Suggest returns Constraints with only the suggested tier set.
func Suggest(d Dimension) Constraints {
	return Constraints{Suggested: d}
}

// Resolve converts each tier to a definite-or-indefinite value against
// the given reference dimension.
func (c Constraints) Resolve(reference Maybe) ResolvedConstraints {
	return ResolvedConstraints{
		Min:       c.Min.Resolve(reference),
		Suggested: c.Suggested.Resolve(reference),
		Max:       c.Max.Resolve(reference),
	}
}

// ResolvedConstraints is Constraints after resolution: each tier is now a
// concrete value or indefinite.
type ResolvedConstraints struct {
	Min       Maybe
	Suggested Maybe
	Max       Maybe
}

// SuggestedOnly returns resolved constraints carrying just a suggested
// value, with no bounds. Used when a caller-known dimension must be taken
// as-is.
func SuggestedOnly(m Maybe) ResolvedConstraints {
	return ResolvedConstraints{Suggested: m}
}

// ClampSuggested reconciles the three tiers into the effective value:
// the suggested size clamped to the maximum, then to the minimum. When
// minimum exceeds maximum, the minimum wins. An indefinite suggested tier
// stays indefinite; the bounds still apply to whatever value the caller
// computes later.
func (r ResolvedConstraints) ClampSuggested() Maybe {
	return r.Suggested.Clamp(r.Min, r.Max)
}

// Apply clamps a computed value into the [Min, Max] bounds with the
// minimum-dominant rule.
func (r ResolvedConstraints) Apply(v float32) float32 {
	return MaybeClamp(v, r.Min, r.Max)
}

// ApplyMaybe clamps an optional computed value into the bounds; an
// indefinite value stays indefinite.
func (r ResolvedConstraints) ApplyMaybe(m Maybe) Maybe {
	return m.Clamp(r.Min, r.Max)
}

// resolveSizeConstraints resolves a style's per-axis constraints against
// the corresponding reference dimension.
func resolveSizeConstraints(sc Size[Constraints], reference Size[Maybe]) Size[ResolvedConstraints] {
	return Size[ResolvedConstraints]{
		Width:  sc.Width.Resolve(reference.Width),
		Height: sc.Height.Resolve(reference.Height),
	}
}

// rawSuggested extracts the unclamped suggested tier per axis. Algorithms
// carry the raw suggestion through intermediate steps and clamp once at
// the end, so that minimum dominance is applied exactly once.
func rawSuggested(rc Size[ResolvedConstraints]) Size[Maybe] {
	return Size[Maybe]{
		Width:  rc.Width.Suggested,
		Height: rc.Height.Suggested,
	}
}

// clampSize clamps a computed size through the per-axis bounds.
func clampSize(s Size[float32], rc Size[ResolvedConstraints]) Size[float32] {
	return Size[float32]{
		Width:  rc.Width.Apply(s.Width),
		Height: rc.Height.Apply(s.Height),
	}
}
