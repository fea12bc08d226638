package layout

// computeLeaf sizes a childless node. This is the most-called primitive in
// the engine: every recursive sizing query bottoms out here.
func computeLeaf(tree Tree, node NodeID, known Size[Maybe], available Size[AvailableSpace], sizingMode SizingMode) Size[float32] {
	style := tree.Style(node)

	var constraints Size[ResolvedConstraints]
	switch sizingMode {
	case ContentSize:
		// Known dimensions are the content size; the node's own style
		// does not participate.
		constraints = Size[ResolvedConstraints]{
			Width:  SuggestedOnly(known.Width),
			Height: SuggestedOnly(known.Height),
		}
	case InherentSize:
		constraints = resolveSizeConstraints(style.SizeConstraints, ToMaybeSize(available))
		applyAspectRatio(&constraints, style.AspectRatio)
		// A dimension already determined by an ancestor overrides the
		// style's suggestion.
		constraints.Width.Suggested = known.Width.OrElse(constraints.Width.Suggested)
		constraints.Height.Suggested = known.Height.OrElse(constraints.Height.Suggested)
	}

	suggested := rawSuggested(constraints)

	// Fast path: both dimensions are known.
	if w, wok := suggested.Width.Value(); wok {
		if h, hok := suggested.Height.Value(); hok {
			return clampSize(Size[float32]{Width: w, Height: h}, constraints)
		}
	}

	if tree.NeedsMeasure(node) {
		// Substitute any resolved dimension for the offered space, so the
		// measure function sees the tightest hypothesis we can state.
		hypothesis := Size[AvailableSpace]{
			Width:  available.Width.OrDefinite(suggested.Width),
			Height: available.Height.OrDefinite(suggested.Height),
		}
		measured := tree.Measure(node, known, hypothesis)
		return clampSize(SizeOr(suggested, measured), constraints)
	}

	// Fallback: zero content plus the node's own padding and border.
	// The width uses the horizontal sums and the height the vertical
	// sums; the axes never substitute for each other.
	padding := style.Padding.Resolve(available.Width.ToMaybe(), available.Height.ToMaybe())
	border := style.Border.Resolve(available.Width.ToMaybe(), available.Height.ToMaybe())
	fallback := Size[float32]{
		Width:  float32(padding.Horizontal() + border.Horizontal()),
		Height: float32(padding.Vertical() + border.Vertical()),
	}
	return clampSize(SizeOr(suggested, fallback), constraints)
}

// applyAspectRatio derives the suggested size of the missing axis when
// exactly one axis is definite. Ratio is width over height.
func applyAspectRatio(rc *Size[ResolvedConstraints], ratio Maybe) {
	r, ok := ratio.Value()
	if !ok || r <= 0 {
		return
	}
	w, wok := rc.Width.Suggested.Value()
	h, hok := rc.Height.Suggested.Value()
	switch {
	case wok && !hok:
		rc.Height.Suggested = Some(w / r)
	case hok && !wok:
		rc.Width.Suggested = Some(h * r)
	}
}
