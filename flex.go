package layout

// flexItem holds per-child working state for one container pass. It is
// stack-allocated per call, never stored on nodes.
type flexItem struct {
	node        NodeID
	style       *Style
	constraints Size[ResolvedConstraints]
	margin      Insets
	basis       float32
	mainSize    float32
	crossSize   float32
	grow        float32
	shrink      float32
	index       uint32 // original child index, kept for Layout.Order
}

// computeFlex sizes a container and, in PerformLayout mode, lays out its
// children: single-line flexbox with basis/grow/shrink, margins, gap,
// justification, and cross-axis alignment. It calls back into computeNode
// for every child at each sizing hypothesis, so child results are served
// from their caches whenever possible.
func (c *computer) computeFlex(node NodeID, known Size[Maybe], available Size[AvailableSpace], runMode RunMode, sizingMode SizingMode) (Size[float32], error) {
	tree := c.tree
	style := tree.Style(node)
	dir := style.Direction
	mainAxis := dir.MainAxis()
	crossAxis := dir.CrossAxis()

	// Resolve the container's own constraints, exactly as a leaf would.
	var constraints Size[ResolvedConstraints]
	switch sizingMode {
	case ContentSize:
		constraints = Size[ResolvedConstraints]{
			Width:  SuggestedOnly(known.Width),
			Height: SuggestedOnly(known.Height),
		}
	case InherentSize:
		constraints = resolveSizeConstraints(style.SizeConstraints, ToMaybeSize(available))
		applyAspectRatio(&constraints, style.AspectRatio)
		constraints.Width.Suggested = known.Width.OrElse(constraints.Width.Suggested)
		constraints.Height.Suggested = known.Height.OrElse(constraints.Height.Suggested)
	}
	suggested := rawSuggested(constraints)

	availMaybe := ToMaybeSize(available)
	padding := style.Padding.Resolve(availMaybe.Width, availMaybe.Height)
	border := style.Border.Resolve(availMaybe.Width, availMaybe.Height)
	insets := padding.Add(border)

	// Content-box extents where the border box is known.
	contentSize := Size[Maybe]{
		Width:  suggested.Width.Sub(Some(float32(insets.Horizontal()))),
		Height: suggested.Height.Sub(Some(float32(insets.Vertical()))),
	}
	// Space offered to children: the outer offer shrunk by our own
	// insets, tightened to our definite content size when we have one.
	contentAvail := Size[AvailableSpace]{
		Width:  available.Width.Sub(Some(float32(insets.Horizontal()))).OrDefinite(contentSize.Width),
		Height: available.Height.Sub(Some(float32(insets.Vertical()))).OrDefinite(contentSize.Height),
	}

	mainContent := contentSize.Main(mainAxis)
	gap := style.Gap.Main(mainAxis).ResolveOrZero(mainContent)

	// Partition children: in-flow items, out-of-flow absolutes, hidden.
	children := tree.Children(node)
	items := make([]flexItem, 0, len(children))
	var absolutes []flexItem
	var hidden []NodeID
	for i, childID := range children {
		cs := tree.Style(childID)
		switch {
		case cs.Display == DisplayNone:
			hidden = append(hidden, childID)
			continue
		case cs.Position == PositionAbsolute:
			absolutes = append(absolutes, flexItem{node: childID, style: cs, index: uint32(i)})
			continue
		}
		item := flexItem{
			node:   childID,
			style:  cs,
			index:  uint32(i),
			grow:   cs.FlexGrow,
			shrink: cs.FlexShrink,
		}
		item.constraints = resolveSizeConstraints(cs.SizeConstraints, contentSize)
		applyAspectRatio(&item.constraints, cs.AspectRatio)
		item.margin = cs.Margin.Resolve(contentSize.Width, contentSize.Height)
		items = append(items, item)
	}

	// Phase 1: flex base size per item. Explicit basis wins, then the
	// item's suggested main size, then its measured content size.
	for idx := range items {
		item := &items[idx]
		basis := item.style.FlexBasis.Resolve(mainContent).OrElse(item.constraints.Main(mainAxis).Suggested)
		if b, ok := basis.Value(); ok {
			item.basis = b
		} else {
			measured, err := c.computeNode(item.node, Size[Maybe]{}, contentAvail, ComputeSize, InherentSize)
			if err != nil {
				return Size[float32]{}, err
			}
			item.basis = measured.Main(mainAxis)
		}
		item.basis = item.constraints.Main(mainAxis).Apply(item.basis)
	}

	// Phase 2: distribute free space along the main axis. Shrinking is
	// weighted by basis so large items give up proportionally more.
	totalGap := gap * float32(max(0, len(items)-1))
	usedMain := totalGap
	var totalGrow, totalShrinkScaled float32
	for idx := range items {
		item := &items[idx]
		usedMain += item.basis + item.margin.Sum(mainAxis)
		totalGrow += item.grow
		totalShrinkScaled += item.shrink * item.basis
	}

	for idx := range items {
		items[idx].mainSize = items[idx].basis
	}
	if mc, ok := mainContent.Value(); ok {
		free := mc - usedMain
		if free > 0 && totalGrow > 0 {
			for idx := range items {
				item := &items[idx]
				if item.grow > 0 {
					item.mainSize = item.basis + free*item.grow/totalGrow
				}
			}
		} else if free < 0 && totalShrinkScaled > 0 {
			for idx := range items {
				item := &items[idx]
				if item.shrink > 0 {
					item.mainSize = max(0, item.basis+free*item.shrink*item.basis/totalShrinkScaled)
				}
			}
		}
	}
	for idx := range items {
		item := &items[idx]
		item.mainSize = item.constraints.Main(mainAxis).Apply(item.mainSize)
	}

	// Phase 3: cross sizes. Definite cross wins; stretch fills the
	// container's definite cross content; otherwise ask the child.
	crossContent := contentSize.Cross(mainAxis)
	for idx := range items {
		item := &items[idx]
		crossConstraint := item.constraints.Cross(mainAxis)
		crossMargin := item.margin.Sum(crossAxis)
		if v, ok := crossConstraint.Suggested.Value(); ok {
			item.crossSize = crossConstraint.Apply(v)
		} else if cc, ok := crossContent.Value(); ok && alignFor(style, item.style) == AlignStretch {
			item.crossSize = crossConstraint.Apply(max(0, cc-crossMargin))
		} else {
			knownChild := Size[Maybe]{}
			knownChild.SetMain(mainAxis, Some(item.mainSize))
			measured, err := c.computeNode(item.node, knownChild, contentAvail, ComputeSize, InherentSize)
			if err != nil {
				return Size[float32]{}, err
			}
			item.crossSize = crossConstraint.Apply(measured.Cross(mainAxis))
		}
	}

	// Phase 4: the container's own size. A definite suggestion wins;
	// otherwise the container wraps its content.
	usedFinal := totalGap
	var maxCross float32
	for idx := range items {
		item := &items[idx]
		usedFinal += item.mainSize + item.margin.Sum(mainAxis)
		maxCross = max(maxCross, item.crossSize+item.margin.Sum(crossAxis))
	}
	mainFinal := constraints.Main(mainAxis).Apply(suggested.Main(mainAxis).Or(usedFinal + insets.Sum(mainAxis)))
	crossFinal := constraints.Cross(mainAxis).Apply(suggested.Cross(mainAxis).Or(maxCross + insets.Sum(crossAxis)))

	var size Size[float32]
	size.SetMain(mainAxis, mainFinal)
	size.SetCross(mainAxis, crossFinal)

	if runMode == ComputeSize {
		return size, nil
	}

	// Phase 5: recurse for final layout and place every child.
	innerMain := mainFinal - insets.Sum(mainAxis)
	innerCross := crossFinal - insets.Sum(crossAxis)
	lead, between := justifyOffsets(style.JustifyContent, innerMain-usedFinal, len(items))

	cursor := insets.MainStart(mainAxis) + lead
	for idx := range items {
		item := &items[idx]
		knownChild := Size[Maybe]{}
		knownChild.SetMain(mainAxis, Some(item.mainSize))
		knownChild.SetCross(mainAxis, Some(item.crossSize))
		finalSize, err := c.computeNode(item.node, knownChild, contentAvail, PerformLayout, InherentSize)
		if err != nil {
			return Size[float32]{}, err
		}

		var crossPos float32
		switch alignFor(style, item.style) {
		case AlignEnd:
			crossPos = innerCross - finalSize.Cross(mainAxis) - item.margin.MainEnd(crossAxis)
		case AlignCenter:
			crossPos = (innerCross-finalSize.Cross(mainAxis)-item.margin.Sum(crossAxis))/2 + item.margin.MainStart(crossAxis)
		default: // AlignStart, AlignStretch
			crossPos = item.margin.MainStart(crossAxis)
		}
		crossPos += insets.MainStart(crossAxis)

		var loc Point[float32]
		loc.SetMain(mainAxis, cursor+item.margin.MainStart(mainAxis))
		loc.SetCross(mainAxis, crossPos)
		if dir.IsReverse() {
			// Mirror within the content box.
			mirrored := mainFinal + insets.MainStart(mainAxis) - insets.MainEnd(mainAxis) - loc.Main(mainAxis) - finalSize.Main(mainAxis)
			loc.SetMain(mainAxis, mirrored)
		}

		tree.SetLayout(item.node, Layout{Order: item.index, Size: finalSize, Location: loc})
		cursor += item.margin.Sum(mainAxis) + finalSize.Main(mainAxis) + gap + between
	}

	// Out-of-flow children are sized against the content box and pinned
	// to its origin plus their margins.
	for _, item := range absolutes {
		cs := item.style
		acons := resolveSizeConstraints(cs.SizeConstraints, contentSize)
		applyAspectRatio(&acons, cs.AspectRatio)
		finalSize, err := c.computeNode(item.node, rawSuggested(acons), contentAvail, PerformLayout, InherentSize)
		if err != nil {
			return Size[float32]{}, err
		}
		margin := cs.Margin.Resolve(contentSize.Width, contentSize.Height)
		tree.SetLayout(item.node, Layout{
			Order:    item.index,
			Size:     finalSize,
			Location: Point[float32]{X: insets.Left + margin.Left, Y: insets.Top + margin.Top},
		})
	}

	for _, h := range hidden {
		hideSubtree(tree, h)
	}

	return size, nil
}

// justifyOffsets returns the leading offset and the extra spacing between
// adjacent items for a given free-space budget. Negative free space packs
// at the start.
func justifyOffsets(j Justify, free float32, n int) (lead, between float32) {
	if n == 0 || free <= 0 {
		return 0, 0
	}
	switch j {
	case JustifyEnd:
		return free, 0
	case JustifyCenter:
		return free / 2, 0
	case JustifySpaceBetween:
		if n > 1 {
			return 0, free / float32(n-1)
		}
		return 0, 0
	case JustifySpaceAround:
		s := free / float32(n)
		return s / 2, s
	case JustifySpaceEvenly:
		s := free / float32(n+1)
		return s, s
	default: // JustifyStart
		return 0, 0
	}
}
