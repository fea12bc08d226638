package layout

// Display controls whether a node participates in layout.
type Display uint8

const (
	// DisplayFlex lays the node out as a flex container. Default.
	DisplayFlex Display = iota
	// DisplayNone removes the node and its subtree from layout.
	DisplayNone
)

// Position controls how a node is placed relative to its parent.
type Position uint8

const (
	// PositionRelative places the node in normal flow. Default.
	PositionRelative Position = iota
	// PositionAbsolute takes the node out of flow; it does not consume
	// space in the parent's main axis.
	PositionAbsolute
)

// FlexDirection specifies the main axis for laying out children.
type FlexDirection uint8

const (
	Row FlexDirection = iota // Children laid out left-to-right
	Column                   // Children laid out top-to-bottom
	RowReverse               // Right-to-left
	ColumnReverse            // Bottom-to-top
)

// IsRow reports whether the main axis is horizontal.
func (d FlexDirection) IsRow() bool {
	return d == Row || d == RowReverse
}

// IsReverse reports whether children are placed from the far edge.
func (d FlexDirection) IsReverse() bool {
	return d == RowReverse || d == ColumnReverse
}

// MainAxis returns the axis children are laid out along.
func (d FlexDirection) MainAxis() Axis {
	if d.IsRow() {
		return Horizontal
	}
	return Vertical
}

// CrossAxis returns the axis perpendicular to the main axis.
func (d FlexDirection) CrossAxis() Axis {
	return d.MainAxis().Other()
}

// FlexWrap specifies whether children may break onto multiple lines.
type FlexWrap uint8

const (
	NoWrap FlexWrap = iota
	Wrap
	WrapReverse
)

// Justify specifies how children are distributed along the main axis.
type Justify uint8

const (
	JustifyStart        Justify = iota // Pack at start
	JustifyEnd                         // Pack at end
	JustifyCenter                      // Center children
	JustifySpaceBetween                // Even space between, none at edges
	JustifySpaceAround                 // Even space around each child
	JustifySpaceEvenly                 // Equal space between and at edges
)

// Align specifies how children are positioned on the cross axis.
type Align uint8

const (
	AlignStart   Align = iota // Align to start of cross axis
	AlignEnd                  // Align to end of cross axis
	AlignCenter               // Center on cross axis
	AlignStretch              // Stretch to fill cross axis
)

// Style contains every layout property of a node. It is owned by the tree
// store, supplied at node creation, and read-only to the engine during a
// pass.
type Style struct {
	Display  Display
	Position Position

	// Flex container properties
	Direction      FlexDirection
	Wrap           FlexWrap
	JustifyContent Justify
	AlignItems     Align
	Gap            Size[Dimension] // Main-axis component spaces adjacent children

	// Flex item properties
	FlexGrow   float32
	FlexShrink float32
	FlexBasis  Dimension
	AlignSelf  *Align // Override parent's AlignItems (nil = inherit)

	// Spacing
	Margin  Edges
	Padding Edges
	Border  Edges

	// Sizing: per-axis minimum / suggested / maximum
	SizeConstraints Size[Constraints]

	// AspectRatio is width divided by height. When definite and exactly
	// one axis has a definite suggested size, the other is derived.
	AspectRatio Maybe
}

// DefaultStyle returns a Style with CSS-flexbox-flavored defaults.
func DefaultStyle() Style {
	return Style{
		Direction:  Row,
		AlignItems: AlignStretch,
		FlexGrow:   0,
		FlexShrink: 1,
		FlexBasis:  Auto(),
		SizeConstraints: Size[Constraints]{
			Width:  Suggest(Auto()),
			Height: Suggest(Auto()),
		},
	}
}

// alignFor returns the effective cross-axis alignment for a child.
func alignFor(parent, child *Style) Align {
	if child.AlignSelf != nil {
		return *child.AlignSelf
	}
	return parent.AlignItems
}
