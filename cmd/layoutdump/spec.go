package main

import (
	"bytes"
	"fmt"
	"strconv"
	"strings"

	"github.com/grindlemire/go-layout"
	"github.com/grindlemire/go-layout/arena"
)

// nodeSpec is the JSON description of one node. Dimensions accept a bare
// number (points), a percentage string like "50%", or "auto".
type nodeSpec struct {
	Name string `json:"name,omitempty"`

	Direction string `json:"direction,omitempty"`
	Justify   string `json:"justify,omitempty"`
	Align     string `json:"align,omitempty"`

	Width     *dimSpec `json:"width,omitempty"`
	Height    *dimSpec `json:"height,omitempty"`
	MinWidth  *dimSpec `json:"minWidth,omitempty"`
	MaxWidth  *dimSpec `json:"maxWidth,omitempty"`
	MinHeight *dimSpec `json:"minHeight,omitempty"`
	MaxHeight *dimSpec `json:"maxHeight,omitempty"`

	Grow   float32  `json:"grow,omitempty"`
	Shrink *float32 `json:"shrink,omitempty"`
	Basis  *dimSpec `json:"basis,omitempty"`
	Gap    *dimSpec `json:"gap,omitempty"`

	Padding *edgeSpec `json:"padding,omitempty"`
	Margin  *edgeSpec `json:"margin,omitempty"`
	Border  *edgeSpec `json:"border,omitempty"`

	Children []nodeSpec `json:"children,omitempty"`
}

// dimSpec is a Dimension in JSON form.
type dimSpec struct {
	dim layout.Dimension
}

func (d *dimSpec) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if len(data) == 0 {
		return fmt.Errorf("empty dimension")
	}
	if data[0] == '"' {
		s := strings.Trim(string(data), `"`)
		switch {
		case s == "auto":
			d.dim = layout.Auto()
			return nil
		case strings.HasSuffix(s, "%"):
			pct, err := strconv.ParseFloat(strings.TrimSuffix(s, "%"), 32)
			if err != nil {
				return fmt.Errorf("bad percentage %q: %w", s, err)
			}
			d.dim = layout.Percent(float32(pct) / 100)
			return nil
		default:
			return fmt.Errorf("bad dimension %q: want a number, a percentage, or \"auto\"", s)
		}
	}
	v, err := strconv.ParseFloat(string(data), 32)
	if err != nil {
		return fmt.Errorf("bad dimension %s: %w", data, err)
	}
	d.dim = layout.Points(float32(v))
	return nil
}

func dimOf(d *dimSpec) layout.Dimension {
	if d == nil {
		return layout.Undefined()
	}
	return d.dim
}

// edgeSpec sets the four sides of a spacing property, either all at once
// or per side.
type edgeSpec struct {
	All    *dimSpec `json:"all,omitempty"`
	Top    *dimSpec `json:"top,omitempty"`
	Right  *dimSpec `json:"right,omitempty"`
	Bottom *dimSpec `json:"bottom,omitempty"`
	Left   *dimSpec `json:"left,omitempty"`
}

func (e *edgeSpec) edges() layout.Edges {
	if e == nil {
		return layout.Edges{}
	}
	out := layout.Edges{}
	if e.All != nil {
		out = layout.EdgeAll(e.All.dim)
	}
	if e.Top != nil {
		out.Top = e.Top.dim
	}
	if e.Right != nil {
		out.Right = e.Right.dim
	}
	if e.Bottom != nil {
		out.Bottom = e.Bottom.dim
	}
	if e.Left != nil {
		out.Left = e.Left.dim
	}
	return out
}

func (n *nodeSpec) style() (layout.Style, error) {
	s := layout.DefaultStyle()

	switch n.Direction {
	case "", "row":
	case "column":
		s.Direction = layout.Column
	case "row-reverse":
		s.Direction = layout.RowReverse
	case "column-reverse":
		s.Direction = layout.ColumnReverse
	default:
		return s, fmt.Errorf("unknown direction %q", n.Direction)
	}

	switch n.Justify {
	case "", "start":
	case "end":
		s.JustifyContent = layout.JustifyEnd
	case "center":
		s.JustifyContent = layout.JustifyCenter
	case "space-between":
		s.JustifyContent = layout.JustifySpaceBetween
	case "space-around":
		s.JustifyContent = layout.JustifySpaceAround
	case "space-evenly":
		s.JustifyContent = layout.JustifySpaceEvenly
	default:
		return s, fmt.Errorf("unknown justify %q", n.Justify)
	}

	switch n.Align {
	case "", "stretch":
	case "start":
		s.AlignItems = layout.AlignStart
	case "end":
		s.AlignItems = layout.AlignEnd
	case "center":
		s.AlignItems = layout.AlignCenter
	default:
		return s, fmt.Errorf("unknown align %q", n.Align)
	}

	s.SizeConstraints = layout.Size[layout.Constraints]{
		Width: layout.Constraints{
			Min:       dimOf(n.MinWidth),
			Suggested: suggestedOf(n.Width),
			Max:       dimOf(n.MaxWidth),
		},
		Height: layout.Constraints{
			Min:       dimOf(n.MinHeight),
			Suggested: suggestedOf(n.Height),
			Max:       dimOf(n.MaxHeight),
		},
	}

	s.FlexGrow = n.Grow
	if n.Shrink != nil {
		s.FlexShrink = *n.Shrink
	}
	if n.Basis != nil {
		s.FlexBasis = n.Basis.dim
	}
	if n.Gap != nil {
		s.Gap = layout.Size[layout.Dimension]{Width: n.Gap.dim, Height: n.Gap.dim}
	}
	s.Padding = n.Padding.edges()
	s.Margin = n.Margin.edges()
	s.Border = n.Border.edges()
	return s, nil
}

// suggestedOf defaults an absent suggestion to auto rather than
// undefined, matching what an unstyled node means.
func suggestedOf(d *dimSpec) layout.Dimension {
	if d == nil {
		return layout.Auto()
	}
	return d.dim
}

// build inserts the spec's subtree into the store, returning its root ID
// and node names in insertion order.
func (n *nodeSpec) build(tree *arena.Tree, names map[layout.NodeID]string) (layout.NodeID, error) {
	style, err := n.style()
	if err != nil {
		return 0, err
	}

	children := make([]layout.NodeID, 0, len(n.Children))
	for i := range n.Children {
		child, err := n.Children[i].build(tree, names)
		if err != nil {
			return 0, err
		}
		children = append(children, child)
	}

	var id layout.NodeID
	if len(children) == 0 {
		id = tree.NewLeaf(style)
	} else {
		id, err = tree.NewWithChildren(style, children...)
		if err != nil {
			return 0, err
		}
	}
	if n.Name != "" {
		names[id] = n.Name
	}
	return id, nil
}
