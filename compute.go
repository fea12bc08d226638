package layout

import (
	"math"

	"go.uber.org/zap"
)

type config struct {
	rounding bool
	trace    *zap.Logger
}

// Option configures a single Compute call.
type Option func(*config)

// WithTrace attaches a structured trace sink for this pass. Every cache
// hit and computed size is logged at debug level. There is no process-wide
// logger; tracing is scoped to the call.
func WithTrace(logger *zap.Logger) Option {
	return func(c *config) {
		if logger != nil {
			c.trace = logger
		}
	}
}

// WithoutRounding disables the final pass that snaps locations and sizes
// to whole units.
func WithoutRounding() Option {
	return func(c *config) {
		c.rounding = false
	}
}

// Compute performs layout for the tree rooted at root within the given
// available space, storing a Layout for every node.
//
// The walk is depth-first and cache-first: a node whose cache holds an
// entry for the exact sizing inputs is not recomputed. The tree is
// mutably borrowed for the whole call; no other mutation may run
// concurrently with it.
func Compute(tree Tree, root NodeID, available Size[AvailableSpace], opts ...Option) error {
	cfg := config{rounding: true, trace: zap.NewNop()}
	for _, opt := range opts {
		opt(&cfg)
	}

	c := &computer{tree: tree, cfg: cfg}
	size, err := c.computeNode(root, Size[Maybe]{}, available, PerformLayout, InherentSize)
	if err != nil {
		return err
	}

	l := tree.Layout(root)
	l.Order = 0
	l.Size = size
	l.Location = Point[float32]{}
	tree.SetLayout(root, l)

	if cfg.rounding {
		roundSubtree(tree, root, 0, 0)
	}
	return nil
}

// computer carries per-pass state through the recursion.
type computer struct {
	tree Tree
	cfg  config
}

// computeNode sizes one node, consulting the cache first. In PerformLayout
// mode the node's descendants also get their Layout stored; the node's own
// Layout is written by its parent (or by Compute for the root).
func (c *computer) computeNode(node NodeID, known Size[Maybe], available Size[AvailableSpace], runMode RunMode, sizingMode SizingMode) (Size[float32], error) {
	tree := c.tree
	style := tree.Style(node)

	if style.Display == DisplayNone {
		if runMode == PerformLayout {
			hideSubtree(tree, node)
		}
		return Size[float32]{}, nil
	}

	cache := tree.Cache(node)
	if size, ok := cache.Get(known, available, runMode, sizingMode); ok {
		c.cfg.trace.Debug("cache hit",
			zap.Uint64("node", uint64(node)),
			zap.Stringer("available_width", available.Width),
			zap.Stringer("available_height", available.Height),
			zap.Float32("width", size.Width),
			zap.Float32("height", size.Height),
		)
		return size, nil
	}

	var size Size[float32]
	var err error
	if tree.IsChildless(node) {
		size = computeLeaf(tree, node, known, available, sizingMode)
	} else {
		size, err = c.computeFlex(node, known, available, runMode, sizingMode)
		if err != nil {
			return Size[float32]{}, err
		}
	}

	cache.Store(known, available, runMode, sizingMode, size)
	c.cfg.trace.Debug("sized",
		zap.Uint64("node", uint64(node)),
		zap.Float32("width", size.Width),
		zap.Float32("height", size.Height),
	)
	return size, nil
}

// hideSubtree zeroes the stored layout of a display:none node and its
// descendants, iteratively.
func hideSubtree(tree Tree, node NodeID) {
	stack := []NodeID{node}
	for len(stack) > 0 {
		n := stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		tree.SetLayout(n, Layout{})
		stack = append(stack, tree.Children(n)...)
	}
}

// roundSubtree snaps layout to whole units, Yoga-style: positions round
// from accumulated absolute coordinates so that rounding never opens or
// closes gaps between adjacent boxes, and a second rounding pass over
// already-rounded values is a no-op.
func roundSubtree(tree Tree, node NodeID, absX, absY float32) {
	l := tree.Layout(node)
	rawX := absX + l.Location.X
	rawY := absY + l.Location.Y
	l.Location.X = roundf(rawX) - roundf(absX)
	l.Location.Y = roundf(rawY) - roundf(absY)
	l.Size.Width = roundf(rawX+l.Size.Width) - roundf(rawX)
	l.Size.Height = roundf(rawY+l.Size.Height) - roundf(rawY)
	tree.SetLayout(node, l)

	for _, child := range tree.Children(node) {
		roundSubtree(tree, child, rawX, rawY)
	}
}

func roundf(v float32) float32 {
	return float32(math.Round(float64(v)))
}
