// Package arena provides the default tree store for the layout engine: a
// generational arena. Nodes live in a flat slice, node IDs carry a slot
// index plus a generation counter, and removed slots are recycled. A
// stale ID (one whose slot was freed or reused) is detected by its
// generation and rejected by mutating operations.
package arena

import (
	"github.com/grindlemire/go-layout"
)

// node IDs pack the slot index in the low 32 bits and the slot's
// generation in the high 32 bits.
func makeID(index, generation uint32) layout.NodeID {
	return layout.NodeID(uint64(generation)<<32 | uint64(index))
}

func idIndex(id layout.NodeID) uint32 {
	return uint32(id)
}

func idGeneration(id layout.NodeID) uint32 {
	return uint32(uint64(id) >> 32)
}

type nodeData struct {
	style      layout.Style
	layout     layout.Layout
	cache      layout.Cache
	measure    layout.MeasureFunc
	parent     layout.NodeID
	hasParent  bool
	children   []layout.NodeID
	generation uint32
	live       bool
}

// Tree is a generational-arena store of layout nodes. It implements
// [layout.Tree]. The zero value is not usable; construct with [New].
//
// Tree is not safe for concurrent use.
type Tree struct {
	nodes []nodeData
	free  []uint32
	count int
}

var _ layout.Tree = (*Tree)(nil)

// New returns an empty tree store.
func New() *Tree {
	return NewWithCapacity(16)
}

// NewWithCapacity returns an empty tree store with room for n nodes
// before reallocating.
func NewWithCapacity(n int) *Tree {
	return &Tree{
		nodes: make([]nodeData, 0, n),
		free:  make([]uint32, 0, n),
	}
}

// NodeCount returns the number of live nodes.
func (t *Tree) NodeCount() int {
	return t.count
}

// lookup resolves an ID to its slot, reporting false for stale or
// foreign IDs.
func (t *Tree) lookup(id layout.NodeID) (*nodeData, bool) {
	idx := idIndex(id)
	if int(idx) >= len(t.nodes) {
		return nil, false
	}
	n := &t.nodes[idx]
	if !n.live || n.generation != idGeneration(id) {
		return nil, false
	}
	return n, true
}

// get resolves an ID that is assumed valid. Accessor methods of the
// layout.Tree contract use this; they do not re-validate.
func (t *Tree) get(id layout.NodeID) *nodeData {
	return &t.nodes[idIndex(id)]
}

func (t *Tree) alloc(style layout.Style) layout.NodeID {
	t.count++
	if len(t.free) > 0 {
		idx := t.free[len(t.free)-1]
		t.free = t.free[:len(t.free)-1]
		n := &t.nodes[idx]
		generation := n.generation
		*n = nodeData{style: style, generation: generation, live: true}
		return makeID(idx, generation)
	}
	t.nodes = append(t.nodes, nodeData{style: style, live: true})
	return makeID(uint32(len(t.nodes)-1), 0)
}

// NewLeaf creates a childless node with the given style.
func (t *Tree) NewLeaf(style layout.Style) layout.NodeID {
	return t.alloc(style)
}

// NewLeafWithMeasure creates a childless node whose intrinsic size comes
// from the given measure function.
func (t *Tree) NewLeafWithMeasure(style layout.Style, measure layout.MeasureFunc) layout.NodeID {
	id := t.alloc(style)
	t.get(id).measure = measure
	return id
}

// NewWithChildren creates a node adopting the given children. Each child
// must be live and parentless.
func (t *Tree) NewWithChildren(style layout.Style, children ...layout.NodeID) (layout.NodeID, error) {
	for _, child := range children {
		if _, ok := t.lookup(child); !ok {
			return 0, &layout.InvalidNodeError{Node: child}
		}
	}
	id := t.alloc(style)
	n := t.get(id)
	n.children = append([]layout.NodeID(nil), children...)
	for _, child := range children {
		c := t.get(child)
		c.parent = id
		c.hasParent = true
	}
	return id, nil
}

// Remove deletes a node, detaching it from its parent and orphaning its
// children (they stay live, parentless). The freed slot is recycled; the
// removed ID and any copies of it become stale.
func (t *Tree) Remove(node layout.NodeID) error {
	n, ok := t.lookup(node)
	if !ok {
		return &layout.InvalidNodeError{Node: node}
	}
	if n.hasParent {
		if err := t.RemoveChild(n.parent, node); err != nil {
			return err
		}
	}
	for _, child := range n.children {
		c := t.get(child)
		c.hasParent = false
		c.parent = 0
	}
	idx := idIndex(node)
	generation := n.generation
	*n = nodeData{generation: generation + 1}
	t.free = append(t.free, idx)
	t.count--
	return nil
}

// AddChild appends a child to a parent and marks the parent dirty.
func (t *Tree) AddChild(parent, child layout.NodeID) error {
	p, ok := t.lookup(parent)
	if !ok {
		return &layout.InvalidNodeError{Node: parent}
	}
	c, ok := t.lookup(child)
	if !ok {
		return &layout.InvalidNodeError{Node: child}
	}
	p.children = append(p.children, child)
	c.parent = parent
	c.hasParent = true
	return t.MarkDirty(parent)
}

// SetChildren replaces a parent's children wholesale and marks the
// parent dirty. Previous children are orphaned, not removed.
func (t *Tree) SetChildren(parent layout.NodeID, children ...layout.NodeID) error {
	p, ok := t.lookup(parent)
	if !ok {
		return &layout.InvalidNodeError{Node: parent}
	}
	for _, child := range children {
		if _, ok := t.lookup(child); !ok {
			return &layout.InvalidNodeError{Node: child}
		}
	}
	for _, old := range p.children {
		o := t.get(old)
		o.hasParent = false
		o.parent = 0
	}
	p.children = append(p.children[:0], children...)
	for _, child := range children {
		c := t.get(child)
		c.parent = parent
		c.hasParent = true
	}
	return t.MarkDirty(parent)
}

// RemoveChild detaches a child from its parent, leaving the child live
// and parentless, and marks the parent dirty.
func (t *Tree) RemoveChild(parent, child layout.NodeID) error {
	p, ok := t.lookup(parent)
	if !ok {
		return &layout.InvalidNodeError{Node: parent}
	}
	for i, c := range p.children {
		if c == child {
			_, err := t.RemoveChildAt(parent, i)
			return err
		}
	}
	return &layout.NotChildError{Parent: parent, Child: child}
}

// RemoveChildAt detaches the child at the given index, returning it.
func (t *Tree) RemoveChildAt(parent layout.NodeID, index int) (layout.NodeID, error) {
	p, ok := t.lookup(parent)
	if !ok {
		return 0, &layout.InvalidNodeError{Node: parent}
	}
	if index < 0 || index >= len(p.children) {
		return 0, &layout.ChildIndexError{Parent: parent, Index: index, ChildCount: len(p.children)}
	}
	child := p.children[index]
	p.children = append(p.children[:index], p.children[index+1:]...)
	c := t.get(child)
	c.hasParent = false
	c.parent = 0
	if err := t.MarkDirty(parent); err != nil {
		return 0, err
	}
	return child, nil
}

// ReplaceChildAt swaps the child at the given index for a new one,
// returning the displaced child (live, parentless).
func (t *Tree) ReplaceChildAt(parent layout.NodeID, index int, child layout.NodeID) (layout.NodeID, error) {
	p, ok := t.lookup(parent)
	if !ok {
		return 0, &layout.InvalidNodeError{Node: parent}
	}
	if _, ok := t.lookup(child); !ok {
		return 0, &layout.InvalidNodeError{Node: child}
	}
	if index < 0 || index >= len(p.children) {
		return 0, &layout.ChildIndexError{Parent: parent, Index: index, ChildCount: len(p.children)}
	}
	old := p.children[index]
	o := t.get(old)
	o.hasParent = false
	o.parent = 0
	p.children[index] = child
	c := t.get(child)
	c.parent = parent
	c.hasParent = true
	if err := t.MarkDirty(parent); err != nil {
		return 0, err
	}
	return old, nil
}

// SetStyle replaces a node's style and marks it dirty.
func (t *Tree) SetStyle(node layout.NodeID, style layout.Style) error {
	n, ok := t.lookup(node)
	if !ok {
		return &layout.InvalidNodeError{Node: node}
	}
	n.style = style
	return t.MarkDirty(node)
}

// SetMeasure replaces a node's measure function (nil removes it) and
// marks the node dirty.
func (t *Tree) SetMeasure(node layout.NodeID, measure layout.MeasureFunc) error {
	n, ok := t.lookup(node)
	if !ok {
		return &layout.InvalidNodeError{Node: node}
	}
	n.measure = measure
	return t.MarkDirty(node)
}

// Parent returns a node's parent and whether it has one.
func (t *Tree) Parent(node layout.NodeID) (layout.NodeID, bool) {
	n, ok := t.lookup(node)
	if !ok {
		return 0, false
	}
	return n.parent, n.hasParent
}

// Dirty reports whether a node needs recomputation before its layout
// can be trusted.
func (t *Tree) Dirty(node layout.NodeID) (bool, error) {
	n, ok := t.lookup(node)
	if !ok {
		return false, &layout.InvalidNodeError{Node: node}
	}
	return n.cache.IsEmpty(), nil
}

// Compute runs a layout pass over the subtree rooted at root.
func (t *Tree) Compute(root layout.NodeID, available layout.Size[layout.AvailableSpace], opts ...layout.Option) error {
	if _, ok := t.lookup(root); !ok {
		return &layout.InvalidNodeError{Node: root}
	}
	return layout.Compute(t, root, available, opts...)
}

// MarkDirty clears the sizing cache of a node and every ancestor,
// iteratively. The walk is unconditional: an already-empty cache on the
// way up does not stop it, since ancestors may hold entries of their
// own.
func (t *Tree) MarkDirty(node layout.NodeID) error {
	n, ok := t.lookup(node)
	if !ok {
		return &layout.InvalidNodeError{Node: node}
	}
	for {
		n.cache.Clear()
		if !n.hasParent {
			return nil
		}
		n = t.get(n.parent)
	}
}

// Children implements [layout.Tree]. The returned slice is owned by the
// store; callers must not mutate it.
func (t *Tree) Children(node layout.NodeID) []layout.NodeID {
	return t.get(node).children
}

// ChildCount implements [layout.Tree].
func (t *Tree) ChildCount(node layout.NodeID) int {
	return len(t.get(node).children)
}

// Child implements [layout.Tree].
func (t *Tree) Child(node layout.NodeID, index int) (layout.NodeID, error) {
	children := t.get(node).children
	if index < 0 || index >= len(children) {
		return 0, &layout.ChildIndexError{Parent: node, Index: index, ChildCount: len(children)}
	}
	return children[index], nil
}

// IsChildless implements [layout.Tree].
func (t *Tree) IsChildless(node layout.NodeID) bool {
	return len(t.get(node).children) == 0
}

// Style implements [layout.Tree].
func (t *Tree) Style(node layout.NodeID) *layout.Style {
	return &t.get(node).style
}

// Layout implements [layout.Tree].
func (t *Tree) Layout(node layout.NodeID) layout.Layout {
	return t.get(node).layout
}

// SetLayout implements [layout.Tree].
func (t *Tree) SetLayout(node layout.NodeID, l layout.Layout) {
	t.get(node).layout = l
}

// NeedsMeasure implements [layout.Tree].
func (t *Tree) NeedsMeasure(node layout.NodeID) bool {
	return t.get(node).measure != nil
}

// Measure implements [layout.Tree].
func (t *Tree) Measure(node layout.NodeID, known layout.Size[layout.Maybe], available layout.Size[layout.AvailableSpace]) layout.Size[float32] {
	return t.get(node).measure(known, available)
}

// Cache implements [layout.Tree].
func (t *Tree) Cache(node layout.NodeID) *layout.Cache {
	return &t.get(node).cache
}
