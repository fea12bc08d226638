// Package world provides an alternative tree store for the layout
// engine, organized as per-component maps: styles, layouts, caches,
// measure functions, and parent/child links each live in their own map
// keyed by node ID. This layout suits hosts that already keep entity
// state in component tables and want node data stored alongside it,
// trading the arena's locality for cheap per-component iteration.
package world

import (
	"github.com/grindlemire/go-layout"
)

// World is a component-map store of layout nodes. It implements
// [layout.Tree]. The zero value is not usable; construct with [New].
//
// World is not safe for concurrent use.
type World struct {
	next     layout.NodeID
	styles   map[layout.NodeID]*layout.Style
	layouts  map[layout.NodeID]layout.Layout
	caches   map[layout.NodeID]*layout.Cache
	measures map[layout.NodeID]layout.MeasureFunc
	parents  map[layout.NodeID]layout.NodeID
	children map[layout.NodeID][]layout.NodeID
}

var _ layout.Tree = (*World)(nil)

// New returns an empty component-map store.
func New() *World {
	return &World{
		next:     1, // 0 is reserved so the zero NodeID is never live
		styles:   make(map[layout.NodeID]*layout.Style),
		layouts:  make(map[layout.NodeID]layout.Layout),
		caches:   make(map[layout.NodeID]*layout.Cache),
		measures: make(map[layout.NodeID]layout.MeasureFunc),
		parents:  make(map[layout.NodeID]layout.NodeID),
		children: make(map[layout.NodeID][]layout.NodeID),
	}
}

// NodeCount returns the number of live nodes.
func (w *World) NodeCount() int {
	return len(w.styles)
}

func (w *World) alloc(style layout.Style) layout.NodeID {
	id := w.next
	w.next++
	s := style
	w.styles[id] = &s
	w.caches[id] = &layout.Cache{}
	return id
}

func (w *World) live(node layout.NodeID) bool {
	_, ok := w.styles[node]
	return ok
}

// NewLeaf creates a childless node with the given style.
func (w *World) NewLeaf(style layout.Style) layout.NodeID {
	return w.alloc(style)
}

// NewLeafWithMeasure creates a childless node whose intrinsic size comes
// from the given measure function.
func (w *World) NewLeafWithMeasure(style layout.Style, measure layout.MeasureFunc) layout.NodeID {
	id := w.alloc(style)
	w.measures[id] = measure
	return id
}

// NewWithChildren creates a node adopting the given children.
func (w *World) NewWithChildren(style layout.Style, children ...layout.NodeID) (layout.NodeID, error) {
	for _, child := range children {
		if !w.live(child) {
			return 0, &layout.InvalidNodeError{Node: child}
		}
	}
	id := w.alloc(style)
	w.children[id] = append([]layout.NodeID(nil), children...)
	for _, child := range children {
		w.parents[child] = id
	}
	return id, nil
}

// Remove deletes a node from every component map, detaching it from its
// parent and orphaning its children.
func (w *World) Remove(node layout.NodeID) error {
	if !w.live(node) {
		return &layout.InvalidNodeError{Node: node}
	}
	if parent, ok := w.parents[node]; ok {
		if err := w.RemoveChild(parent, node); err != nil {
			return err
		}
	}
	for _, child := range w.children[node] {
		delete(w.parents, child)
	}
	delete(w.styles, node)
	delete(w.layouts, node)
	delete(w.caches, node)
	delete(w.measures, node)
	delete(w.parents, node)
	delete(w.children, node)
	return nil
}

// AddChild appends a child to a parent and marks the parent dirty.
func (w *World) AddChild(parent, child layout.NodeID) error {
	if !w.live(parent) {
		return &layout.InvalidNodeError{Node: parent}
	}
	if !w.live(child) {
		return &layout.InvalidNodeError{Node: child}
	}
	w.children[parent] = append(w.children[parent], child)
	w.parents[child] = parent
	return w.MarkDirty(parent)
}

// SetChildren replaces a parent's children wholesale and marks the
// parent dirty. Previous children are orphaned, not removed.
func (w *World) SetChildren(parent layout.NodeID, children ...layout.NodeID) error {
	if !w.live(parent) {
		return &layout.InvalidNodeError{Node: parent}
	}
	for _, child := range children {
		if !w.live(child) {
			return &layout.InvalidNodeError{Node: child}
		}
	}
	for _, old := range w.children[parent] {
		delete(w.parents, old)
	}
	w.children[parent] = append([]layout.NodeID(nil), children...)
	for _, child := range children {
		w.parents[child] = parent
	}
	return w.MarkDirty(parent)
}

// RemoveChild detaches a child from its parent, leaving the child live
// and parentless.
func (w *World) RemoveChild(parent, child layout.NodeID) error {
	if !w.live(parent) {
		return &layout.InvalidNodeError{Node: parent}
	}
	for i, c := range w.children[parent] {
		if c == child {
			_, err := w.RemoveChildAt(parent, i)
			return err
		}
	}
	return &layout.NotChildError{Parent: parent, Child: child}
}

// RemoveChildAt detaches the child at the given index, returning it.
func (w *World) RemoveChildAt(parent layout.NodeID, index int) (layout.NodeID, error) {
	if !w.live(parent) {
		return 0, &layout.InvalidNodeError{Node: parent}
	}
	kids := w.children[parent]
	if index < 0 || index >= len(kids) {
		return 0, &layout.ChildIndexError{Parent: parent, Index: index, ChildCount: len(kids)}
	}
	child := kids[index]
	w.children[parent] = append(kids[:index], kids[index+1:]...)
	delete(w.parents, child)
	if err := w.MarkDirty(parent); err != nil {
		return 0, err
	}
	return child, nil
}

// ReplaceChildAt swaps the child at the given index for a new one,
// returning the displaced child.
func (w *World) ReplaceChildAt(parent layout.NodeID, index int, child layout.NodeID) (layout.NodeID, error) {
	if !w.live(parent) {
		return 0, &layout.InvalidNodeError{Node: parent}
	}
	if !w.live(child) {
		return 0, &layout.InvalidNodeError{Node: child}
	}
	kids := w.children[parent]
	if index < 0 || index >= len(kids) {
		return 0, &layout.ChildIndexError{Parent: parent, Index: index, ChildCount: len(kids)}
	}
	old := kids[index]
	delete(w.parents, old)
	kids[index] = child
	w.parents[child] = parent
	if err := w.MarkDirty(parent); err != nil {
		return 0, err
	}
	return old, nil
}

// SetStyle replaces a node's style and marks it dirty.
func (w *World) SetStyle(node layout.NodeID, style layout.Style) error {
	if !w.live(node) {
		return &layout.InvalidNodeError{Node: node}
	}
	s := style
	w.styles[node] = &s
	return w.MarkDirty(node)
}

// SetMeasure replaces a node's measure function (nil removes it) and
// marks the node dirty.
func (w *World) SetMeasure(node layout.NodeID, measure layout.MeasureFunc) error {
	if !w.live(node) {
		return &layout.InvalidNodeError{Node: node}
	}
	if measure == nil {
		delete(w.measures, node)
	} else {
		w.measures[node] = measure
	}
	return w.MarkDirty(node)
}

// Parent returns a node's parent and whether it has one.
func (w *World) Parent(node layout.NodeID) (layout.NodeID, bool) {
	parent, ok := w.parents[node]
	return parent, ok
}

// Dirty reports whether a node needs recomputation before its layout
// can be trusted.
func (w *World) Dirty(node layout.NodeID) (bool, error) {
	cache, ok := w.caches[node]
	if !ok {
		return false, &layout.InvalidNodeError{Node: node}
	}
	return cache.IsEmpty(), nil
}

// Compute runs a layout pass over the subtree rooted at root.
func (w *World) Compute(root layout.NodeID, available layout.Size[layout.AvailableSpace], opts ...layout.Option) error {
	if !w.live(root) {
		return &layout.InvalidNodeError{Node: root}
	}
	return layout.Compute(w, root, available, opts...)
}

// MarkDirty clears the sizing cache of a node and every ancestor,
// iteratively and unconditionally.
func (w *World) MarkDirty(node layout.NodeID) error {
	if !w.live(node) {
		return &layout.InvalidNodeError{Node: node}
	}
	for {
		w.caches[node].Clear()
		parent, ok := w.parents[node]
		if !ok {
			return nil
		}
		node = parent
	}
}

// Children implements [layout.Tree]. The returned slice is owned by the
// store; callers must not mutate it.
func (w *World) Children(node layout.NodeID) []layout.NodeID {
	return w.children[node]
}

// ChildCount implements [layout.Tree].
func (w *World) ChildCount(node layout.NodeID) int {
	return len(w.children[node])
}

// Child implements [layout.Tree].
func (w *World) Child(node layout.NodeID, index int) (layout.NodeID, error) {
	kids := w.children[node]
	if index < 0 || index >= len(kids) {
		return 0, &layout.ChildIndexError{Parent: node, Index: index, ChildCount: len(kids)}
	}
	return kids[index], nil
}

// IsChildless implements [layout.Tree].
func (w *World) IsChildless(node layout.NodeID) bool {
	return len(w.children[node]) == 0
}

// Style implements [layout.Tree].
func (w *World) Style(node layout.NodeID) *layout.Style {
	return w.styles[node]
}

// Layout implements [layout.Tree].
func (w *World) Layout(node layout.NodeID) layout.Layout {
	return w.layouts[node]
}

// SetLayout implements [layout.Tree].
func (w *World) SetLayout(node layout.NodeID, l layout.Layout) {
	w.layouts[node] = l
}

// NeedsMeasure implements [layout.Tree].
func (w *World) NeedsMeasure(node layout.NodeID) bool {
	return w.measures[node] != nil
}

// Measure implements [layout.Tree].
func (w *World) Measure(node layout.NodeID, known layout.Size[layout.Maybe], available layout.Size[layout.AvailableSpace]) layout.Size[float32] {
	return w.measures[node](known, available)
}

// Cache implements [layout.Tree].
func (w *World) Cache(node layout.NodeID) *layout.Cache {
	return w.caches[node]
}
