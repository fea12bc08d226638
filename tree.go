package layout

// NodeID identifies a node inside a tree store. The encoding is owned by
// the store; the engine treats it as opaque.
type NodeID uint64

// MeasureFunc computes the intrinsic content size of a leaf given the
// dimensions already determined by ancestors and the space on offer.
// Implementations must be pure: deterministic in their arguments and free
// of side effects, or cached results become stale without notice.
type MeasureFunc func(known Size[Maybe], available Size[AvailableSpace]) Size[float32]

// Layout is the computed output for one node: its border-box size and its
// offset from the parent's content-box origin. It is stored in the tree
// and overwritten in place on each pass.
type Layout struct {
	// Order is the node's position among its siblings, for stable
	// paint ordering.
	Order uint32
	// Size is the computed border-box size.
	Size Size[float32]
	// Location is the offset from the parent's content-box origin.
	Location Point[float32]
}

// Rect returns the node's border box in its parent's coordinate space,
// for hit testing and painting.
func (l Layout) Rect() Rect[float32] {
	return Rect[float32]{Origin: l.Location, Size: l.Size}
}

// Tree is the contract the sizing engine requires from whatever owns node
// storage. Arena-, slotmap-, and component-based stores are all valid
// implementations; the engine is written entirely against this interface.
//
// Precondition: the structure must be a tree — every node has at most one
// parent and no path leads back to itself. The engine and the stores'
// dirty walks assume acyclicity.
//
// Accessor methods take node IDs previously returned by the same store
// and do not re-validate them; passing a stale or foreign ID is a
// programmer error.
type Tree interface {
	// Children returns the node's children in order.
	Children(node NodeID) []NodeID

	// ChildCount returns the number of children.
	ChildCount(node NodeID) int

	// Child returns the child at the given index, or a *ChildIndexError
	// when the index is out of range.
	Child(node NodeID, index int) (NodeID, error)

	// IsChildless reports whether the node is a leaf.
	IsChildless(node NodeID) bool

	// Style returns the node's style. Read-only during a layout pass.
	Style(node NodeID) *Style

	// Layout returns the node's last computed layout.
	Layout(node NodeID) Layout

	// SetLayout stores a computed layout for the node.
	SetLayout(node NodeID, layout Layout)

	// MarkDirty clears the node's cache and the cache of every ancestor
	// up to the root.
	MarkDirty(node NodeID) error

	// NeedsMeasure reports whether the node has a measure function and
	// should be sized by it.
	NeedsMeasure(node NodeID) bool

	// Measure invokes the node's measure function. Only called when
	// NeedsMeasure reports true.
	Measure(node NodeID, known Size[Maybe], available Size[AvailableSpace]) Size[float32]

	// Cache returns the node's sizing cache for both lookup and store.
	Cache(node NodeID) *Cache
}
