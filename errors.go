package layout

import "fmt"

// ChildIndexError reports a child lookup past the end of a node's child
// list.
type ChildIndexError struct {
	Parent     NodeID
	Index      int
	ChildCount int
}

func (e *ChildIndexError) Error() string {
	return fmt.Sprintf("child index %d out of bounds for node %d with %d children", e.Index, e.Parent, e.ChildCount)
}

// InvalidNodeError reports an operation on a node ID that does not
// identify a live node in the store (stale handle, removed node, or an ID
// from a different store).
type InvalidNodeError struct {
	Node NodeID
}

func (e *InvalidNodeError) Error() string {
	return fmt.Sprintf("node %d is not a live node in this tree", e.Node)
}

// NotChildError reports a child mutation naming a node that is not a
// child of the given parent.
type NotChildError struct {
	Parent NodeID
	Child  NodeID
}

func (e *NotChildError) Error() string {
	return fmt.Sprintf("node %d is not a child of node %d", e.Child, e.Parent)
}
