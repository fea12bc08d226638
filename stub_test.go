package layout

// testTree is a minimal slice-backed Tree for exercising the algorithms
// without a storage back-end. IDs are indexes into the slices.
type testTree struct {
	styles       []Style
	layouts      []Layout
	caches       []Cache
	measures     []MeasureFunc
	children     [][]NodeID
	parents      []int // -1 for roots
	measureCalls []int
}

func newTestTree() *testTree {
	return &testTree{}
}

func (t *testTree) add(style Style, children ...NodeID) NodeID {
	id := NodeID(len(t.styles))
	t.styles = append(t.styles, style)
	t.layouts = append(t.layouts, Layout{})
	t.caches = append(t.caches, Cache{})
	t.measures = append(t.measures, nil)
	t.children = append(t.children, children)
	t.parents = append(t.parents, -1)
	t.measureCalls = append(t.measureCalls, 0)
	for _, child := range children {
		t.parents[child] = int(id)
	}
	return id
}

func (t *testTree) addMeasured(style Style, fn MeasureFunc) NodeID {
	id := t.add(style)
	t.measures[id] = fn
	return id
}

func (t *testTree) Children(node NodeID) []NodeID {
	return t.children[node]
}

func (t *testTree) ChildCount(node NodeID) int {
	return len(t.children[node])
}

func (t *testTree) Child(node NodeID, index int) (NodeID, error) {
	kids := t.children[node]
	if index < 0 || index >= len(kids) {
		return 0, &ChildIndexError{Parent: node, Index: index, ChildCount: len(kids)}
	}
	return kids[index], nil
}

func (t *testTree) IsChildless(node NodeID) bool {
	return len(t.children[node]) == 0
}

func (t *testTree) Style(node NodeID) *Style {
	return &t.styles[node]
}

func (t *testTree) Layout(node NodeID) Layout {
	return t.layouts[node]
}

func (t *testTree) SetLayout(node NodeID, layout Layout) {
	t.layouts[node] = layout
}

func (t *testTree) MarkDirty(node NodeID) error {
	for n := int(node); n >= 0; n = t.parents[n] {
		t.caches[n].Clear()
	}
	return nil
}

func (t *testTree) NeedsMeasure(node NodeID) bool {
	return t.measures[node] != nil
}

func (t *testTree) Measure(node NodeID, known Size[Maybe], available Size[AvailableSpace]) Size[float32] {
	t.measureCalls[node]++
	return t.measures[node](known, available)
}

func (t *testTree) Cache(node NodeID) *Cache {
	return &t.caches[node]
}

// sized is shorthand for a style with definite point dimensions.
func sized(w, h float32) Style {
	style := DefaultStyle()
	style.SizeConstraints = Size[Constraints]{
		Width:  Suggest(Points(w)),
		Height: Suggest(Points(h)),
	}
	return style
}
