package layout

// RunMode distinguishes a full layout computation from a size-only probe.
type RunMode uint8

const (
	// PerformLayout computes and stores layout for the whole subtree.
	PerformLayout RunMode = iota
	// ComputeSize only computes the node's size; descendant layouts are
	// not written.
	ComputeSize
)

// SizingMode controls how a sizing call interprets known dimensions.
type SizingMode uint8

const (
	// ContentSize treats known dimensions as the definitive content
	// size, ignoring the node's own style constraints.
	ContentSize SizingMode = iota
	// InherentSize resolves the node's style constraints against
	// available space, with known dimensions overriding the suggestion.
	InherentSize
)

// cacheSlots is the number of cached sizing results a node retains: one
// per distinct query shape a node is realistically asked during a single
// pass (each axis known or not, times sizing probes, plus the final
// layout run).
const cacheSlots = 7

type cacheEntry struct {
	known      Size[Maybe]
	available  Size[AvailableSpace]
	runMode    RunMode
	sizingMode SizingMode
	size       Size[float32]
}

// Cache memoizes a node's sizing results keyed by the full input tuple.
// A node is considered dirty exactly when every slot is empty; marking a
// node dirty clears all slots at once. The zero value is an empty cache.
type Cache struct {
	entries [cacheSlots]cacheEntry
	filled  [cacheSlots]bool
}

// Get returns the cached size for the exact input tuple, if present.
func (c *Cache) Get(known Size[Maybe], available Size[AvailableSpace], runMode RunMode, sizingMode SizingMode) (Size[float32], bool) {
	for i := range c.entries {
		if !c.filled[i] {
			continue
		}
		e := &c.entries[i]
		if e.known == known && e.available == available && e.runMode == runMode && e.sizingMode == sizingMode {
			return e.size, true
		}
	}
	return Size[float32]{}, false
}

// Store records a sizing result. A slot holding the same input tuple is
// replaced; otherwise the first free slot is used; with all slots full the
// first slot is overwritten.
func (c *Cache) Store(known Size[Maybe], available Size[AvailableSpace], runMode RunMode, sizingMode SizingMode, size Size[float32]) {
	entry := cacheEntry{known: known, available: available, runMode: runMode, sizingMode: sizingMode, size: size}

	for i := range c.entries {
		if !c.filled[i] {
			continue
		}
		e := &c.entries[i]
		if e.known == known && e.available == available && e.runMode == runMode && e.sizingMode == sizingMode {
			c.entries[i] = entry
			return
		}
	}
	for i := range c.filled {
		if !c.filled[i] {
			c.entries[i] = entry
			c.filled[i] = true
			return
		}
	}
	c.entries[0] = entry
}

// Clear empties every slot, marking the node dirty.
func (c *Cache) Clear() {
	*c = Cache{}
}

// IsEmpty reports whether no slot is filled. An empty cache is the
// external definition of a dirty node.
func (c *Cache) IsEmpty() bool {
	for _, f := range c.filled {
		if f {
			return false
		}
	}
	return true
}
