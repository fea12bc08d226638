package layout

import "testing"

func TestCache_StoreAndGet(t *testing.T) {
	var c Cache
	known := Size[Maybe]{Width: Some(10)}
	avail := DefiniteSize(Size[float32]{Width: 100, Height: 50})
	size := Size[float32]{Width: 10, Height: 20}

	if !c.IsEmpty() {
		t.Fatal("zero-value cache should be empty")
	}
	if _, ok := c.Get(known, avail, PerformLayout, InherentSize); ok {
		t.Fatal("empty cache should miss")
	}

	c.Store(known, avail, PerformLayout, InherentSize, size)
	got, ok := c.Get(known, avail, PerformLayout, InherentSize)
	if !ok || got != size {
		t.Fatalf("Get after Store: got %v, %v", got, ok)
	}
	if c.IsEmpty() {
		t.Fatal("cache with a stored entry should not be empty")
	}

	// The full tuple participates in the key.
	if _, ok := c.Get(known, avail, ComputeSize, InherentSize); ok {
		t.Error("different run mode should miss")
	}
	if _, ok := c.Get(known, avail, PerformLayout, ContentSize); ok {
		t.Error("different sizing mode should miss")
	}
	if _, ok := c.Get(Size[Maybe]{}, avail, PerformLayout, InherentSize); ok {
		t.Error("different known size should miss")
	}
	if _, ok := c.Get(known, MaxContentSize(), PerformLayout, InherentSize); ok {
		t.Error("different available space should miss")
	}
}

func TestCache_ReplaceMatchingEntry(t *testing.T) {
	var c Cache
	known := Size[Maybe]{}
	avail := MaxContentSize()

	c.Store(known, avail, ComputeSize, InherentSize, Size[float32]{Width: 1, Height: 1})
	c.Store(known, avail, ComputeSize, InherentSize, Size[float32]{Width: 2, Height: 2})

	got, ok := c.Get(known, avail, ComputeSize, InherentSize)
	if !ok || got != (Size[float32]{Width: 2, Height: 2}) {
		t.Fatalf("got %v, %v; want the replacing entry", got, ok)
	}
}

func TestCache_OverflowOverwritesFirstSlot(t *testing.T) {
	var c Cache
	avail := MaxContentSize()

	for i := 0; i < cacheSlots; i++ {
		known := Size[Maybe]{Width: Some(float32(i))}
		c.Store(known, avail, ComputeSize, InherentSize, Size[float32]{Width: float32(i)})
	}
	// One more distinct tuple evicts the entry in slot 0.
	extra := Size[Maybe]{Width: Some(99)}
	c.Store(extra, avail, ComputeSize, InherentSize, Size[float32]{Width: 99})

	if _, ok := c.Get(Size[Maybe]{Width: Some(0)}, avail, ComputeSize, InherentSize); ok {
		t.Error("first entry should have been evicted")
	}
	if got, ok := c.Get(extra, avail, ComputeSize, InherentSize); !ok || got.Width != 99 {
		t.Errorf("evicting entry should be retrievable, got %v, %v", got, ok)
	}
	for i := 1; i < cacheSlots; i++ {
		known := Size[Maybe]{Width: Some(float32(i))}
		if _, ok := c.Get(known, avail, ComputeSize, InherentSize); !ok {
			t.Errorf("entry %d should survive the eviction", i)
		}
	}
}

func TestCache_Clear(t *testing.T) {
	var c Cache
	c.Store(Size[Maybe]{}, MaxContentSize(), PerformLayout, InherentSize, Size[float32]{Width: 5, Height: 5})
	c.Clear()
	if !c.IsEmpty() {
		t.Fatal("cache should be empty after Clear")
	}
	if _, ok := c.Get(Size[Maybe]{}, MaxContentSize(), PerformLayout, InherentSize); ok {
		t.Fatal("cleared cache should miss")
	}
}
