package layout

import "testing"

func TestDimension_Resolve(t *testing.T) {
	tests := []struct {
		name      string
		dim       Dimension
		reference Maybe
		expected  Maybe
	}{
		{name: "points ignore reference", dim: Points(40), reference: None(), expected: Some(40)},
		{name: "points with reference", dim: Points(40), reference: Some(100), expected: Some(40)},
		{name: "percent of definite", dim: Percent(0.5), reference: Some(200), expected: Some(100)},
		{name: "percent of indefinite", dim: Percent(0.5), reference: None(), expected: None()},
		{name: "auto never resolves", dim: Auto(), reference: Some(100), expected: None()},
		{name: "undefined never resolves", dim: Undefined(), reference: Some(100), expected: None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.dim.Resolve(tt.reference); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestDimension_ResolveOrZero(t *testing.T) {
	if got := Percent(0.25).ResolveOrZero(None()); got != 0 {
		t.Errorf("indefinite percent should resolve to zero, got %v", got)
	}
	if got := Percent(0.25).ResolveOrZero(Some(80)); got != 20 {
		t.Errorf("got %v, want 20", got)
	}
}

func TestEdges_ResolvePerAxis(t *testing.T) {
	// Left/Right percentages follow the horizontal reference, Top/Bottom
	// the vertical one.
	e := EdgeAll(Percent(0.1))
	got := e.Resolve(Some(100), Some(50))
	want := Insets{Left: 10, Right: 10, Top: 5, Bottom: 5}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}

	// Only the horizontal reference defined: vertical sides fall to zero.
	got = e.Resolve(Some(100), None())
	want = Insets{Left: 10, Right: 10}
	if got != want {
		t.Errorf("got %+v, want %+v", got, want)
	}
}

func TestEdges_Constructors(t *testing.T) {
	sym := EdgeSymmetric(Points(1), Points(2))
	if sym.Top != Points(1) || sym.Bottom != Points(1) || sym.Left != Points(2) || sym.Right != Points(2) {
		t.Errorf("EdgeSymmetric: %+v", sym)
	}

	trbl := EdgeTRBL(Points(1), Points(2), Points(3), Points(4))
	if trbl.Top != Points(1) || trbl.Right != Points(2) || trbl.Bottom != Points(3) || trbl.Left != Points(4) {
		t.Errorf("EdgeTRBL: %+v", trbl)
	}
}

func TestInsets_Sums(t *testing.T) {
	i := Insets{Left: 1, Right: 2, Top: 3, Bottom: 4}
	if got := i.Horizontal(); got != Width(3) {
		t.Errorf("Horizontal = %v, want 3", got)
	}
	if got := i.Vertical(); got != Height(7) {
		t.Errorf("Vertical = %v, want 7", got)
	}
	if got := i.Sum(Horizontal); got != 3 {
		t.Errorf("Sum(Horizontal) = %v, want 3", got)
	}
	if got := i.Sum(Vertical); got != 7 {
		t.Errorf("Sum(Vertical) = %v, want 7", got)
	}
}
