package layout

import "testing"

func TestMaybe_MinMax(t *testing.T) {
	tests := []struct {
		name string
		lhs  Maybe
		rhs  Maybe
		min  Maybe
		max  Maybe
	}{
		{name: "both definite", lhs: Some(3), rhs: Some(5), min: Some(3), max: Some(5)},
		{name: "both definite reversed", lhs: Some(5), rhs: Some(3), min: Some(3), max: Some(5)},
		{name: "equal", lhs: Some(3), rhs: Some(3), min: Some(3), max: Some(3)},
		{name: "indefinite rhs keeps lhs", lhs: Some(3), rhs: None(), min: Some(3), max: Some(3)},
		{name: "indefinite lhs stays indefinite", lhs: None(), rhs: Some(3), min: None(), max: None()},
		{name: "both indefinite", lhs: None(), rhs: None(), min: None(), max: None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lhs.Min(tt.rhs); got != tt.min {
				t.Errorf("Min: got %v, want %v", got, tt.min)
			}
			if got := tt.lhs.Max(tt.rhs); got != tt.max {
				t.Errorf("Max: got %v, want %v", got, tt.max)
			}
		})
	}
}

func TestMaybe_AddSub(t *testing.T) {
	tests := []struct {
		name string
		lhs  Maybe
		rhs  Maybe
		add  Maybe
		sub  Maybe
	}{
		{name: "both definite", lhs: Some(10), rhs: Some(4), add: Some(14), sub: Some(6)},
		{name: "indefinite rhs is a no-op", lhs: Some(10), rhs: None(), add: Some(10), sub: Some(10)},
		{name: "indefinite lhs stays indefinite", lhs: None(), rhs: Some(4), add: None(), sub: None()},
		{name: "both indefinite", lhs: None(), rhs: None(), add: None(), sub: None()},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.lhs.Add(tt.rhs); got != tt.add {
				t.Errorf("Add: got %v, want %v", got, tt.add)
			}
			if got := tt.lhs.Sub(tt.rhs); got != tt.sub {
				t.Errorf("Sub: got %v, want %v", got, tt.sub)
			}
		})
	}
}

func TestMaybeClamp_MinimumDominates(t *testing.T) {
	tests := []struct {
		name     string
		v        float32
		min      Maybe
		max      Maybe
		expected float32
	}{
		{name: "inside bounds", v: 5, min: Some(0), max: Some(10), expected: 5},
		{name: "below minimum", v: -5, min: Some(0), max: Some(10), expected: 0},
		{name: "above maximum", v: 15, min: Some(0), max: Some(10), expected: 10},
		{name: "min above max wins", v: 5, min: Some(20), max: Some(10), expected: 20},
		{name: "no minimum", v: 15, min: None(), max: Some(10), expected: 10},
		{name: "no maximum", v: -5, min: Some(0), max: None(), expected: 0},
		{name: "unbounded", v: 42, min: None(), max: None(), expected: 42},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := MaybeClamp(tt.v, tt.min, tt.max); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestMaybe_FloatLHS(t *testing.T) {
	if got := MaybeMin(3, Some(5)); got != 3 {
		t.Errorf("MaybeMin(3, Some(5)) = %v, want 3", got)
	}
	if got := MaybeMin(3, None()); got != 3 {
		t.Errorf("MaybeMin(3, None()) = %v, want 3", got)
	}
	if got := MaybeMax(3, Some(5)); got != 5 {
		t.Errorf("MaybeMax(3, Some(5)) = %v, want 5", got)
	}
	if got := MaybeMax(3, None()); got != 3 {
		t.Errorf("MaybeMax(3, None()) = %v, want 3", got)
	}
	if got := MaybeAdd(10, Some(4)); got != 14 {
		t.Errorf("MaybeAdd(10, Some(4)) = %v, want 14", got)
	}
	if got := MaybeSub(10, None()); got != 10 {
		t.Errorf("MaybeSub(10, None()) = %v, want 10", got)
	}
}

func TestMaybe_OrAndOrElse(t *testing.T) {
	if got := Some(7).Or(3); got != 7 {
		t.Errorf("Some(7).Or(3) = %v, want 7", got)
	}
	if got := None().Or(3); got != 3 {
		t.Errorf("None().Or(3) = %v, want 3", got)
	}
	if got := None().OrElse(Some(9)); got != Some(9) {
		t.Errorf("None().OrElse(Some(9)) = %v, want Some(9)", got)
	}
	if got := Some(7).OrElse(Some(9)); got != Some(7) {
		t.Errorf("Some(7).OrElse(Some(9)) = %v, want Some(7)", got)
	}
}

func TestAvailableSpace_Arithmetic(t *testing.T) {
	tests := []struct {
		name     string
		op       func(AvailableSpace) AvailableSpace
		space    AvailableSpace
		expected AvailableSpace
	}{
		{
			name:     "definite min",
			op:       func(a AvailableSpace) AvailableSpace { return a.Min(Some(5)) },
			space:    Definite(10),
			expected: Definite(5),
		},
		{
			name:     "min against definite collapses max-content",
			op:       func(a AvailableSpace) AvailableSpace { return a.Min(Some(5)) },
			space:    MaxContent(),
			expected: Definite(5),
		},
		{
			name:     "min against definite collapses min-content",
			op:       func(a AvailableSpace) AvailableSpace { return a.Min(Some(5)) },
			space:    MinContent(),
			expected: Definite(5),
		},
		{
			name:     "min against indefinite absorbs",
			op:       func(a AvailableSpace) AvailableSpace { return a.Min(None()) },
			space:    MaxContent(),
			expected: MaxContent(),
		},
		{
			name:     "max absorbs on intrinsic",
			op:       func(a AvailableSpace) AvailableSpace { return a.Max(Some(5)) },
			space:    MinContent(),
			expected: MinContent(),
		},
		{
			name:     "definite max",
			op:       func(a AvailableSpace) AvailableSpace { return a.Max(Some(15)) },
			space:    Definite(10),
			expected: Definite(15),
		},
		{
			name:     "definite sub",
			op:       func(a AvailableSpace) AvailableSpace { return a.Sub(Some(4)) },
			space:    Definite(10),
			expected: Definite(6),
		},
		{
			name:     "sub absorbs on intrinsic",
			op:       func(a AvailableSpace) AvailableSpace { return a.Sub(Some(4)) },
			space:    MaxContent(),
			expected: MaxContent(),
		},
		{
			name:     "definite add",
			op:       func(a AvailableSpace) AvailableSpace { return a.Add(Some(4)) },
			space:    Definite(10),
			expected: Definite(14),
		},
		{
			name:     "clamp absorbs on intrinsic",
			op:       func(a AvailableSpace) AvailableSpace { return a.Clamp(Some(0), Some(5)) },
			space:    MinContent(),
			expected: MinContent(),
		},
		{
			name:     "definite clamp is minimum-dominant",
			op:       func(a AvailableSpace) AvailableSpace { return a.Clamp(Some(20), Some(10)) },
			space:    Definite(5),
			expected: Definite(20),
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.op(tt.space); got != tt.expected {
				t.Errorf("got %v, want %v", got, tt.expected)
			}
		})
	}
}

func TestAvailableSpace_ToMaybe(t *testing.T) {
	if got := Definite(12).ToMaybe(); got != Some(12) {
		t.Errorf("Definite(12).ToMaybe() = %v, want Some(12)", got)
	}
	if got := MinContent().ToMaybe(); got != None() {
		t.Errorf("MinContent().ToMaybe() = %v, want None", got)
	}
	if got := MaxContent().ToMaybe(); got != None() {
		t.Errorf("MaxContent().ToMaybe() = %v, want None", got)
	}
}

func TestAvailableSpace_OrDefinite(t *testing.T) {
	if got := MaxContent().OrDefinite(Some(30)); got != Definite(30) {
		t.Errorf("MaxContent().OrDefinite(Some(30)) = %v, want Definite(30)", got)
	}
	if got := Definite(10).OrDefinite(Some(30)); got != Definite(30) {
		t.Errorf("Definite(10).OrDefinite(Some(30)) = %v, want Definite(30)", got)
	}
	if got := MinContent().OrDefinite(None()); got != MinContent() {
		t.Errorf("MinContent().OrDefinite(None()) = %v, want MinContent", got)
	}
}

func TestSizeLifts(t *testing.T) {
	a := Size[Maybe]{Width: Some(10), Height: None()}
	b := Size[Maybe]{Width: Some(4), Height: Some(4)}

	if got := SizeSub(a, b); got != (Size[Maybe]{Width: Some(6), Height: None()}) {
		t.Errorf("SizeSub = %v", got)
	}
	if got := SizeAdd(a, b); got != (Size[Maybe]{Width: Some(14), Height: None()}) {
		t.Errorf("SizeAdd = %v", got)
	}
	if got := SizeMin(a, b); got != (Size[Maybe]{Width: Some(4), Height: None()}) {
		t.Errorf("SizeMin = %v", got)
	}
	if got := SizeMax(a, b); got != (Size[Maybe]{Width: Some(10), Height: None()}) {
		t.Errorf("SizeMax = %v", got)
	}
	if got := SizeOrElse(a, b); got != (Size[Maybe]{Width: Some(10), Height: Some(4)}) {
		t.Errorf("SizeOrElse = %v", got)
	}
	if got := SizeOr(a, Size[float32]{Width: 1, Height: 2}); got != (Size[float32]{Width: 10, Height: 2}) {
		t.Errorf("SizeOr = %v", got)
	}
}
