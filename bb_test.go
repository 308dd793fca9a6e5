package quadspace

import "testing"

func TestBB_IntersectsInclusive(t *testing.T) {
	a := NewBBForRect(0, 0, 10, 10)

	tests := []struct {
		name string
		b    BB
		want bool
	}{
		{"overlap", NewBBForRect(5, 5, 10, 10), true},
		{"touching right edge", NewBBForRect(10, 0, 10, 10), true},
		{"touching corner", NewBBForRect(10, 10, 5, 5), true},
		{"disjoint", NewBBForRect(10.5, 0, 10, 10), false},
		{"above", NewBBForRect(0, -20, 10, 10), false},
		{"contained", NewBBForRect(2, 2, 1, 1), true},
	}
	for _, tc := range tests {
		if got := a.Intersects(tc.b); got != tc.want {
			t.Errorf("%s: Intersects = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Intersects(a); got != tc.want {
			t.Errorf("%s: Intersects not symmetric", tc.name)
		}
	}
}

func TestBB_ContainsVect(t *testing.T) {
	bb := NewBBForRect(0, 0, 10, 10)
	if !bb.ContainsVect(Vector{0, 0}) || !bb.ContainsVect(Vector{10, 10}) {
		t.Error("Edges should be contained")
	}
	if bb.ContainsVect(Vector{10.01, 5}) {
		t.Error("Point right of the box should not be contained")
	}
}

func TestBB_Quadrant(t *testing.T) {
	bb := NewBBForRect(0, 0, 100, 50)
	want := []BB{
		{0, 0, 50, 25},
		{50, 0, 100, 25},
		{0, 25, 50, 50},
		{50, 25, 100, 50},
	}
	for i, w := range want {
		if got := bb.Quadrant(i); got != w {
			t.Errorf("Quadrant(%d) = %v, want %v", i, got, w)
		}
	}
}

func TestBB_ExpandMerge(t *testing.T) {
	bb := NewBBForRect(10, 10, 10, 10).Expand(Vector{1, 2})
	if bb != (BB{9, 8, 21, 22}) {
		t.Errorf("Unexpected expand %v", bb)
	}
	m := NewBBForRect(0, 0, 1, 1).Merge(NewBBForRect(5, 5, 1, 1))
	if m != (BB{0, 0, 6, 6}) {
		t.Errorf("Unexpected merge %v", m)
	}
	if !m.Contains(NewBBForRect(1, 1, 2, 2)) {
		t.Error("Merged box should contain inner box")
	}
}
