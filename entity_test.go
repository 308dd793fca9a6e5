package quadspace

import "testing"

func TestEntity_Center(t *testing.T) {
	e := NewEntity(1, 10, 20, 4, 6, nil)
	if !e.Center().Equal(Vector{12, 23}) {
		t.Errorf("Expected center 12,23 got %v", e.Center())
	}
	e.SetPosition(0, 0)
	if !e.Center().Equal(Vector{2, 3}) {
		t.Errorf("Expected center 2,3 got %v", e.Center())
	}
}

func TestEntity_UpdateDirtyThreshold(t *testing.T) {
	e := NewEntity(1, 0, 0, 10, 10, nil)

	e.SetPosition(1.5, 0)
	if e.updateDirty(DefaultUpdateThreshold) {
		t.Error("Movement under the threshold should not be dirty")
	}
	e.SetPosition(2, 2)
	if e.updateDirty(DefaultUpdateThreshold) {
		t.Error("Movement equal to the threshold should not be dirty")
	}
	if !e.last.Equal(Vector{0, 0}) {
		t.Errorf("Snapshot should not move, got %v", e.last)
	}

	e.SetPosition(0, -2.5)
	if !e.updateDirty(DefaultUpdateThreshold) {
		t.Error("Movement over the threshold should be dirty")
	}
	if !e.last.Equal(Vector{0, -2.5}) {
		t.Errorf("Snapshot should follow, got %v", e.last)
	}
	if !e.Center().Equal(Vector{5, 2.5}) {
		t.Errorf("Center not refreshed, got %v", e.Center())
	}
}

func TestEntity_OverlapsInclusive(t *testing.T) {
	a := NewEntity(1, 0, 0, 10, 10, nil)

	tests := []struct {
		name string
		b    *Entity
		want bool
	}{
		{"overlapping", NewEntity(2, 5, 5, 10, 10, nil), true},
		{"touching", NewEntity(2, 10, 0, 10, 10, nil), true},
		{"touching below", NewEntity(2, 0, 10, 10, 10, nil), true},
		{"disjoint", NewEntity(2, 100, 100, 10, 10, nil), false},
		{"zero size inside", NewEntity(2, 5, 5, 0, 0, nil), true},
	}
	for _, tc := range tests {
		if got := a.Overlaps(tc.b); got != tc.want {
			t.Errorf("%s: Overlaps = %v, want %v", tc.name, got, tc.want)
		}
		if got := tc.b.Overlaps(a); got != tc.want {
			t.Errorf("%s: Overlaps not symmetric", tc.name)
		}
	}
}

func TestEntity_NeedsReinsertion(t *testing.T) {
	e := NewEntity(1, 0, 0, 10, 10, nil)
	if !e.needsReinsertion() {
		t.Error("Untracked entity needs reinsertion")
	}

	node := NewNode(NewBBForRect(0, 0, 50, 50), 4, 0, DefaultMaxDepth)
	node.Insert(e)
	if e.needsReinsertion() {
		t.Error("Entity inside its node should not need reinsertion")
	}

	e.SetPosition(60, 0)
	if !e.needsReinsertion() {
		t.Error("Entity outside its node needs reinsertion")
	}
}

func TestEntity_SetHandlerNil(t *testing.T) {
	e := NewEntity(1, 0, 0, 1, 1, nil)
	e.SetHandler(nil)
	// Must not panic.
	e.handler.CollisionEnter(e, DirectionUp, true)
	e.handler.CollisionStay(e, DirectionUp, true)
	e.handler.CollisionExit(e, true)
}
