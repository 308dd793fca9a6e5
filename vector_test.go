package quadspace

import (
	"testing"
)

func TestVector_Lerp(t *testing.T) {
	v := Vector{0, 0}.Lerp(Vector{10, 20}, 0.5)
	if !v.Equal(Vector{5, 10}) {
		t.Errorf("Expected 5,10 got %v", v)
	}
}

func TestVector_AbsMax(t *testing.T) {
	v := Vector{-3, 2}.Abs()
	if v.X != 3 || v.Y != 2 {
		t.Errorf("Expected 3,2 got %v", v)
	}
	m := Vector{1, 5}.Max(Vector{4, 2})
	if !m.Equal(Vector{4, 5}) {
		t.Errorf("Expected 4,5 got %v", m)
	}
}

func TestClamp(t *testing.T) {
	if Clamp(12, 0, 10) != 10 || Clamp(-1, 0, 10) != 0 || Clamp(5, 0, 10) != 5 {
		t.Error("Clamp out of range")
	}
}
