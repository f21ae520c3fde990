package math

import (
	"testing"
)

func TestVec2Length(t *testing.T) {
	v := Vec2{3, 4}
	got := v.Length()
	want := float32(5)
	if got != want {
		t.Errorf("Vec2.Length() = %v, want %v", got, want)
	}
}

func TestVec3Cross(t *testing.T) {
	got := UnitX.Cross(UnitY)
	want := UnitZ
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Dot(t *testing.T) {
	got := Vec3{1, 2, 3}.Dot(Vec3{4, -5, 6})
	if got != 12 {
		t.Errorf("Vec3.Dot() = %v, want 12", got)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 12}.Normalize()
	if l := n.Length(); l < 0.9999 || l > 1.0001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
}

func TestVec3NormalizeDegenerate(t *testing.T) {
	tests := []Vec3{
		{},
		{1e-10, 0, 0},
		{0, -1e-9, 1e-9},
	}
	for _, v := range tests {
		if got := v.Normalize(); got != v {
			t.Errorf("Normalize(%v) = %v, want passthrough", v, got)
		}
	}
}

func TestVec3Reflect(t *testing.T) {
	// Light coming straight down onto a floor bounces straight up.
	got := Vec3{0, -1, 0}.Reflect(UnitY)
	if got != UnitY {
		t.Errorf("Reflect() = %v, want %v", got, UnitY)
	}
	got = Vec3{1, -1, 0}.Reflect(UnitY)
	if want := (Vec3{1, 1, 0}); got != want {
		t.Errorf("Reflect() = %v, want %v", got, want)
	}
}

func TestVec3Clamp(t *testing.T) {
	lo := Vec3{-1, -1, -1}
	hi := Vec3{1, 2, 3}
	got := Vec3{-5, 1.5, 9}.Clamp(lo, hi)
	if want := (Vec3{-1, 1.5, 3}); got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}
