package math

import (
	"testing"
)

func TestVec3Cross(t *testing.T) {
	got := Vec3{1, 0, 0}.Cross(Vec3{0, 1, 0})
	want := Vec3{0, 0, 1}
	if got != want {
		t.Errorf("Vec3.Cross() = %v, want %v", got, want)
	}
}

func TestVec3Normalize(t *testing.T) {
	n := Vec3{3, 4, 0}.Normalize()
	l := n.Length()
	if l < 0.999 || l > 1.001 {
		t.Errorf("Vec3.Normalize().Length() = %v, want ~1", l)
	}
	if (Vec3{}).Normalize() != (Vec3{}) {
		t.Error("zero vector should normalize to zero")
	}
}

func TestVec3Reflect(t *testing.T) {
	tests := []struct {
		v, n, want Vec3
	}{
		{Vec3{1, 0, -1}, Vec3{0, 0, 1}, Vec3{1, 0, 1}},
		{Vec3{-6, 0, -6}, Vec3{1, 0, 0}, Vec3{6, 0, -6}},
		{Vec3{0, 2, 0}, Vec3{1, 0, 0}, Vec3{0, 2, 0}},
	}
	for _, tt := range tests {
		if got := tt.v.Reflect(tt.n); got != tt.want {
			t.Errorf("%v.Reflect(%v) = %v, want %v", tt.v, tt.n, got, tt.want)
		}
	}
}

func TestVec3Clamp(t *testing.T) {
	got := Vec3{-5, 0.5, 9}.Clamp(Vec3{-1, -1, -1}, Vec3{1, 1, 1})
	want := Vec3{-1, 0.5, 1}
	if got != want {
		t.Errorf("Clamp() = %v, want %v", got, want)
	}
}

func TestVec3Lerp(t *testing.T) {
	got := Vec3{0, 0, 0}.Lerp(Vec3{2, 4, 8}, 0.5)
	if got != (Vec3{1, 2, 4}) {
		t.Errorf("Lerp() = %v, want (1, 2, 4)", got)
	}
}
