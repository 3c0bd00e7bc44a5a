package main

import (
	"math"
	"testing"
)

func absDiff(a, b float64) float64 {
	if a > b {
		return a - b
	}
	return b - a
}

func TestRotateEulerIdentity(t *testing.T) {
	v := Vec3{1, 2, 3}
	got := rotateEuler(v, Vec3{0, 0, 0})
	if absDiff(got.X, v.X) > 1e-9 || absDiff(got.Y, v.Y) > 1e-9 || absDiff(got.Z, v.Z) > 1e-9 {
		t.Errorf("rotateEuler with zero angles changed %v to %v", v, got)
	}
}

func TestRotateAxisYQuarterTurn(t *testing.T) {
	v := Vec3{1, 0, 0}
	got := rotateAxisY(v, math.Pi/2)
	want := Vec3{0, 0, -1}
	if absDiff(got.X, want.X) > 1e-9 || absDiff(got.Y, want.Y) > 1e-9 || absDiff(got.Z, want.Z) > 1e-9 {
		t.Errorf("rotateAxisY(pi/2) on %v = %v, want %v", v, got, want)
	}
}

func TestNormalizeZeroLengthGuard(t *testing.T) {
	v := Vec3{0, 0, 0}.Normalize()
	if v.X != 0 || v.Y != 1 || v.Z != 0 {
		t.Errorf("Normalize of zero vector = %v, want (0,1,0)", v)
	}
}

func TestClampBounds(t *testing.T) {
	cases := []struct {
		value, min, max, want float64
	}{
		{-5, 0, 10, 0},
		{15, 0, 10, 10},
		{5, 0, 10, 5},
	}
	for _, c := range cases {
		if got := clamp(c.value, c.min, c.max); got != c.want {
			t.Errorf("clamp(%v,%v,%v) = %v, want %v", c.value, c.min, c.max, got, c.want)
		}
	}
}

func BenchmarkRotateEuler(b *testing.B) {
	v := Vec3{1, 2, 3}
	rot := Vec3{0.3, 0.4, 0.5}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		v = rotateEuler(v, rot)
	}
}
