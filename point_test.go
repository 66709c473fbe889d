package geom

import (
	"math"
	"testing"
)

func TestPointOps(t *testing.T) {
	tests := []struct {
		name string
		got  Point
		want Point
	}{
		{"add", Pt(1, 2).Add(Pt(3, 4)), Pt(4, 6)},
		{"sub", Pt(5, 7).Sub(Pt(2, 3)), Pt(3, 4)},
		{"mul", Pt(1.5, -2).Mul(2), Pt(3, -4)},
		{"normalize", Pt(3, 4).Normalize(), Pt(0.6, 0.8)},
		{"normalize zero", Pt(0, 0).Normalize(), Pt(0, 0)},
		{"perp", Pt(1, 0).Perp(), Pt(0, 1)},
		{"rotate quarter", Pt(1, 0).Rotate(math.Pi / 2), Pt(0, 1)},
		{"rotate around", Pt(2, 1).RotateAround(Pt(1, 1), math.Pi), Pt(0, 1)},
		{"lerp", Pt(0, 0).Lerp(Pt(10, 20), 0.25), Pt(2.5, 5)},
		{"midpoint", Pt(0, 0).Midpoint(Pt(4, 6)), Pt(2, 3)},
		{"polar", Pt(1, 1).Polar(2, math.Pi/2), Pt(1, 3)},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if !approxPt(tt.got, tt.want, 1e-12) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestPointScalars(t *testing.T) {
	if got := Pt(3, 4).Length(); !approxEq(got, 5, 1e-12) {
		t.Errorf("Length() = %v, want 5", got)
	}
	if got := Pt(1, 2).Dot(Pt(3, 4)); got != 11 {
		t.Errorf("Dot() = %v, want 11", got)
	}
	if got := Pt(1, 0).Cross(Pt(0, 1)); got != 1 {
		t.Errorf("Cross() = %v, want 1", got)
	}
	if got := Pt(0, 2).Angle(); !approxEq(got, math.Pi/2, 1e-12) {
		t.Errorf("Angle() = %v, want π/2", got)
	}
	if got := Pt(1, 1).Distance(Pt(4, 5)); !approxEq(got, 5, 1e-12) {
		t.Errorf("Distance() = %v, want 5", got)
	}
}
