package geom

import "testing"

func TestBoundsOf(t *testing.T) {
	b := BoundsOf([]Point{Pt(3, -1), Pt(-2, 4), Pt(1, 1)})
	want := Bounds{Min: Pt(-2, -1), Max: Pt(3, 4)}
	if b != want {
		t.Errorf("BoundsOf() = %+v, want %+v", b, want)
	}
	if BoundsOf(nil) != (Bounds{}) {
		t.Error("BoundsOf(nil) should be zero bounds")
	}
}

func TestBoundsOps(t *testing.T) {
	b := Bounds{Min: Pt(0, 0), Max: Pt(10, 4)}

	if got := b.Width(); got != 10 {
		t.Errorf("Width() = %v, want 10", got)
	}
	if got := b.Height(); got != 4 {
		t.Errorf("Height() = %v, want 4", got)
	}
	if got := b.Center(); got != Pt(5, 2) {
		t.Errorf("Center() = %v, want (5,2)", got)
	}

	for _, p := range []Point{Pt(0, 0), Pt(10, 4), Pt(5, 2)} {
		if !b.Contains(p) {
			t.Errorf("Contains(%v) = false, want true", p)
		}
	}
	if b.Contains(Pt(10.001, 2)) {
		t.Error("Contains just outside = true, want false")
	}

	u := b.Union(Bounds{Min: Pt(-1, 1), Max: Pt(3, 8)})
	if want := (Bounds{Min: Pt(-1, 0), Max: Pt(10, 8)}); u != want {
		t.Errorf("Union() = %+v, want %+v", u, want)
	}

	e := b.Expand(2)
	if want := (Bounds{Min: Pt(-2, -2), Max: Pt(12, 6)}); e != want {
		t.Errorf("Expand(2) = %+v, want %+v", e, want)
	}
}
