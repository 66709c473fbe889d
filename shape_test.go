package geom

import (
	"math"
	"testing"
)

func TestResolveSnap(t *testing.T) {
	line := LineShape(Pt(0, 0), Pt(10, 0))
	arc := ArcShape(Pt(0, 0), 5, 0, math.Pi)
	circle := CircleShape(Pt(3, 4), 2)

	tests := []struct {
		name   string
		shape  *Shape
		kind   SnapKind
		want   Point
		wantOK bool
	}{
		{"line start", &line, SnapStart, Pt(0, 0), true},
		{"line end", &line, SnapEnd, Pt(10, 0), true},
		{"line mid", &line, SnapMid, Pt(5, 0), true},
		{"line has no center", &line, SnapCenter, Point{}, false},
		{"arc start", &arc, SnapStart, Pt(5, 0), true},
		{"arc end", &arc, SnapEnd, Pt(-5, 0), true},
		{"arc mid", &arc, SnapMid, Pt(0, 5), true},
		{"arc center", &arc, SnapCenter, Pt(0, 0), true},
		{"circle center", &circle, SnapCenter, Pt(3, 4), true},
		{"circle has no start", &circle, SnapStart, Point{}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ResolveSnap(tt.shape, tt.kind)
			if ok != tt.wantOK {
				t.Fatalf("ok = %v, want %v", ok, tt.wantOK)
			}
			if ok && !approxPt(got, tt.want, 1e-9) {
				t.Errorf("point = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestSnapPoints(t *testing.T) {
	circle := CircleShape(Pt(0, 0), 5)
	pts := SnapPoints(&circle)
	if len(pts) != 5 {
		t.Fatalf("circle snap points = %d, want 5 (center + quadrants)", len(pts))
	}
	if !approxPt(pts[0], Pt(0, 0), 1e-9) {
		t.Errorf("first snap point = %v, want center", pts[0])
	}
	if !approxPt(pts[1], Pt(5, 0), 1e-9) || !approxPt(pts[3], Pt(-5, 0), 1e-9) {
		t.Errorf("quadrants = %v, %v", pts[1], pts[3])
	}

	line := LineShape(Pt(0, 0), Pt(4, 0))
	if got := SnapPoints(&line); len(got) != 3 {
		t.Errorf("line snap points = %d, want 3", len(got))
	}
}

func TestShapeBounds(t *testing.T) {
	tests := []struct {
		name  string
		shape Shape
		want  Bounds
	}{
		{"line", LineShape(Pt(1, 2), Pt(-3, 7)), Bounds{Min: Pt(-3, 2), Max: Pt(1, 7)}},
		{"circle", CircleShape(Pt(2, 2), 5), Bounds{Min: Pt(-3, -3), Max: Pt(7, 7)}},
		{
			"half arc includes quadrant",
			ArcShape(Pt(0, 0), 1, 0, math.Pi),
			Bounds{Min: Pt(-1, 0), Max: Pt(1, 1)},
		},
		{
			"rotated rectangle",
			RectangleShape(Pt(0, 0), 10, 6, math.Pi/2),
			Bounds{Min: Pt(-3, -5), Max: Pt(3, 5)},
		},
		{
			"rotated ellipse",
			EllipseShape(Pt(0, 0), 10, 5, math.Pi/2),
			Bounds{Min: Pt(-5, -10), Max: Pt(5, 10)},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, ok := ShapeBounds(&tt.shape)
			if !ok {
				t.Fatal("ok = false")
			}
			if !approxPt(got.Min, tt.want.Min, 1e-9) || !approxPt(got.Max, tt.want.Max, 1e-9) {
				t.Errorf("bounds = %+v, want %+v", got, tt.want)
			}
		})
	}

	t.Run("empty polyline", func(t *testing.T) {
		s := PolylineShape(nil, nil, false)
		if _, ok := ShapeBounds(&s); ok {
			t.Error("ok = true for empty polyline")
		}
	})

	t.Run("bulge widens polyline bounds", func(t *testing.T) {
		s := PolylineShape([]Point{Pt(0, 0), Pt(2, 0)}, []float64{1}, false)
		b, ok := ShapeBounds(&s)
		if !ok {
			t.Fatal("ok = false")
		}
		if b.Min.Y > -0.9 {
			t.Errorf("Min.Y = %v, want about -1 (semicircle below chord)", b.Min.Y)
		}
	})

	t.Run("text", func(t *testing.T) {
		s := TextShape(Text{Position: Pt(10, 10), Content: "Hi", Height: 12})
		b, ok := ShapeBounds(&s)
		if !ok {
			t.Fatal("ok = false")
		}
		if b.Width() <= 0 || b.Height() <= 0 {
			t.Errorf("degenerate text bounds %+v", b)
		}
		if !b.Contains(Pt(11, 12)) {
			t.Errorf("bounds %+v should contain a point just above the anchor", b)
		}
	})
}

func TestShapeKindString(t *testing.T) {
	kinds := []ShapeKind{
		KindLine, KindRectangle, KindCircle, KindArc, KindEllipse,
		KindPolyline, KindSpline, KindText, KindPoint, KindDimension, KindHatch,
	}
	seen := map[string]bool{}
	for _, k := range kinds {
		s := k.String()
		if s == "unknown" || seen[s] {
			t.Errorf("kind %d has bad or duplicate name %q", k, s)
		}
		seen[s] = true
	}
}
