package geom

import (
	"math"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/google/go-cmp/cmp/cmpopts"
)

func TestLinearDimensionGeometry(t *testing.T) {
	style := DefaultDimensionStyle()
	g := LinearDimensionGeometry(Pt(0, 0), Pt(100, 0), 20, DirectionAuto, style)

	wantLine := [2]Point{Pt(0, 20), Pt(100, 20)}
	if diff := cmp.Diff(wantLine, g.Line, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("dimension line mismatch (-want +got):\n%s", diff)
	}
	if g.Measurement != 100 {
		t.Errorf("measurement = %v, want 100", g.Measurement)
	}

	if len(g.Extensions) != 2 {
		t.Fatalf("extensions = %d, want 2", len(g.Extensions))
	}
	wantExt := [][2]Point{
		{Pt(0, style.ExtensionGap), Pt(0, 20+style.ExtensionOvershoot)},
		{Pt(100, style.ExtensionGap), Pt(100, 20+style.ExtensionOvershoot)},
	}
	if diff := cmp.Diff(wantExt, g.Extensions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("extension lines mismatch (-want +got):\n%s", diff)
	}

	// Arrows point toward each other along the dimension line.
	if len(g.Arrows) != 2 {
		t.Fatalf("arrows = %d, want 2", len(g.Arrows))
	}
	if !approxEq(g.Arrows[0].Angle, 0, 1e-9) {
		t.Errorf("start arrow angle = %v, want 0", g.Arrows[0].Angle)
	}
	if !approxEq(g.Arrows[1].Angle, math.Pi, 1e-9) {
		t.Errorf("end arrow angle = %v, want π", g.Arrows[1].Angle)
	}
}

func TestLinearDimensionAxisClamp(t *testing.T) {
	style := DefaultDimensionStyle()

	tests := []struct {
		name   string
		p1, p2 Point
		dir    LinearDirection
		want   float64
	}{
		{"auto picks horizontal", Pt(0, 0), Pt(100, 30), DirectionAuto, 100},
		{"auto picks vertical", Pt(0, 0), Pt(30, 100), DirectionAuto, 100},
		{"forced horizontal", Pt(0, 0), Pt(30, 100), DirectionHorizontal, 30},
		{"forced vertical", Pt(0, 0), Pt(100, 30), DirectionVertical, 30},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			g := LinearDimensionGeometry(tt.p1, tt.p2, 10, tt.dir, style)
			if !approxEq(g.Measurement, tt.want, 1e-9) {
				t.Errorf("measurement = %v, want %v", g.Measurement, tt.want)
			}
		})
	}
}

func TestAlignedDimensionGeometry(t *testing.T) {
	style := DefaultDimensionStyle()
	g := AlignedDimensionGeometry(Pt(0, 0), Pt(10, 10), math.Sqrt2, style)

	if want := math.Sqrt(200); !approxEq(g.Measurement, want, 1e-9) {
		t.Errorf("measurement = %v, want %v", g.Measurement, want)
	}
	// Offset √2 along the left normal of the 45° chord shifts by (-1, 1).
	if !approxPt(g.Line[0], Pt(-1, 1), 1e-9) || !approxPt(g.Line[1], Pt(9, 11), 1e-9) {
		t.Errorf("line = %v", g.Line)
	}
	if !approxEq(g.TextRotation, math.Pi/4, 1e-9) {
		t.Errorf("text rotation = %v, want π/4", g.TextRotation)
	}
}

func TestAngularDimensionGeometry(t *testing.T) {
	style := DefaultDimensionStyle()
	g := AngularDimensionGeometry(Pt(0, 0), Pt(10, 0), Pt(0, 10), 5, style)

	if !g.HasArc {
		t.Fatal("HasArc = false")
	}
	if !approxEq(g.Measurement, math.Pi/2, 1e-9) {
		t.Errorf("measurement = %v, want π/2", g.Measurement)
	}
	if !approxEq(g.ArcRadius, 5, 1e-9) || !approxPt(g.ArcCenter, Pt(0, 0), 1e-9) {
		t.Errorf("arc = center %v radius %v", g.ArcCenter, g.ArcRadius)
	}
	if !approxEq(g.ArcStartAngle, 0, 1e-9) || !approxEq(g.ArcEndAngle, math.Pi/2, 1e-9) {
		t.Errorf("arc angles = [%v, %v]", g.ArcStartAngle, g.ArcEndAngle)
	}

	// Arrows are tangent to the arc, pointing into the sweep at the start
	// and against it at the end.
	if !approxEq(g.Arrows[0].Angle, math.Pi/2, 1e-9) {
		t.Errorf("start arrow angle = %v, want π/2", g.Arrows[0].Angle)
	}
	if !approxEq(g.Arrows[1].Angle, 0, 1e-9) {
		t.Errorf("end arrow angle = %v, want 0", g.Arrows[1].Angle)
	}

	// Legs reach past the arc: no witness lines needed.
	if len(g.Extensions) != 0 {
		t.Errorf("extensions = %d, want 0", len(g.Extensions))
	}
}

func TestAngularDimensionExtensions(t *testing.T) {
	style := DefaultDimensionStyle()
	g := AngularDimensionGeometry(Pt(0, 0), Pt(2, 0), Pt(0, 2), 10, style)

	if len(g.Extensions) != 2 {
		t.Fatalf("extensions = %d, want 2", len(g.Extensions))
	}
	want := [][2]Point{
		{Pt(2 + style.ExtensionGap, 0), Pt(10 + style.ExtensionOvershoot, 0)},
		{Pt(0, 2 + style.ExtensionGap), Pt(0, 10 + style.ExtensionOvershoot)},
	}
	if diff := cmp.Diff(want, g.Extensions, cmpopts.EquateApprox(0, 1e-9)); diff != "" {
		t.Errorf("extension lines mismatch (-want +got):\n%s", diff)
	}
}

func TestRadiusDimensionGeometry(t *testing.T) {
	style := DefaultDimensionStyle()
	g := RadiusDimensionGeometry(Pt(0, 0), Pt(3, 4), style)

	if !approxEq(g.Measurement, 5, 1e-9) {
		t.Errorf("measurement = %v, want 5", g.Measurement)
	}
	if !approxPt(g.Line[0], Pt(0, 0), 1e-9) || !approxPt(g.Line[1], Pt(3, 4), 1e-9) {
		t.Errorf("line = %v", g.Line)
	}
	if len(g.Arrows) != 1 {
		t.Fatalf("arrows = %d, want 1", len(g.Arrows))
	}
	if want := math.Atan2(4, 3); !approxEq(g.Arrows[0].Angle, want, 1e-9) {
		t.Errorf("arrow angle = %v, want %v", g.Arrows[0].Angle, want)
	}
	// Center mark is two cross segments.
	if len(g.Extensions) != 2 {
		t.Errorf("extensions (center mark) = %d, want 2", len(g.Extensions))
	}
}

func TestDiameterDimensionGeometry(t *testing.T) {
	style := DefaultDimensionStyle()
	g := DiameterDimensionGeometry(Pt(1, 1), Pt(4, 5), style)

	if !approxEq(g.Measurement, 10, 1e-9) {
		t.Errorf("measurement = %v, want 10", g.Measurement)
	}
	if !approxPt(g.Line[0], Pt(-2, -3), 1e-9) || !approxPt(g.Line[1], Pt(4, 5), 1e-9) {
		t.Errorf("line = %v", g.Line)
	}
	if len(g.Arrows) != 2 {
		t.Errorf("arrows = %d, want 2", len(g.Arrows))
	}
}

func TestArcLengthDimensionGeometry(t *testing.T) {
	style := DefaultDimensionStyle()
	g := ArcLengthDimensionGeometry(Pt(0, 0), Pt(10, 0), Pt(0, 10), 5, style)

	if !g.HasArc {
		t.Fatal("HasArc = false")
	}
	if want := 10 * math.Pi / 2; !approxEq(g.Measurement, want, 1e-9) {
		t.Errorf("measurement = %v, want %v", g.Measurement, want)
	}
	if !approxEq(g.ArcRadius, 15, 1e-9) {
		t.Errorf("arc radius = %v, want 15", g.ArcRadius)
	}
	if len(g.Extensions) != 2 {
		t.Errorf("extensions = %d, want 2", len(g.Extensions))
	}
}

func TestDimensionGeometryFor(t *testing.T) {
	style := DefaultDimensionStyle()

	tests := []struct {
		name   string
		dim    Dimension
		wantOK bool
	}{
		{"linear ok", Dimension{Type: DimLinear, Points: []Point{Pt(0, 0), Pt(5, 0)}, Offset: 2, Style: style}, true},
		{"aligned ok", Dimension{Type: DimAligned, Points: []Point{Pt(0, 0), Pt(5, 5)}, Offset: 2, Style: style}, true},
		{"angular ok", Dimension{Type: DimAngular, Points: []Point{Pt(0, 0), Pt(5, 0), Pt(0, 5)}, Offset: 3, Style: style}, true},
		{"angular short", Dimension{Type: DimAngular, Points: []Point{Pt(0, 0), Pt(5, 0)}, Offset: 3, Style: style}, false},
		{"radius short", Dimension{Type: DimRadius, Points: []Point{Pt(0, 0)}, Style: style}, false},
		{"arc-length ok", Dimension{Type: DimArcLength, Points: []Point{Pt(0, 0), Pt(5, 0), Pt(0, 5)}, Offset: 2, Style: style}, true},
		{"empty", Dimension{Type: DimDiameter, Style: style}, false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, ok := DimensionGeometryFor(&tt.dim)
			if ok != tt.wantOK {
				t.Errorf("ok = %v, want %v", ok, tt.wantOK)
			}
		})
	}
}

func TestSplitDimensionLine(t *testing.T) {
	style := DefaultDimensionStyle()
	g := LinearDimensionGeometry(Pt(0, 0), Pt(100, 0), 20, DirectionAuto, style)

	segs, ok := SplitDimensionLine(g, 30, 4)
	if !ok {
		t.Fatal("ok = false")
	}
	if !approxPt(segs[0][0], Pt(0, 20), 1e-9) || !approxPt(segs[0][1], Pt(31, 20), 1e-9) {
		t.Errorf("first segment = %v", segs[0])
	}
	if !approxPt(segs[1][0], Pt(69, 20), 1e-9) || !approxPt(segs[1][1], Pt(100, 20), 1e-9) {
		t.Errorf("second segment = %v", segs[1])
	}

	if _, ok := SplitDimensionLine(g, 95, 4); ok {
		t.Error("ok = true for text wider than the line")
	}
}

func TestReadableAngle(t *testing.T) {
	tests := []struct {
		in, want float64
	}{
		{0, 0},
		{math.Pi / 4, math.Pi / 4},
		{math.Pi, 0},
		{3 * math.Pi / 4, -math.Pi / 4},
		{-3 * math.Pi / 4, math.Pi / 4},
	}
	for _, tt := range tests {
		if got := readableAngle(tt.in); !approxEq(got, tt.want, 1e-9) {
			t.Errorf("readableAngle(%v) = %v, want %v", tt.in, got, tt.want)
		}
	}
}
