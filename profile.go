package geom

import (
	"math"
	"time"
)

// circleSegments is the tessellation density for full-circle profile
// outlines (round bar, round tube).
const circleSegments = 32

// ProfileKind names a parametric structural cross-section.
type ProfileKind string

const (
	ProfileIBeam     ProfileKind = "i-beam"
	ProfileChannel   ProfileKind = "channel"
	ProfileAngle     ProfileKind = "angle"
	ProfileTee       ProfileKind = "tee"
	ProfileRectTube  ProfileKind = "rect-tube"
	ProfileRoundTube ProfileKind = "round-tube"
	ProfilePlate     ProfileKind = "plate"
	ProfileRoundBar  ProfileKind = "round-bar"
)

// ProfileParams carries the section dimensions in drawing units. Each
// profile kind reads only the fields it needs: tubes and the angle use
// Thickness, round sections use Diameter, flanged sections use the web and
// flange thicknesses.
type ProfileParams struct {
	Height          float64
	Width           float64
	WebThickness    float64
	FlangeThickness float64
	Thickness       float64
	Diameter        float64
	FilletRadius    float64
}

// ArcSegmentInfo records that points [StartIndex..EndIndex] of an outline
// approximate a true arc, so a later explode-to-primitives step can recover
// exact arcs instead of treating fillets as polylines forever. Center,
// radius and angles are in the same space as the outline points.
type ArcSegmentInfo struct {
	StartIndex int
	EndIndex   int
	Center     Point
	Radius     float64
	StartAngle float64
	EndAngle   float64
}

// GeneratedGeometry is the output of a profile generator: one or more
// closed outlines (outer and inner for hollow sections), world-space
// bounds, and per-outline arc metadata for any fillets.
type GeneratedGeometry struct {
	Outlines    [][]Point
	Closed      []bool
	Bounds      Bounds
	GeneratedAt time.Time
	ArcSegments [][]ArcSegmentInfo
}

// outline accumulates one profile boundary in the local frame.
type outline struct {
	points []Point
	arcs   []ArcSegmentInfo
}

func (o *outline) vertex(p Point) {
	o.points = append(o.points, p)
}

// fillet replaces the sharp corner between the edges prev→corner and
// corner→next with a tangent arc of the given radius, tessellated at
// defaultArcSegments, and records its metadata. A non-positive radius
// keeps the sharp corner.
func (o *outline) fillet(prev, corner, next Point, radius float64) {
	if radius <= 0 {
		o.vertex(corner)
		return
	}
	v1 := prev.Sub(corner).Normalize()
	v2 := next.Sub(corner).Normalize()
	// Interior angle between the two edges at the corner.
	cosTheta := math.Max(-1, math.Min(1, v1.Dot(v2)))
	theta := math.Acos(cosTheta)
	halfSin := math.Sin(theta / 2)
	halfTan := math.Tan(theta / 2)
	if halfSin == 0 || halfTan == 0 {
		o.vertex(corner)
		return
	}

	tangentDist := radius / halfTan
	t1 := corner.Add(v1.Mul(tangentDist))
	t2 := corner.Add(v2.Mul(tangentDist))
	center := corner.Add(v1.Add(v2).Normalize().Mul(radius / halfSin))

	a1 := t1.Sub(center).Angle()
	delta := math.Remainder(t2.Sub(center).Angle()-a1, 2*math.Pi)

	start := len(o.points)
	for i := 0; i <= defaultArcSegments; i++ {
		angle := a1 + delta*float64(i)/float64(defaultArcSegments)
		o.vertex(center.Polar(radius, angle))
	}

	info := ArcSegmentInfo{
		StartIndex: start,
		EndIndex:   len(o.points) - 1,
		Center:     center,
		Radius:     radius,
	}
	// Canonical counter-clockwise angle order, whichever way the walk ran.
	if delta >= 0 {
		info.StartAngle = normalizeAngle(a1)
		info.EndAngle = normalizeAngle(a1 + delta)
	} else {
		info.StartAngle = normalizeAngle(a1 + delta)
		info.EndAngle = normalizeAngle(a1)
	}
	o.arcs = append(o.arcs, info)
}

// circleOutline tessellates a full circle, recording it as one arc segment
// spanning the whole outline.
func circleOutline(center Point, radius float64) outline {
	var o outline
	for i := 0; i < circleSegments; i++ {
		angle := 2 * math.Pi * float64(i) / circleSegments
		o.vertex(center.Polar(radius, angle))
	}
	o.arcs = append(o.arcs, ArcSegmentInfo{
		StartIndex: 0,
		EndIndex:   circleSegments - 1,
		Center:     center,
		Radius:     radius,
		StartAngle: 0,
		EndAngle:   2 * math.Pi,
	})
	return o
}

// rectOutline walks a centered rectangle counter-clockwise with optional
// corner fillets.
func rectOutline(width, height, filletRadius float64) outline {
	hw, hh := width/2, height/2
	corners := [4]Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	var o outline
	for i, c := range corners {
		prev := corners[(i+3)%4]
		next := corners[(i+1)%4]
		o.fillet(prev, c, next, filletRadius)
	}
	return o
}

// walkWithFillets walks a corner loop counter-clockwise, rounding exactly
// the corners whose indices appear in filleted.
func walkWithFillets(corners []Point, filleted map[int]bool, radius float64) outline {
	var o outline
	n := len(corners)
	for i, c := range corners {
		if filleted[i] {
			o.fillet(corners[(i+n-1)%n], c, corners[(i+1)%n], radius)
		} else {
			o.vertex(c)
		}
	}
	return o
}

type profileGenerator func(ProfileParams) []outline

// profileGenerators maps each profile kind to its local-frame generator.
var profileGenerators = map[ProfileKind]profileGenerator{
	ProfileIBeam:     generateIBeam,
	ProfileChannel:   generateChannel,
	ProfileAngle:     generateAngle,
	ProfileTee:       generateTee,
	ProfileRectTube:  generateRectTube,
	ProfileRoundTube: generateRoundTube,
	ProfilePlate:     generatePlate,
	ProfileRoundBar:  generateRoundBar,
}

func generateIBeam(p ProfileParams) []outline {
	hw, hh := p.Width/2, p.Height/2
	tw, tf := p.WebThickness/2, p.FlangeThickness

	corners := []Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: -hh + tf},
		{X: tw, Y: -hh + tf},
		{X: tw, Y: hh - tf},
		{X: hw, Y: hh - tf},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
		{X: -hw, Y: hh - tf},
		{X: -tw, Y: hh - tf},
		{X: -tw, Y: -hh + tf},
		{X: -hw, Y: -hh + tf},
	}
	// The four web/flange junctions get fillets.
	return []outline{walkWithFillets(corners, map[int]bool{3: true, 4: true, 9: true, 10: true}, p.FilletRadius)}
}

func generateChannel(p ProfileParams) []outline {
	hw, hh := p.Width/2, p.Height/2
	tw, tf := p.WebThickness, p.FlangeThickness

	corners := []Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: -hh + tf},
		{X: -hw + tw, Y: -hh + tf},
		{X: -hw + tw, Y: hh - tf},
		{X: hw, Y: hh - tf},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
	}
	return []outline{walkWithFillets(corners, map[int]bool{3: true, 4: true}, p.FilletRadius)}
}

func generateAngle(p ProfileParams) []outline {
	hw, hh := p.Width/2, p.Height/2
	t := p.Thickness

	corners := []Point{
		{X: -hw, Y: -hh},
		{X: hw, Y: -hh},
		{X: hw, Y: -hh + t},
		{X: -hw + t, Y: -hh + t},
		{X: -hw + t, Y: hh},
		{X: -hw, Y: hh},
	}
	return []outline{walkWithFillets(corners, map[int]bool{3: true}, p.FilletRadius)}
}

func generateTee(p ProfileParams) []outline {
	hw, hh := p.Width/2, p.Height/2
	tw, tf := p.WebThickness/2, p.FlangeThickness

	corners := []Point{
		{X: -tw, Y: -hh},
		{X: tw, Y: -hh},
		{X: tw, Y: hh - tf},
		{X: hw, Y: hh - tf},
		{X: hw, Y: hh},
		{X: -hw, Y: hh},
		{X: -hw, Y: hh - tf},
		{X: -tw, Y: hh - tf},
	}
	return []outline{walkWithFillets(corners, map[int]bool{2: true, 7: true}, p.FilletRadius)}
}

func generateRectTube(p ProfileParams) []outline {
	t := p.Thickness
	innerRadius := math.Max(p.FilletRadius-t, 0)
	return []outline{
		rectOutline(p.Width, p.Height, p.FilletRadius),
		rectOutline(p.Width-2*t, p.Height-2*t, innerRadius),
	}
}

func generateRoundTube(p ProfileParams) []outline {
	r := p.Diameter / 2
	return []outline{
		circleOutline(Point{}, r),
		circleOutline(Point{}, r-p.Thickness),
	}
}

func generatePlate(p ProfileParams) []outline {
	return []outline{rectOutline(p.Width, p.Height, p.FilletRadius)}
}

func generateRoundBar(p ProfileParams) []outline {
	return []outline{circleOutline(Point{}, p.Diameter/2)}
}

// GenerateProfile builds the outline geometry for a parametric structural
// cross-section. Outlines are generated in a local centered frame, then one
// shared transform — scale, then rotation, then translation to position —
// is applied to every point and to every recorded arc, so the returned
// ArcSegmentInfo values are valid in world space.
//
// An unrecognized kind returns an empty GeneratedGeometry (no outlines)
// rather than an error, so callers can render a placeholder instead of
// failing.
func GenerateProfile(kind ProfileKind, params ProfileParams, position Point, rotation, scale float64) GeneratedGeometry {
	gen, ok := profileGenerators[kind]
	if !ok {
		Logger().Debug("unknown profile kind", "kind", string(kind))
		return GeneratedGeometry{GeneratedAt: time.Now()}
	}

	outlines := gen(params)
	m := Translate(position.X, position.Y).Multiply(Rotate(rotation)).Multiply(Scale(scale, scale))

	g := GeneratedGeometry{
		Outlines:    make([][]Point, len(outlines)),
		Closed:      make([]bool, len(outlines)),
		ArcSegments: make([][]ArcSegmentInfo, len(outlines)),
		GeneratedAt: time.Now(),
	}

	var bounds Bounds
	first := true
	for i, o := range outlines {
		pts := make([]Point, len(o.points))
		for j, p := range o.points {
			pts[j] = m.TransformPoint(p)
			if first {
				bounds = Bounds{Min: pts[j], Max: pts[j]}
				first = false
			} else {
				bounds = bounds.ExpandToPoint(pts[j])
			}
		}
		g.Outlines[i] = pts
		g.Closed[i] = true

		if len(o.arcs) > 0 {
			arcs := make([]ArcSegmentInfo, len(o.arcs))
			for j, a := range o.arcs {
				// The placement transform has uniform scale, so the arc's
				// start direction maps through the same matrix as its
				// points. The sweep is carried over unchanged so a full
				// circle keeps its 2π span.
				dir := m.TransformVector(Pt(math.Cos(a.StartAngle), math.Sin(a.StartAngle)))
				start := normalizeAngle(dir.Angle())
				arcs[j] = ArcSegmentInfo{
					StartIndex: a.StartIndex,
					EndIndex:   a.EndIndex,
					Center:     m.TransformPoint(a.Center),
					Radius:     a.Radius * math.Abs(scale),
					StartAngle: start,
					EndAngle:   start + (a.EndAngle - a.StartAngle),
				}
			}
			g.ArcSegments[i] = arcs
		}
	}
	g.Bounds = bounds
	return g
}
