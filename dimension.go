package geom

import (
	"image/color"
	"math"
)

// DimensionType selects the measurement semantics of a dimension.
type DimensionType int

const (
	DimLinear DimensionType = iota
	DimAligned
	DimAngular
	DimRadius
	DimDiameter
	DimArcLength
)

// String returns the dimension type name used in logs.
func (t DimensionType) String() string {
	switch t {
	case DimLinear:
		return "linear"
	case DimAligned:
		return "aligned"
	case DimAngular:
		return "angular"
	case DimRadius:
		return "radius"
	case DimDiameter:
		return "diameter"
	case DimArcLength:
		return "arc-length"
	default:
		return "unknown"
	}
}

// minPoints returns the minimum number of reference points the type needs.
func (t DimensionType) minPoints() int {
	switch t {
	case DimAngular, DimArcLength:
		return 3
	default:
		return 2
	}
}

// LinearDirection clamps a linear dimension to a cardinal axis.
type LinearDirection int

const (
	// DirectionAuto measures along whichever axis has the larger span.
	DirectionAuto LinearDirection = iota
	DirectionHorizontal
	DirectionVertical
)

// ArrowKind selects the terminator drawn at dimension line ends.
type ArrowKind int

const (
	ArrowFilled ArrowKind = iota
	ArrowOpen
	ArrowTick
	ArrowDot
)

// TextPlacement positions the dimension text relative to the dimension line.
type TextPlacement int

const (
	// TextAbove anchors the text alongside the line on its readable side.
	TextAbove TextPlacement = iota
	// TextCentered anchors the text on the line; the caller breaks the
	// line around the measured text width, see SplitDimensionLine.
	TextCentered
	// TextBelow anchors the text alongside the line opposite TextAbove.
	TextBelow
)

// DimensionStyle carries the visual parameters of a dimension. The
// calculator reads only the layout fields; colors pass through untouched to
// the renderer, with the zero value meaning the drawing's current color.
type DimensionStyle struct {
	ArrowKind          ArrowKind
	ArrowSize          float64
	ExtensionGap       float64
	ExtensionOvershoot float64
	TextHeight         float64
	TextGapPadding     float64
	TextPlacement      TextPlacement
	LineColor          color.RGBA
	TextColor          color.RGBA
	Precision          int
}

// DefaultDimensionStyle returns the style new dimensions start with.
func DefaultDimensionStyle() DimensionStyle {
	return DimensionStyle{
		ArrowKind:          ArrowFilled,
		ArrowSize:          8,
		ExtensionGap:       3,
		ExtensionOvershoot: 5,
		TextHeight:         12,
		TextGapPadding:     4,
		TextPlacement:      TextAbove,
		Precision:          2,
	}
}

// DimensionRef anchors a dimension point to a feature of another shape so
// the calling layer can re-measure the dimension when that shape changes.
// The kernel stores the reference; resolution happens via ResolveSnap in
// the layer that owns the drawing.
type DimensionRef struct {
	ShapeID string
	Snap    SnapKind
}

// Dimension is a measurement annotation. The meaning of Points depends on
// Type: two measured points for linear/aligned, center then point on the
// circle for radius/diameter, vertex then one point per leg for angular,
// center then arc start and end for arc-length.
type Dimension struct {
	Type            DimensionType
	Points          []Point
	Offset          float64
	Direction       LinearDirection
	References      []DimensionRef
	Value           string
	ValueOverridden bool
	Style           DimensionStyle
}

// ArrowGeometry places one dimension arrow: Tip is the point of the arrow,
// Angle the direction it points.
type ArrowGeometry struct {
	Tip   Point
	Angle float64
}

// DimensionGeometry is the computed layout of a dimension annotation. It is
// produced per call and never persisted; the renderer consumes it directly.
type DimensionGeometry struct {
	// Line is the dimension line (for angular and arc-length dimensions,
	// the chord between the measurement arc's endpoints).
	Line [2]Point

	// Extensions are the witness lines, plus center mark segments for
	// radius and diameter dimensions.
	Extensions [][2]Point

	Arrows []ArrowGeometry

	TextPosition Point
	TextRotation float64

	// Measurement is the raw measured value: a distance, or an angle in
	// radians for angular dimensions. Formatting, prefixes ("R", "⌀")
	// and overrides are caller concerns.
	Measurement float64

	// Measurement arc, set for angular and arc-length dimensions.
	ArcCenter     Point
	ArcRadius     float64
	ArcStartAngle float64
	ArcEndAngle   float64
	HasArc        bool
}

// readableAngle flips an angle by π when necessary so text rendered at the
// returned rotation is never upside down.
func readableAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a > math.Pi {
		a -= 2 * math.Pi
	} else if a <= -math.Pi {
		a += 2 * math.Pi
	}
	if a > math.Pi/2 {
		return a - math.Pi
	}
	if a <= -math.Pi/2 {
		return a + math.Pi
	}
	return a
}

// textOffsetFor returns how far the text anchor sits from the dimension
// line along its readable normal.
func textOffsetFor(style DimensionStyle) float64 {
	switch style.TextPlacement {
	case TextCentered:
		return 0
	case TextBelow:
		return -(style.TextHeight/2 + style.TextGapPadding)
	default:
		return style.TextHeight/2 + style.TextGapPadding
	}
}

// chordDimension fills the parts of a DimensionGeometry every straight
// dimension line shares: the line itself, inward-pointing arrows at both
// ends, and the text anchor at the middle.
func chordDimension(start, end Point, measurement float64, style DimensionStyle) DimensionGeometry {
	dir := end.Sub(start).Normalize()
	angle := dir.Angle()
	rot := readableAngle(angle)

	mid := start.Midpoint(end)
	normal := Pt(math.Cos(rot+math.Pi/2), math.Sin(rot+math.Pi/2))

	return DimensionGeometry{
		Line: [2]Point{start, end},
		Arrows: []ArrowGeometry{
			{Tip: start, Angle: angle},
			{Tip: end, Angle: angle + math.Pi},
		},
		TextPosition: mid.Add(normal.Mul(textOffsetFor(style))),
		TextRotation: rot,
		Measurement:  measurement,
	}
}

// extensionLine builds one witness line from a measured point toward a
// target on the dimension line: it starts ExtensionGap past the point and
// ends ExtensionOvershoot past the target.
func extensionLine(from, target Point, style DimensionStyle) ([2]Point, bool) {
	dir := target.Sub(from)
	dist := dir.Length()
	if dist == 0 {
		return [2]Point{}, false
	}
	u := dir.Mul(1 / dist)
	return [2]Point{
		from.Add(u.Mul(style.ExtensionGap)),
		target.Add(u.Mul(style.ExtensionOvershoot)),
	}, true
}

// LinearDimensionGeometry lays out a dimension measuring the horizontal or
// vertical span between p1 and p2. Offset is the signed distance from p1 to
// the dimension line, perpendicular to the measured axis. DirectionAuto
// picks the axis with the larger span.
func LinearDimensionGeometry(p1, p2 Point, offset float64, dir LinearDirection, style DimensionStyle) DimensionGeometry {
	if dir == DirectionAuto {
		if math.Abs(p2.X-p1.X) > math.Abs(p2.Y-p1.Y) {
			dir = DirectionHorizontal
		} else {
			dir = DirectionVertical
		}
	}

	var start, end Point
	var measurement float64
	if dir == DirectionHorizontal {
		y := p1.Y + offset
		start = Pt(p1.X, y)
		end = Pt(p2.X, y)
		measurement = math.Abs(p2.X - p1.X)
	} else {
		x := p1.X + offset
		start = Pt(x, p1.Y)
		end = Pt(x, p2.Y)
		measurement = math.Abs(p2.Y - p1.Y)
	}

	g := chordDimension(start, end, measurement, style)
	if ext, ok := extensionLine(p1, start, style); ok {
		g.Extensions = append(g.Extensions, ext)
	}
	if ext, ok := extensionLine(p2, end, style); ok {
		g.Extensions = append(g.Extensions, ext)
	}
	return g
}

// AlignedDimensionGeometry lays out a dimension measuring the true distance
// between p1 and p2. Offset is the signed perpendicular distance from the
// chord to the dimension line (positive to the left of p1→p2).
func AlignedDimensionGeometry(p1, p2 Point, offset float64, style DimensionStyle) DimensionGeometry {
	normal := p2.Sub(p1).Normalize().Perp()
	start := p1.Add(normal.Mul(offset))
	end := p2.Add(normal.Mul(offset))

	g := chordDimension(start, end, p1.Distance(p2), style)
	if ext, ok := extensionLine(p1, start, style); ok {
		g.Extensions = append(g.Extensions, ext)
	}
	if ext, ok := extensionLine(p2, end, style); ok {
		g.Extensions = append(g.Extensions, ext)
	}
	return g
}

// AngularDimensionGeometry lays out a dimension measuring the
// counter-clockwise angle at vertex from the ray through leg1 to the ray
// through leg2. The radius parameter (the dimension's offset) is the radius
// of the measurement arc. Witness lines run outward along each leg when the
// arc lies beyond the leg point; arrows are tangent to the arc at its ends.
func AngularDimensionGeometry(vertex, leg1, leg2 Point, radius float64, style DimensionStyle) DimensionGeometry {
	a1 := normalizeAngle(leg1.Sub(vertex).Angle())
	a2 := normalizeAngle(leg2.Sub(vertex).Angle())
	sweep := normalizeAngle(a2 - a1)
	r := math.Abs(radius)

	arcStart := vertex.Polar(r, a1)
	arcEnd := vertex.Polar(r, a2)

	midAngle := a1 + sweep/2
	rot := readableAngle(midAngle + math.Pi/2)

	g := DimensionGeometry{
		Line: [2]Point{arcStart, arcEnd},
		Arrows: []ArrowGeometry{
			{Tip: arcStart, Angle: a1 + math.Pi/2},
			{Tip: arcEnd, Angle: a2 - math.Pi/2},
		},
		TextPosition:  vertex.Polar(r+textOffsetFor(style), midAngle),
		TextRotation:  rot,
		Measurement:   sweep,
		ArcCenter:     vertex,
		ArcRadius:     r,
		ArcStartAngle: a1,
		ArcEndAngle:   a2,
		HasArc:        true,
	}

	for _, leg := range []struct {
		point Point
		angle float64
	}{{leg1, a1}, {leg2, a2}} {
		d := leg.point.Distance(vertex)
		if r > d+style.ExtensionGap {
			g.Extensions = append(g.Extensions, [2]Point{
				vertex.Polar(d+style.ExtensionGap, leg.angle),
				vertex.Polar(r+style.ExtensionOvershoot, leg.angle),
			})
		}
	}
	return g
}

// centerMark returns the two small cross segments marking a circle center.
func centerMark(center Point, size float64) [][2]Point {
	half := size / 2
	return [][2]Point{
		{Pt(center.X-half, center.Y), Pt(center.X+half, center.Y)},
		{Pt(center.X, center.Y-half), Pt(center.X, center.Y+half)},
	}
}

// RadiusDimensionGeometry lays out a radius dimension: a leader from the
// circle center to the point on the circumference, with the arrow at the
// circumference end pointing outward and a center mark at the center.
func RadiusDimensionGeometry(center, onCircle Point, style DimensionStyle) DimensionGeometry {
	r := center.Distance(onCircle)
	dir := onCircle.Sub(center).Normalize()
	if r == 0 {
		dir = Pt(1, 0)
	}
	angle := dir.Angle()
	rot := readableAngle(angle)
	normal := Pt(math.Cos(rot+math.Pi/2), math.Sin(rot+math.Pi/2))

	return DimensionGeometry{
		Line:         [2]Point{center, onCircle},
		Extensions:   centerMark(center, style.ArrowSize),
		Arrows:       []ArrowGeometry{{Tip: onCircle, Angle: angle}},
		TextPosition: center.Midpoint(onCircle).Add(normal.Mul(textOffsetFor(style))),
		TextRotation: rot,
		Measurement:  r,
	}
}

// DiameterDimensionGeometry lays out a diameter dimension: the line through
// the center from the given circumference point to its mirror on the
// opposite side, arrows at both ends pointing outward, and a center mark.
func DiameterDimensionGeometry(center, onCircle Point, style DimensionStyle) DimensionGeometry {
	r := center.Distance(onCircle)
	opposite := center.Mul(2).Sub(onCircle)
	dir := onCircle.Sub(center).Normalize()
	if r == 0 {
		dir = Pt(1, 0)
	}
	angle := dir.Angle()
	rot := readableAngle(angle)
	normal := Pt(math.Cos(rot+math.Pi/2), math.Sin(rot+math.Pi/2))

	return DimensionGeometry{
		Line:       [2]Point{opposite, onCircle},
		Extensions: centerMark(center, style.ArrowSize),
		Arrows: []ArrowGeometry{
			{Tip: onCircle, Angle: angle},
			{Tip: opposite, Angle: angle + math.Pi},
		},
		TextPosition: center.Add(normal.Mul(textOffsetFor(style))),
		TextRotation: rot,
		Measurement:  2 * r,
	}
}

// ArcLengthDimensionGeometry lays out a dimension measuring the length of
// the counter-clockwise arc from start to end around center. Offset is the
// signed radial distance from the measured arc to the measurement arc.
// Witness lines run radially from each endpoint.
func ArcLengthDimensionGeometry(center, start, end Point, offset float64, style DimensionStyle) DimensionGeometry {
	r := center.Distance(start)
	a1 := normalizeAngle(start.Sub(center).Angle())
	a2 := normalizeAngle(end.Sub(center).Angle())
	sweep := normalizeAngle(a2 - a1)

	dimR := r + offset
	if dimR < 0 {
		dimR = 0
	}
	outward := 1.0
	if offset < 0 {
		outward = -1
	}

	midAngle := a1 + sweep/2
	g := DimensionGeometry{
		Line: [2]Point{center.Polar(dimR, a1), center.Polar(dimR, a2)},
		Arrows: []ArrowGeometry{
			{Tip: center.Polar(dimR, a1), Angle: a1 + math.Pi/2},
			{Tip: center.Polar(dimR, a2), Angle: a2 - math.Pi/2},
		},
		TextPosition:  center.Polar(dimR+textOffsetFor(style), midAngle),
		TextRotation:  readableAngle(midAngle + math.Pi/2),
		Measurement:   r * sweep,
		ArcCenter:     center,
		ArcRadius:     dimR,
		ArcStartAngle: a1,
		ArcEndAngle:   a2,
		HasArc:        true,
	}

	for _, endpoint := range []float64{a1, a2} {
		g.Extensions = append(g.Extensions, [2]Point{
			center.Polar(r+style.ExtensionGap*outward, endpoint),
			center.Polar(dimR+style.ExtensionOvershoot*outward, endpoint),
		})
	}
	return g
}

// DimensionGeometryFor computes the layout of a dimension annotation,
// dispatching on its type. ok is false when the dimension carries fewer
// points than its type requires.
func DimensionGeometryFor(d *Dimension) (DimensionGeometry, bool) {
	if len(d.Points) < d.Type.minPoints() {
		Logger().Debug("dimension has too few points", "type", d.Type, "points", len(d.Points))
		return DimensionGeometry{}, false
	}

	switch d.Type {
	case DimLinear:
		return LinearDimensionGeometry(d.Points[0], d.Points[1], d.Offset, d.Direction, d.Style), true
	case DimAligned:
		return AlignedDimensionGeometry(d.Points[0], d.Points[1], d.Offset, d.Style), true
	case DimAngular:
		return AngularDimensionGeometry(d.Points[0], d.Points[1], d.Points[2], d.Offset, d.Style), true
	case DimRadius:
		return RadiusDimensionGeometry(d.Points[0], d.Points[1], d.Style), true
	case DimDiameter:
		return DiameterDimensionGeometry(d.Points[0], d.Points[1], d.Style), true
	case DimArcLength:
		return ArcLengthDimensionGeometry(d.Points[0], d.Points[1], d.Points[2], d.Offset, d.Style), true
	default:
		return DimensionGeometry{}, false
	}
}

// SplitDimensionLine splits a dimension line into two segments separated by
// a gap wide enough for centered text: textWidth plus padding on each side.
// The caller measures the text; the kernel only knows positions. ok is
// false when the line is too short to leave both segments visible.
func SplitDimensionLine(g DimensionGeometry, textWidth, padding float64) ([2][2]Point, bool) {
	dir := g.Line[1].Sub(g.Line[0])
	length := dir.Length()
	gap := textWidth + 2*padding
	if length <= gap || length == 0 {
		return [2][2]Point{}, false
	}
	u := dir.Mul(1 / length)
	half := (length - gap) / 2
	return [2][2]Point{
		{g.Line[0], g.Line[0].Add(u.Mul(half))},
		{g.Line[1].Sub(u.Mul(half)), g.Line[1]},
	}, true
}
