package geom

import "math"

// arcAngularSlack widens the angular range test at arc boundaries so
// endpoint clicks register. Tuned to the interactive feel; in radians.
const arcAngularSlack = 0.1

// DistanceToSegment returns the distance from p to the segment ab. The
// perpendicular projection is clamped to the segment; a zero-length
// segment degenerates to a point distance test.
func DistanceToSegment(p, a, b Point) float64 {
	ab := b.Sub(a)
	lenSq := ab.LengthSquared()
	if lenSq == 0 {
		return p.Distance(a)
	}
	t := p.Sub(a).Dot(ab) / lenSq
	t = math.Max(0, math.Min(1, t))
	return p.Distance(a.Add(ab.Mul(t)))
}

// IsPointNearShape reports whether p lies within tolerance of the shape's
// drawn geometry. Every shape kind has its own strategy; unfilled interiors
// (rectangle, circle, hatch) are not hits.
func IsPointNearShape(p Point, s *Shape, tolerance float64) bool {
	switch s.Kind {
	case KindLine:
		return DistanceToSegment(p, s.Line.Start, s.Line.End) <= tolerance
	case KindRectangle:
		return isPointNearRectangle(p, s.Rect, tolerance)
	case KindCircle:
		c := s.Circle
		return math.Abs(p.Distance(c.Center)-c.Radius) <= tolerance
	case KindArc:
		return isPointNearArc(p, s.Arc, tolerance)
	case KindEllipse:
		return isPointNearEllipse(p, s.Ellipse, tolerance)
	case KindPolyline:
		return isPointNearPolyline(p, s.Polyline, tolerance)
	case KindSpline:
		return isPointNearPath(p, s.Spline.Points, s.Spline.Closed, tolerance)
	case KindText:
		return isPointNearText(p, s.Text, tolerance)
	case KindPoint:
		return p.Distance(s.Marker.Position) <= tolerance+s.Marker.Size/2
	case KindDimension:
		return isPointNearDimension(p, s.Dimension, tolerance)
	case KindHatch:
		return isPointNearPath(p, s.Hatch.Boundary, true, tolerance)
	default:
		return false
	}
}

// isPointNearRectangle tests the four edges in the rectangle's unrotated
// local frame. A click inside an unfilled rectangle is not a hit.
func isPointNearRectangle(p Point, r *Rectangle, tolerance float64) bool {
	local := p.RotateAround(r.Center, -r.Rotation)
	hw, hh := r.Width/2, r.Height/2
	corners := [4]Point{
		{X: r.Center.X - hw, Y: r.Center.Y - hh},
		{X: r.Center.X + hw, Y: r.Center.Y - hh},
		{X: r.Center.X + hw, Y: r.Center.Y + hh},
		{X: r.Center.X - hw, Y: r.Center.Y + hh},
	}
	for i := range corners {
		if DistanceToSegment(local, corners[i], corners[(i+1)%4]) <= tolerance {
			return true
		}
	}
	return false
}

// angleOnArc reports whether the query angle falls on the arc's sweep,
// widened by a small fixed slack at both boundaries. StartAngle > EndAngle
// means the arc crosses the 0 angle. When the widened sweep wraps all the
// way around, shifting the endpoints would swap their order and invert the
// test, so every angle is accepted instead.
func angleOnArc(angle, start, end float64) bool {
	if normalizeAngle(end-start)+2*arcAngularSlack >= 2*math.Pi {
		return true
	}
	return angleInSweep(angle, start-arcAngularSlack, end+arcAngularSlack)
}

func isPointNearArc(p Point, a *Arc, tolerance float64) bool {
	if math.Abs(p.Distance(a.Center)-a.Radius) > tolerance {
		return false
	}
	return angleOnArc(p.Sub(a.Center).Angle(), a.StartAngle, a.EndAngle)
}

// isPointNearEllipse evaluates the implicit form in the ellipse's local
// frame and scales the tolerance by the mean radius. An approximation of
// the true geometric distance, acceptable for interactive tolerances.
func isPointNearEllipse(p Point, e *Ellipse, tolerance float64) bool {
	if e.RadiusX == 0 || e.RadiusY == 0 {
		return false
	}
	local := p.Sub(e.Center).Rotate(-e.Rotation)
	v := (local.X/e.RadiusX)*(local.X/e.RadiusX) + (local.Y/e.RadiusY)*(local.Y/e.RadiusY)
	meanRadius := (math.Abs(e.RadiusX) + math.Abs(e.RadiusY)) / 2
	return math.Abs(math.Sqrt(v)-1) <= tolerance/meanRadius
}

// isPointNearPath tests consecutive segments of a point sequence, plus the
// closing segment when closed.
func isPointNearPath(p Point, points []Point, closed bool, tolerance float64) bool {
	n := len(points)
	switch n {
	case 0:
		return false
	case 1:
		return p.Distance(points[0]) <= tolerance
	}
	for i := 0; i < n-1; i++ {
		if DistanceToSegment(p, points[i], points[i+1]) <= tolerance {
			return true
		}
	}
	if closed && DistanceToSegment(p, points[n-1], points[0]) <= tolerance {
		return true
	}
	return false
}

// isPointNearPolyline treats bulge edges as straight chords for this pass;
// callers wanting exact arc proximity pre-tessellate via
// TessellatePolyline.
func isPointNearPolyline(p Point, pl *Polyline, tolerance float64) bool {
	return isPointNearPath(p, pl.Points, pl.Closed, tolerance)
}

// isPointNearText tests against the glyph-measured bounding box, alignment
// and rotation applied, expanded by the tolerance.
func isPointNearText(p Point, t *Text, tolerance float64) bool {
	box := textLocalBounds(t).Expand(tolerance)
	local := p.Sub(t.Position).Rotate(-t.Rotation)
	return box.Contains(local)
}

// isPointNearDimension regenerates the annotation layout and tests the
// dimension line (or measurement arc), each witness line, and the text
// anchor with a generous radius keyed to the text height.
func isPointNearDimension(p Point, d *Dimension, tolerance float64) bool {
	g, ok := DimensionGeometryFor(d)
	if !ok {
		return false
	}

	if g.HasArc {
		arc := Arc{Center: g.ArcCenter, Radius: g.ArcRadius, StartAngle: g.ArcStartAngle, EndAngle: g.ArcEndAngle}
		if isPointNearArc(p, &arc, tolerance) {
			return true
		}
	} else if DistanceToSegment(p, g.Line[0], g.Line[1]) <= tolerance {
		return true
	}

	for _, ext := range g.Extensions {
		if DistanceToSegment(p, ext[0], ext[1]) <= tolerance {
			return true
		}
	}

	textRadius := math.Max(tolerance, d.Style.TextHeight)
	return p.Distance(g.TextPosition) <= textRadius
}
