package geom

import "math"

// collinearEpsilon is the determinant magnitude below which three points
// are treated as collinear. Tuned in drawing units; changing it changes
// the interactive feel of arc tools near-degenerate input.
const collinearEpsilon = 1e-4

// defaultArcSegments is the tessellation density for bulge edges and
// profile fillets.
const defaultArcSegments = 6

// normalizeAngle maps an angle to [0, 2π). For tiny negative inputs the
// 2π correction rounds to exactly 2π, so the result is clamped back to 0
// to keep the half-open contract.
func normalizeAngle(a float64) float64 {
	a = math.Mod(a, 2*math.Pi)
	if a < 0 {
		a += 2 * math.Pi
	}
	if a >= 2*math.Pi {
		a = 0
	}
	return a
}

// angleInSweep reports whether angle lies on the counter-clockwise sweep
// from start to end (all normalized to [0, 2π), wrapping through 0 when
// start > end).
func angleInSweep(angle, start, end float64) bool {
	angle = normalizeAngle(angle)
	start = normalizeAngle(start)
	end = normalizeAngle(end)
	if start <= end {
		return angle >= start && angle <= end
	}
	return angle >= start || angle <= end
}

// CircleFrom3Points fits a circle through three points using the algebraic
// circumcenter formula. ok is false when the points are collinear, detected
// by a determinant magnitude below a fixed epsilon rather than exact zero.
func CircleFrom3Points(p1, p2, p3 Point) (Circle, bool) {
	d := 2 * (p1.X*(p2.Y-p3.Y) + p2.X*(p3.Y-p1.Y) + p3.X*(p1.Y-p2.Y))
	if math.Abs(d) < collinearEpsilon {
		Logger().Debug("collinear circle fit rejected", "p1", p1, "p2", p2, "p3", p3)
		return Circle{}, false
	}

	s1 := p1.LengthSquared()
	s2 := p2.LengthSquared()
	s3 := p3.LengthSquared()
	center := Point{
		X: (s1*(p2.Y-p3.Y) + s2*(p3.Y-p1.Y) + s3*(p1.Y-p2.Y)) / d,
		Y: (s1*(p3.X-p2.X) + s2*(p1.X-p3.X) + s3*(p2.X-p1.X)) / d,
	}
	return Circle{Center: center, Radius: center.Distance(p1)}, true
}

// ArcFrom3Points fits a circular arc through start, mid and end, with mid
// lying on the arc between the endpoints. ok is false when the points are
// collinear.
//
// The sweep direction is chosen by normalizing all three point angles to
// [0, 2π) and picking the orientation whose counter-clockwise traversal
// from the start passes through mid before the end. The comparison is
// deliberately strict, with no epsilon at the boundary where mid sits
// diametrally opposite the chord midpoint.
func ArcFrom3Points(start, mid, end Point) (Arc, bool) {
	c, ok := CircleFrom3Points(start, mid, end)
	if !ok {
		return Arc{}, false
	}

	aStart := normalizeAngle(start.Sub(c.Center).Angle())
	aMid := normalizeAngle(mid.Sub(c.Center).Angle())
	aEnd := normalizeAngle(end.Sub(c.Center).Angle())

	midCCW := normalizeAngle(aMid - aStart)
	endCCW := normalizeAngle(aEnd - aStart)
	if midCCW < endCCW {
		return Arc{Center: c.Center, Radius: c.Radius, StartAngle: aStart, EndAngle: aEnd}, true
	}
	return Arc{Center: c.Center, Radius: c.Radius, StartAngle: aEnd, EndAngle: aStart}, true
}

// BulgeFrom3Points computes the bulge of the arc from a to b passing
// through the given point. Bulge is tan(includedAngle/4); the sign is
// positive when the arc turns counter-clockwise from a to b. A through
// point on (or nearly on) the chord yields bulge 0, meaning a straight
// edge.
func BulgeFrom3Points(a, through, b Point) float64 {
	chordVec := b.Sub(a)
	chord := chordVec.Length()
	if chord == 0 {
		return 0
	}
	// Signed perpendicular distance of the through point from the chord.
	// cross > 0 puts the point left of a→b, which is a clockwise bow.
	cross := chordVec.Cross(through.Sub(a))
	h := math.Abs(cross) / chord
	if h < collinearEpsilon {
		return 0
	}
	bulge := 2 * h / chord
	if cross > 0 {
		bulge = -bulge
	}
	return bulge
}

// ArcFromBulge reconstructs the arc between a and b described by a bulge
// value, using the sagitta relation radius = h/2 + chord²/(8h). The
// returned arc is normalized counter-clockwise: for a negative bulge the
// traversal from a to b is clockwise, so the arc's StartAngle is b's angle.
// ok is false for a zero bulge or coincident endpoints.
func ArcFromBulge(a, b Point, bulge float64) (Arc, bool) {
	chordVec := b.Sub(a)
	chord := chordVec.Length()
	if bulge == 0 || chord == 0 {
		return Arc{}, false
	}

	// Signed sagitta and signed radius; both negative for clockwise arcs.
	h := bulge * chord / 2
	r := h/2 + chord*chord/(8*h)

	mid := a.Midpoint(b)
	normal := chordVec.Normalize().Perp()
	center := mid.Add(normal.Mul(r - h))

	aAngle := normalizeAngle(a.Sub(center).Angle())
	bAngle := normalizeAngle(b.Sub(center).Angle())
	arc := Arc{Center: center, Radius: math.Abs(r)}
	if bulge > 0 {
		arc.StartAngle, arc.EndAngle = aAngle, bAngle
	} else {
		arc.StartAngle, arc.EndAngle = bAngle, aAngle
	}
	return arc, true
}

// ArcPoints tessellates an arc into segments+1 points, uniformly spaced in
// angle, endpoints included. A non-positive segment count yields just the
// endpoints.
func ArcPoints(a Arc, segments int) []Point {
	if segments < 1 {
		segments = 1
	}
	sweep := a.Sweep()
	pts := make([]Point, 0, segments+1)
	for i := 0; i <= segments; i++ {
		angle := a.StartAngle + sweep*float64(i)/float64(segments)
		pts = append(pts, a.Center.Polar(a.Radius, angle))
	}
	return pts
}

// TessellatePolyline expands a polyline into a flat point sequence,
// replacing each bulge edge with segmentsPerArc arc segments. Straight
// edges contribute their endpoints unchanged. The closing edge of a closed
// polyline is expanded too when it carries a bulge, but the first vertex is
// not repeated at the end.
func TessellatePolyline(p *Polyline, segmentsPerArc int) []Point {
	n := len(p.Points)
	if n == 0 {
		return nil
	}
	if segmentsPerArc < 1 {
		segmentsPerArc = defaultArcSegments
	}

	edges := n - 1
	if p.Closed {
		edges = n
	}

	out := make([]Point, 0, n)
	out = append(out, p.Points[0])
	for i := 0; i < edges; i++ {
		from := p.Points[i]
		to := p.Points[(i+1)%n]
		last := p.Closed && i == edges-1

		bulge := p.Bulge(i)
		arc, ok := ArcFromBulge(from, to, bulge)
		if !ok {
			if !last {
				out = append(out, to)
			}
			continue
		}

		pts := ArcPoints(arc, segmentsPerArc)
		// ArcPoints walks counter-clockwise; a negative bulge edge runs
		// from `to` back to `from`, so reverse to restore vertex order.
		if bulge < 0 {
			for l, r := 0, len(pts)-1; l < r; l, r = l+1, r-1 {
				pts[l], pts[r] = pts[r], pts[l]
			}
		}
		stop := len(pts)
		if last {
			stop--
		}
		out = append(out, pts[1:stop]...)
	}
	return out
}
