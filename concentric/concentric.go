// Package concentric locates concentric ring/square patterns — the bullseye
// finder of Aztec Code, the nested squares of Data Matrix's alignment
// region, and (by extension) any symbology whose finder pattern is a set of
// concentric rings around a common center. The Aztec detector does not call
// it: aztec/detector/detector.go keeps its own inline copy of this logic
// (getBullseyeCorners, traceCardinal). The routines here are the shared,
// general ones zxing-cpp exposes via ConcentricFinder.cpp (see
// _examples/original_source/core/src/ConcentricFinder.cpp), built on the new
// bitutil.BitMatrixCursor and geometry.RegressionLine types.
package concentric

import (
	"github.com/gobarcode/core/bitutil"
	"github.com/gobarcode/core/geometry"
)

// neighbourMaskComplete is the bitmask value that indicates a ring trace
// has visited all eight compass octants around its center, confirming the
// traced loop is a closed ring rather than a stray line segment.
const neighbourMaskComplete = 0b111101111

// AverageEdgePixels walks numOfEdges edges from cur, averaging the pixel
// centers straddling each edge crossing. Used to refine a single cardinal
// direction's estimate of a ring's radius.
func AverageEdgePixels(img *bitutil.BitMatrix, center, dir geometry.PointI, rng, numOfEdges int) (geometry.PointF, bool) {
	cur := bitutil.NewBitMatrixCursor(img, center, dir)
	var sum geometry.PointF
	for i := 0; i < numOfEdges; i++ {
		if !cur.IsInBounds() {
			return geometry.PointF{}, false
		}
		cur.StepToEdge(1, rng, false)
		sum = sum.Add(geometry.Centered(cur.P)).Add(geometry.Centered(cur.P.Add(cur.Back())))
	}
	n := float64(2 * numOfEdges)
	return geometry.PointF{X: sum.X / n, Y: sum.Y / n}, true
}

// CenterOfDoubleCross refines a center estimate by averaging the edge
// crossings along the horizontal, vertical and both diagonal axes through
// center, in both directions along each axis.
func CenterOfDoubleCross(img *bitutil.BitMatrix, center geometry.PointI, rng, numOfEdges int) (geometry.PointF, bool) {
	dirs := []geometry.PointI{{X: 0, Y: 1}, {X: 1, Y: 0}, {X: 1, Y: 1}, {X: 1, Y: -1}}
	var sum geometry.PointF
	for _, d := range dirs {
		avr1, ok1 := AverageEdgePixels(img, center, d, rng, numOfEdges)
		neg := geometry.PointI{X: -d.X, Y: -d.Y}
		avr2, ok2 := AverageEdgePixels(img, center, neg, rng, numOfEdges)
		if !ok1 || !ok2 {
			return geometry.PointF{}, false
		}
		sum = sum.Add(avr1).Add(avr2)
	}
	return geometry.PointF{X: sum.X / 8, Y: sum.Y / 8}, true
}

// CenterOfRing traces the nth ring boundary (counting outward from center,
// or inward if nth is negative) and returns the centroid of the traced loop.
// requireCircle additionally verifies the traced loop visited all eight
// compass octants around the center, rejecting stray non-circular edges.
func CenterOfRing(img *bitutil.BitMatrix, center geometry.PointI, rng, nth int, requireCircle bool) (geometry.PointF, bool) {
	radius := rng
	inner := nth < 0
	if inner {
		nth = -nth
	}
	cur := bitutil.NewBitMatrixCursor(img, center, geometry.PointI{X: 0, Y: 1})
	if cur.StepToEdge(nth, radius, inner) == 0 {
		return geometry.PointF{}, false
	}
	cur.TurnRight()
	edgeDir := bitutil.Right
	if inner {
		edgeDir = bitutil.Left
	}

	var neighbourMask uint32
	start := cur.P
	var sum geometry.PointF
	n := 0
	for {
		sum = sum.Add(geometry.Centered(cur.P))
		n++

		delta := cur.P.Sub(center)
		bd := bresenhamOctant(delta)
		neighbourMask |= 1 << uint(4+bd.X+3*bd.Y)

		if !cur.StepAlongEdge(edgeDir, false) {
			return geometry.PointF{}, false
		}

		if geometry.LInf(cur.P.Sub(center)) > radius || cur.P == center || n > 4*2*rng {
			return geometry.PointF{}, false
		}
		if cur.P == start {
			break
		}
	}

	if requireCircle && neighbourMask != neighbourMaskComplete {
		return geometry.PointF{}, false
	}

	fn := float64(n)
	return geometry.PointF{X: sum.X / fn, Y: sum.Y / fn}, true
}

// bresenhamOctant rounds an integer delta vector to one of the eight unit
// compass directions, for the ring-completeness bitmask.
func bresenhamOctant(delta geometry.PointI) geometry.PointI {
	sign := func(v int) int {
		switch {
		case v > 0:
			return 1
		case v < 0:
			return -1
		default:
			return 0
		}
	}
	return geometry.PointI{X: sign(delta.X), Y: sign(delta.Y)}
}

// CenterOfRings refines a center estimate across numOfRings concentric
// rings, averaging the per-ring centers found by CenterOfRing.
func CenterOfRings(img *bitutil.BitMatrix, center geometry.PointF, rng, numOfRings int) (geometry.PointF, bool) {
	n := 1
	sum := center
	for i := 2; i < numOfRings+1; i++ {
		c, ok := CenterOfRing(img, intPoint(center), rng, i, false)
		if !ok {
			if n == 1 {
				return geometry.PointF{}, false
			}
			return geometry.PointF{X: sum.X / float64(n), Y: sum.Y / float64(n)}, true
		}
		if geometry.Distance(c, center) > float64(rng)/float64(numOfRings)/2 {
			return geometry.PointF{}, false
		}
		sum = sum.Add(c)
		n++
	}
	return geometry.PointF{X: sum.X / float64(n), Y: sum.Y / float64(n)}, true
}

func intPoint(p geometry.PointF) geometry.PointI {
	return geometry.PointI{X: int(p.X), Y: int(p.Y)}
}

// collectRingPoints traces the edgeIndex-th boundary around center and
// returns every pixel-center sample visited along the closed loop, in
// traversal order.
func collectRingPoints(img *bitutil.BitMatrix, center geometry.PointF, rng, edgeIndex int, backup bool) []geometry.PointF {
	centerI := intPoint(center)
	radius := rng
	cur := bitutil.NewBitMatrixCursor(img, centerI, geometry.PointI{X: 0, Y: 1})
	if cur.StepToEdge(edgeIndex, radius, backup) == 0 {
		return nil
	}
	cur.TurnRight()
	edgeDir := bitutil.Right
	if backup {
		edgeDir = bitutil.Left
	}

	var neighbourMask uint32
	start := cur.P
	points := make([]geometry.PointF, 0, 4*rng)

	for {
		points = append(points, geometry.Centered(cur.P))
		delta := cur.P.Sub(centerI)
		bd := bresenhamOctant(delta)
		neighbourMask |= 1 << uint(4+bd.X+3*bd.Y)

		if !cur.StepAlongEdge(edgeDir, false) {
			return nil
		}
		if geometry.LInf(cur.P.Sub(centerI)) > radius || cur.P == centerI || len(points) > 4*2*rng {
			return nil
		}
		if cur.P == start {
			break
		}
	}

	if neighbourMask != neighbourMaskComplete {
		return nil
	}
	return points
}

// fitQuadrilateralToPoints fits four straight edges to a traced ring outline
// and returns their pairwise intersections as a Quadrilateral's four
// corners, or false if the outline isn't well-approximated by four lines.
func fitQuadrilateralToPoints(center geometry.PointF, points []geometry.PointF) (geometry.Quadrilateral, bool) {
	dist2Center := func(p geometry.PointF) float64 { return geometry.Distance(p, center) }

	furthest := 0
	for i, p := range points {
		if dist2Center(p) > dist2Center(points[furthest]) {
			furthest = i
		}
	}
	points = rotated(points, furthest)

	n := len(points)
	idx := func(lo, hi float64) int {
		a, b := int(float64(n)*lo), int(float64(n)*hi)
		if b <= a {
			b = a + 1
		}
		best := a
		for i := a; i < b && i < n; i++ {
			if dist2Center(points[i]) > dist2Center(points[best]) {
				best = i
			}
		}
		return best
	}

	c0 := 0
	c2 := idx(3.0/8, 5.0/8)

	diagLine := geometry.NewRegressionLineThroughPoints([]geometry.PointF{points[c0], points[c2]})
	idxDiag := func(lo, hi float64) int {
		a, b := int(float64(n)*lo), int(float64(n)*hi)
		if b <= a {
			b = a + 1
		}
		best := a
		for i := a; i < b && i < n; i++ {
			if diagLine.Distance(points[i]) > diagLine.Distance(points[best]) {
				best = i
			}
		}
		return best
	}
	c1 := idxDiag(1.0/8, 3.0/8)
	c3 := idxDiag(5.0/8, 7.0/8)

	corners := [4]int{c0, c1, c2, c3}

	segs := [4][]geometry.PointF{
		points[corners[0]+1 : corners[1]+1],
		points[corners[1]+1 : corners[2]+1],
		points[corners[2]+1 : corners[3]+1],
		append(append([]geometry.PointF{}, points[corners[3]+1:]...), points[:corners[0]+1]...),
	}

	var lines [4]*geometry.RegressionLine
	for i, seg := range segs {
		if len(seg) == 0 {
			return geometry.Quadrilateral{}, false
		}
		lines[i] = geometry.NewRegressionLineThroughPoints(seg)
	}

	for i, seg := range segs {
		length := len(seg)
		if length <= 3 {
			continue
		}
		tolerance := length / 8
		if tolerance > 8 {
			tolerance = 8
		}
		if tolerance < 1 {
			tolerance = 1
		}
		for _, p := range seg {
			if lines[i].Distance(p) > float64(tolerance) {
				return geometry.Quadrilateral{}, false
			}
		}
	}

	var corner [4]geometry.PointF
	for i := 0; i < 4; i++ {
		corner[i] = geometry.IntersectLines(lines[i], lines[(i+1)%4])
	}
	return geometry.NewQuadrilateral(corner[0], corner[1], corner[2], corner[3]), true
}

func rotated(points []geometry.PointF, by int) []geometry.PointF {
	out := make([]geometry.PointF, len(points))
	for i := range points {
		out[i] = points[(i+by)%len(points)]
	}
	return out
}

func quadrilateralIsPlausibleSquare(q geometry.Quadrilateral, lineIndex int) bool {
	p := q.Points()
	m, M := geometry.Distance(p[0], p[3]), geometry.Distance(p[0], p[3])
	for i := 1; i < 4; i++ {
		d := geometry.Distance(p[i-1], p[i])
		if d < m {
			m = d
		}
		if d > M {
			M = d
		}
	}
	return m >= float64(lineIndex*2) && m > M/3
}

// FitSquareToPoints traces the lineIndex-th ring boundary around center and
// fits a quadrilateral to it, rejecting traces that don't look like a
// plausible square finder pattern outline.
func FitSquareToPoints(img *bitutil.BitMatrix, center geometry.PointF, rng, lineIndex int, backup bool) (geometry.Quadrilateral, bool) {
	points := collectRingPoints(img, center, rng, lineIndex, backup)
	if points == nil {
		return geometry.Quadrilateral{}, false
	}
	res, ok := fitQuadrilateralToPoints(center, points)
	if !ok {
		return geometry.Quadrilateral{}, false
	}
	idx := lineIndex
	if backup {
		idx--
	}
	if !quadrilateralIsPlausibleSquare(res, idx) {
		return geometry.Quadrilateral{}, false
	}
	return res, true
}

// FindConcentricPatternCorners fits the inner and outer square outlines of a
// concentric finder pattern at lineIndex rings out from center, and blends
// them into a single corner estimate.
func FindConcentricPatternCorners(img *bitutil.BitMatrix, center geometry.PointF, rng, lineIndex int) (geometry.Quadrilateral, bool) {
	inner, ok := FitSquareToPoints(img, center, rng, lineIndex, false)
	if !ok {
		return geometry.Quadrilateral{}, false
	}
	outer, ok := FitSquareToPoints(img, center, rng, lineIndex+1, true)
	if !ok {
		return geometry.Quadrilateral{}, false
	}
	return geometry.BlendQuadrilaterals(inner, outer), true
}

// FinetuneConcentricPatternCenter refines a rough finder-pattern center
// estimate by successively trying: a ring-average, then rings-of-rings,
// then a square fit, then a double-cross average — falling back through the
// list until one produces a center that itself lands on a set pixel.
func FinetuneConcentricPatternCenter(img *bitutil.BitMatrix, center geometry.PointF, rng, finderPatternSize int) (geometry.PointF, bool) {
	res1, ok := CenterOfRing(img, intPoint(center), rng, 1, false)
	if !ok || !img.Get(int(res1.X), int(res1.Y)) {
		return geometry.PointF{}, false
	}
	if res2, ok := CenterOfRings(img, res1, rng, finderPatternSize/2); ok && inBounds(img, res2) && img.Get(int(res2.X), int(res2.Y)) {
		return res2, true
	}
	if _, ok := FitSquareToPoints(img, res1, rng, 1, false); ok {
		return res1, true
	}
	if res2, ok := CenterOfDoubleCross(img, intPoint(res1), rng, finderPatternSize/2+1); ok && inBounds(img, res2) && img.Get(int(res2.X), int(res2.Y)) {
		return res2, true
	}
	return geometry.PointF{}, false
}

func inBounds(img *bitutil.BitMatrix, p geometry.PointF) bool {
	x, y := int(p.X), int(p.Y)
	return x >= 0 && x < img.Width() && y >= 0 && y < img.Height()
}
