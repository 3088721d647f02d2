package geometry

import "math"

// RegressionLine is a least-squares line fit to a growing list of points,
// used by edge-following code (ring tracers, L-pattern walkers) to
// extrapolate a straight edge from noisy pixel samples. Ported from
// zxing-cpp's RegressionLine.h (see _examples/original_source), which the
// teacher repo never carried — the teacher's Aztec/QR detectors instead
// average raw sample points directly.
type RegressionLine struct {
	points          []PointF
	directionInward PointF
	a, b, c         float64
	valid           bool
}

// NewRegressionLine creates an empty RegressionLine with the given inward
// direction hint, used to keep the fitted normal pointing consistently.
func NewRegressionLine(directionInward PointF) *RegressionLine {
	norm := directionInward.L2()
	d := directionInward
	if norm > 0 {
		d = PointF{directionInward.X / norm, directionInward.Y / norm}
	}
	return &RegressionLine{directionInward: d}
}

// NewRegressionLineThroughPoints fits a RegressionLine directly through the
// given points with no inward-direction hint, matching the C++
// RegressionLine(begin, end) range constructor used when fitting a line to a
// known run of boundary samples (e.g. one edge of a concentric pattern's
// outline) rather than accumulating samples incrementally.
func NewRegressionLineThroughPoints(points []PointF) *RegressionLine {
	r := &RegressionLine{}
	r.points = append([]PointF(nil), points...)
	r.fitLine(r.points)
	return r
}

// Points returns the accumulated sample points.
func (r *RegressionLine) Points() []PointF { return r.points }

// Length returns the pixel distance between the first and last sample.
func (r *RegressionLine) Length() int {
	if len(r.points) < 2 {
		return 0
	}
	return int(Distance(r.points[0], r.points[len(r.points)-1]))
}

// IsValid reports whether Evaluate has produced a usable line.
func (r *RegressionLine) IsValid() bool { return r.valid }

// Normal returns the fitted line's unit normal, or the inward-direction hint
// if no fit has been computed yet.
func (r *RegressionLine) Normal() PointF {
	if r.valid {
		return PointF{r.a, r.b}
	}
	return r.directionInward
}

// SignedDistance returns the signed distance from p to the line.
func (r *RegressionLine) SignedDistance(p PointF) float64 {
	n := r.Normal()
	return n.Dot(p) - r.c
}

// Distance returns the unsigned distance from p to the line.
func (r *RegressionLine) Distance(p PointF) float64 {
	return math.Abs(r.SignedDistance(p))
}

// Project returns the projection of p onto the line.
func (r *RegressionLine) Project(p PointF) PointF {
	n := r.Normal()
	d := r.SignedDistance(p)
	return PointF{p.X - d*n.X, p.Y - d*n.Y}
}

// Centroid returns the mean of the accumulated points.
func (r *RegressionLine) Centroid() PointF {
	var sum PointF
	for _, p := range r.points {
		sum = sum.Add(p)
	}
	n := float64(len(r.points))
	return PointF{sum.X / n, sum.Y / n}
}

// Add appends a sample point to the line.
func (r *RegressionLine) Add(p PointF) {
	r.points = append(r.points, p)
	if len(r.points) == 1 {
		r.c = r.Normal().Dot(p)
	}
}

// fitLine performs the least-squares fit over points, flipping the normal
// when it points away from directionInward (negative dot product). Returns
// whether the fitted normal lies within 60° of directionInward
// (dot(normal, directionInward) > 0.5).
func (r *RegressionLine) fitLine(points []PointF) bool {
	var mean PointF
	for _, p := range points {
		mean = mean.Add(p)
	}
	n := float64(len(points))
	mean = PointF{mean.X / n, mean.Y / n}

	var sumXX, sumYY, sumXY float64
	for _, p := range points {
		d := p.Sub(mean)
		sumXX += d.X * d.X
		sumYY += d.Y * d.Y
		sumXY += d.X * d.Y
	}

	var a, b float64
	if sumYY >= sumXX {
		l := math.Hypot(sumYY, sumXY)
		a = sumYY / l
		b = -sumXY / l
	} else {
		l := math.Hypot(sumXX, sumXY)
		a = sumXY / l
		b = -sumXX / l
	}
	if r.directionInward.Dot(PointF{a, b}) < 0 {
		a, b = -a, -b
	}
	r.a, r.b = a, b
	r.c = r.Normal().Dot(mean)
	r.valid = true
	return r.directionInward.Dot(r.Normal()) > 0.5
}

// Evaluate (re-)fits the line to the accumulated points. If maxSignedDist is
// positive, points further "inside" than maxSignedDist or further "outside"
// than 2*maxSignedDist are iteratively pruned and the fit is repeated; the
// fit is abandoned (returns false) if pruning removes more than half the
// points or leaves fewer than two. If updatePoints is set, the pruned set
// replaces the line's stored points.
func (r *RegressionLine) Evaluate(maxSignedDist float64, updatePoints bool) bool {
	ok := r.fitLine(r.points)
	if maxSignedDist <= 0 {
		return ok
	}

	pts := append([]PointF(nil), r.points...)
	for {
		oldLen := len(pts)
		kept := pts[:0:0]
		for _, p := range pts {
			sd := r.SignedDistance(p)
			if sd > maxSignedDist || sd < -2*maxSignedDist {
				continue
			}
			kept = append(kept, p)
		}
		pts = kept
		if len(pts) < oldLen/2 || len(pts) < 2 {
			return false
		}
		if oldLen == len(pts) {
			break
		}
		ok = r.fitLine(pts)
	}
	if updatePoints {
		r.points = pts
	}
	return ok
}

// HighRes reports whether the line spans enough of the image to support
// reliable extrapolation: the smaller
// of its horizontal/vertical span must exceed 2 pixels, or its longer span
// must exceed 50.
func (r *RegressionLine) HighRes() bool {
	if len(r.points) == 0 {
		return false
	}
	min, max := r.points[0], r.points[0]
	for _, p := range r.points {
		if p.X < min.X {
			min.X = p.X
		}
		if p.Y < min.Y {
			min.Y = p.Y
		}
		if p.X > max.X {
			max.X = p.X
		}
		if p.Y > max.Y {
			max.Y = p.Y
		}
	}
	diff := max.Sub(min)
	length := math.Max(math.Abs(diff.X), math.Abs(diff.Y))
	steps := math.Min(math.Abs(diff.X), math.Abs(diff.Y))
	return steps > 2 || length > 50
}

// IntersectLines returns the intersection point of two valid RegressionLines
// via the standard 2×2 solve.
func IntersectLines(l1, l2 *RegressionLine) PointF {
	d := l1.a*l2.b - l1.b*l2.a
	x := (l1.c*l2.b - l1.b*l2.c) / d
	y := (l1.a*l2.c - l1.c*l2.a) / d
	return PointF{x, y}
}
