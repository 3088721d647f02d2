package bitutil

import "github.com/gobarcode/core/geometry"

// Direction is the turn direction used by BitMatrixCursor.Turn, matching
// zxing-cpp's Direction enum (see _examples/original_source/core/src/BitMatrixCursor.h).
type Direction int

const (
	// Left turns the cursor counter-clockwise.
	Left Direction = -1
	// Right turns the cursor clockwise.
	Right Direction = 1
)

// Opposite returns the reverse of a turn direction.
func Opposite(dir Direction) Direction {
	if dir == Left {
		return Right
	}
	return Left
}

// CursorValue is a tri-state pixel read: invalid (out of bounds), white, or
// black.
type CursorValue int

const (
	// Invalid marks an out-of-bounds read.
	Invalid CursorValue = iota
	// White marks an unset pixel.
	White
	// Black marks a set pixel.
	Black
)

// IsValid reports whether the read landed inside the image.
func (v CursorValue) IsValid() bool { return v != Invalid }

// IsBlack reports whether the read is a set pixel.
func (v CursorValue) IsBlack() bool { return v == Black }

// IsWhite reports whether the read is an unset pixel.
func (v CursorValue) IsWhite() bool { return v == White }

// BitMatrixCursor walks a BitMatrix from a position p along a direction d,
// in the eight-connected discrete directions (PointI), grounded on
// zxing-cpp's BitMatrixCursor<POINT> template. Package concentric uses it to
// trace concentric rings; the Aztec, Data Matrix and QR detectors do not use
// it and keep their own scanning loops (traceCardinal, firstDifferentCol).
type BitMatrixCursor struct {
	Img *BitMatrix
	P   geometry.PointI
	D   geometry.PointI
}

// NewBitMatrixCursor creates a cursor at p heading in direction d.
func NewBitMatrixCursor(img *BitMatrix, p, d geometry.PointI) *BitMatrixCursor {
	return &BitMatrixCursor{Img: img, P: p, D: d}
}

// IsIn reports whether p lies inside the image.
func (c *BitMatrixCursor) IsIn(p geometry.PointI) bool {
	return p.X >= 0 && p.X < c.Img.Width() && p.Y >= 0 && p.Y < c.Img.Height()
}

// IsInBounds reports whether the cursor's current position is inside the image.
func (c *BitMatrixCursor) IsInBounds() bool { return c.IsIn(c.P) }

// TestAt reads the pixel at p, returning Invalid if p is out of bounds.
func (c *BitMatrixCursor) TestAt(p geometry.PointI) CursorValue {
	if !c.IsIn(p) {
		return Invalid
	}
	if c.Img.Get(p.X, p.Y) {
		return Black
	}
	return White
}

// IsBlack reports whether the cursor's current position is a set pixel.
func (c *BitMatrixCursor) IsBlack() bool { return c.TestAt(c.P).IsBlack() }

// IsWhite reports whether the cursor's current position is an unset pixel.
func (c *BitMatrixCursor) IsWhite() bool { return c.TestAt(c.P).IsWhite() }

// Front returns the current heading.
func (c *BitMatrixCursor) Front() geometry.PointI { return c.D }

// Back returns the reverse of the current heading.
func (c *BitMatrixCursor) Back() geometry.PointI { return geometry.PointI{X: -c.D.X, Y: -c.D.Y} }

// LeftOf returns the heading 90° counter-clockwise from the current one.
func (c *BitMatrixCursor) LeftOf() geometry.PointI { return geometry.PointI{X: c.D.Y, Y: -c.D.X} }

// RightOf returns the heading 90° clockwise from the current one.
func (c *BitMatrixCursor) RightOf() geometry.PointI { return geometry.PointI{X: -c.D.Y, Y: c.D.X} }

// DirectionOf returns LeftOf/RightOf for the given turn direction.
func (c *BitMatrixCursor) DirectionOf(dir Direction) geometry.PointI {
	if dir == Left {
		return c.LeftOf()
	}
	return c.RightOf()
}

// TurnBack reverses the cursor's heading in place.
func (c *BitMatrixCursor) TurnBack() { c.D = c.Back() }

// TurnLeft rotates the cursor's heading 90° counter-clockwise.
func (c *BitMatrixCursor) TurnLeft() { c.D = c.LeftOf() }

// TurnRight rotates the cursor's heading 90° clockwise.
func (c *BitMatrixCursor) TurnRight() { c.D = c.RightOf() }

// Turn rotates the cursor's heading by the given turn direction.
func (c *BitMatrixCursor) Turn(dir Direction) { c.D = c.DirectionOf(dir) }

// EdgeAt returns the value at the cursor's position if moving by d would
// cross a black/white boundary, or Invalid otherwise.
func (c *BitMatrixCursor) EdgeAt(d geometry.PointI) CursorValue {
	v := c.TestAt(c.P)
	if c.TestAt(c.P.Add(d)) != v {
		return v
	}
	return Invalid
}

// EdgeAtFront reports the boundary value in the cursor's forward direction.
func (c *BitMatrixCursor) EdgeAtFront() CursorValue { return c.EdgeAt(c.Front()) }

// EdgeAtDirection reports the boundary value in a turned direction.
func (c *BitMatrixCursor) EdgeAtDirection(dir Direction) CursorValue {
	return c.EdgeAt(c.DirectionOf(dir))
}

// Step advances the cursor s steps along its heading, reporting whether the
// new position is still inside the image.
func (c *BitMatrixCursor) Step(s int) bool {
	c.P = geometry.PointI{X: c.P.X + s*c.D.X, Y: c.P.Y + s*c.D.Y}
	return c.IsInBounds()
}

// StepToEdge advances the cursor across the nth upcoming black/white
// transition onto the first pixel past it, stopping early after range steps
// if range > 0 or when the image border is reached. If backup is set, the
// cursor lands one step before the edge rather than past it. Returns the number of steps taken, or 0 if the requested
// number of edges was not found within range/the image bounds.
func (c *BitMatrixCursor) StepToEdge(nth, rng int, backup bool) int {
	steps := 0
	lv := c.TestAt(c.P)
	for nth > 0 && (rng == 0 || steps < rng) && lv.IsValid() {
		steps++
		v := c.TestAt(geometry.PointI{X: c.P.X + steps*c.D.X, Y: c.P.Y + steps*c.D.Y})
		if lv != v {
			lv = v
			nth--
		}
	}
	if backup {
		steps--
	}
	c.P = geometry.PointI{X: c.P.X + steps*c.D.X, Y: c.P.Y + steps*c.D.Y}
	if nth != 0 {
		return 0
	}
	return steps
}

// StepAlongEdge follows a black/white boundary by one step, turning to track
// it as needed; skipCorner additionally cuts across a detected corner in a
// single step rather than stopping there.
func (c *BitMatrixCursor) StepAlongEdge(dir Direction, skipCorner bool) bool {
	if c.EdgeAt(c.DirectionOf(dir)) == Invalid {
		c.Turn(dir)
	} else if c.EdgeAtFront().IsValid() {
		c.Turn(Opposite(dir))
		if c.EdgeAtFront().IsValid() {
			c.Turn(Opposite(dir))
			if c.EdgeAtFront().IsValid() {
				return false
			}
		}
	}

	ret := c.Step(1)

	if ret && skipCorner && c.EdgeAt(c.DirectionOf(dir)) == Invalid {
		c.Turn(dir)
		ret = c.Step(1)
	}

	return ret
}

// CountEdges counts the number of black/white transitions within range steps.
func (c *BitMatrixCursor) CountEdges(rng int) int {
	res := 0
	for rng > 0 {
		steps := c.StepToEdge(1, rng, false)
		if steps == 0 || !c.IsInBounds() {
			break
		}
		rng -= steps
		res++
	}
	return res
}

// ReadPattern fills out with consecutive edge-to-edge run lengths (a
// PatternRow), stopping early (and returning the partial, zero-padded result)
// if an edge isn't found within range.
func (c *BitMatrixCursor) ReadPattern(out PatternRow, rng int) PatternRow {
	for i := range out {
		out[i] = 0
	}
	for i := range out {
		steps := c.StepToEdge(1, rng, false)
		if steps == 0 {
			return out
		}
		out[i] = steps
		if rng > 0 {
			rng -= steps
		}
	}
	return out
}

// PatternRow is a sequence of alternating black/white run lengths, as
// produced by scanning a row or a cursor path across a BitMatrix.
type PatternRow []int

// Sum returns the total number of modules spanned by the pattern.
func (p PatternRow) Sum() int {
	total := 0
	for _, v := range p {
		total += v
	}
	return total
}
