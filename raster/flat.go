package raster

import "github.com/tinne26/etri/fract"
import "github.com/tinne26/etri/shade"

// Rasterizes a single colored triangle into a width x height area
// with a scanline algorithm. Vertices are sorted by y; the triangle
// is drawn directly when it already has a flat top or bottom, or
// split at the middle vertex's row into a flat-bottom and a flat-top
// part sharing the long edge otherwise. Each part is filled row by
// row between its two edges.
//
// Edge positions are solved exactly for each row from the edge
// functions, and the pixels at both ends of a span are decided with
// the same inside test as [DrawTriangle](), so both rasterizers
// cover exactly the same pixels. Degenerate triangles return false.
func DrawFlatTriangle(plotter Plotter, p0, p1, p2 fract.Point, clr shade.Color, width, height int) bool {
	basis := NewBasis(p0, p1, p2)
	if basis.Degenerate() { return false }

	fill := spanFiller{ plotter: plotter, clr: clr, width: width, height: height }
	a, b, c := p0, p1, p2
	if basis.Divisor < 0 { b, c = c, b } // same orientation as DrawTriangle
	fill.edges = [3]Line{ NewLineFromPoints(a, b), NewLineFromPoints(b, c), NewLineFromPoints(c, a) }

	// sort by y
	if p1.Y < p0.Y { p0, p1 = p1, p0 }
	if p2.Y < p1.Y { p1, p2 = p2, p1 }
	if p1.Y < p0.Y { p0, p1 = p1, p0 }

	long := NewLineFromPoints(p0, p2)
	switch {
	case p1.Y == p2.Y: // flat bottom
		fill.fillRows(p0.Y, p2.Y, true, NewLineFromPoints(p0, p1), long)
	case p0.Y == p1.Y: // flat top
		fill.fillRows(p0.Y, p2.Y, true, NewLineFromPoints(p1, p2), long)
	default:
		fill.fillRows(p0.Y, p1.Y, false, NewLineFromPoints(p0, p1), long)
		fill.fillRows(p1.Y, p2.Y, true, NewLineFromPoints(p1, p2), long)
	}
	return true
}

type spanFiller struct {
	plotter Plotter
	clr shade.Color
	width, height int
	edges [3]Line // oriented so the inside is positive
}

// Fills the rows whose centers lie in [top, bottom), or [top, bottom]
// when inclusive is set, spanning the pixels between the two given
// non-horizontal edges.
func (self *spanFiller) fillRows(top, bottom fract.Unit, inclusive bool, edgeA, edgeB Line) {
	firstRow := ceilCenterIndex(top)
	var endRow int
	if inclusive {
		endRow = floorCenterIndex(bottom) + 1
	} else {
		endRow = ceilCenterIndex(bottom)
	}
	firstRow, endRow = max(firstRow, 0), min(endRow, self.height)
	if firstRow >= endRow { return }

	y := pixelCenter(firstRow)
	solverA, solverB := newEdgeSolver(edgeA, y), newEdgeSolver(edgeB, y)
	for row := firstRow; row < endRow; row++ {
		left, right := solverA.x(), solverB.x()
		if right < left { left, right = right, left }
		startX := clampSpan(ceilCenterIndex(left), self.width)
		endX   := clampSpan(ceilCenterIndex(right), self.width)

		// settle the span ends with the exact inside test
		for startX < endX && !self.inside(startX, y) { startX += 1 }
		for startX > 0 && self.inside(startX - 1, y) { startX -= 1 }
		if endX < startX { endX = startX }
		for endX > startX && !self.inside(endX - 1, y) { endX -= 1 }
		for endX < self.width && self.inside(endX, y) { endX += 1 }

		for x := startX; x < endX; x++ {
			self.plotter.Plot(x, row, self.clr)
		}
		solverA.next()
		solverB.next()
		y += fract.One
	}
}

func (self *spanFiller) inside(x int, y fract.Unit) bool {
	cx := pixelCenter(x)
	return self.edges[0].IsInside(cx, y) && self.edges[1].IsInside(cx, y) && self.edges[2].IsInside(cx, y)
}

// Solves A*x + B*y + C = 0 for x on consecutive rows. The B*y + C
// term is stepped exactly, so there's no accumulated drift.
type edgeSolver struct {
	value fract.Wide // B*y + C at the current row
	step  fract.Wide
	denom fract.Wide
}

// The edge must not be horizontal.
func newEdgeSolver(edge Line, y fract.Unit) edgeSolver {
	return edgeSolver{
		value: edge.B.MulWide(y) + edge.C,
		step:  edge.B.MulWide(fract.One),
		denom: edge.A.MulWide(fract.One),
	}
}

func (self *edgeSolver) x() fract.Unit {
	return (-self.value).DivUnit(self.denom)
}

func (self *edgeSolver) next() {
	self.value += self.step
}

// Index of the first pixel whose center is at or after the position.
func ceilCenterIndex(position fract.Unit) int {
	return int((int64(position) - int64(fract.Half) + int64(fract.One) - 1) >> 16)
}

// Index of the last pixel whose center is at or before the position.
func floorCenterIndex(position fract.Unit) int {
	return int((int64(position) - int64(fract.Half)) >> 16)
}

func clampSpan(index, width int) int {
	if index < 0 { return 0 }
	if index > width { return width }
	return index
}
