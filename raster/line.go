package raster

import "github.com/tinne26/etri/fract"

// Line is an edge function for the directed segment (x0, y0) -> (x1, y1):
//   E(x, y) = A*x + B*y + C
// with A = y0 - y1, B = x1 - x0 and C = -(A*(x0 + x1) + B*(y0 + y1))/2.
// The half always cancels out (C = x0*y1 - x1*y0), so C is stored as
// an exact [fract.Wide] and evaluations never round.
//
// Points with E > 0 are on the inner side for triangles with a positive
// [Basis] divisor. Points with E == 0 are only inside when Tie is set,
// which happens for top and left edges.
type Line struct {
	A fract.Unit
	B fract.Unit
	C fract.Wide
	Tie bool
}

// Creates the edge function for the given segment.
func NewLine(x0, y0, x1, y1 fract.Unit) Line {
	a, b := y0 - y1, x1 - x0
	tie := b > 0
	if a != 0 { tie = a > 0 }
	return Line{
		A: a,
		B: b,
		C: x0.MulWide(y1) - x1.MulWide(y0),
		Tie: tie,
	}
}

// Creates the edge function going from p0 to p1.
func NewLineFromPoints(p0, p1 fract.Point) Line {
	return NewLine(p0.X, p0.Y, p1.X, p1.Y)
}

// Exact value of the edge function at the given point.
func (self Line) Evaluate(x, y fract.Unit) fract.Wide {
	return self.A.MulWide(x) + self.B.MulWide(y) + self.C
}

func (self Line) IsInside(x, y fract.Unit) bool {
	return self.IsInsideValue(self.Evaluate(x, y))
}

// Inside test for an already evaluated edge function value.
func (self Line) IsInsideValue(value fract.Wide) bool {
	return value > 0 || (value == 0 && self.Tie)
}

// Value increments for one pixel steps in x and y.
func (self Line) steps() (dx, dy fract.Wide) {
	return self.A.MulWide(fract.One), self.B.MulWide(fract.One)
}
