package raster

import "github.com/tinne26/etri/fract"

// Basis holds the triangle positions shared by all the interpolation
// equations of a triangle, together with the divisor
//   D = (y1 - y2)(x0 - x2) + (x2 - x1)(y0 - y2)
// which is twice the signed area of the triangle. D is zero only
// for degenerate triangles, which can't be interpolated.
type Basis struct {
	P0, P1, P2 fract.Point
	Divisor fract.Wide
}

func NewBasis(p0, p1, p2 fract.Point) Basis {
	divisor := (p1.Y - p2.Y).MulWide(p0.X - p2.X) + (p2.X - p1.X).MulWide(p0.Y - p2.Y)
	return Basis{ P0: p0, P1: p1, P2: p2, Divisor: divisor }
}

// Whether the triangle has zero area.
func (self Basis) Degenerate() bool {
	return self.Divisor == 0
}

// Returns the barycentric weights of the point. The third weight
// is derived from the other two, so they always add up to one.
// Must not be called on degenerate bases.
func (self *Basis) Weights(x, y fract.Unit) (w1, w2, w3 fract.Unit) {
	dx, dy := x - self.P2.X, y - self.P2.Y
	n1 := (self.P1.Y - self.P2.Y).MulWide(dx) + (self.P2.X - self.P1.X).MulWide(dy)
	n2 := (self.P2.Y - self.P0.Y).MulWide(dx) + (self.P0.X - self.P2.X).MulWide(dy)
	w1 = n1.DivUnit(self.Divisor)
	w2 = n2.DivUnit(self.Divisor)
	w3 = fract.One - w1 - w2
	return w1, w2, w3
}

// Equation interpolates a single attribute across a triangle.
type Equation struct {
	Basis  *Basis
	Values [3]fract.Unit
}

// Creates an interpolation equation for the three vertex values
// over the given triangle positions.
func NewEquation(v0, v1, v2 fract.Unit, p0, p1, p2 fract.Point) Equation {
	basis := NewBasis(p0, p1, p2)
	return Equation{ Basis: &basis, Values: [3]fract.Unit{v0, v1, v2} }
}

// Interpolated value at the given point. Must not be called when
// the basis is degenerate.
func (self *Equation) Evaluate(x, y fract.Unit) fract.Unit {
	return self.Apply(self.Basis.Weights(x, y))
}

// Interpolated value for already computed weights. Useful to share
// weights between all the attributes of a triangle.
func (self *Equation) Apply(w1, w2, w3 fract.Unit) fract.Unit {
	return w1.Mul(self.Values[0]) + w2.Mul(self.Values[1]) + w3.Mul(self.Values[2])
}

// Whether the equation's triangle is degenerate.
func (self *Equation) Degenerate() bool {
	return self.Basis.Degenerate()
}
