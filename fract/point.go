package fract

import "image"
import "strconv"

// A pair of [Unit] coordinates. Used both for positions on the
// target and for normalized texture coordinates.
type Point struct {
	X Unit
	Y Unit
}

// Creates a point from a pair of units.
func UnitsToPoint(x, y Unit) Point {
	return Point{ X: x, Y: y }
}

// Creates a point from a pair of ints.
func IntsToPoint(x, y int) Point {
	return Point{ X: FromInt(x), Y: FromInt(y) }
}

// Creates a point from a pair of float32s, as found in
// GUI vertex buffers.
func Float32sToPoint(x, y float32) Point {
	return Point{ X: FromFloat32(x), Y: FromFloat32(y) }
}

// Converts the point coordinates to ints, flooring them.
func (self Point) ImagePoint() image.Point {
	return image.Pt(self.X.ToIntFloor(), self.Y.ToIntFloor())
}

// Returns the point coordinates as a pair of float64s.
func (self Point) ToFloat64s() (x, y float64) {
	return self.X.ToFloat64(), self.Y.ToFloat64()
}

// Returns the result of adding the two points.
func (self Point) Add(point Point) Point {
	self.X += point.X
	self.Y += point.Y
	return self
}

// Returns the result of subtracting the given point.
func (self Point) Sub(point Point) Point {
	self.X -= point.X
	self.Y -= point.Y
	return self
}

// Returns whether the current point is inside the given [Rect].
func (self Point) In(rect Rect) bool {
	return self.X >= rect.Min.X && self.X < rect.Max.X && self.Y >= rect.Min.Y && self.Y < rect.Max.Y
}

// Returns a textual representation of the point (e.g.: "(2.5, -4)").
func (self Point) String() string {
	x := strconv.FormatFloat(self.X.ToFloat64(), 'f', -1, 64)
	y := strconv.FormatFloat(self.Y.ToFloat64(), 'f', -1, 64)
	return "(" + x + ", " + y + ")"
}
