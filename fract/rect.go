package fract

import "image"

// A pair of [Point] values defining a rectangular region.
// Like [image.Rectangle], the Max point is not included
// in the rectangle when testing containment.
type Rect struct {
	Min Point
	Max Point
}

// Creates a rect from a set of four units.
func UnitsToRect(minX, minY, maxX, maxY Unit) Rect {
	return Rect{
		Min: Point{ X: minX, Y: minY },
		Max: Point{ X: maxX, Y: maxY },
	}
}

// Creates the smallest rect containing the three points.
func BoundingRect(a, b, c Point) Rect {
	minX, maxX := MinMax3(a.X, b.X, c.X)
	minY, maxY := MinMax3(a.Y, b.Y, c.Y)
	return UnitsToRect(minX, minY, maxX, maxY)
}

// Returns the smallest rect containing both the current
// rect and the given point.
func (self Rect) Extend(point Point) Rect {
	if point.X < self.Min.X { self.Min.X = point.X }
	if point.Y < self.Min.Y { self.Min.Y = point.Y }
	if point.X > self.Max.X { self.Max.X = point.X }
	if point.Y > self.Max.Y { self.Max.Y = point.Y }
	return self
}

// Returns whether the point lies exactly on one of the
// four corners of the rect.
func (self Rect) IsCorner(point Point) bool {
	return (point.X == self.Min.X || point.X == self.Max.X) &&
	       (point.Y == self.Min.Y || point.Y == self.Max.Y)
}

// Returns whether the rect has no area.
func (self Rect) Empty() bool {
	return self.Min.X >= self.Max.X || self.Min.Y >= self.Max.Y
}

// Returns the width of the rect.
func (self Rect) Width() Unit {
	return self.Max.X - self.Min.X
}

// Returns the height of the rect.
func (self Rect) Height() Unit {
	return self.Max.Y - self.Min.Y
}

// Returns the smallest [image.Rectangle] containing the rect.
func (self Rect) ImageRect() image.Rectangle {
	return image.Rect(
		self.Min.X.ToIntFloor(), self.Min.Y.ToIntFloor(),
		self.Max.X.ToIntCeil(), self.Max.Y.ToIntCeil(),
	)
}

// Returns the pixels whose centers fall inside the rect. Left
// and top edges are included, right and bottom edges are not,
// which matches the top-left fill convention.
func (self Rect) PixelCoverage() image.Rectangle {
	return image.Rect(
		(self.Min.X - Half).ToIntCeil(), (self.Min.Y - Half).ToIntCeil(),
		(self.Max.X - Half).ToIntCeil(), (self.Max.Y - Half).ToIntCeil(),
	)
}
