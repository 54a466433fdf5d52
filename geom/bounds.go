package geom

import "image"

import "github.com/tinne26/etri/fract"

// Extents of a triangle (or a set of vertices), both for positions
// and for texture coordinates.
type Bounds struct {
	Pos fract.Rect
	UV  fract.Rect
}

// Componentwise min/max of the vertices positions and UVs.
func BoundsOf(a, b, c Vertex) Bounds {
	return Bounds{
		Pos: fract.BoundingRect(a.Pos, b.Pos, c.Pos),
		UV:  fract.BoundingRect(a.UV, b.UV, c.UV),
	}
}

// Returns the bounds grown to also contain the given vertex.
func (self Bounds) Extend(vertex Vertex) Bounds {
	self.Pos = self.Pos.Extend(vertex.Pos)
	self.UV  = self.UV.Extend(vertex.UV)
	return self
}

// Returns whether the point lies on one of the four corners
// of the position box.
func (self Bounds) IsOnExtreme(point fract.Point) bool {
	return self.Pos.IsCorner(point)
}

// Returns whether the UV span collapses to the single given
// texel coordinate, which is expected to point at an opaque
// white texel. When it does, the texture contributes nothing
// and only the vertex colors matter.
func (self Bounds) UsesOnlyColor(white fract.Point) bool {
	return self.UV.Min == self.UV.Max && self.UV.Min == white
}

// Returns the pixels whose centers fall inside the position box.
func (self Bounds) CoveredPixels() image.Rectangle {
	return self.Pos.PixelCoverage()
}
