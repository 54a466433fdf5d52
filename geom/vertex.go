package geom

import "github.com/tinne26/etri/fract"

// A triangle vertex: position in target pixel space, normalized
// texture coordinates and a packed 0xAABBGGRR color. Vertices are
// created once per index and never modified.
type Vertex struct {
	Pos   fract.Point
	UV    fract.Point
	Color uint32
}

// Creates a vertex from the float32 values found in GUI vertex buffers.
func NewVertex(x, y, u, v float32, color uint32) Vertex {
	return Vertex{
		Pos: fract.Float32sToPoint(x, y),
		UV:  fract.Float32sToPoint(u, v),
		Color: color,
	}
}

// Returns whether the three vertices share the same packed color.
func UniformColor(a, b, c Vertex) bool {
	return a.Color == b.Color && b.Color == c.Color
}
