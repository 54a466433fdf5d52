// Package geom defines the fixed point [Vertex] used by the
// rasterizers, triangle [Bounds] and the classifier that detects
// pairs of triangles forming an axis-aligned rectangle.
package geom
