package etri

// Counters for the last [Target.Render]() call.
type Stats struct {
	Commands  int // draw commands processed, callbacks included
	Callbacks int // user callbacks invoked
	Clipped   int // commands skipped due to an empty clip rect

	Triangles        int // triangles found in the index buffers
	Rectangles       int // triangle pairs drawn as rectangles
	UniformTriangles int // triangles drawn by the flat rasterizer
	GenericTriangles int // triangles drawn by the generic rasterizer
	Degenerate       int // zero area triangles skipped
	Invalid          int // triangles with out of range indices
	Culled           int // triangles outside the clip rect

	CacheHits   int
	CacheMisses int
}

// Returns the number of tiles blitted, either from the cache
// or freshly rasterized.
func (self Stats) Tiles() int {
	return self.CacheHits + self.CacheMisses
}
