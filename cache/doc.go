// The cache subpackage defines the [TileCache] used by etri targets
// to avoid rasterizing geometrically identical triangles every frame.
//
// GUI frames tend to repeat themselves: the same rounded corners, the
// same glyphs and the same icons get drawn again and again, often at
// the same positions. Rasterizing a triangle on the CPU is expensive,
// so each rasterized triangle is stored as a small tile image keyed by
// a [TileKey]: the triangle shape relative to the tile origin, its
// texture coordinates, colors, tile size, texture and rasterization
// settings. A triangle translated by whole pixels maps to the same key
// and is drawn by blitting the cached tile.
//
// The cache is bounded by an approximate byte size, and the least
// recently used tiles are evicted first. Evicted tiles are passed to
// the eviction function so their resources can be released. As with
// any cache, the right size depends on your use-case; the
// [TileCache.PeakSize]() method can help you figure it out. A few
// MiBs tend to be enough for typical tool UIs.
package cache
