package etri

import "image"

import "github.com/tinne26/etri/cache"
import "github.com/tinne26/etri/fract"
import "github.com/tinne26/etri/geom"
import "github.com/tinne26/etri/raster"
import "github.com/tinne26/etri/shade"

// Placement of a triangle tile on the target.
type tileFrame struct {
	origin image.Point
	width, height int
}

// Returns the integer tile frame for the given bounds, with
// [tilePadding] pixels on each side.
func newTileFrame(bounds fract.Rect) tileFrame {
	minX, minY := bounds.Min.X.ToIntFloor() - tilePadding, bounds.Min.Y.ToIntFloor() - tilePadding
	maxX, maxY := bounds.Max.X.ToIntCeil() + tilePadding, bounds.Max.Y.ToIntCeil() + tilePadding
	return tileFrame{
		origin: image.Pt(minX, minY),
		width: maxX - minX,
		height: maxY - minY,
	}
}

func (self tileFrame) Rect() image.Rectangle {
	return image.Rect(0, 0, self.width, self.height).Add(self.origin)
}

// Restricts the frame to the given area. Tile keys are relative to
// the frame origin and include its size, so they still identify
// the cropped tile pixels exactly.
func (self tileFrame) crop(area image.Rectangle) tileFrame {
	rect := self.Rect().Intersect(area)
	return tileFrame{ origin: rect.Min, width: rect.Dx(), height: rect.Dy() }
}

func (self tileFrame) fractOrigin() fract.Point {
	return fract.IntsToPoint(self.origin.X, self.origin.Y)
}

// Re-expresses the triangle positions in tile coordinates.
func (self tileFrame) localize(tri [3]geom.Vertex) raster.Triangle {
	origin := self.fractOrigin()
	for i := range tri {
		tri[i].Pos = tri[i].Pos.Sub(origin)
	}
	return raster.Triangle(tri)
}

// Crops frames bigger than the surface to the surface bounds, so
// tiles never need more pixels than the surface itself. Smaller
// frames are kept whole, which lets translated triangles near the
// surface edges reuse their tiles.
func (self *Target) fitFrame(frame tileFrame) tileFrame {
	bounds := self.surface.Bounds()
	if frame.width <= bounds.Dx() && frame.height <= bounds.Dy() { return frame }
	return frame.crop(bounds)
}

// Rasterizes a single colored triangle that doesn't depend on the
// texture, using the scanline rasterizer.
func (self *Target) drawUniformTriangle(tri [3]geom.Vertex, bounds geom.Bounds) {
	if raster.NewBasis(tri[0].Pos, tri[1].Pos, tri[2].Pos).Degenerate() {
		self.skipDegenerate(tri)
		return
	}
	frame := newTileFrame(bounds.Pos)
	if !frame.Rect().Overlaps(self.Clip()) {
		self.stats.Culled += 1
		return
	}
	frame = self.fitFrame(frame)
	self.stats.UniformTriangles += 1

	key := cache.NewTileKey(frame.fractOrigin(), tri, frame.width, frame.height)
	for i := range key.Corners { // texture coordinates are irrelevant
		key.Corners[i].U, key.Corners[i].V = 0, 0
	}
	key.Kind = cache.KindFlat

	clr := shade.FromPacked(tri[0].Color)
	self.drawTriangleTile(key, frame, func(plotter raster.Plotter) {
		local := frame.localize(tri)
		raster.DrawFlatTriangle(plotter, local[0].Pos, local[1].Pos, local[2].Pos, clr, frame.width, frame.height)
	})
}

// Rasterizes a textured triangle with per-vertex colors.
func (self *Target) drawGenericTriangle(tri [3]geom.Vertex, bounds geom.Bounds, texture *Texture) {
	if raster.NewBasis(tri[0].Pos, tri[1].Pos, tri[2].Pos).Degenerate() {
		self.skipDegenerate(tri)
		return
	}
	frame := newTileFrame(bounds.Pos)
	if !frame.Rect().Overlaps(self.Clip()) {
		self.stats.Culled += 1
		return
	}
	frame = self.fitFrame(frame)
	self.stats.GenericTriangles += 1

	key := cache.NewTileKey(frame.fractOrigin(), tri, frame.width, frame.height)
	key.Kind = cache.KindGeneric
	key.Texture = texture.ID()
	key.Sampling = uint8(self.sampling)

	var sampler raster.Sampler
	if texture.hasPixels() {
		sampler = textureSampler{ texture: texture, mode: self.sampling }
	}
	self.drawTriangleTile(key, frame, func(plotter raster.Plotter) {
		raster.DrawTriangle(plotter, frame.localize(tri), sampler, frame.width, frame.height)
	})
}

// Draws the cached tile for the key, or rasterizes, draws and
// caches a new one.
func (self *Target) drawTriangleTile(key cache.TileKey, frame tileFrame, rasterize func(raster.Plotter)) {
	tile, found := self.cache.Get(key)
	if found {
		self.stats.CacheHits += 1
		self.drawTile(tile, frame.origin)
		return
	}

	self.stats.CacheMisses += 1
	pixels := self.withTile(frame.width, frame.height, rasterize)
	tile = newTile(pixels)
	self.drawTile(tile, frame.origin)
	if !self.cache.Put(key, tile) {
		releaseTile(tile)
	}
}

func (self *Target) skipDegenerate(tri [3]geom.Vertex) {
	self.stats.Degenerate += 1
	Logger().Debug("degenerate triangle skipped",
		"v0", tri[0].Pos.String(), "v1", tri[1].Pos.String(), "v2", tri[2].Pos.String())
}
