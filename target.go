package etri

import "image"

import "github.com/tinne26/etri/cache"

// Default tile cache size for new targets, in bytes.
const DefaultCacheBytes = 8*1024*1024

// Padding added around rasterized tiles, in pixels.
const tilePadding = 2

// Options for [NewTarget](). Zero values mean defaults.
type TargetOptions struct {
	CacheBytes int // tile cache budget, [DefaultCacheBytes] if zero
	Sampling   SamplingMode
}

// A Target owns an output surface, its clip state and the tile
// cache. Targets are not safe for concurrent use: all the methods
// must be called from the rendering goroutine.
type Target struct {
	surface TargetImage
	cache *cache.TileCache
	sampling SamplingMode

	clip image.Rectangle
	clipEnabled bool

	stats Stats
}

// Creates a new target for the given surface. Options can be nil.
func NewTarget(surface TargetImage, opts *TargetOptions) *Target {
	if surface == nil { panic("nil target surface") }
	cacheBytes := DefaultCacheBytes
	var sampling SamplingMode
	if opts != nil {
		if opts.CacheBytes != 0 { cacheBytes = opts.CacheBytes }
		sampling = opts.Sampling
	}

	target := &Target{
		surface: surface,
		cache: cache.NewTileCache(cacheBytes),
		sampling: sampling,
	}
	target.cache.SetOnEvict(func(_ cache.TileKey, tile cache.Tile) {
		releaseTile(tile)
	})
	target.resetClip()
	return target
}

// Returns the current output surface.
func (self *Target) Surface() TargetImage {
	return self.surface
}

// Changes the output surface. If the new surface has a different
// size, the target is resized.
//
// With Ebitengine, this can be called with the screen image on
// each Draw() call.
func (self *Target) SetSurface(surface TargetImage) {
	if surface == nil { panic("nil target surface") }
	resized := surface.Bounds().Size() != self.surface.Bounds().Size()
	if resized {
		self.Resize(surface)
	} else {
		self.surface = surface
		self.resetClip()
	}
}

// Replaces the output surface after a resize. All the cached
// tiles are released.
func (self *Target) Resize(surface TargetImage) {
	if surface == nil { panic("nil target surface") }
	self.surface = surface
	released := self.cache.Len()
	self.cache.Clear()
	self.resetClip()
	Logger().Debug("target resized",
		"bounds", surface.Bounds().String(), "released_tiles", released)
}

// Returns the tile cache.
func (self *Target) Cache() *cache.TileCache {
	return self.cache
}

// Returns the sampling mode used for textured triangles.
func (self *Target) Sampling() SamplingMode {
	return self.sampling
}

// Sets the sampling mode used for textured triangles. Tiles
// rasterized with other modes are kept in the cache but not reused.
func (self *Target) SetSampling(mode SamplingMode) {
	self.sampling = mode
}

// Returns the counters for the last [Target.Render]() call.
func (self *Target) Stats() Stats {
	return self.stats
}

// Sets and enables the clip rect, in target pixels.
func (self *Target) SetClip(clip ClipRect) {
	self.clip = clip.Rect()
	self.clipEnabled = true
}

// Returns the active clip rect as an [image.Rectangle].
func (self *Target) Clip() image.Rectangle {
	if !self.clipEnabled { return self.surface.Bounds() }
	return self.clip.Intersect(self.surface.Bounds())
}

// Disables clipping without forgetting the clip rect.
func (self *Target) DisableClip() {
	self.clipEnabled = false
}

// Re-enables the last clip rect set.
func (self *Target) EnableClip() {
	self.clipEnabled = true
}

func (self *Target) resetClip() {
	self.clip = self.surface.Bounds()
	self.clipEnabled = false
}
