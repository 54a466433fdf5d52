package etri

import "image"
import "context"
import "log/slog"

import "github.com/tinne26/etri/geom"

// Renders the given draw data on the target surface.
//
// Commands are processed in order. Each command sets the clip rect
// and then either invokes its callback or draws its triangles. Pairs
// of triangles forming uniformly colored axis-aligned rectangles are
// drawn directly, and every other triangle is rasterized to a tile
// or taken from the tile cache. Malformed geometry is skipped and
// counted in [Target.Stats](), never reported as an error.
//
// The clip rect is disabled once the data has been rendered.
func (self *Target) Render(data *DrawData) {
	self.stats = Stats{}
	if data == nil { return }
	cacheStats := self.cache.Stats()

	for _, list := range data.Lists {
		if list == nil { continue }
		self.renderList(list, data.DisplayPos)
	}
	self.DisableClip()

	logger := Logger()
	if logger.Enabled(context.Background(), slog.LevelDebug) {
		evictions := self.cache.Stats().Evictions - cacheStats.Evictions
		logger.Debug("frame rendered",
			"commands", self.stats.Commands,
			"triangles", self.stats.Triangles,
			"rectangles", self.stats.Rectangles,
			"cache_hits", self.stats.CacheHits,
			"cache_misses", self.stats.CacheMisses,
			"evictions", evictions,
			"cache_bytes", self.cache.ApproxByteSize(),
		)
	}
}

func (self *Target) renderList(list *DrawList, displayPos image.Point) {
	var offset int
	for i := range list.Commands {
		cmd := &list.Commands[i]
		self.stats.Commands += 1

		clip := cmd.Clip
		clip.X -= displayPos.X
		clip.Y -= displayPos.Y
		self.SetClip(clip)

		start := min(offset, len(list.Indices))
		end   := min(offset + max(cmd.ElemCount, 0), len(list.Indices))
		offset += max(cmd.ElemCount, 0)

		if cmd.Callback != nil {
			self.stats.Callbacks += 1
			cmd.Callback(list, cmd)
			continue
		}

		if self.Clip().Empty() {
			if !self.clip.Empty() {
				Logger().Warn("clip rect outside target",
					"clip", self.clip.String(), "bounds", self.surface.Bounds().String())
			}
			self.stats.Clipped += 1
			self.stats.Triangles += (end - start)/3
			continue
		}

		batch := triangleBatch{
			vertices: list.Vertices,
			indices: list.Indices[start : end],
			offset: displayPos,
		}
		self.renderBatch(&batch, cmd.Texture)
	}
}

// Walks the triangles of a command, detecting rectangles first.
func (self *Target) renderBatch(batch *triangleBatch, texture *Texture) {
	var quad [6]geom.Vertex
	var tri  [3]geom.Vertex
	for i := 0; i + 3 <= len(batch.indices); i += 3 {
		self.stats.Triangles += 1
		if i + 6 <= len(batch.indices) && batch.load(quad[:], i) {
			rect, isQuad := geom.ClassifyQuad(&quad)
			if isQuad && self.canDrawRectangle(rect, texture) {
				self.stats.Triangles += 1
				self.stats.Rectangles += 1
				self.drawRectangle(rect, texture)
				i += 3
				continue
			}
		}

		if !batch.load(tri[:], i) {
			self.stats.Invalid += 1
			continue
		}
		bounds := geom.BoundsOf(tri[0], tri[1], tri[2])
		if geom.UniformColor(tri[0], tri[1], tri[2]) && usesOnlyColor(bounds, texture) {
			self.drawUniformTriangle(tri, bounds)
		} else {
			self.drawGenericTriangle(tri, bounds, texture)
		}
	}
}

func (self *Target) canDrawRectangle(quad geom.Quad, texture *Texture) bool {
	return quad.UVAligned || usesOnlyColor(quad.Bounds, texture)
}

// Returns whether the geometry only samples the texture's white
// texel. Solid fills (nil texture or no pixels) always use only color.
func usesOnlyColor(bounds geom.Bounds, texture *Texture) bool {
	if !texture.hasPixels() { return true }
	return bounds.UsesOnlyColor(texture.WhiteUV())
}

// Indices of a single command, with the vertex buffer they refer to.
type triangleBatch struct {
	vertices []Vert
	indices  []uint32
	offset   image.Point
}

// Loads len(dst) vertices starting at the given index position.
// Returns false if any index is out of range.
func (self *triangleBatch) load(dst []geom.Vertex, start int) bool {
	for i := range dst {
		index := self.indices[start + i]
		if int(index) >= len(self.vertices) { return false }
		vert := self.vertices[index]
		dst[i] = geom.NewVertex(
			vert.X - float32(self.offset.X), vert.Y - float32(self.offset.Y),
			vert.U, vert.V, vert.Color,
		)
	}
	return true
}
