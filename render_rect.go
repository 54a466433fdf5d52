package etri

import "github.com/tinne26/etri/geom"
import "github.com/tinne26/etri/shade"

// Draws a rectangle detected by [geom.ClassifyQuad](). Solid
// rectangles are filled directly, textured ones are drawn as a
// blit of the matching texture area modulated by the quad color.
func (self *Target) drawRectangle(quad geom.Quad, texture *Texture) {
	dst := quad.Bounds.CoveredPixels()
	if dst.Intersect(self.Clip()).Empty() { return }

	clr := shade.FromPacked(quad.Color)
	if clr.IsTransparent() { return }
	if usesOnlyColor(quad.Bounds, texture) {
		self.fillRect(dst, clr)
		return
	}
	src := texture.texelRect(quad.Bounds.UV)
	self.blitRect(dst, texture, src, clr)
}
