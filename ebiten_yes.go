//go:build !gtxt

package etri

import "image"

import "github.com/hajimehoshi/ebiten/v2"
import "github.com/hajimehoshi/ebiten/v2/vector"

import "github.com/tinne26/etri/cache"
import "github.com/tinne26/etri/shade"

// Alias to allow compiling the package without Ebitengine (gtxt version).
//
// Without Ebitengine, TargetImage defaults to [image/draw.Image].
type TargetImage = *ebiten.Image

// The presentable version of a [Texture], used to blit textured
// rectangles.
//
// Without Ebitengine (gtxt version), SourceImage defaults to [image.Image].
type SourceImage = *ebiten.Image

// A Tile is the image that results from rasterizing a triangle.
// You rarely need to use Tiles directly unless inspecting the cache.
//
// Without Ebitengine (gtxt version), Tile defaults to [*image.RGBA].
// With Ebitengine, Tile defaults to *ebiten.Image.
type Tile = cache.Tile

func newSourceImage(pixels *image.NRGBA) SourceImage {
	return ebiten.NewImageFromImage(pixels)
}

// Uploads the rasterized pixels to a new tile.
func newTile(pixels *image.RGBA) Tile {
	tile := ebiten.NewImage(pixels.Rect.Dx(), pixels.Rect.Dy())
	tile.WritePixels(pixels.Pix)
	return tile
}

func releaseTile(tile Tile) {
	tile.Deallocate()
}

// Returns the surface restricted to the active clip rect.
func (self *Target) destination() *ebiten.Image {
	if !self.clipEnabled { return self.surface }
	return self.surface.SubImage(self.Clip()).(*ebiten.Image)
}

func (self *Target) fillRect(rect image.Rectangle, clr shade.Color) {
	vector.DrawFilledRect(self.destination(),
		float32(rect.Min.X), float32(rect.Min.Y),
		float32(rect.Dx()), float32(rect.Dy()),
		clr.RGBA(), false)
}

// Blits the src texel rect of the texture to the dst rect, scaled
// with nearest filtering and modulated by the given color.
func (self *Target) blitRect(dst image.Rectangle, texture *Texture, src image.Rectangle, clr shade.Color) {
	source := texture.presentable()
	src = src.Add(source.Bounds().Min)

	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Scale(
		float64(dst.Dx())/float64(src.Dx()),
		float64(dst.Dy())/float64(src.Dy()),
	)
	opts.GeoM.Translate(float64(dst.Min.X), float64(dst.Min.Y))
	opts.ColorScale.ScaleWithColor(clr.NRGBA())
	opts.Filter = ebiten.FilterNearest
	self.destination().DrawImage(source.SubImage(src).(*ebiten.Image), &opts)
}

func (self *Target) drawTile(tile Tile, origin image.Point) {
	opts := ebiten.DrawImageOptions{}
	opts.GeoM.Translate(float64(origin.X), float64(origin.Y))
	self.destination().DrawImage(tile, &opts)
}
