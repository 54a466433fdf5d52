//go:build gtxt

package etri

import "image"
import "image/color"

import "golang.org/x/image/draw"

import "github.com/tinne26/etri/cache"
import "github.com/tinne26/etri/shade"

type TargetImage = draw.Image
type SourceImage = image.Image
type Tile = cache.Tile

func newSourceImage(pixels *image.NRGBA) SourceImage { return pixels }

// this doesn't do anything in gtxt, the staged pixels are the tile
func newTile(pixels *image.RGBA) Tile { return pixels }
func releaseTile(Tile) {}

// A draw.Image whose bounds are restricted to a clip rect. Drawing
// operations clip to the destination bounds, so this is enough to
// honor the target's clip rect without changing any coordinates.
type clippedImage struct {
	draw.Image
	clip image.Rectangle
}

func (self clippedImage) Bounds() image.Rectangle {
	return self.clip
}

func (self *Target) destination() draw.Image {
	if !self.clipEnabled { return self.surface }
	return clippedImage{ self.surface, self.Clip() }
}

func (self *Target) fillRect(rect image.Rectangle, clr shade.Color) {
	draw.Draw(self.destination(), rect, image.NewUniform(clr.RGBA()), image.Point{}, draw.Over)
}

func (self *Target) blitRect(dst image.Rectangle, texture *Texture, src image.Rectangle, clr shade.Color) {
	source := texture.presentable()
	src = src.Add(source.Bounds().Min)
	if clr != shade.White {
		source = modulatedImage{ source, clr }
	}
	draw.NearestNeighbor.Scale(self.destination(), dst, source, src, draw.Over, nil)
}

func (self *Target) drawTile(tile Tile, origin image.Point) {
	bounds := tile.Bounds()
	draw.Draw(self.destination(), bounds.Sub(bounds.Min).Add(origin), tile, bounds.Min, draw.Over)
}

// An image with all its colors multiplied by the given one.
type modulatedImage struct {
	image.Image
	clr shade.Color
}

func (self modulatedImage) ColorModel() color.Model {
	return color.RGBAModel
}

func (self modulatedImage) At(x, y int) color.Color {
	texel := color.NRGBAModel.Convert(self.Image.At(x, y)).(color.NRGBA)
	return shade.FromNRGBA(texel).Mul(self.clr).RGBA()
}
