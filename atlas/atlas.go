package atlas

import "image"
import "unicode/utf8"

import "golang.org/x/image/draw"
import "golang.org/x/image/font"
import "golang.org/x/image/font/basicfont"
import "golang.org/x/image/math/fixed"

import "github.com/tinne26/etri"

// Size of the opaque white block at the atlas origin.
const whiteBlockSize = 4

// Atlas width in pixels. Height depends on the glyphs.
const atlasWidth = 256

// Separation between atlas cells, in pixels.
const cellSpacing = 1

// Rune used for glyphs missing from the atlas.
const fallbackRune = '?'

// A glyph cell within an [Atlas].
type Glyph struct {
	Rect    image.Rectangle // texels in the atlas image
	Offset  image.Point     // from the pen position on the baseline to Rect's top-left
	Advance int

	// Normalized texture coordinates of Rect.
	U0, V0, U1, V1 float32
}

// A font atlas image with glyph cells and a white texel block.
type Atlas struct {
	img *image.NRGBA
	glyphs map[rune]Glyph
	lineHeight int
	ascent int
}

// Returns the printable ASCII runes.
func ASCII() []rune {
	runes := make([]rune, 0, 95)
	for r := rune(' '); r <= '~'; r++ {
		runes = append(runes, r)
	}
	return runes
}

// Creates an atlas with [basicfont.Face7x13] and the ASCII runes.
//
// [basicfont.Face7x13]: https://pkg.go.dev/golang.org/x/image/font/basicfont#Face7x13
func Default() *Atlas {
	return New(basicfont.Face7x13, ASCII())
}

// Creates an atlas for the given face and runes. Runes not
// supported by the face are skipped. If runes is empty, the
// ASCII runes are used.
func New(face font.Face, runes []rune) *Atlas {
	if len(runes) == 0 { runes = ASCII() }

	// lay out cells in shelves
	type cell struct {
		r rune
		glyph Glyph
		mask image.Image
		maskp image.Point
	}
	cells := make([]cell, 0, len(runes))
	x, y := whiteBlockSize + cellSpacing, 0
	shelfHeight := whiteBlockSize
	for _, r := range runes {
		dr, mask, maskp, advance, ok := face.Glyph(fixed.Point26_6{}, r)
		if !ok { continue }
		width, height := dr.Dx(), dr.Dy()
		if x + width > atlasWidth {
			x, y = 0, y + shelfHeight + cellSpacing
			shelfHeight = 0
		}
		cells = append(cells, cell{
			r: r,
			glyph: Glyph{
				Rect: image.Rect(x, y, x + width, y + height),
				Offset: dr.Min,
				Advance: advance.Round(),
			},
			mask: mask,
			maskp: maskp,
		})
		x += width + cellSpacing
		shelfHeight = max(shelfHeight, height)
	}

	// draw white block and glyph masks
	img := image.NewNRGBA(image.Rect(0, 0, atlasWidth, y + shelfHeight))
	draw.Draw(img, image.Rect(0, 0, whiteBlockSize, whiteBlockSize), image.White, image.Point{}, draw.Src)
	glyphs := make(map[rune]Glyph, len(cells))
	width, height := float32(img.Rect.Dx()), float32(img.Rect.Dy())
	for _, cell := range cells {
		glyph := cell.glyph
		if cell.mask != nil && !glyph.Rect.Empty() {
			draw.DrawMask(img, glyph.Rect, image.White, image.Point{}, cell.mask, cell.maskp, draw.Over)
		}
		glyph.U0, glyph.V0 = float32(glyph.Rect.Min.X)/width, float32(glyph.Rect.Min.Y)/height
		glyph.U1, glyph.V1 = float32(glyph.Rect.Max.X)/width, float32(glyph.Rect.Max.Y)/height
		glyphs[cell.r] = glyph
	}

	metrics := face.Metrics()
	return &Atlas{
		img: img,
		glyphs: glyphs,
		lineHeight: metrics.Height.Ceil(),
		ascent: metrics.Ascent.Ceil(),
	}
}

// Returns the glyph for the given rune. Missing runes return
// the glyph for '?' if available.
func (self *Atlas) Glyph(r rune) (Glyph, bool) {
	glyph, found := self.glyphs[r]
	if found { return glyph, true }
	glyph, found = self.glyphs[fallbackRune]
	return glyph, found
}

// Returns the atlas image. The image must not be modified.
func (self *Atlas) Image() *image.NRGBA {
	return self.img
}

// Returns the position of a texel at the center of the white block.
func (self *Atlas) WhiteTexel() image.Point {
	return image.Pt(whiteBlockSize/2 - 1, whiteBlockSize/2 - 1)
}

// Returns the normalized texture coordinates of the white texel center.
func (self *Atlas) WhiteUV() (u, v float32) {
	texel := self.WhiteTexel()
	u = float32((float64(texel.X) + 0.5)/float64(self.img.Rect.Dx()))
	v = float32((float64(texel.Y) + 0.5)/float64(self.img.Rect.Dy()))
	return u, v
}

// Returns the distance between consecutive baselines, in pixels.
func (self *Atlas) LineHeight() int { return self.lineHeight }

// Returns the distance from the top of a line to its baseline.
func (self *Atlas) Ascent() int { return self.ascent }

// Returns the size of the given text in pixels. Lines are
// separated by '\n'.
func (self *Atlas) Measure(text string) (width, height int) {
	if text == "" { return 0, 0 }
	var lineWidth int
	lines := 1
	for len(text) > 0 {
		r, size := utf8.DecodeRuneInString(text)
		text = text[size : ]
		if r == '\n' {
			lines += 1
			lineWidth = 0
			continue
		}
		glyph, found := self.Glyph(r)
		if found { lineWidth += glyph.Advance }
		width = max(width, lineWidth)
	}
	return width, lines*self.lineHeight
}

// Creates an etri texture for the atlas, with its white texel set.
func (self *Atlas) Texture() (*etri.Texture, error) {
	texture, err := etri.NewTexture(self.img, nil)
	if err != nil { return nil, err }
	texture.WhiteTexel = self.WhiteTexel()
	return texture, nil
}
