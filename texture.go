package etri

import "fmt"
import "image"
import "errors"
import "sync/atomic"

import "golang.org/x/image/draw"

import "github.com/tinne26/etri/fract"
import "github.com/tinne26/etri/shade"

// Returned when creating a texture without pixels.
var ErrEmptyTexture = errors.New("etri: empty texture")

var textureCounter atomic.Uint64

// A texture referenced by draw commands. Textures are read-only
// for etri and owned by the caller.
type Texture struct {
	// CPU-side pixels, used for sampling. Textures without pixels
	// sample as white and are drawn like solid fills.
	Pixels *image.NRGBA

	// Presentable version of the pixels, used to blit textured
	// rectangles. Created from Pixels on first use if nil.
	Source SourceImage

	// Position of an opaque white texel, relative to the pixels'
	// bounds. Geometry whose texture coordinates all point to its
	// center uses only vertex colors. Defaults to (0, 0).
	WhiteTexel image.Point

	id uint64
}

// Creates a texture from the given pixels. The presentable source
// can be nil.
func NewTexture(pixels *image.NRGBA, source SourceImage) (*Texture, error) {
	if pixels == nil || pixels.Rect.Empty() {
		Logger().Warn("texture has no pixels")
		return nil, ErrEmptyTexture
	}
	return &Texture{
		Pixels: pixels,
		Source: source,
		id: textureCounter.Add(1),
	}, nil
}

// Creates a texture by copying the given image.
func NewTextureFromImage(img image.Image) (*Texture, error) {
	if img == nil { return nil, ErrEmptyTexture }
	bounds := img.Bounds()
	if bounds.Empty() {
		return nil, fmt.Errorf("image bounds %v: %w", bounds, ErrEmptyTexture)
	}
	pixels := image.NewNRGBA(image.Rect(0, 0, bounds.Dx(), bounds.Dy()))
	draw.Draw(pixels, pixels.Rect, img, bounds.Min, draw.Src)
	return NewTexture(pixels, nil)
}

// Returns the texture's unique identifier. Identifiers are never
// zero, which is reserved for solid fills.
func (self *Texture) ID() uint64 {
	if self == nil { return 0 }
	if self.id == 0 { self.id = textureCounter.Add(1) } // texture created without NewTexture
	return self.id
}

// Returns the size of the texture in pixels.
func (self *Texture) Size() (width, height int) {
	if !self.hasPixels() { return 0, 0 }
	return self.Pixels.Rect.Dx(), self.Pixels.Rect.Dy()
}

func (self *Texture) hasPixels() bool {
	return self != nil && self.Pixels != nil && !self.Pixels.Rect.Empty()
}

// Returns the normalized texture coordinates of the white texel center.
func (self *Texture) WhiteUV() fract.Point {
	return fract.Float32sToPoint(self.WhiteCoords())
}

// Same as [Texture.WhiteUV](), but as float32 values ready to be
// used in [Vert] texture coordinates. Textures without pixels
// return (0, 0).
func (self *Texture) WhiteCoords() (u, v float32) {
	if !self.hasPixels() { return 0, 0 }
	width, height := self.Size()
	u = float32((float64(self.WhiteTexel.X) + 0.5)/float64(width))
	v = float32((float64(self.WhiteTexel.Y) + 0.5)/float64(height))
	return u, v
}

// Returns the nearest texel color for the given normalized texture
// coordinates. Out of range coordinates are clamped to the edges.
// Textures without pixels always return white.
func (self *Texture) Sample(u, v fract.Unit, mode SamplingMode) shade.Color {
	if !self.hasPixels() { return shade.White }
	width, height := self.Size()
	x, y := mode.texel(u, width), mode.texel(v, height)

	rect := self.Pixels.Rect
	offset := self.Pixels.PixOffset(rect.Min.X + x, rect.Min.Y + y)
	pix := self.Pixels.Pix[offset : offset + 4 : offset + 4]
	return shade.FromPacked(shade.Pack(pix[0], pix[1], pix[2], pix[3]))
}

// Returns the texel rectangle covered by the given texture
// coordinates, relative to the pixels' bounds. The result is
// clamped to the texture and never empty.
func (self *Texture) texelRect(uv fract.Rect) image.Rectangle {
	width, height := self.Size()
	minX, maxX := texelSpan(uv.Min.X, uv.Max.X, width)
	minY, maxY := texelSpan(uv.Min.Y, uv.Max.Y, height)
	return image.Rect(minX, minY, maxX, maxY)
}

func (self *Texture) presentable() SourceImage {
	if self.Source == nil { self.Source = newSourceImage(self.Pixels) }
	return self.Source
}

func texelSpan(from, to fract.Unit, size int) (int, int) {
	start := clampInt(from.Mul(fract.FromInt(size)).ToIntHalfUp(), 0, size - 1)
	end   := clampInt(to.Mul(fract.FromInt(size)).ToIntHalfUp(), start + 1, size)
	return start, end
}

func clampInt(value, lo, hi int) int {
	if value < lo { return lo }
	if value > hi { return hi }
	return value
}

// The texture sampler used during rasterization.
type textureSampler struct {
	texture *Texture
	mode SamplingMode
}

func (self textureSampler) Sample(u, v fract.Unit) shade.Color {
	return self.texture.Sample(u, v, self.mode)
}
