package shade

import "image/color"

import "github.com/tinne26/etri/fract"

// Opaque white, the neutral color for modulation.
var White = Color{ R: fract.One, G: fract.One, B: fract.One, A: fract.One }

// Non-premultiplied color with [fract.Unit] channels. Values
// are expected to stay in the [0, 1] range.
type Color struct {
	R, G, B, A fract.Unit
}

// Unpacks a 0xAABBGGRR color, normalizing each byte to [0, 1].
func FromPacked(packed uint32) Color {
	return Color{
		R: fract.FromByte(uint8(packed >>  0)),
		G: fract.FromByte(uint8(packed >>  8)),
		B: fract.FromByte(uint8(packed >> 16)),
		A: fract.FromByte(uint8(packed >> 24)),
	}
}

// Creates a color from a non-premultiplied [color.NRGBA].
func FromNRGBA(rgba color.NRGBA) Color {
	return FromPacked(Pack(rgba.R, rgba.G, rgba.B, rgba.A))
}

// Packs four bytes as 0xAABBGGRR.
func Pack(r, g, b, a uint8) uint32 {
	return uint32(r) | uint32(g) << 8 | uint32(b) << 16 | uint32(a) << 24
}

// Per-channel modulation.
func (self Color) Mul(other Color) Color {
	return Color{
		R: self.R.Mul(other.R),
		G: self.G.Mul(other.G),
		B: self.B.Mul(other.B),
		A: self.A.Mul(other.A),
	}
}

// Packs the color back to 0xAABBGGRR. Channels are scaled by 255
// and truncated, each masked to a single byte.
func (self Color) Packed() uint32 {
	return uint32(channelByte(self.R)) |
	       uint32(channelByte(self.G)) <<  8 |
	       uint32(channelByte(self.B)) << 16 |
	       uint32(channelByte(self.A)) << 24
}

// Returns whether the alpha channel is zero once packed.
func (self Color) IsTransparent() bool {
	return channelByte(self.A) == 0
}

// Returns the packed bytes as a [color.NRGBA].
func (self Color) NRGBA() color.NRGBA {
	return Unpack(self.Packed())
}

// Returns the packed bytes as an alpha premultiplied [color.RGBA],
// ready for source-over compositing.
func (self Color) RGBA() color.RGBA {
	nrgba := self.NRGBA()
	a := uint16(nrgba.A)
	return color.RGBA{
		R: uint8(uint16(nrgba.R)*a/255),
		G: uint8(uint16(nrgba.G)*a/255),
		B: uint8(uint16(nrgba.B)*a/255),
		A: nrgba.A,
	}
}

// Splits a packed 0xAABBGGRR color into a [color.NRGBA].
func Unpack(packed uint32) color.NRGBA {
	return color.NRGBA{
		R: uint8(packed >>  0),
		G: uint8(packed >>  8),
		B: uint8(packed >> 16),
		A: uint8(packed >> 24),
	}
}

func channelByte(value fract.Unit) uint8 {
	return uint8(int(value.ToFloat64()*255) & 0xFF)
}
