package etri

import "image"

import "github.com/tinne26/etri/shade"

// CPU tile that triangles are rasterized into before being
// converted to a [cache.Tile]. Pixels are composited with
// premultiplied source over.
type tileStage struct {
	*image.RGBA
}

func newTileStage(width, height int) tileStage {
	return tileStage{ image.NewRGBA(image.Rect(0, 0, width, height)) }
}

func (self tileStage) Plot(x, y int, clr shade.Color) {
	src := clr.RGBA()
	if src.A == 0 { return }
	offset := self.PixOffset(x, y)
	pix := self.Pix[offset : offset + 4 : offset + 4]
	if src.A == 255 {
		pix[0], pix[1], pix[2], pix[3] = src.R, src.G, src.B, 255
		return
	}

	inv := 255 - uint32(src.A)
	pix[0] = src.R + uint8((uint32(pix[0])*inv + 127)/255)
	pix[1] = src.G + uint8((uint32(pix[1])*inv + 127)/255)
	pix[2] = src.B + uint8((uint32(pix[2])*inv + 127)/255)
	pix[3] = src.A + uint8((uint32(pix[3])*inv + 127)/255)
}
