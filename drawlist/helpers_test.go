package drawlist

import "image"

import "github.com/tinne26/etri"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

func newTestTexture() *etri.Texture {
	pixels := image.NewNRGBA(image.Rect(0, 0, 8, 8))
	for i := range pixels.Pix {
		pixels.Pix[i] = uint8(i*5)
	}
	texture, err := etri.NewTexture(pixels, nil)
	if err != nil { panic(err) }
	return texture
}
