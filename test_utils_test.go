package etri

import "os"
import "fmt"
import "image"
import "image/png"

func doesNotPanic(function func()) (didNotPanic bool) {
	didNotPanic = true
	defer func() { didNotPanic = (recover() == nil) }()
	function()
	return
}

// Writes the image as a PNG, useful to inspect failing tests.
func debugExport(name string, img image.Image) {
	file, err := os.Create(name)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	err = png.Encode(file, img)
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
	err = file.Close()
	if err != nil {
		fmt.Println(err)
		os.Exit(1)
	}
}

// Creates an opaque texture where each texel has a distinct color.
func newGradientTexture(width, height int) *Texture {
	pixels := image.NewNRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			offset := pixels.PixOffset(x, y)
			pixels.Pix[offset + 0] = uint8(x*255/max(width - 1, 1))
			pixels.Pix[offset + 1] = uint8(y*255/max(height - 1, 1))
			pixels.Pix[offset + 2] = uint8((x + y)*7)
			pixels.Pix[offset + 3] = 255
		}
	}
	texture, err := NewTexture(pixels, nil)
	if err != nil { panic(err) }
	return texture
}
