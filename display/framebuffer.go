package display

import "image"
import "image/color"

import "tinygo.org/x/drivers"

var _ drivers.Displayer = (*Framebuffer)(nil)

// An in-memory display.
type Framebuffer struct {
	*image.RGBA
	frames int
}

// Creates a framebuffer of the given size. Sizes must fit
// in an int16.
func NewFramebuffer(width, height int) *Framebuffer {
	if width < 0 || height < 0 || width > 32767 || height > 32767 {
		panic("invalid framebuffer size")
	}
	return &Framebuffer{ RGBA: image.NewRGBA(image.Rect(0, 0, width, height)) }
}

func (self *Framebuffer) Size() (x, y int16) {
	return int16(self.Rect.Dx()), int16(self.Rect.Dy())
}

// Sets the pixel color. Out of bounds pixels are ignored.
func (self *Framebuffer) SetPixel(x, y int16, c color.RGBA) {
	point := image.Pt(int(x), int(y))
	if !point.In(self.Rect) { return }
	self.SetRGBA(point.X, point.Y, c)
}

func (self *Framebuffer) Display() error {
	self.frames += 1
	return nil
}

// Returns the number of times [Framebuffer.Display]() has been called.
func (self *Framebuffer) Frames() int {
	return self.frames
}
