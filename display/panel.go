package display

import "image"
import "image/color"
import "image/draw"

import "tinygo.org/x/drivers"

var _ draw.Image = (*Panel)(nil)

// Panel adapts a [drivers.Displayer] to draw.Image. Displayers
// can't be read, so the panel keeps a shadow copy of the pixels
// and only sends modified pixels to the device on [Panel.Flush]().
type Panel struct {
	device drivers.Displayer
	shadow *image.RGBA
	dirty  image.Rectangle
}

// Creates a panel for the given device, sized after it.
func NewPanel(device drivers.Displayer) *Panel {
	width, height := device.Size()
	return &Panel{
		device: device,
		shadow: image.NewRGBA(image.Rect(0, 0, int(width), int(height))),
	}
}

func (self *Panel) ColorModel() color.Model { return color.RGBAModel }
func (self *Panel) Bounds() image.Rectangle { return self.shadow.Rect }
func (self *Panel) At(x, y int) color.Color { return self.shadow.At(x, y) }

func (self *Panel) Set(x, y int, c color.Color) {
	point := image.Pt(x, y)
	if !point.In(self.shadow.Rect) { return }
	self.shadow.Set(x, y, c)
	self.dirty = self.dirty.Union(image.Rectangle{ Min: point, Max: point.Add(image.Pt(1, 1)) })
}

// Returns the shadow image. Changes made directly to it are not
// tracked by [Panel.Flush]().
func (self *Panel) Shadow() *image.RGBA {
	return self.shadow
}

// Returns the area modified since the last flush.
func (self *Panel) Dirty() image.Rectangle {
	return self.dirty
}

// Sends the modified area to the device and calls its Display() method.
func (self *Panel) Flush() error {
	for y := self.dirty.Min.Y; y < self.dirty.Max.Y; y++ {
		for x := self.dirty.Min.X; x < self.dirty.Max.X; x++ {
			self.device.SetPixel(int16(x), int16(y), self.shadow.RGBAAt(x, y))
		}
	}
	self.dirty = image.Rectangle{}
	return self.device.Display()
}
