// Package demo builds the draw lists shown by the example programs.
package demo

import "fmt"
import "image"
import "image/color"
import "math"

import "github.com/tinne26/etri"
import "github.com/tinne26/etri/atlas"
import "github.com/tinne26/etri/drawlist"

const checkerSize = 32

// A small animated scene exercising every draw path: flat and
// gouraud triangles, solid and textured rectangles, clipping,
// text and callbacks.
type Scene struct {
	font    *atlas.Atlas
	text    *etri.Texture
	checker *etri.Texture
	builder *drawlist.Builder
	overlay *drawlist.Builder

	// Called from the callback command placed between the scene
	// and the overlay list. Can be nil.
	OnCallback func()
}

// Creates the scene and its textures.
func NewScene() (*Scene, error) {
	font := atlas.Default()
	text, err := font.Texture()
	if err != nil { return nil, fmt.Errorf("atlas texture: %w", err) }
	checker, err := etri.NewTextureFromImage(newChecker(checkerSize))
	if err != nil { return nil, fmt.Errorf("checker texture: %w", err) }
	return &Scene{
		font: font,
		text: text,
		checker: checker,
		builder: drawlist.New(),
		overlay: drawlist.New(),
	}, nil
}

// Returns the font atlas used for text.
func (self *Scene) Font() *atlas.Atlas { return self.font }

// Builds the draw data for the given frame. The returned data
// is only valid until the next call.
func (self *Scene) Build(frame int, width, height int) *etri.DrawData {
	w, h := float32(width), float32(height)
	angle := float64(frame)*0.02
	cx, cy := w*0.5, h*0.5
	radius := float32(math.Min(float64(w), float64(h)))*0.3

	b := self.builder
	b.Reset()
	b.SetTexture(self.text)
	b.AddRectFilled(0, 0, w, h, 0xFF201818)
	b.AddRectFilledMultiColor(8, 8, w*0.3, h*0.2, 0xFF0000FF, 0xFF00FF00, 0xFFFF0000, 0xFFFFFFFF)

	// rotating gouraud triangle
	var pts [3][2]float32
	for i := range pts {
		a := angle + float64(i)*2*math.Pi/3
		pts[i] = [2]float32{ cx + radius*float32(math.Cos(a)), cy + radius*float32(math.Sin(a)) }
	}
	b.AddTriangleFilledMultiColor(
		pts[0][0], pts[0][1], pts[1][0], pts[1][1], pts[2][0], pts[2][1],
		0xFF3030E0, 0xFF30E030, 0xFFE03030,
	)

	// clipped circle and lines
	b.PushClipRect(etri.ClipRect{ X: 0, Y: height*6/10, Width: width/2, Height: height*4/10 })
	b.AddCircleFilled(w*0.25, h*0.8, radius*0.6, 0xC000A0FF, 0)
	for i := 0; i < 5; i++ {
		y := h*0.65 + float32(i)*8
		b.AddLine(4, y, w*0.5 + 20, y + float32(i)*4, 0xFFFFFFFF, 1 + float32(i)*0.5)
	}
	b.PopClipRect()

	// checker image, scrolling texture coordinates
	shift := float32(frame%checkerSize)/checkerSize
	b.AddImage(self.checker, w*0.6, h*0.6, w*0.6 + 96, h*0.6 + 96, shift, 0, shift + 2, 2, 0xFFFFFFFF)
	b.AddTriangleFilled(w - 8, 8, w - 8, 72, w - 72, 8, 0x8080FFFF)

	b.AddCallback(func(*etri.DrawList, *etri.DrawCmd) {
		if self.OnCallback != nil { self.OnCallback() }
	})

	o := self.overlay
	o.Reset()
	o.SetTexture(self.text)
	o.AddText(self.font, 10, h - float32(self.font.LineHeight()) - 6, 0xFFE0E0E0, fmt.Sprintf("frame %d", frame))

	return &etri.DrawData{ Lists: []*etri.DrawList{b.List(), o.List()} }
}

func newChecker(size int) *image.NRGBA {
	img := image.NewNRGBA(image.Rect(0, 0, size, size))
	light := color.NRGBA{220, 220, 220, 255}
	dark  := color.NRGBA{60, 60, 90, 255}
	for y := 0; y < size; y++ {
		for x := 0; x < size; x++ {
			if (x/(size/4) + y/(size/4))%2 == 0 {
				img.SetNRGBA(x, y, light)
			} else {
				img.SetNRGBA(x, y, dark)
			}
		}
	}
	return img
}
