//go:build gtxt

package drawlist

import "image"
import "image/color"
import "testing"

import "github.com/tinne26/etri"
import "github.com/tinne26/etri/atlas"

func TestRenderBuilder(t *testing.T) {
	font := atlas.Default()
	texture, err := font.Texture()
	if err != nil { t.Fatal(err) }

	builder := New()
	builder.SetTexture(texture)
	builder.AddRectFilled(0, 0, 32, 32, 0xFF402010)
	builder.AddLine(0, 40, 32, 40, 0xFFFFFFFF, 2)
	builder.AddCircleFilled(48, 16, 10, 0xFF0000FF, 0)
	builder.AddText(font, 2, 2, 0xFFFFFFFF, "ok")

	surface := image.NewRGBA(image.Rect(0, 0, 64, 64))
	target := etri.NewTarget(surface, nil)
	target.Render(&etri.DrawData{ Lists: []*etri.DrawList{builder.List()} })

	stats := target.Stats()
	if stats.Rectangles != 4 { t.Fatalf("expected rect, line and glyphs as rectangles, got %+v", stats) }
	if stats.UniformTriangles == 0 || stats.GenericTriangles != 0 {
		t.Fatalf("expected the circle on the flat rasterizer, got %+v", stats)
	}

	if surface.RGBAAt(30, 30) != (color.RGBA{0x10, 0x20, 0x40, 0xFF}) {
		t.Fatalf("unexpected rect color %v", surface.RGBAAt(30, 30))
	}
	if surface.RGBAAt(48, 16) != (color.RGBA{0xFF, 0, 0, 0xFF}) {
		t.Fatalf("unexpected circle color %v", surface.RGBAAt(48, 16))
	}
	if surface.RGBAAt(10, 40) != (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) {
		t.Fatalf("unexpected line color %v", surface.RGBAAt(10, 40))
	}

	// text pixels are white over the rect color
	var white int
	for y := 2; y < 15; y++ {
		for x := 2; x < 16; x++ {
			if surface.RGBAAt(x, y) == (color.RGBA{0xFF, 0xFF, 0xFF, 0xFF}) { white += 1 }
		}
	}
	if white == 0 { t.Fatal("text not drawn") }
}
