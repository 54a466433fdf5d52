package atlas

import "image"
import "errors"
import "testing"
import "image/color"

import "golang.org/x/image/font/gofont/goregular"

import "github.com/tinne26/etri/fract"

func TestDefaultAtlas(t *testing.T) {
	atlas := Default()
	img := atlas.Image()
	if img.Rect.Dx() != atlasWidth || img.Rect.Dy() <= 0 {
		t.Fatalf("unexpected atlas bounds %v", img.Rect)
	}

	white := color.NRGBA{255, 255, 255, 255}
	for y := 0; y < whiteBlockSize; y++ {
		for x := 0; x < whiteBlockSize; x++ {
			if img.NRGBAAt(x, y) != white { t.Fatalf("white block texel (%d, %d) is %v", x, y, img.NRGBAAt(x, y)) }
		}
	}
	if atlas.WhiteTexel() != image.Pt(1, 1) { t.Fatalf("unexpected white texel %v", atlas.WhiteTexel()) }

	for _, r := range ASCII() {
		glyph, found := atlas.Glyph(r)
		if !found { t.Fatalf("missing glyph for %q", r) }
		if glyph.Advance != 7 { t.Fatalf("%q: expected advance 7, got %d", r, glyph.Advance) }
		if !glyph.Rect.In(img.Rect) { t.Fatalf("%q: cell %v outside the atlas", r, glyph.Rect) }
		if glyph.Rect.Overlaps(image.Rect(0, 0, whiteBlockSize, whiteBlockSize)) {
			t.Fatalf("%q: cell overlaps the white block", r)
		}
		if glyph.U0 < 0 || glyph.V0 < 0 || glyph.U1 > 1 || glyph.V1 > 1 || glyph.U0 >= glyph.U1 {
			t.Fatalf("%q: invalid uvs %v", r, glyph)
		}
	}

	glyphA, _ := atlas.Glyph('A')
	glyphB, _ := atlas.Glyph('B')
	if glyphA.Rect.Overlaps(glyphB.Rect) { t.Fatal("glyph cells overlap") }
	if glyphA.Offset.Y >= 0 { t.Fatalf("expected glyph above the baseline, offset %v", glyphA.Offset) }

	var opaque int
	for y := glyphA.Rect.Min.Y; y < glyphA.Rect.Max.Y; y++ {
		for x := glyphA.Rect.Min.X; x < glyphA.Rect.Max.X; x++ {
			if img.NRGBAAt(x, y).A != 0 { opaque += 1 }
		}
	}
	if opaque == 0 { t.Fatal("glyph 'A' was not drawn") }

	fallback, found := atlas.Glyph('☃')
	question, _ := atlas.Glyph('?')
	if !found || fallback != question { t.Fatal("expected '?' fallback glyph") }
}

func TestMeasure(t *testing.T) {
	atlas := Default()
	tests := []struct {
		text string
		width, height int
	}{
		{"", 0, 0},
		{"AB", 14, 13},
		{"A\nBCD", 21, 26},
		{"ABC\n", 21, 26},
	}
	for _, test := range tests {
		width, height := atlas.Measure(test.text)
		if width != test.width || height != test.height {
			t.Fatalf("Measure(%q): expected %dx%d, got %dx%d", test.text, test.width, test.height, width, height)
		}
	}
}

func TestAtlasTexture(t *testing.T) {
	atlas := Default()
	texture, err := atlas.Texture()
	if err != nil { t.Fatal(err) }
	u, v := atlas.WhiteUV()
	if texture.WhiteUV() != fract.Float32sToPoint(u, v) {
		t.Fatalf("white uv mismatch: %v vs (%v, %v)", texture.WhiteUV(), u, v)
	}
}

func TestParseFace(t *testing.T) {
	face, err := ParseFace(goregular.TTF, 16)
	if err != nil { t.Fatal(err) }
	atlas := New(face, []rune("etri"))
	if len(atlas.glyphs) != 4 { t.Fatalf("expected 4 glyphs, got %d", len(atlas.glyphs)) }
	if atlas.LineHeight() < 16 { t.Fatalf("unexpected line height %d", atlas.LineHeight()) }

	_, err = ParseFace([]byte("not a font"), 16)
	if err == nil { t.Fatal("expected parse error") }
}

func TestLoadFace(t *testing.T) {
	_, err := LoadFace("font.png", 12)
	if !errors.Is(err, ErrInvalidFontPath) { t.Fatalf("expected ErrInvalidFontPath, got %v", err) }
	_, err = LoadFace("missing/font.TTF", 12)
	if err == nil || errors.Is(err, ErrInvalidFontPath) { t.Fatalf("expected file error, got %v", err) }
}
