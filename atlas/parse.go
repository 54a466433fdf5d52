package atlas

import "os"
import "fmt"
import "errors"
import "strings"

import "golang.org/x/image/font"
import "golang.org/x/image/font/opentype"

// Returned when trying to load a font from a path that doesn't
// end in .ttf or .otf.
var ErrInvalidFontPath = errors.New("invalid font path")

// Parses the .ttf or .otf font at the given path and creates
// a face with the given size in pixels.
func LoadFace(path string, size float64) (font.Face, error) {
	if !hasValidFontExtension(path) {
		return nil, fmt.Errorf("%w '%s'", ErrInvalidFontPath, path)
	}
	fontBytes, err := os.ReadFile(path)
	if err != nil { return nil, fmt.Errorf("loading font: %w", err) }
	return ParseFace(fontBytes, size)
}

// Parses the given font data and creates a face with the given
// size in pixels. The bytes must not be modified while the face
// is in use.
func ParseFace(fontBytes []byte, size float64) (font.Face, error) {
	parsed, err := opentype.Parse(fontBytes)
	if err != nil { return nil, fmt.Errorf("parsing font: %w", err) }
	face, err := opentype.NewFace(parsed, &opentype.FaceOptions{
		Size: size,
		DPI: 72, // size in pixels
		Hinting: font.HintingFull,
	})
	if err != nil { return nil, fmt.Errorf("creating face: %w", err) }
	return face, nil
}

// Whether font path ends in .ttf or .otf.
func hasValidFontExtension(path string) bool {
	lower := strings.ToLower(path)
	return strings.HasSuffix(lower, ".ttf") || strings.HasSuffix(lower, ".otf")
}
