// The atlas subpackage builds font atlas textures for immediate-mode
// GUIs drawn with etri.
//
// An [Atlas] packs the glyphs of a [font.Face] into a single image,
// with a small block of opaque white texels at the top left corner.
// Solid shapes use the center of that block as their texture
// coordinate, which allows etri to detect that they don't depend
// on the texture and draw them with the faster paths.
//
// [font.Face]: https://pkg.go.dev/golang.org/x/image/font#Face
package atlas
