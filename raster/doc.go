// The raster subpackage implements the triangle rasterization
// algorithms used by etri: edge functions with a top-left fill
// convention, barycentric attribute interpolation, a generic
// rasterizer for textured and shaded triangles, and a scanline
// rasterizer for flat colored triangles.
//
// Rasterizers don't know about render targets or caches. They work
// on a local width x height area and hand the resulting pixels to a
// [Plotter]. Pixel (x, y) is covered when its center (x + 0.5, y + 0.5)
// lies inside the triangle. For centers lying exactly on an edge, the
// top-left rule decides, so two triangles sharing an edge never both
// claim a pixel and never leave a gap between them.
//
// All the math is done with [fract.Unit] values. Coordinates are
// expected to stay within a few thousand pixels, which is always the
// case for the local areas used by etri.
package raster
