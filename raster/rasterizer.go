package raster

import "github.com/tinne26/etri/fract"
import "github.com/tinne26/etri/geom"
import "github.com/tinne26/etri/shade"

// Plotter receives the pixels produced by the rasterizers. Coordinates
// are always within the area passed to the rasterization function.
type Plotter interface {
	Plot(x, y int, clr shade.Color)
}

// Sampler returns the texel color for normalized texture coordinates.
// Out of range coordinates must be tolerated.
type Sampler interface {
	Sample(u, v fract.Unit) shade.Color
}

// Three vertices with positions in the rasterization area's
// coordinates. Both windings are accepted.
type Triangle [3]geom.Vertex

// Pixel range (min inclusive, max exclusive) whose centers
// fall inside the given bounds, clipped to the area.
func coveredArea(bounds fract.Rect, width, height int) (minX, minY, maxX, maxY int) {
	covered := bounds.PixelCoverage()
	minX, minY = max(covered.Min.X, 0), max(covered.Min.Y, 0)
	maxX, maxY = min(covered.Max.X, width), min(covered.Max.Y, height)
	return
}

func pixelCenter(index int) fract.Unit {
	return fract.FromInt(index) + fract.Half
}
