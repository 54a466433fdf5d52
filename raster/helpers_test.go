package raster

import "github.com/tinne26/etri/fract"
import "github.com/tinne26/etri/geom"
import "github.com/tinne26/etri/shade"

// Plotter recording how many times each pixel was plotted
// and the last color plotted on it.
type gridPlotter struct {
	width, height int
	counts []int
	colors []shade.Color
}

func newGridPlotter(width, height int) *gridPlotter {
	return &gridPlotter{
		width: width, height: height,
		counts: make([]int, width*height),
		colors: make([]shade.Color, width*height),
	}
}

func (self *gridPlotter) Plot(x, y int, clr shade.Color) {
	if x < 0 || y < 0 || x >= self.width || y >= self.height {
		panic("plot out of bounds")
	}
	self.counts[y*self.width + x] += 1
	self.colors[y*self.width + x] = clr
}

func (self *gridPlotter) Count(x, y int) int {
	return self.counts[y*self.width + x]
}

func (self *gridPlotter) Covered() int {
	total := 0
	for _, count := range self.counts {
		if count > 0 { total += 1 }
	}
	return total
}

// Sampler that returns red for u < 0.5 and blue otherwise.
type splitSampler struct{}

func (splitSampler) Sample(u, v fract.Unit) shade.Color {
	if u < fract.Half { return shade.FromPacked(0xFF0000FF) }
	return shade.FromPacked(0xFFFF0000)
}

func vert(x, y, u, v float32, clr uint32) geom.Vertex {
	return geom.NewVertex(x, y, u, v, clr)
}

func pt(x, y float64) fract.Point {
	return fract.UnitsToPoint(fract.FromFloat64(x), fract.FromFloat64(y))
}
