package raster

import "github.com/tinne26/etri/fract"
import "github.com/tinne26/etri/shade"

// Rasterizes a textured triangle with per-vertex colors into a
// width x height area. For every covered pixel, the texture is
// sampled at the interpolated UV and modulated by the interpolated
// vertex color. A nil sampler is treated as a white texture.
//
// Degenerate triangles are skipped and make the function return false.
func DrawTriangle(plotter Plotter, triangle Triangle, sampler Sampler, width, height int) bool {
	a, b, c := triangle[0], triangle[1], triangle[2]
	basis := NewBasis(a.Pos, b.Pos, c.Pos)
	if basis.Degenerate() { return false }
	if basis.Divisor < 0 { // reorient so the inner side is positive
		b, c = c, b
		basis = NewBasis(a.Pos, b.Pos, c.Pos)
	}

	// edge functions
	line0 := NewLineFromPoints(a.Pos, b.Pos)
	line1 := NewLineFromPoints(b.Pos, c.Pos)
	line2 := NewLineFromPoints(c.Pos, a.Pos)

	// attribute equations
	ca, cb, cc := shade.FromPacked(a.Color), shade.FromPacked(b.Color), shade.FromPacked(c.Color)
	texU   := Equation{ &basis, [3]fract.Unit{a.UV.X, b.UV.X, c.UV.X} }
	texV   := Equation{ &basis, [3]fract.Unit{a.UV.Y, b.UV.Y, c.UV.Y} }
	shadeR := Equation{ &basis, [3]fract.Unit{ca.R, cb.R, cc.R} }
	shadeG := Equation{ &basis, [3]fract.Unit{ca.G, cb.G, cc.G} }
	shadeB := Equation{ &basis, [3]fract.Unit{ca.B, cb.B, cc.B} }
	shadeA := Equation{ &basis, [3]fract.Unit{ca.A, cb.A, cc.A} }

	minX, minY, maxX, maxY := coveredArea(fract.BoundingRect(a.Pos, b.Pos, c.Pos), width, height)
	if minX >= maxX || minY >= maxY { return true }

	dx0, dy0 := line0.steps()
	dx1, dy1 := line1.steps()
	dx2, dy2 := line2.steps()
	startX, startY := pixelCenter(minX), pixelCenter(minY)
	row0 := line0.Evaluate(startX, startY)
	row1 := line1.Evaluate(startX, startY)
	row2 := line2.Evaluate(startX, startY)
	for y := minY; y < maxY; y++ {
		e0, e1, e2 := row0, row1, row2
		for x := minX; x < maxX; x++ {
			if line0.IsInsideValue(e0) && line1.IsInsideValue(e1) && line2.IsInsideValue(e2) {
				sx, sy := pixelCenter(x), pixelCenter(y)
				w1, w2, w3 := basis.Weights(sx, sy)
				clr := shade.Color{
					R: shadeR.Apply(w1, w2, w3),
					G: shadeG.Apply(w1, w2, w3),
					B: shadeB.Apply(w1, w2, w3),
					A: shadeA.Apply(w1, w2, w3),
				}
				if sampler != nil {
					texel := sampler.Sample(texU.Apply(w1, w2, w3), texV.Apply(w1, w2, w3))
					clr = texel.Mul(clr)
				}
				plotter.Plot(x, y, clr)
			}
			e0 += dx0
			e1 += dx1
			e2 += dx2
		}
		row0 += dy0
		row1 += dy1
		row2 += dy2
	}
	return true
}
