package raster

import "testing"

import "github.com/tinne26/etri/fract"

func TestLineCoefficients(t *testing.T) {
	line := NewLine(fract.FromInt(1), fract.FromInt(2), fract.FromInt(5), fract.FromInt(-1))
	if line.A != fract.FromInt(3) || line.B != fract.FromInt(4) {
		t.Fatalf("unexpected coefficients A = %d, B = %d", line.A, line.B)
	}
	// C = -(A*(x0 + x1) + B*(y0 + y1))/2 = -(3*6 + 4*1)/2 = -11
	if line.C != fract.FromInt(-11).MulWide(fract.One) {
		t.Fatalf("unexpected C %d", line.C)
	}
	if !line.Tie { t.Fatal("expected tie flag for A > 0") }
	if line.Evaluate(fract.FromInt(1), fract.FromInt(2)) != 0 { t.Fatal("expected zero at p0") }
	if line.Evaluate(fract.FromInt(5), fract.FromInt(-1)) != 0 { t.Fatal("expected zero at p1") }
}

func TestLineTie(t *testing.T) {
	tests := []struct {
		x0, y0, x1, y1 float64
		tie bool
	}{
		{0, 0, 10, 0, true},   // horizontal, B > 0
		{10, 0, 0, 0, false},  // horizontal, B < 0
		{0, 10, 0, 0, true},   // going up, A > 0
		{0, 0, 0, 10, false},  // going down, A < 0
		{10, 0, 0, 10, false}, // down-left
		{0, 10, 10, 0, true},  // up-right
	}
	for i, test := range tests {
		line := NewLineFromPoints(pt(test.x0, test.y0), pt(test.x1, test.y1))
		if line.Tie != test.tie {
			t.Fatalf("test #%d: expected tie = %t", i, test.tie)
		}
	}
}

func TestSharedEdgeExclusive(t *testing.T) {
	edges := [][4]float64{
		{0, 0, 8, 8}, {8, 0, 0, 8}, {1.25, 0.5, 7.5, 9}, {0, 3, 16, 3},
		{3, 0, 3, 16}, {2.5, 7, 9.75, 1.25}, {0.5, 0.5, 1.5, 12.5},
	}
	for i, edge := range edges {
		p0, p1 := pt(edge[0], edge[1]), pt(edge[2], edge[3])
		forward  := NewLineFromPoints(p0, p1)
		backward := NewLineFromPoints(p1, p0)

		// points along the edge itself
		const steps = 64
		for s := 0; s <= steps; s++ {
			x := p0.X + (p1.X - p0.X)/steps*fract.Unit(s)
			y := p0.Y + (p1.Y - p0.Y)/steps*fract.Unit(s)
			if forward.IsInside(x, y) == backward.IsInside(x, y) {
				t.Fatalf("edge #%d, step %d: point claimed by both or none", i, s)
			}
		}

		// pixel centers around the edge
		for y := 0; y < 16; y++ {
			for x := 0; x < 16; x++ {
				cx, cy := pixelCenter(x), pixelCenter(y)
				if forward.IsInside(cx, cy) == backward.IsInside(cx, cy) {
					t.Fatalf("edge #%d, pixel (%d, %d): claimed by both or none", i, x, y)
				}
			}
		}
	}
}

func TestSharedEdgeTriangles(t *testing.T) {
	const size = 12
	white := uint32(0xFFFFFFFF)
	quads := [][4][2]float32{
		{{0, 0}, {12, 0}, {12, 12}, {0, 12}},
		{{1.5, 0.5}, {10.25, 2}, {11, 11.5}, {0.5, 9}},
		{{6, 0}, {12, 6}, {6, 12}, {0, 6}},
	}
	for i, quad := range quads {
		a := vert(quad[0][0], quad[0][1], 0, 0, white)
		b := vert(quad[1][0], quad[1][1], 0, 0, white)
		c := vert(quad[2][0], quad[2][1], 0, 0, white)
		d := vert(quad[3][0], quad[3][1], 0, 0, white)

		plotter := newGridPlotter(size, size)
		DrawTriangle(plotter, Triangle{a, b, c}, nil, size, size)
		DrawTriangle(plotter, Triangle{a, d, c}, nil, size, size) // opposite winding
		for y := 0; y < size; y++ {
			for x := 0; x < size; x++ {
				if plotter.Count(x, y) > 1 {
					t.Fatalf("quad #%d: pixel (%d, %d) drawn twice", i, x, y)
				}
			}
		}
		if i == 0 && plotter.Covered() != size*size {
			t.Fatalf("quad #%d: expected full coverage, got %d pixels", i, plotter.Covered())
		}
	}
}
