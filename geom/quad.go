package geom

import "github.com/tinne26/etri/fract"

// Result of a successful [ClassifyQuad]() call.
type Quad struct {
	Bounds Bounds
	Color  uint32

	// Whether each corner's texture coordinate matches the
	// equivalent corner of the UV box, so the quad can be drawn
	// as a plain blit of the UV sub-rectangle. Flipped or rotated
	// UVs leave this false.
	UVAligned bool
}

// Detects whether six vertices (two triangles) form a uniformly
// colored axis-aligned rectangle.
//
// All vertices must share the same color and sit on the corners of
// their common bounding box, each triangle must use three distinct
// corners, and the two triangles must split the rectangle along the
// same diagonal. Anything else returns false and should be drawn as
// regular triangles.
func ClassifyQuad(vertices *[6]Vertex) (Quad, bool) {
	color := vertices[0].Color
	bounds := BoundsOf(vertices[0], vertices[1], vertices[2])
	for i := 1; i < 6; i++ {
		if vertices[i].Color != color { return Quad{}, false }
		if i >= 3 { bounds = bounds.Extend(vertices[i]) }
	}
	if bounds.Pos.Empty() { return Quad{}, false }

	var masks [2]uint8
	aligned := true
	for i, vertex := range vertices {
		if !bounds.IsOnExtreme(vertex.Pos) { return Quad{}, false }
		corner := cornerIndex(bounds.Pos, vertex.Pos)
		masks[i/3] |= 1 << corner
		if vertex.UV != uvCorner(bounds.UV, corner) { aligned = false }
	}

	// each triangle must leave out exactly one corner, and the
	// two left out corners must be opposite (xor 0b11)
	missingA, okA := missingCorner(masks[0])
	missingB, okB := missingCorner(masks[1])
	if !okA || !okB || missingA ^ missingB != 0b11 { return Quad{}, false }

	return Quad{ Bounds: bounds, Color: color, UVAligned: aligned }, true
}

// Corners are indexed with bit 0 set for the max x and
// bit 1 set for the max y.
func cornerIndex(rect fract.Rect, point fract.Point) uint8 {
	var index uint8
	if point.X == rect.Max.X { index |= 0b01 }
	if point.Y == rect.Max.Y { index |= 0b10 }
	return index
}

func uvCorner(uv fract.Rect, corner uint8) fract.Point {
	point := uv.Min
	if corner & 0b01 != 0 { point.X = uv.Max.X }
	if corner & 0b10 != 0 { point.Y = uv.Max.Y }
	return point
}

func missingCorner(mask uint8) (uint8, bool) {
	switch mask {
	case 0b1110: return 0, true
	case 0b1101: return 1, true
	case 0b1011: return 2, true
	case 0b0111: return 3, true
	default:
		return 0, false
	}
}
