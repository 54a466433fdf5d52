package etri

import "image"

// A vertex as produced by GUI toolkits. Positions are in display
// pixels, U and V are normalized texture coordinates and the color
// is packed as 0xAABBGGRR (red in the lowest byte).
type Vert struct {
	X, Y  float32
	U, V  float32
	Color uint32
}

// Everything needed to render a frame.
type DrawData struct {
	Lists []*DrawList

	// Top-left corner of the display in vertex coordinates. It's
	// subtracted from vertex positions and clip rects, so it maps
	// to the target's origin.
	DisplayPos image.Point
}

// A list of draw commands sharing vertex and index buffers.
type DrawList struct {
	Vertices []Vert
	Indices  []uint32
	Commands []DrawCmd
}

// A batch of triangles sharing the same clip rect and texture.
//
// Commands consume ElemCount indices from their list's index buffer
// in order. Commands with a callback don't draw anything themselves,
// but their indices are still consumed.
type DrawCmd struct {
	Clip      ClipRect
	Texture   *Texture // nil for solid fills
	ElemCount int
	Callback  func(list *DrawList, cmd *DrawCmd)
}

// A clip rectangle in display pixels.
type ClipRect struct {
	X, Y, Width, Height int
}

// A clip rect big enough to not clip anything in practice.
var Unclipped = ClipRect{ X: -1 << 24, Y: -1 << 24, Width: 1 << 25, Height: 1 << 25 }

// Creates a clip rect from an [image.Rectangle].
func ClipFromRect(rect image.Rectangle) ClipRect {
	return ClipRect{ X: rect.Min.X, Y: rect.Min.Y, Width: rect.Dx(), Height: rect.Dy() }
}

// Returns the clip rect as an [image.Rectangle]. Non-positive
// sizes result in an empty rectangle.
func (self ClipRect) Rect() image.Rectangle {
	if self.Width <= 0 || self.Height <= 0 { return image.Rectangle{} }
	return image.Rect(self.X, self.Y, self.X + self.Width, self.Y + self.Height)
}

// Returns the number of triangles referenced by the data.
func (self *DrawData) TriangleCount() int {
	var count int
	for _, list := range self.Lists {
		for i := range list.Commands {
			if list.Commands[i].Callback != nil { continue }
			count += list.Commands[i].ElemCount/3
		}
	}
	return count
}
