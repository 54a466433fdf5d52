package drawlist

import "math"
import "slices"

import "github.com/tinne26/etri"
import "github.com/tinne26/etri/atlas"

// Builds a single [etri.DrawList].
type Builder struct {
	list etri.DrawList
	clipStack []etri.ClipRect
	texture *etri.Texture
	whiteU, whiteV float32
}

// Creates a new, empty builder. The initial clip rect is
// [etri.Unclipped] and the initial texture is nil (solid fills).
func New() *Builder {
	builder := &Builder{}
	builder.Reset()
	return builder
}

// Returns the list built so far. The list remains owned by the
// builder and is only valid until the next [Builder.Reset]().
func (self *Builder) List() *etri.DrawList {
	return &self.list
}

// Clears the list, the clip stack and the texture, keeping the
// allocated buffers.
func (self *Builder) Reset() {
	self.list.Vertices = self.list.Vertices[ : 0]
	self.list.Indices  = self.list.Indices[ : 0]
	self.list.Commands = self.list.Commands[ : 0]
	self.clipStack = self.clipStack[ : 0]
	self.texture = nil
	self.whiteU, self.whiteV = 0, 0
	self.list.Commands = append(self.list.Commands, etri.DrawCmd{ Clip: etri.Unclipped })
}

// Returns the current clip rect.
func (self *Builder) ClipRect() etri.ClipRect {
	if len(self.clipStack) == 0 { return etri.Unclipped }
	return self.clipStack[len(self.clipStack) - 1]
}

// Pushes a clip rect, intersected with the current one.
func (self *Builder) PushClipRect(clip etri.ClipRect) {
	clip = etri.ClipFromRect(clip.Rect().Intersect(self.ClipRect().Rect()))
	self.clipStack = append(self.clipStack, clip)
	self.onStateChange()
}

// Pops the last clip rect pushed. Panics if the stack is empty.
func (self *Builder) PopClipRect() {
	if len(self.clipStack) == 0 { panic("PopClipRect() without PushClipRect()") }
	self.clipStack = self.clipStack[ : len(self.clipStack) - 1]
	self.onStateChange()
}

// Returns the current texture.
func (self *Builder) Texture() *etri.Texture {
	return self.texture
}

// Sets the texture for the following shapes. Solid shapes will use
// its white texel. A nil texture means solid fills.
func (self *Builder) SetTexture(texture *etri.Texture) {
	if texture == self.texture { return }
	self.texture = texture
	self.whiteU, self.whiteV = texture.WhiteCoords()
	self.onStateChange()
}

// Adds a command that invokes the given function when rendered.
func (self *Builder) AddCallback(callback func(list *etri.DrawList, cmd *etri.DrawCmd)) {
	cmd := self.current()
	if cmd.ElemCount > 0 {
		self.list.Commands = append(self.list.Commands, etri.DrawCmd{})
		cmd = self.current()
	}
	cmd.Clip, cmd.Texture, cmd.Callback = self.ClipRect(), self.texture, callback
	self.list.Commands = append(self.list.Commands, etri.DrawCmd{ Clip: self.ClipRect(), Texture: self.texture })
}

// Adds a solid rectangle.
func (self *Builder) AddRectFilled(x0, y0, x1, y1 float32, clr uint32) {
	self.AddRectFilledMultiColor(x0, y0, x1, y1, clr, clr, clr, clr)
}

// Adds a rectangle with a color for each corner, in clockwise
// order starting from the top-left corner.
func (self *Builder) AddRectFilledMultiColor(x0, y0, x1, y1 float32, topLeft, topRight, bottomRight, bottomLeft uint32) {
	u, v := self.whiteU, self.whiteV
	self.primQuad(
		etri.Vert{ X: x0, Y: y0, U: u, V: v, Color: topLeft },
		etri.Vert{ X: x1, Y: y0, U: u, V: v, Color: topRight },
		etri.Vert{ X: x1, Y: y1, U: u, V: v, Color: bottomRight },
		etri.Vert{ X: x0, Y: y1, U: u, V: v, Color: bottomLeft },
	)
}

// Adds a solid triangle.
func (self *Builder) AddTriangleFilled(x0, y0, x1, y1, x2, y2 float32, clr uint32) {
	self.AddTriangleFilledMultiColor(x0, y0, x1, y1, x2, y2, clr, clr, clr)
}

// Adds a triangle with a color per vertex, interpolated across it.
func (self *Builder) AddTriangleFilledMultiColor(x0, y0, x1, y1, x2, y2 float32, clr0, clr1, clr2 uint32) {
	u, v := self.whiteU, self.whiteV
	base := self.primReserve(3)
	self.list.Vertices = append(self.list.Vertices,
		etri.Vert{ X: x0, Y: y0, U: u, V: v, Color: clr0 },
		etri.Vert{ X: x1, Y: y1, U: u, V: v, Color: clr1 },
		etri.Vert{ X: x2, Y: y2, U: u, V: v, Color: clr2 },
	)
	self.primIndices(base, base + 1, base + 2)
}

// Adds a solid circle as a triangle fan. If segments is not
// positive, it's derived from the radius.
func (self *Builder) AddCircleFilled(cx, cy, radius float32, clr uint32, segments int) {
	if radius <= 0 { return }
	if segments <= 0 { segments = min(max(int(radius), 12), 128) }

	u, v := self.whiteU, self.whiteV
	base := self.primReserve(segments + 1)
	self.list.Vertices = append(self.list.Vertices, etri.Vert{ X: cx, Y: cy, U: u, V: v, Color: clr })
	for i := 0; i < segments; i++ {
		angle := 2*math.Pi*float64(i)/float64(segments)
		x := cx + radius*float32(math.Cos(angle))
		y := cy + radius*float32(math.Sin(angle))
		self.list.Vertices = append(self.list.Vertices, etri.Vert{ X: x, Y: y, U: u, V: v, Color: clr })
	}
	for i := 0; i < segments; i++ {
		next := (i + 1) % segments
		self.primIndices(base, base + 1 + uint32(i), base + 1 + uint32(next))
	}
}

// Adds a line with the given thickness as a quad. Horizontal and
// vertical lines become axis-aligned rectangles.
func (self *Builder) AddLine(x0, y0, x1, y1 float32, clr uint32, thickness float32) {
	dx, dy := float64(x1 - x0), float64(y1 - y0)
	length := math.Hypot(dx, dy)
	if length == 0 || thickness <= 0 { return }
	half := float64(thickness)/2
	nx, ny := float32(-dy/length*half), float32(dx/length*half)

	u, v := self.whiteU, self.whiteV
	self.primQuad(
		etri.Vert{ X: x0 + nx, Y: y0 + ny, U: u, V: v, Color: clr },
		etri.Vert{ X: x1 + nx, Y: y1 + ny, U: u, V: v, Color: clr },
		etri.Vert{ X: x1 - nx, Y: y1 - ny, U: u, V: v, Color: clr },
		etri.Vert{ X: x0 - nx, Y: y0 - ny, U: u, V: v, Color: clr },
	)
}

// Adds a textured rectangle using the given texture coordinates.
// The current texture is restored afterwards.
func (self *Builder) AddImage(texture *etri.Texture, x0, y0, x1, y1, u0, v0, u1, v1 float32, clr uint32) {
	prevTexture := self.texture
	self.SetTexture(texture)
	self.primQuad(
		etri.Vert{ X: x0, Y: y0, U: u0, V: v0, Color: clr },
		etri.Vert{ X: x1, Y: y0, U: u1, V: v0, Color: clr },
		etri.Vert{ X: x1, Y: y1, U: u1, V: v1, Color: clr },
		etri.Vert{ X: x0, Y: y1, U: u0, V: v1, Color: clr },
	)
	self.SetTexture(prevTexture)
}

// Adds text with its top-left corner at the given position. The
// current texture must be the texture for the given atlas. Lines
// are separated by '\n'.
func (self *Builder) AddText(font *atlas.Atlas, x, y float32, clr uint32, text string) {
	penX, baseline := x, y + float32(font.Ascent())
	for _, r := range text {
		if r == '\n' {
			penX = x
			baseline += float32(font.LineHeight())
			continue
		}
		glyph, found := font.Glyph(r)
		if !found { continue }
		if !glyph.Rect.Empty() && r != ' ' {
			gx := penX + float32(glyph.Offset.X)
			gy := baseline + float32(glyph.Offset.Y)
			gw, gh := float32(glyph.Rect.Dx()), float32(glyph.Rect.Dy())
			self.primQuad(
				etri.Vert{ X: gx, Y: gy, U: glyph.U0, V: glyph.V0, Color: clr },
				etri.Vert{ X: gx + gw, Y: gy, U: glyph.U1, V: glyph.V0, Color: clr },
				etri.Vert{ X: gx + gw, Y: gy + gh, U: glyph.U1, V: glyph.V1, Color: clr },
				etri.Vert{ X: gx, Y: gy + gh, U: glyph.U0, V: glyph.V1, Color: clr },
			)
		}
		penX += float32(glyph.Advance)
	}
}

// ---- helpers ----

func (self *Builder) current() *etri.DrawCmd {
	return &self.list.Commands[len(self.list.Commands) - 1]
}

// Starts a new command if the current one already has elements,
// otherwise updates it in place.
func (self *Builder) onStateChange() {
	cmd := self.current()
	if cmd.ElemCount > 0 {
		self.list.Commands = append(self.list.Commands, etri.DrawCmd{})
		cmd = self.current()
	}
	cmd.Clip, cmd.Texture = self.ClipRect(), self.texture
}

// Returns the index of the next vertex.
func (self *Builder) primReserve(vertices int) uint32 {
	self.list.Vertices = slices.Grow(self.list.Vertices, vertices)
	return uint32(len(self.list.Vertices))
}

func (self *Builder) primIndices(indices ...uint32) {
	self.list.Indices = append(self.list.Indices, indices...)
	self.current().ElemCount += len(indices)
}

// Adds a quad given in clockwise order from the top-left corner,
// as the triangles (a, b, c) and (a, c, d).
func (self *Builder) primQuad(a, b, c, d etri.Vert) {
	base := self.primReserve(4)
	self.list.Vertices = append(self.list.Vertices, a, b, c, d)
	self.primIndices(base, base + 1, base + 2, base, base + 2, base + 3)
}
