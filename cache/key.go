package cache

import "github.com/tinne26/etri/fract"
import "github.com/tinne26/etri/geom"

// Rasterization path used to produce a tile.
type TileKind uint8

const (
	KindGeneric TileKind = iota // textured and shaded triangles
	KindFlat                    // single colored triangles
)

// A triangle vertex as stored in a [TileKey]. The position
// is relative to the tile origin.
type Corner struct {
	X, Y fract.Unit
	U, V fract.Unit
	Color uint32
}

// TileKey identifies a rasterized triangle tile. Keys are comparable
// and can be used directly as map keys: two triangles with the same
// shape relative to their tile origin, texture coordinates, colors,
// tile size, texture and rasterization settings produce equal keys.
//
// The tile origin is a whole pixel, so only whole pixel translations
// keep a key unchanged: a subpixel shift produces a different key.
type TileKey struct {
	Corners  [3]Corner
	Width    int32
	Height   int32
	Texture  uint64 // texture identifier, 0 for solid fills
	Kind     TileKind
	Sampling uint8
}

// Creates a key for the given vertices, re-expressing their positions
// relative to the tile origin.
func NewTileKey(origin fract.Point, vertices [3]geom.Vertex, width, height int) TileKey {
	var key TileKey
	for i, vertex := range vertices {
		pos := vertex.Pos.Sub(origin)
		key.Corners[i] = Corner{
			X: pos.X, Y: pos.Y,
			U: vertex.UV.X, V: vertex.UV.Y,
			Color: vertex.Color,
		}
	}
	key.Width, key.Height = int32(width), int32(height)
	return key
}
