//go:build !gtxt

package cache

import "github.com/hajimehoshi/ebiten/v2"

// Same as [etri.Tile], redefined locally to keep the cache
// independent from the etri parent package.
//
// [etri.Tile]: https://pkg.go.dev/github.com/tinne26/etri#Tile
type Tile = *ebiten.Image

// Based on Ebitengine internals.
const constTileSizeFactor = 192

// Returns an approximation of a [Tile] size in bytes.
//
// With Ebitengine, the exact amount of mipmaps and helper fields is
// not known, so the values may not be completely accurate, and should
// be treated as a lower bound. With gtxt, the returned values are
// exact.
func TileByteSize(tile Tile) int {
	if tile == nil { return constTileSizeFactor }
	bounds := tile.Bounds()
	return tileDimsByteSize(bounds.Dx(), bounds.Dy())
}

func tileDimsByteSize(width, height int) int {
	return width*height*4 + constTileSizeFactor
}

// used for testing purposes
func newEmptyTile(width, height int) Tile {
	return ebiten.NewImage(width, height)
}
