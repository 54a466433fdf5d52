//go:build gtxt

package cache

import "image"

// Alias for etri.Tile.
type Tile = *image.RGBA

const constTileSizeFactor = 88

func TileByteSize(tile Tile) int {
	if tile == nil { return constTileSizeFactor }
	return tileDimsByteSize(tile.Rect.Dx(), tile.Rect.Dy())
}

func tileDimsByteSize(width, height int) int {
	return width*height*4 + constTileSizeFactor
}

// used for testing purposes
func newEmptyTile(width, height int) Tile {
	return image.NewRGBA(image.Rect(0, 0, width, height))
}
