package puzzle

import (
	"fmt"
	"image"
)

// Tile is one rectangular piece of the source picture. Tiles are compared by
// identity: two tiles with identical pixels are still different tiles.
type Tile struct {
	origin int
	bounds image.Rectangle
	image  image.Image
}

// Origin is the tile's slot in the solved arrangement
func (tile *Tile) Origin() int {
	return tile.origin
}

// Bounds is the tile's rectangle within the source picture
func (tile *Tile) Bounds() image.Rectangle {
	return tile.bounds
}

func (tile *Tile) Image() image.Image {
	return tile.image
}

func (tile *Tile) String() string {
	return fmt.Sprintf("Tile(%d)", tile.origin)
}
