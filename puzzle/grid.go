package puzzle

import (
	"fmt"
	"image"
	"math/rand"

	"github.com/they4kman/goslide/pictures"
)

type Grid struct {
	rows, cols            int // in number of tiles
	tileWidth, tileHeight int // in pixels
	source                image.Image

	tiles         []*Tile
	originalOrder []*Tile
}

// NewGrid cuts img into rows*cols equal tiles, row-major. Tile sizes are
// rounded down, so up to cols-1 columns of pixels on the right and rows-1
// rows on the bottom are left out of the puzzle. The grid starts solved.
func NewGrid(img image.Image, rows, cols int) (*Grid, error) {
	if rows < 1 || cols < 1 {
		return nil, fmt.Errorf("%w: %dx%d grid", ErrInvalidDimensions, rows, cols)
	}

	bounds := img.Bounds()
	tileWidth, tileHeight := bounds.Dx()/cols, bounds.Dy()/rows
	if tileWidth < 1 || tileHeight < 1 {
		return nil, fmt.Errorf(
			"%w: %dx%d picture cannot be cut into %dx%d tiles",
			ErrInvalidDimensions, bounds.Dx(), bounds.Dy(), rows, cols,
		)
	}

	grid := Grid{
		rows:          rows,
		cols:          cols,
		tileWidth:     tileWidth,
		tileHeight:    tileHeight,
		source:        img,
		tiles:         make([]*Tile, rows*cols),
		originalOrder: make([]*Tile, rows*cols),
	}

	for idx := range grid.originalOrder {
		row, col := idx/cols, idx%cols
		topLeft := bounds.Min.Add(image.Pt(col*tileWidth, row*tileHeight))
		rect := image.Rectangle{Min: topLeft, Max: topLeft.Add(image.Pt(tileWidth, tileHeight))}

		grid.originalOrder[idx] = &Tile{
			origin: idx,
			bounds: rect,
			image:  pictures.Subregion(img, rect),
		}
	}
	copy(grid.tiles, grid.originalOrder)

	return &grid, nil
}

func (grid *Grid) Rows() int {
	return grid.rows
}

func (grid *Grid) Cols() int {
	return grid.cols
}

func (grid *Grid) NumTiles() int {
	return grid.rows * grid.cols
}

func (grid *Grid) TileWidth() int {
	return grid.tileWidth
}

func (grid *Grid) TileHeight() int {
	return grid.tileHeight
}

func (grid *Grid) Source() image.Image {
	return grid.source
}

// Dropped returns how many pixel columns and rows of the source picture
// are not covered by any tile
func (grid *Grid) Dropped() (width, height int) {
	bounds := grid.source.Bounds()
	return bounds.Dx() - grid.cols*grid.tileWidth, bounds.Dy() - grid.rows*grid.tileHeight
}

func (grid *Grid) validIndex(idx int) bool {
	return idx >= 0 && idx < len(grid.tiles)
}

// Tile returns the tile currently in slot idx, or nil if idx is out of range
func (grid *Grid) Tile(idx int) *Tile {
	if !grid.validIndex(idx) {
		return nil
	}
	return grid.tiles[idx]
}

// Solution returns the tile that belongs in slot idx, or nil if idx is out
// of range
func (grid *Grid) Solution(idx int) *Tile {
	if !grid.validIndex(idx) {
		return nil
	}
	return grid.originalOrder[idx]
}

// Tiles returns a copy of the current arrangement
func (grid *Grid) Tiles() []*Tile {
	tiles := make([]*Tile, len(grid.tiles))
	copy(tiles, grid.tiles)
	return tiles
}

// IndexOf returns the slot currently holding tile, or -1
func (grid *Grid) IndexOf(tile *Tile) int {
	for idx, t := range grid.tiles {
		if t == tile {
			return idx
		}
	}
	return -1
}

// Misplaced returns the slots whose tile is not the solved one, in order
func (grid *Grid) Misplaced() []int {
	var misplaced []int
	for idx, tile := range grid.tiles {
		if tile != grid.originalOrder[idx] {
			misplaced = append(misplaced, idx)
		}
	}
	return misplaced
}

// Shuffle permutes the tiles uniformly at random. The result may happen to
// be the solved arrangement.
func (grid *Grid) Shuffle(rng *rand.Rand) {
	rng.Shuffle(len(grid.tiles), func(i, j int) {
		grid.tiles[i], grid.tiles[j] = grid.tiles[j], grid.tiles[i]
	})
}

func (grid *Grid) Swap(i, j int) error {
	if !grid.validIndex(i) || !grid.validIndex(j) {
		return fmt.Errorf("%w: swap(%d, %d) on %d tiles", ErrIndexOutOfRange, i, j, len(grid.tiles))
	}
	grid.tiles[i], grid.tiles[j] = grid.tiles[j], grid.tiles[i]
	return nil
}

func (grid *Grid) IsComplete() bool {
	for idx, tile := range grid.tiles {
		if tile != grid.originalOrder[idx] {
			return false
		}
	}
	return true
}
