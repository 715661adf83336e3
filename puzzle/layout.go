package puzzle

// Layout places a grid's tiles on screen, in pixels, with the origin at the
// top-left corner and y growing downwards. Tiles are separated by Margin
// pixels, which also surround the whole grid.
type Layout struct {
	Rows, Cols            int
	TileWidth, TileHeight int
	Margin                int
}

func NewLayout(grid *Grid, margin int) Layout {
	return Layout{
		Rows:       grid.Rows(),
		Cols:       grid.Cols(),
		TileWidth:  grid.TileWidth(),
		TileHeight: grid.TileHeight(),
		Margin:     margin,
	}
}

// TilePosition returns the top-left corner of slot idx
func (layout Layout) TilePosition(idx int) (x, y int) {
	row, col := idx/layout.Cols, idx%layout.Cols
	x = col*(layout.TileWidth+layout.Margin) + layout.Margin
	y = row*(layout.TileHeight+layout.Margin) + layout.Margin
	return
}

// Size is the width and height of the whole grid, margins included
func (layout Layout) Size() (width, height int) {
	width = layout.Cols*(layout.TileWidth+layout.Margin) + layout.Margin
	height = layout.Rows*(layout.TileHeight+layout.Margin) + layout.Margin
	return
}

// IndexAt returns the slot drawn under the point (x, y). Points in the
// margins, or outside the grid, hit nothing.
func (layout Layout) IndexAt(x, y float64) (int, bool) {
	if x < 0 || y < 0 {
		return 0, false
	}

	cellWidth := float64(layout.TileWidth + layout.Margin)
	cellHeight := float64(layout.TileHeight + layout.Margin)

	col := int((x - float64(layout.Margin)) / cellWidth)
	row := int((y - float64(layout.Margin)) / cellHeight)
	if x < float64(layout.Margin) || y < float64(layout.Margin) || col >= layout.Cols || row >= layout.Rows {
		return 0, false
	}

	idx := row*layout.Cols + col
	tileX, tileY := layout.TilePosition(idx)
	if x >= float64(tileX+layout.TileWidth) || y >= float64(tileY+layout.TileHeight) {
		return 0, false
	}
	return idx, true
}
