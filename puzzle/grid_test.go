package puzzle

import (
	"errors"
	"image"
	"image/color"
	"math/rand"
	"testing"
)

func solidImage(width, height int) *image.RGBA {
	img := image.NewRGBA(image.Rect(0, 0, width, height))
	for y := 0; y < height; y++ {
		for x := 0; x < width; x++ {
			img.Set(x, y, color.RGBA{R: 200, G: 100, B: 50, A: 255})
		}
	}
	return img
}

func newTestGrid(t *testing.T, rows, cols int) *Grid {
	t.Helper()

	grid, err := NewGrid(solidImage(cols*10, rows*10), rows, cols)
	if err != nil {
		t.Fatalf("NewGrid(%d, %d) error: %v", rows, cols, err)
	}
	return grid
}

func TestNewGridTilesCoverPicture(t *testing.T) {
	tests := []struct {
		name                  string
		width, height         int
		rows, cols            int
		droppedX, droppedY    int
		tileWidth, tileHeight int
	}{
		{"even 3x3", 300, 300, 3, 3, 0, 0, 100, 100},
		{"even 2x4", 40, 20, 2, 4, 0, 0, 10, 10},
		{"uneven 3x3", 31, 22, 3, 3, 1, 1, 10, 7},
		{"uneven 6x6", 800, 533, 6, 6, 2, 5, 133, 88},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			img := image.NewRGBA(image.Rect(0, 0, tt.width, tt.height))
			grid, err := NewGrid(img, tt.rows, tt.cols)
			if err != nil {
				t.Fatalf("NewGrid() error: %v", err)
			}

			if grid.NumTiles() != tt.rows*tt.cols {
				t.Fatalf("NumTiles() = %d, want %d", grid.NumTiles(), tt.rows*tt.cols)
			}
			if grid.TileWidth() != tt.tileWidth || grid.TileHeight() != tt.tileHeight {
				t.Errorf("tile size = %dx%d, want %dx%d", grid.TileWidth(), grid.TileHeight(), tt.tileWidth, tt.tileHeight)
			}
			if dx, dy := grid.Dropped(); dx != tt.droppedX || dy != tt.droppedY {
				t.Errorf("Dropped() = %d, %d, want %d, %d", dx, dy, tt.droppedX, tt.droppedY)
			}

			covered := image.Rect(0, 0, tt.cols*tt.tileWidth, tt.rows*tt.tileHeight)
			area := 0
			for i := 0; i < grid.NumTiles(); i++ {
				tile := grid.Tile(i)
				if tile.Origin() != i {
					t.Errorf("tile %d origin = %d", i, tile.Origin())
				}
				if !tile.Bounds().In(covered) {
					t.Errorf("tile %d bounds %v outside %v", i, tile.Bounds(), covered)
				}
				if tile.Image().Bounds() != tile.Bounds() {
					t.Errorf("tile %d image bounds %v, want %v", i, tile.Image().Bounds(), tile.Bounds())
				}
				area += tile.Bounds().Dx() * tile.Bounds().Dy()

				for j := i + 1; j < grid.NumTiles(); j++ {
					if tile.Bounds().Overlaps(grid.Tile(j).Bounds()) {
						t.Errorf("tiles %d and %d overlap", i, j)
					}
				}
			}
			if area != covered.Dx()*covered.Dy() {
				t.Errorf("tiles cover %d pixels, want %d", area, covered.Dx()*covered.Dy())
			}

			// Row-major: tile 1 is right of tile 0
			if grid.Tile(1).Bounds().Min != image.Pt(tt.tileWidth, 0) {
				t.Errorf("tile 1 starts at %v, want (%d, 0)", grid.Tile(1).Bounds().Min, tt.tileWidth)
			}
			if !grid.IsComplete() {
				t.Error("new grid should start solved")
			}
		})
	}
}

func TestNewGridOffsetBounds(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 40, 40)).SubImage(image.Rect(10, 10, 30, 30))

	grid, err := NewGrid(img, 2, 2)
	if err != nil {
		t.Fatalf("NewGrid() error: %v", err)
	}
	if want := image.Rect(20, 20, 30, 30); grid.Tile(3).Bounds() != want {
		t.Errorf("tile 3 bounds = %v, want %v", grid.Tile(3).Bounds(), want)
	}
}

func TestNewGridInvalidDimensions(t *testing.T) {
	tests := []struct {
		name          string
		width, height int
		rows, cols    int
	}{
		{"too narrow", 2, 30, 3, 3},
		{"too short", 30, 2, 3, 3},
		{"zero rows", 30, 30, 0, 3},
		{"negative cols", 30, 30, 3, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := NewGrid(image.NewRGBA(image.Rect(0, 0, tt.width, tt.height)), tt.rows, tt.cols)
			if !errors.Is(err, ErrInvalidDimensions) {
				t.Errorf("NewGrid() error = %v, want ErrInvalidDimensions", err)
			}
		})
	}
}

func TestSwapIsInvolution(t *testing.T) {
	grid := newTestGrid(t, 3, 3)
	grid.Shuffle(rand.New(rand.NewSource(7)))
	before := grid.Tiles()

	for i := 0; i < grid.NumTiles(); i++ {
		for j := 0; j < grid.NumTiles(); j++ {
			if i == j {
				continue
			}
			if err := grid.Swap(i, j); err != nil {
				t.Fatalf("Swap(%d, %d) error: %v", i, j, err)
			}
			if grid.Tile(i) != before[j] || grid.Tile(j) != before[i] {
				t.Fatalf("Swap(%d, %d) did not exchange tiles", i, j)
			}
			if err := grid.Swap(i, j); err != nil {
				t.Fatalf("Swap(%d, %d) error: %v", i, j, err)
			}

			for k, tile := range grid.Tiles() {
				if tile != before[k] {
					t.Fatalf("double Swap(%d, %d) changed slot %d", i, j, k)
				}
			}
		}
	}
}

func TestSwapOutOfRange(t *testing.T) {
	grid := newTestGrid(t, 2, 2)

	for _, pair := range [][2]int{{-1, 0}, {0, 4}, {4, 4}, {0, -5}} {
		if err := grid.Swap(pair[0], pair[1]); !errors.Is(err, ErrIndexOutOfRange) {
			t.Errorf("Swap(%d, %d) error = %v, want ErrIndexOutOfRange", pair[0], pair[1], err)
		}
	}
	if !grid.IsComplete() {
		t.Error("failed swaps must not change the grid")
	}
}

func TestIsCompleteComparesIdentity(t *testing.T) {
	// Every tile of a solid picture looks the same
	grid := newTestGrid(t, 2, 2)
	if err := grid.Swap(0, 3); err != nil {
		t.Fatal(err)
	}

	if grid.IsComplete() {
		t.Error("swapped grid of identical-looking tiles reported complete")
	}
	if got := grid.Misplaced(); len(got) != 2 || got[0] != 0 || got[1] != 3 {
		t.Errorf("Misplaced() = %v, want [0 3]", got)
	}
	if idx := grid.IndexOf(grid.Solution(0)); idx != 3 {
		t.Errorf("IndexOf(solution 0) = %d, want 3", idx)
	}
	if grid.IndexOf(&Tile{}) != -1 {
		t.Error("IndexOf(foreign tile) should be -1")
	}
	if grid.Tile(4) != nil || grid.Solution(-1) != nil {
		t.Error("out of range lookups should return nil")
	}
}

func TestShuffleIsPermutation(t *testing.T) {
	grid := newTestGrid(t, 4, 4)
	grid.Shuffle(rand.New(rand.NewSource(1)))

	seen := make(map[*Tile]bool)
	for _, tile := range grid.Tiles() {
		seen[tile] = true
	}
	if len(seen) != grid.NumTiles() {
		t.Fatalf("shuffle produced %d distinct tiles, want %d", len(seen), grid.NumTiles())
	}
	for i := 0; i < grid.NumTiles(); i++ {
		if !seen[grid.Solution(i)] {
			t.Errorf("solution tile %d missing after shuffle", i)
		}
	}
}

func TestShuffleSolvedProbability(t *testing.T) {
	// 2x2 has 4! = 24 arrangements, one of them solved
	const trials = 24000
	rng := rand.New(rand.NewSource(42))
	grid := newTestGrid(t, 2, 2)

	solved := 0
	for i := 0; i < trials; i++ {
		grid.Shuffle(rng)
		if grid.IsComplete() {
			solved++
		}
	}

	want := trials / 24
	if solved < want-250 || solved > want+250 {
		t.Errorf("solved after shuffle %d/%d times, want about %d", solved, trials, want)
	}
}
