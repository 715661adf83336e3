package game

import (
	"fmt"
	"image/color"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/imdraw"
	"github.com/faiface/pixel/pixelgl"
	"github.com/faiface/pixel/text"
	"golang.org/x/image/font/basicfont"

	"github.com/they4kman/goslide/puzzle"
	"github.com/they4kman/goslide/screen"
)

// Horizontal anchors for text
const (
	alignLeft   = 0
	alignCenter = 0.5
	alignRight  = 1
)

type renderer struct {
	win *pixelgl.Window
	txt *text.Text
	imd *imdraw.IMDraw

	// Sprites of the grid drawn last frame
	grid    *puzzle.Grid
	sprites map[*puzzle.Tile]*pixel.Sprite
}

func newRenderer(win *pixelgl.Window) *renderer {
	atlas := text.NewAtlas(basicfont.Face7x13, text.ASCII)
	return &renderer{
		win: win,
		txt: text.New(pixel.ZV, atlas),
		imd: imdraw.New(nil),
	}
}

func (r *renderer) Draw(current screen.Screen, now time.Time) {
	switch s := current.(type) {
	case *screen.Splash:
		r.drawSplash(s)
	case *screen.Menu:
		r.drawMenu(s)
	case *screen.NameEntry:
		r.drawNameEntry(s)
	case *screen.Puzzle:
		r.drawPuzzle(s, now)
	}
}

func (r *renderer) width() float64 {
	return r.win.Bounds().W()
}

func (r *renderer) height() float64 {
	return r.win.Bounds().H()
}

// print draws str with its vertical center at y, measured from the top of
// the window, and its horizontal anchor at x
func (r *renderer) print(str string, x, y, align, scale float64, col color.Color) {
	r.txt.Clear()
	r.txt.Color = col
	r.txt.WriteString(str)

	bounds := r.txt.Bounds()
	anchor := pixel.V(bounds.Min.X+bounds.W()*align, bounds.Center().Y)
	target := pixel.V(x, r.height()-y)

	r.txt.Draw(r.win, pixel.IM.Moved(target.Sub(anchor)).Scaled(target, scale))
}

func (r *renderer) drawSplash(splash *screen.Splash) {
	r.win.Clear(menuBackground)

	centerX, centerY := r.width()/2, r.height()/2
	r.print("Slide Puzzle", centerX, centerY-100, alignCenter, titleScale, textColor)

	if splash.Hint.Visible() {
		r.print("Press any key to continue", centerX, centerY+100, alignCenter, itemScale, textColor)
	}
}

func (r *renderer) drawMenu(menu *screen.Menu) {
	r.win.Clear(menuBackground)

	centerX := r.width() / 2
	r.print("Main menu", centerX, menuTop, alignCenter, titleScale, textColor)

	for i, option := range screen.MenuOptions {
		col := color.Color(textColor)
		if option == menu.Selected {
			col = highlightColor
		}
		r.print(option.String(), centerX, float64(menuOptionsTop+i*menuOptionSpace), alignCenter, itemScale, col)
	}

	r.print(fmt.Sprintf("Player: %s", menu.PlayerName), hudPadding, hudPadding, alignLeft, hudScale, textColor)

	if menu.Notice != "" {
		r.print(menu.Notice, centerX, r.height()-2*hudPadding, alignCenter, hudScale, noticeColor)
	}
}

func (r *renderer) drawNameEntry(entry *screen.NameEntry) {
	r.win.Clear(menuBackground)

	centerX := r.width() / 2
	r.print("Enter your name:", centerX, 200, alignCenter, titleScale, textColor)

	name := entry.Text()
	if entry.Cursor.Visible() {
		name += "|"
	} else {
		name += " "
	}
	r.print(name, centerX, 300, alignCenter, titleScale, textColor)

	r.print("Press ESC to go back", centerX, 400, alignCenter, itemScale, textColor)
}

func (r *renderer) spritesFor(grid *puzzle.Grid) map[*puzzle.Tile]*pixel.Sprite {
	if r.grid == grid {
		return r.sprites
	}

	r.grid = grid
	r.sprites = make(map[*puzzle.Tile]*pixel.Sprite, grid.NumTiles())
	for _, tile := range grid.Tiles() {
		picture := pixel.PictureDataFromImage(tile.Image())
		r.sprites[tile] = pixel.NewSprite(picture, picture.Bounds())
	}
	return r.sprites
}

func (r *renderer) drawPuzzle(p *screen.Puzzle, now time.Time) {
	r.win.Clear(puzzleBackground)

	session := p.Session
	grid := session.Grid()
	layout := p.Layout
	sprites := r.spritesFor(grid)

	tileWidth, tileHeight := float64(layout.TileWidth), float64(layout.TileHeight)
	for idx, tile := range grid.Tiles() {
		x, y := layout.TilePosition(idx)
		center := pixel.V(float64(x)+tileWidth/2, r.height()-float64(y)-tileHeight/2)
		sprites[tile].Draw(r.win, pixel.IM.Moved(center))
	}

	if selected, ok := session.Selected(); ok {
		x, y := layout.TilePosition(selected)
		left, top := float64(x-selectionPadding), float64(y-selectionPadding)
		right, bottom := float64(x)+tileWidth+selectionPadding, float64(y)+tileHeight+selectionPadding

		r.imd.Clear()
		r.imd.Color = highlightColor
		r.imd.Push(pixel.V(left, r.height()-bottom), pixel.V(right, r.height()-top))
		r.imd.Rectangle(selectionThickness)
		r.imd.Draw(r.win)
	}

	r.drawHUD(session, now)
}

func (r *renderer) drawHUD(session *puzzle.Session, now time.Time) {
	width, height := r.width(), r.height()

	r.print(fmt.Sprintf("Player: %s", session.PlayerName()), hudPadding, hudPadding, alignLeft, hudScale, textColor)
	r.print(fmt.Sprintf("Level %d", session.Level()), width/2, hudPadding, alignCenter, hudScale, textColor)
	r.print(fmt.Sprintf("Time: %d s", int(session.RemainingSeconds(now))), width-hudPadding, hudPadding, alignRight, hudScale, textColor)
	r.print(fmt.Sprintf("Moves: %d/%d", session.Moves(), session.MoveLimit()), hudPadding, height-3*hudPadding, alignLeft, hudScale, textColor)
	r.print("Press ESC to go back", width/2, height-hudPadding, alignCenter, hudScale, textColor)

	var result string
	var col color.Color
	switch session.Outcome() {
	case puzzle.Won:
		result, col = "Puzzle solved!", wonColor
	case puzzle.TimedOut:
		result, col = "Time is up!", lostColor
	case puzzle.MoveLimitExceeded:
		result, col = "Out of moves!", lostColor
	default:
		return
	}

	r.print(result, width/2, height/2-50, alignCenter, itemScale, col)
	r.print("Press R to restart", width/2, height/2+50, alignCenter, itemScale, textColor)
}
