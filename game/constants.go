package game

import (
	"image/color"

	"golang.org/x/image/colornames"
)

var (
	menuBackground   = color.RGBA{R: 50, G: 50, B: 50, A: 255}
	puzzleBackground = colornames.Black

	textColor      = color.RGBA{R: 220, G: 220, B: 220, A: 255}
	highlightColor = colornames.Lime
	noticeColor    = colornames.Red
	wonColor       = colornames.Lime
	lostColor      = colornames.Red
)

const (
	// Scales applied to the 7x13 basic font
	titleScale = 4
	itemScale  = 3
	hudScale   = 2

	// Width of the frame around the selected tile, drawn this far outside it
	selectionThickness = 3
	selectionPadding   = 2

	menuTop         = 100
	menuOptionsTop  = 300
	menuOptionSpace = 80

	hudPadding = 20
)
