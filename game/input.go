package game

import (
	"github.com/faiface/pixel/pixelgl"

	"github.com/they4kman/goslide/input"
)

var keys = map[pixelgl.Button]input.Key{
	pixelgl.KeyUp:        input.KeyArrowUp,
	pixelgl.KeyDown:      input.KeyArrowDown,
	pixelgl.KeyEnter:     input.KeyEnter,
	pixelgl.KeyKPEnter:   input.KeyEnter,
	pixelgl.KeySpace:     input.KeySpace,
	pixelgl.KeyEscape:    input.KeyEscape,
	pixelgl.KeyBackspace: input.KeyBackspace,
	pixelgl.KeyR:         input.KeyR,
}

var mouseButtons = []struct {
	button pixelgl.Button
	mapped input.Button
}{
	{pixelgl.MouseButtonLeft, input.ButtonLeft},
	{pixelgl.MouseButtonRight, input.ButtonRight},
	{pixelgl.MouseButtonMiddle, input.ButtonMiddle},
}

// poller turns the window's input state since the last frame into events.
// Typed characters come first, then keys, then mouse buttons.
type poller struct {
	win *pixelgl.Window
}

func (p poller) Poll(queue *input.Queue) {
	win := p.win

	if win.Closed() {
		queue.Push(input.QuitEvent())
		return
	}

	for _, char := range win.Typed() {
		queue.Push(input.TextEvent(char))
	}

	for button := pixelgl.KeySpace; button <= pixelgl.KeyLast; button++ {
		if !win.JustPressed(button) {
			continue
		}
		if key, known := keys[button]; known {
			queue.Push(input.KeyEvent(key))
		} else {
			queue.Push(input.KeyEvent(input.KeyOther))
		}
	}

	if win.MouseInsideWindow() {
		// Screens work with the origin at the top-left corner
		pos := win.MousePosition()
		x, y := pos.X, win.Bounds().H()-pos.Y

		for _, mouse := range mouseButtons {
			if win.JustPressed(mouse.button) {
				queue.Push(input.PointerEvent(mouse.mapped, x, y))
			}
		}
	}
}
