package input

import "fmt"

type Kind int

const (
	Quit Kind = iota
	KeyDown
	Text
	PointerDown
	Select
)

type Key int

const (
	KeyOther Key = iota
	KeyArrowUp
	KeyArrowDown
	KeyEnter
	KeySpace
	KeyEscape
	KeyBackspace
	KeyR
)

type Button int

const (
	ButtonLeft Button = iota
	ButtonRight
	ButtonMiddle
)

// Event is a single discrete input, produced once per tick by the poller
// (or by a director, for Select).
type Event struct {
	Kind Kind

	// KeyDown
	Key Key
	// Text
	Char rune
	// PointerDown, in window pixels with the origin at the top-left corner
	Button Button
	X, Y   float64
	// Select
	Index int
}

func QuitEvent() Event {
	return Event{Kind: Quit}
}

func KeyEvent(key Key) Event {
	return Event{Kind: KeyDown, Key: key}
}

func TextEvent(char rune) Event {
	return Event{Kind: Text, Char: char}
}

func PointerEvent(button Button, x, y float64) Event {
	return Event{Kind: PointerDown, Button: button, X: x, Y: y}
}

func SelectEvent(index int) Event {
	return Event{Kind: Select, Index: index}
}

func (event Event) String() string {
	switch event.Kind {
	case Quit:
		return "Quit"
	case KeyDown:
		return fmt.Sprintf("KeyDown(%d)", event.Key)
	case Text:
		return fmt.Sprintf("Text(%q)", event.Char)
	case PointerDown:
		return fmt.Sprintf("PointerDown(%d, %.0f, %.0f)", event.Button, event.X, event.Y)
	case Select:
		return fmt.Sprintf("Select(%d)", event.Index)
	default:
		return fmt.Sprintf("Event(%d)", event.Kind)
	}
}
