// Package screen holds the game's screens and the state machine moving
// between them. Exactly one screen is current at a time; switching screens
// hands the player name over explicitly and drops the old screen.
package screen

import (
	"time"

	"github.com/they4kman/goslide/puzzle"
)

// NameMaxLength is the longest player name, in characters
const NameMaxLength = 15

// Screen is one of *Splash, *Menu, *NameEntry or *Puzzle
type Screen interface {
	Name() string
	isScreen()
}

type Splash struct {
	PlayerName string
	Hint       *Blinker
}

type MenuOption int

const (
	Play MenuOption = iota
	ChooseName
	Exit
)

var MenuOptions = []MenuOption{Play, ChooseName, Exit}

func (option MenuOption) String() string {
	switch option {
	case Play:
		return "Play"
	case ChooseName:
		return "Choose name"
	case Exit:
		return "Exit"
	default:
		return "?"
	}
}

type Menu struct {
	Selected   MenuOption
	PlayerName string
	// Shown to the player after a puzzle could not be started
	Notice string
}

type NameEntry struct {
	Buffer []rune
	Cursor *Blinker
}

// Text is the name typed so far
func (entry *NameEntry) Text() string {
	return string(entry.Buffer)
}

type Puzzle struct {
	Session *puzzle.Session
	Layout  puzzle.Layout
}

func (*Splash) Name() string    { return "splash" }
func (*Menu) Name() string      { return "menu" }
func (*NameEntry) Name() string { return "name entry" }
func (*Puzzle) Name() string    { return "puzzle" }

func (*Splash) isScreen()    {}
func (*Menu) isScreen()      {}
func (*NameEntry) isScreen() {}
func (*Puzzle) isScreen()    {}

// Blinker flips between visible and hidden every Period, sampled on Update
type Blinker struct {
	Period time.Duration

	visible bool
	toggled time.Time
}

func NewBlinker(period time.Duration) *Blinker {
	return &Blinker{Period: period, visible: true}
}

func (blinker *Blinker) Update(now time.Time) {
	if blinker.toggled.IsZero() {
		blinker.toggled = now
		return
	}
	if now.Sub(blinker.toggled) > blinker.Period {
		blinker.visible = !blinker.visible
		blinker.toggled = now
	}
}

func (blinker *Blinker) Visible() bool {
	return blinker.visible
}
