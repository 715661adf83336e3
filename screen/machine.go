package screen

import (
	"errors"
	"time"
	"unicode"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/goslide/input"
	"github.com/they4kman/goslide/puzzle"
)

// Starter begins puzzle sessions; *puzzle.Starter is the real one
type Starter interface {
	Start(playerName string, level int) (*puzzle.Session, error)
}

type Options struct {
	// Pixels between tiles, and around the grid
	TileMargin int
	// Blink periods of the splash hint and the name entry cursor
	HintBlink   time.Duration
	CursorBlink time.Duration
}

// Machine decides which screen follows the current one
type Machine struct {
	starter Starter
	options Options
	log     logrus.FieldLogger
}

// Result of a transition. Quit asks the frame loop to stop.
type Result struct {
	Next Screen
	Quit bool
}

func NewMachine(starter Starter, options Options, log logrus.FieldLogger) *Machine {
	return &Machine{
		starter: starter,
		options: options,
		log:     log,
	}
}

// Splash returns the first screen of the game
func (machine *Machine) Splash(playerName string) Screen {
	return &Splash{
		PlayerName: playerName,
		Hint:       NewBlinker(machine.options.HintBlink),
	}
}

func (machine *Machine) menu(playerName, notice string) *Menu {
	return &Menu{
		Selected:   Play,
		PlayerName: playerName,
		Notice:     notice,
	}
}

func (machine *Machine) nameEntry(playerName string) *NameEntry {
	return &NameEntry{
		Buffer: []rune(playerName),
		Cursor: NewBlinker(machine.options.CursorBlink),
	}
}

// Transition feeds one tick's events, in order, to the current screen. It
// stops at the first event that switches screens; the rest of the tick's
// events belonged to the old screen and are dropped.
func (machine *Machine) Transition(current Screen, events []input.Event) Result {
	for _, event := range events {
		if event.Kind == input.Quit {
			machine.log.WithField("screen", current.Name()).Debug("Quit requested")
			return Result{Next: current, Quit: true}
		}

		next, quit := machine.handle(current, event)
		if quit {
			machine.log.WithField("screen", current.Name()).Debug("Exit chosen")
			return Result{Next: current, Quit: true}
		}
		if next != current {
			machine.logTransition(current, next, event)
			return Result{Next: next}
		}
	}

	return Result{Next: current}
}

func (machine *Machine) handle(current Screen, event input.Event) (Screen, bool) {
	switch screen := current.(type) {
	case *Splash:
		return machine.handleSplash(screen, event), false
	case *Menu:
		return machine.handleMenu(screen, event)
	case *NameEntry:
		return machine.handleNameEntry(screen, event), false
	case *Puzzle:
		return machine.handlePuzzle(screen, event), false
	default:
		return current, false
	}
}

func (machine *Machine) handleSplash(splash *Splash, event input.Event) Screen {
	switch event.Kind {
	case input.KeyDown, input.Text, input.PointerDown:
		return machine.menu(splash.PlayerName, "")
	}
	return splash
}

func (machine *Machine) handleMenu(menu *Menu, event input.Event) (Screen, bool) {
	if event.Kind != input.KeyDown {
		return menu, false
	}

	numOptions := MenuOption(len(MenuOptions))

	switch event.Key {
	case input.KeyArrowDown:
		menu.Selected = (menu.Selected + 1) % numOptions
	case input.KeyArrowUp:
		menu.Selected = (menu.Selected + numOptions - 1) % numOptions
	case input.KeyEnter, input.KeySpace:
		switch menu.Selected {
		case Play:
			return machine.startPuzzle(menu.PlayerName, 1), false
		case ChooseName:
			return machine.nameEntry(menu.PlayerName), false
		case Exit:
			return menu, true
		}
	}

	return menu, false
}

func (machine *Machine) handleNameEntry(entry *NameEntry, event input.Event) Screen {
	switch event.Kind {
	case input.Text:
		if unicode.IsPrint(event.Char) && len(entry.Buffer) < NameMaxLength {
			entry.Buffer = append(entry.Buffer, event.Char)
		}
	case input.KeyDown:
		switch event.Key {
		case input.KeyBackspace:
			if len(entry.Buffer) > 0 {
				entry.Buffer = entry.Buffer[:len(entry.Buffer)-1]
			}
		case input.KeyEscape, input.KeyEnter:
			return machine.menu(entry.Text(), "")
		}
	}
	return entry
}

func (machine *Machine) handlePuzzle(screen *Puzzle, event input.Event) Screen {
	session := screen.Session

	switch event.Kind {
	case input.KeyDown:
		switch event.Key {
		case input.KeyEscape:
			return machine.menu(session.PlayerName(), "")
		case input.KeyR:
			if session.Outcome().IsTerminal() {
				return machine.startPuzzle(session.PlayerName(), session.Level())
			}
		}
	case input.PointerDown:
		if event.Button != input.ButtonLeft || session.Outcome().IsTerminal() {
			break
		}
		if idx, ok := screen.Layout.IndexAt(event.X, event.Y); ok {
			machine.selectTile(session, idx)
		}
	case input.Select:
		machine.selectTile(session, event.Index)
	}
	return screen
}

func (machine *Machine) selectTile(session *puzzle.Session, idx int) {
	before := session.Outcome()

	if err := session.SelectTile(idx); err != nil {
		machine.log.WithError(err).WithField("index", idx).Error("Invalid tile selection")
		return
	}

	if outcome := session.Outcome(); outcome != before {
		machine.logOutcome(session)
	}
}

// Update advances the current screen by one tick: blinking text, the puzzle
// clock, and the move to the next level once a puzzle is solved.
func (machine *Machine) Update(current Screen, now time.Time) Screen {
	switch screen := current.(type) {
	case *Splash:
		screen.Hint.Update(now)
	case *NameEntry:
		screen.Cursor.Update(now)
	case *Puzzle:
		session := screen.Session

		before := session.Outcome()
		session.Tick(now)
		if outcome := session.Outcome(); outcome != before {
			machine.logOutcome(session)
		}

		if session.Outcome() == puzzle.Won {
			next := machine.startPuzzle(session.PlayerName(), session.Level()+1)
			machine.log.WithFields(logrus.Fields{
				"from": current.Name(),
				"to":   next.Name(),
			}).Debug("Level complete")
			return next
		}
	}
	return current
}

func (machine *Machine) startPuzzle(playerName string, level int) Screen {
	session, err := machine.starter.Start(playerName, level)
	if err != nil {
		machine.log.WithError(err).WithFields(logrus.Fields{
			"player": playerName,
			"level":  level,
		}).Warn("Could not start puzzle")
		return machine.menu(playerName, noticeFor(err))
	}

	return &Puzzle{
		Session: session,
		Layout:  puzzle.NewLayout(session.Grid(), machine.options.TileMargin),
	}
}

func noticeFor(err error) string {
	switch {
	case errors.Is(err, puzzle.ErrNoImagesAvailable):
		return "No pictures to play with"
	case errors.Is(err, puzzle.ErrInvalidDimensions):
		return "Picture is too small for this level"
	default:
		return "Could not load a picture"
	}
}

func (machine *Machine) logTransition(from, to Screen, event input.Event) {
	machine.log.WithFields(logrus.Fields{
		"from":  from.Name(),
		"to":    to.Name(),
		"event": event.String(),
	}).Debug("Screen transition")
}

func (machine *Machine) logOutcome(session *puzzle.Session) {
	machine.log.WithFields(logrus.Fields{
		"player":  session.PlayerName(),
		"level":   session.Level(),
		"picture": session.Picture(),
		"moves":   session.Moves(),
		"outcome": session.Outcome().String(),
	}).Info("Puzzle finished")
}
