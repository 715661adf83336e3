package puzzle

import (
	"fmt"
	"time"
)

// Session is one attempt at one level: a shuffled grid, the clock and the
// move counter.
type Session struct {
	grid     *Grid
	selected int

	moves     int
	moveLimit int
	timeLimit time.Duration
	started   time.Time

	outcome Outcome

	level      int
	playerName string
	picture    string
}

// NewSession wraps an already shuffled grid. Most callers want Starter.Start.
func NewSession(grid *Grid, playerName string, level int, started time.Time) *Session {
	difficulty := DifficultyFor(level)

	return &Session{
		grid:       grid,
		selected:   NoSelection,
		moveLimit:  difficulty.MoveLimit,
		timeLimit:  difficulty.TimeLimit,
		started:    started,
		outcome:    InProgress,
		level:      level,
		playerName: playerName,
	}
}

func (session *Session) Grid() *Grid {
	return session.grid
}

func (session *Session) Outcome() Outcome {
	return session.outcome
}

func (session *Session) Level() int {
	return session.level
}

func (session *Session) PlayerName() string {
	return session.playerName
}

// Picture is the name of the picture the grid was cut from
func (session *Session) Picture() string {
	return session.picture
}

func (session *Session) Moves() int {
	return session.moves
}

func (session *Session) MoveLimit() int {
	return session.moveLimit
}

func (session *Session) TimeLimit() time.Duration {
	return session.timeLimit
}

func (session *Session) Started() time.Time {
	return session.started
}

// Selected returns the selected slot, if any
func (session *Session) Selected() (int, bool) {
	return session.selected, session.selected != NoSelection
}

// SelectTile handles a click on slot idx. With nothing selected, idx becomes
// the selection; clicking the selection again clears it; clicking another
// slot swaps the two tiles and counts a move. Once the session is over this
// does nothing.
func (session *Session) SelectTile(idx int) error {
	if session.outcome.IsTerminal() {
		return nil
	}
	if !session.grid.validIndex(idx) {
		return fmt.Errorf("%w: select(%d) on %d tiles", ErrIndexOutOfRange, idx, session.grid.NumTiles())
	}

	switch session.selected {
	case NoSelection:
		session.selected = idx
	case idx:
		session.selected = NoSelection
	default:
		if err := session.grid.Swap(session.selected, idx); err != nil {
			return err
		}
		session.selected = NoSelection
		session.moves++

		if session.grid.IsComplete() {
			session.outcome = Won
		} else if session.moves >= session.moveLimit {
			session.outcome = MoveLimitExceeded
		}
	}

	return nil
}

// Tick ends the session once its time limit has run out
func (session *Session) Tick(now time.Time) {
	if session.outcome == InProgress && session.Remaining(now) <= 0 {
		session.outcome = TimedOut
		session.selected = NoSelection
	}
}

func (session *Session) Elapsed(now time.Time) time.Duration {
	return now.Sub(session.started)
}

func (session *Session) Remaining(now time.Time) time.Duration {
	remaining := session.timeLimit - session.Elapsed(now)
	if remaining < 0 {
		return 0
	}
	return remaining
}

func (session *Session) RemainingSeconds(now time.Time) float64 {
	return session.Remaining(now).Seconds()
}
