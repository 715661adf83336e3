// Package solver plays a puzzle perfectly: every swap puts at least one
// tile in its solved slot, so an NxN grid never takes more than N*N-1 moves.
package solver

import "github.com/they4kman/goslide/puzzle"

type Director struct {
	session *puzzle.Session
}

func New() *Director {
	return &Director{}
}

func (director *Director) Init(session *puzzle.Session) {
	director.session = session
}

func (director *Director) Act() (int, bool) {
	session := director.session
	if session == nil || session.Outcome().IsTerminal() {
		return 0, false
	}
	grid := session.Grid()

	// Finish whatever swap is under way, even one the player began
	if selected, ok := session.Selected(); ok {
		return grid.IndexOf(grid.Solution(selected)), true
	}

	misplaced := grid.Misplaced()
	if len(misplaced) == 0 {
		return 0, false
	}
	return misplaced[0], true
}
