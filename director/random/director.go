package random

import (
	"math/rand"

	"github.com/they4kman/goslide/puzzle"
)

// Director clicks tiles in a random order, reshuffled after every pass
type Director struct {
	rand    *rand.Rand
	session *puzzle.Session
	order   []int
	next    int
}

func New(rng *rand.Rand) *Director {
	return &Director{rand: rng}
}

func (director *Director) Init(session *puzzle.Session) {
	director.session = session
	director.order = director.rand.Perm(session.Grid().NumTiles())
	director.next = 0
}

func (director *Director) Act() (int, bool) {
	if director.session == nil || director.session.Outcome().IsTerminal() {
		return 0, false
	}

	if director.next >= len(director.order) {
		director.rand.Shuffle(len(director.order), func(i, j int) {
			director.order[i], director.order[j] = director.order[j], director.order[i]
		})
		director.next = 0
	}

	idx := director.order[director.next]
	director.next++
	return idx, true
}
