package puzzle

import (
	"fmt"
	"image"
	"math/rand"
	"sort"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/they4kman/goslide/pictures"
	"github.com/they4kman/goslide/util/collections"
)

// Pictures is the picture repository sessions draw from
type Pictures interface {
	List() (collections.Set[string], error)
	Load(name string) (image.Image, error)
}

// Starter builds fresh sessions: a random picture, scaled, cut and shuffled
type Starter struct {
	Pictures Pictures
	// Pictures wider than this are scaled down before cutting; 0 disables
	MaxWidth int

	Rand *rand.Rand
	Now  func() time.Time
	Log  logrus.FieldLogger
}

func NewStarter(repo Pictures, maxWidth int, rng *rand.Rand, log logrus.FieldLogger) *Starter {
	return &Starter{
		Pictures: repo,
		MaxWidth: maxWidth,
		Rand:     rng,
		Now:      time.Now,
		Log:      log,
	}
}

// Start begins a new session at level for playerName. Every call draws a
// new random picture, restarts included.
func (starter *Starter) Start(playerName string, level int) (*Session, error) {
	names, err := starter.Pictures.List()
	if err != nil {
		return nil, err
	}
	if len(names) == 0 {
		return nil, ErrNoImagesAvailable
	}

	// Sorted, so a seeded Rand always picks the same picture
	choices := names.Slice()
	sort.Strings(choices)
	picture := choices[starter.Rand.Intn(len(choices))]

	img, err := starter.Pictures.Load(picture)
	if err != nil {
		return nil, err
	}
	img = pictures.Scale(img, starter.MaxWidth)

	difficulty := DifficultyFor(level)
	grid, err := NewGrid(img, difficulty.GridSize, difficulty.GridSize)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", picture, err)
	}
	grid.Shuffle(starter.Rand)

	session := NewSession(grid, playerName, level, starter.Now())
	session.picture = picture

	log := starter.Log.WithFields(logrus.Fields{
		"player":  playerName,
		"level":   level,
		"picture": picture,
		"grid":    fmt.Sprintf("%dx%d", difficulty.GridSize, difficulty.GridSize),
	})
	if droppedX, droppedY := grid.Dropped(); droppedX > 0 || droppedY > 0 {
		log = log.WithField("dropped", fmt.Sprintf("%dx%d", droppedX, droppedY))
	}
	log.Info("Puzzle started")

	return session, nil
}
