// Package game drives the screens in a pixelgl window: it polls input,
// hands it to the screen machine, lets a director play if one is set, and
// draws the current screen once per frame.
package game

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/faiface/pixel"
	"github.com/faiface/pixel/pixelgl"
	"github.com/sirupsen/logrus"

	"github.com/they4kman/goslide/config"
	"github.com/they4kman/goslide/input"
	"github.com/they4kman/goslide/pictures"
	"github.com/they4kman/goslide/puzzle"
	"github.com/they4kman/goslide/screen"
)

const title = "goslide"

// autoplay feeds a director's selections into the input queue, no faster
// than once per interval.
type autoplay struct {
	director puzzle.Director
	interval time.Duration

	session *puzzle.Session
	lastAct time.Time
}

func (auto *autoplay) Act(current screen.Screen, now time.Time, queue *input.Queue) {
	if auto.director == nil {
		return
	}

	p, ok := current.(*screen.Puzzle)
	if !ok {
		auto.session = nil
		return
	}

	if p.Session != auto.session {
		auto.session = p.Session
		auto.director.Init(p.Session)
		auto.lastAct = now
		return
	}

	if now.Sub(auto.lastAct) < auto.interval {
		return
	}
	auto.lastAct = now

	if idx, ok := auto.director.Act(); ok {
		queue.Push(input.SelectEvent(idx))
	}
}

func windowBounds(size config.WindowSize) pixel.Rect {
	return pixel.R(0, 0, float64(size.Width), float64(size.Height))
}

// Run opens the game window and plays until the player quits. It must be
// called from within pixelgl.Run.
func Run(cfg config.GameConfig, director puzzle.Director, log logrus.FieldLogger) error {
	seed := cfg.Seeded()
	log.WithFields(logrus.Fields{
		"seed":     seed,
		"pictures": cfg.PicturesDir,
	}).Info("Starting game")

	winCfg := pixelgl.WindowConfig{
		Title:  title,
		Bounds: windowBounds(cfg.MenuWindow),
	}
	win, err := pixelgl.NewWindow(winCfg)
	if err != nil {
		return fmt.Errorf("cannot open window: %w", err)
	}
	defer win.Destroy()

	rng := rand.New(rand.NewSource(seed))
	repo := pictures.NewRepository(cfg.PicturesDir)
	starter := puzzle.NewStarter(repo, int(cfg.PuzzleWindow.Width), rng, log)
	machine := screen.NewMachine(starter, screen.Options{
		TileMargin:  cfg.TileMargin,
		HintBlink:   cfg.HintBlink,
		CursorBlink: cfg.CursorBlink,
	}, log)

	events := input.NewQueue()
	poll := poller{win: win}
	draw := newRenderer(win)
	auto := &autoplay{director: director, interval: cfg.DirectorInterval}

	current := machine.Splash(cfg.PlayerName)
	size := cfg.MenuWindow

	var (
		frames = 0
		second = time.Tick(time.Second)
		frame  = time.Tick(time.Second / time.Duration(cfg.FPS))
	)

	for {
		now := time.Now()

		poll.Poll(events)
		auto.Act(current, now, events)

		result := machine.Transition(current, events.Drain())
		if result.Quit {
			log.Info("Goodbye")
			return nil
		}
		current = machine.Update(result.Next, now)

		wanted := cfg.MenuWindow
		if _, isPuzzle := current.(*screen.Puzzle); isPuzzle {
			wanted = cfg.PuzzleWindow
		}
		if wanted != size {
			size = wanted
			win.SetBounds(windowBounds(size))
		}

		draw.Draw(current, now)
		win.Update()

		frames++
		select {
		case <-second:
			win.SetTitle(fmt.Sprintf("%s | FPS: %d", title, frames))
			frames = 0
		default:
		}

		<-frame
	}
}
