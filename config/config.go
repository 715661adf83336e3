// Package config holds the game's settings: defaults, the optional YAML
// config file, and the logger the settings ask for.
package config

import (
	"fmt"
	"os"
	"time"
	"unicode/utf8"

	"github.com/sirupsen/logrus"
	"gopkg.in/yaml.v2"
)

// MaxNameLength bounds the player name, matching the name entry screen
const MaxNameLength = 15

type WindowSize struct {
	Width  uint `yaml:"width"`
	Height uint `yaml:"height"`
}

type GameConfig struct {
	// Directory the puzzle pictures are picked from
	PicturesDir string `yaml:"pictures_dir"`
	PlayerName  string `yaml:"player_name"`

	FPS uint `yaml:"fps"`
	// Seed for picture choice and shuffling; 0 seeds from the clock
	Seed int64 `yaml:"seed"`

	MenuWindow   WindowSize `yaml:"menu_window"`
	PuzzleWindow WindowSize `yaml:"puzzle_window"`

	// Pixels between puzzle tiles
	TileMargin int `yaml:"tile_margin"`

	HintBlink   time.Duration `yaml:"hint_blink"`
	CursorBlink time.Duration `yaml:"cursor_blink"`

	// Name of the director playing in place of the player; empty for none
	Director string `yaml:"director"`
	// Time between two director tile selections
	DirectorInterval time.Duration `yaml:"director_interval"`

	LogLevel string `yaml:"log_level"`
}

func New() GameConfig {
	return GameConfig{
		PicturesDir:      "picture",
		PlayerName:       "Anonymous",
		FPS:              60,
		Seed:             0,
		MenuWindow:       WindowSize{Width: 1280, Height: 720},
		PuzzleWindow:     WindowSize{Width: 800, Height: 600},
		TileMargin:       2,
		HintBlink:        800 * time.Millisecond,
		CursorBlink:      500 * time.Millisecond,
		Director:         "",
		DirectorInterval: 250 * time.Millisecond,
		LogLevel:         "info",
	}
}

// Load reads a YAML config file on top of the defaults. Unknown keys are
// errors, so typos don't go unnoticed.
func Load(path string) (GameConfig, error) {
	config := New()

	data, err := os.ReadFile(path)
	if err != nil {
		return config, fmt.Errorf("config: cannot read %s: %w", path, err)
	}
	if err := yaml.UnmarshalStrict(data, &config); err != nil {
		return config, fmt.Errorf("config: cannot parse %s: %w", path, err)
	}
	return config, config.Validate()
}

func (config GameConfig) Validate() error {
	switch {
	case config.PicturesDir == "":
		return fmt.Errorf("config: pictures_dir is empty")
	case config.FPS == 0:
		return fmt.Errorf("config: fps must be positive")
	case config.TileMargin < 0:
		return fmt.Errorf("config: tile_margin must not be negative, got %d", config.TileMargin)
	case config.MenuWindow.Width == 0 || config.MenuWindow.Height == 0:
		return fmt.Errorf("config: menu_window must have a size")
	case config.PuzzleWindow.Width == 0 || config.PuzzleWindow.Height == 0:
		return fmt.Errorf("config: puzzle_window must have a size")
	case config.HintBlink <= 0 || config.CursorBlink <= 0:
		return fmt.Errorf("config: blink periods must be positive")
	case config.DirectorInterval <= 0:
		return fmt.Errorf("config: director_interval must be positive")
	case utf8.RuneCountInString(config.PlayerName) > MaxNameLength:
		return fmt.Errorf("config: player_name is longer than %d characters", MaxNameLength)
	}

	if _, err := logrus.ParseLevel(config.LogLevel); err != nil {
		return fmt.Errorf("config: %w", err)
	}
	return nil
}

// Seeded returns the seed to use: Seed, or one drawn from the clock
func (config GameConfig) Seeded() int64 {
	if config.Seed != 0 {
		return config.Seed
	}
	return time.Now().UnixNano()
}

// NewLogger builds the logger described by LogLevel, writing to stderr
func (config GameConfig) NewLogger() (*logrus.Logger, error) {
	level, err := logrus.ParseLevel(config.LogLevel)
	if err != nil {
		return nil, fmt.Errorf("config: %w", err)
	}

	logger := logrus.New()
	logger.Out = os.Stderr
	logger.Formatter = &logrus.TextFormatter{FullTimestamp: true}
	logger.SetLevel(level)
	return logger, nil
}
