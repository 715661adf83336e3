package cmd

import (
	"fmt"
	"math/rand"
	"os"
	"sort"
	"strings"

	"github.com/faiface/pixel/pixelgl"
	"github.com/spf13/cobra"

	"github.com/they4kman/goslide/config"
	"github.com/they4kman/goslide/director/random"
	"github.com/they4kman/goslide/director/solver"
	"github.com/they4kman/goslide/game"
	"github.com/they4kman/goslide/puzzle"
)

var gameConfig = config.New()
var configPath string

var rootCmd = &cobra.Command{
	Use:   "goslide",
	Short: "Play a picture slide puzzle, by hand or computer-driven",
	Long: `goslide cuts a random picture into tiles and shuffles them. Swap
tiles two at a time until the picture is whole again, before the clock or
the moves run out. Every solved puzzle starts the next, bigger level.

Run with no arguments to play manually
	goslide

Point it at another picture directory
	goslide -p ~/Pictures

Use the director flag to make the computer play for you
	goslide -d solver
`,
	SilenceUsage: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := resolveConfig(cmd)
		if err != nil {
			return err
		}

		log, err := cfg.NewLogger()
		if err != nil {
			return err
		}

		// Pin the seed so the director and the game draw from the same one
		cfg.Seed = cfg.Seeded()
		director, err := newDirector(cfg.Director, cfg.Seed)
		if err != nil {
			return err
		}

		var runErr error
		pixelgl.Run(func() {
			runErr = game.Run(cfg, director, log)
		})
		return runErr
	},
}

// resolveConfig layers the config file, if any, under the flags the user
// actually passed.
func resolveConfig(cmd *cobra.Command) (config.GameConfig, error) {
	if configPath == "" {
		return gameConfig, gameConfig.Validate()
	}

	cfg, err := config.Load(configPath)
	if err != nil {
		return cfg, err
	}

	flags := cmd.Flags()
	if flags.Changed("pictures") {
		cfg.PicturesDir = gameConfig.PicturesDir
	}
	if flags.Changed("name") {
		cfg.PlayerName = gameConfig.PlayerName
	}
	if flags.Changed("fps") {
		cfg.FPS = gameConfig.FPS
	}
	if flags.Changed("seed") {
		cfg.Seed = gameConfig.Seed
	}
	if flags.Changed("margin") {
		cfg.TileMargin = gameConfig.TileMargin
	}
	if flags.Changed("log-level") {
		cfg.LogLevel = gameConfig.LogLevel
	}
	if flags.Changed("director") {
		cfg.Director = gameConfig.Director
	}
	return cfg, cfg.Validate()
}

var directors = map[string]func(seed int64) puzzle.Director{
	"random": func(seed int64) puzzle.Director {
		return random.New(rand.New(rand.NewSource(seed)))
	},
	"solver": func(int64) puzzle.Director {
		return solver.New()
	},
}

func directorNames() []string {
	names := make([]string, 0, len(directors))
	for name := range directors {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

func newDirector(name string, seed int64) (puzzle.Director, error) {
	if name == "" {
		return nil, nil
	}
	create, isValid := directors[name]
	if !isValid {
		return nil, fmt.Errorf("invalid director %q, expected one of %s", name, strings.Join(directorNames(), ", "))
	}
	return create(seed), nil
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

type directorValue string

func newDirectorValue(val string, p *string) *directorValue {
	*p = val
	return (*directorValue)(p)
}

func (dirVal *directorValue) String() string {
	return string(*dirVal)
}

func (dirVal *directorValue) Set(value string) error {
	if _, isValid := directors[value]; !isValid {
		return fmt.Errorf("invalid director")
	}
	*dirVal = directorValue(value)
	return nil
}

func (dirVal *directorValue) Type() string {
	return "director"
}

func init() {
	flags := rootCmd.Flags()

	flags.StringVar(&configPath, "config", "", "YAML file with game settings; flags override it")
	flags.StringVarP(&gameConfig.PicturesDir, "pictures", "p", gameConfig.PicturesDir, "Directory to pick puzzle pictures from")
	flags.StringVarP(&gameConfig.PlayerName, "name", "n", gameConfig.PlayerName, "Player name shown in the game")
	flags.UintVar(&gameConfig.FPS, "fps", gameConfig.FPS, "Frames drawn per second")
	flags.Int64Var(&gameConfig.Seed, "seed", 0, "Seed for picture choice and shuffling; 0 seeds from the clock")
	flags.IntVar(&gameConfig.TileMargin, "margin", gameConfig.TileMargin, "Pixels between puzzle tiles")
	flags.StringVar(&gameConfig.LogLevel, "log-level", gameConfig.LogLevel, "Log level: debug, info, warn or error")
	flags.VarP(newDirectorValue("", &gameConfig.Director), "director", "d", `Make the computer play.
random: selects tiles in a random order
solver: puts one tile in place with every swap`)
}
