package main

import (
	"errors"
	"io"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/tui-snake/internal/config"
	"github.com/vovakirdan/tui-snake/internal/core"
	"github.com/vovakirdan/tui-snake/internal/games/snake"
	"github.com/vovakirdan/tui-snake/internal/platform/tui"
)

var flagDifficulty string

var playCmd = &cobra.Command{
	Use:   "play",
	Short: "Play snake",
	Long: `Start a game of snake.

Controls:
  Arrows/WASD  - Steer (the first direction starts the game)
  Space/P      - Stop in place (pick a direction to resume)
  R            - Restart (after game over)
  ?            - Toggle full help
  Ctrl+S       - Save a text screenshot to ~/.snake/screenshots
  Q/Ctrl+C     - Quit

Difficulty options:
  easy   - 200ms per move at start, speeds up per food
  normal - 150ms per move at start, speeds up per food
  hard   - 100ms per move at start, speeds up per food
  fixed  - 150ms per move, never speeds up

Without --difficulty a menu asks for one.

Presets are applied on top of the config file: easy and hard replace
pacing.initial_interval_ms, fixed sets pacing.decrement_ms to 0, and normal
keeps the file's values. Use normal to play a custom pace as written.

Examples:
  snake play
  snake play --difficulty hard
  snake play --seed 42 --log-file snake.log --log-level debug
  snake play --config ./my-snake.yaml`,
	Args: cobra.NoArgs,
	Run:  runPlay,
}

func init() {
	playCmd.Flags().StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard, fixed")
}

func runPlay(_ *cobra.Command, _ []string) {
	// The alt screen owns the terminal, so logs are discarded without --log-file
	logger, closeLog, err := newLogger(io.Discard, "snake")
	if err != nil {
		fail("%v", err)
	}
	defer closeLog()

	// Config warnings go to stderr too, since play logs nowhere by default
	cfg, err := config.LoadSnake(flagConfig, warnLogger(logger))
	if err != nil {
		fail("%v", err)
	}

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	rc := core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}

	var preset config.DifficultyPreset
	if flagDifficulty != "" {
		preset, err = config.ParsePreset(flagDifficulty)
		if err != nil {
			fail("%v", err)
		}
	} else {
		var ok bool
		preset, ok, err = tui.RunPresetSelector(rc)
		if err != nil {
			fail("%v", err)
		}
		if !ok {
			return
		}
	}
	config.ApplySnakePreset(&cfg, preset)

	game, err := snake.New(cfg, preset)
	if err != nil {
		fail("%v", err)
	}

	logger.Info("starting", "preset", preset, "grid", cfg.Grid.Size, "seed", flagSeed)

	if err := tui.Run(game, rc, logger); err != nil {
		if errors.Is(err, snake.ErrBoardFull) {
			logger.Info("board filled", "score", game.Engine().Score())
		}
		closeLog()
		fail("%v", err)
	}
}
