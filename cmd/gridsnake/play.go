package main

import (
	"fmt"
	"os"

	"github.com/pkg/errors"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/gridsnake/internal/core"
	"github.com/vovakirdan/gridsnake/internal/games/snake"
	"github.com/vovakirdan/gridsnake/internal/platform/tui"
	"github.com/vovakirdan/gridsnake/internal/registry"
)

var flagLogFile string

var playCmd = &cobra.Command{
	Use:   "play <game>",
	Short: "Play a board",
	Long: `Start playing the specified board.

Controls:
  Arrows/WASD/hjkl  - Steer
  P/Esc             - Pause
  ?                 - More keys
  Ctrl+S            - Save a screenshot
  Q/Ctrl+C          - Quit

The snake cannot reverse onto itself: pressing the direction opposite to
its last move is ignored.

Examples:
  gridsnake play snake
  gridsnake play snake_wide
  gridsnake play snake --config ./my-snake.yaml --log-level debug`,
	Args: cobra.ExactArgs(1),
	RunE: runPlay,
}

func init() {
	for _, cmd := range []*cobra.Command{playCmd, menuCmd} {
		cmd.Flags().StringVar(&flagLogFile, "log-file", "~/.gridsnake/gridsnake.log", "Log file (empty to disable)")
	}
}

// terminalConfig builds the runtime config from the terminal size and flags.
func terminalConfig() core.RuntimeConfig {
	width, height := 80, 24 // Defaults
	if w, h, err := term.GetSize(int(os.Stdout.Fd())); err == nil {
		width = w
		height = h
	}
	return core.RuntimeConfig{
		ScreenW:  width,
		ScreenH:  height,
		TickRate: flagFPS,
		Seed:     flagSeed,
	}
}

func runPlay(_ *cobra.Command, args []string) error {
	gameID := args[0]
	if !registry.Exists(gameID) {
		fmt.Fprintln(os.Stderr, "Run 'gridsnake list' to see available games.")
		return errors.Errorf("unknown game %q", gameID)
	}
	return playGame(gameID, terminalConfig())
}

// playGame runs one game in the terminal, logging to the play log file so
// the alternate screen stays clean.
func playGame(gameID string, cfg core.RuntimeConfig) error {
	out, err := openLogFile(flagLogFile)
	if err != nil {
		return err
	}
	defer out.Close()

	logger, err := newLogger(out, "gridsnake")
	if err != nil {
		return err
	}
	snake.SetLogger(logger)

	game, err := registry.Create(gameID)
	if err != nil {
		return errors.WithMessage(err, "create game")
	}
	if err := tui.Run(game, cfg, logger); err != nil {
		logger.Error("game failed", "err", err)
		return errors.WithMessage(err, "run game")
	}
	return nil
}
