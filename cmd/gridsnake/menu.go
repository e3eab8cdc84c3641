package main

import (
	"github.com/pkg/errors"
	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/platform/tui"
)

var menuCmd = &cobra.Command{
	Use:   "menu",
	Short: "Pick a board interactively",
	Long: `Start gridsnake with a board picker.

Use arrow keys or j/k to navigate, Enter to select a board.
After you quit a game, you return to the menu.

Examples:
  gridsnake menu
  gridsnake menu --fps 30`,
	RunE: runMenu,
}

func runMenu(_ *cobra.Command, _ []string) error {
	cfg := terminalConfig()
	for {
		result, err := tui.RunMenu(cfg)
		if err != nil {
			return errors.WithMessage(err, "menu")
		}
		if result.Quit {
			return nil
		}
		cfg = result.Config
		if err := playGame(result.GameID, cfg); err != nil {
			return err
		}
	}
}
