package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/gridsnake/internal/config"
)

var flagConfigDefaults bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the effective snake configuration",
	Long: `Print the configuration gridsnake would use, after the search order
--config -> ~/.gridsnake/configs/snake.yaml -> ./configs/snake.yaml ->
built-in defaults has been applied. Use --defaults for the built-in file,
a good starting point for your own config.

Examples:
  gridsnake config
  gridsnake config --defaults > ~/.gridsnake/configs/snake.yaml`,
	RunE: runConfig,
}

func init() {
	configCmd.Flags().BoolVar(&flagConfigDefaults, "defaults", false, "Print the built-in default YAML")
}

func runConfig(_ *cobra.Command, _ []string) error {
	if flagConfigDefaults {
		fmt.Print(string(config.GetDefaultYAML("snake")))
		return nil
	}

	cfg, err := config.LoadSnake(flagConfig)
	if err != nil {
		return err
	}
	out, err := config.Marshal(cfg)
	if err != nil {
		return err
	}
	fmt.Print(string(out))
	return nil
}
