package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/fruitslice/internal/config"
)

var flagForce bool

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Show or create the game config",
	Long: `Print the default game config as YAML.

Config files are searched in this order:
  --config <path>
  ~/.arcade/configs/fruit.yaml
  ./configs/fruit.yaml
  built-in defaults

A file only needs the keys it changes.

Examples:
  fruitslice config > my-fruit.yaml
  fruitslice config init`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		os.Stdout.Write(config.DefaultFruitYAML())
	},
}

var configInitCmd = &cobra.Command{
	Use:   "init",
	Short: "Write the default config to ~/.arcade/configs/fruit.yaml",
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		path := flagConfig
		if path == "" {
			path = config.UserConfigPath("fruit.yaml")
		}
		if path == "" {
			return errors.New("cannot determine home directory; pass --config")
		}
		if err := config.WriteDefaultFruit(path, flagForce); err != nil {
			return err
		}
		fmt.Printf("Wrote %s\n", path)
		return nil
	},
}

func init() {
	configInitCmd.Flags().BoolVar(&flagForce, "force", false, "Overwrite an existing file")
	configCmd.AddCommand(configInitCmd)
	rootCmd.AddCommand(configCmd)
}
