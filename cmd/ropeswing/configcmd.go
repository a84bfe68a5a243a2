package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/ropeswing/ropeswing/internal/config"
)

var configCmd = &cobra.Command{
	Use:   "config",
	Short: "Print the default configuration YAML",
	Long: `Print the embedded default configuration to stdout.

Redirect it to a file to customize:
  ropeswing config > ~/.ropeswing/configs/swing.yaml
  ropeswing play --config ./my-swing.yaml`,
	Args: cobra.NoArgs,
	Run: func(cmd *cobra.Command, args []string) {
		if _, err := os.Stdout.Write(config.GetDefaultYAML()); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	},
}
