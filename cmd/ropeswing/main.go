// ropeswing is a terminal endless side-scrolling swing game.
//
// Usage:
//
//	ropeswing play              - Play the game
//	ropeswing scores            - Show best runs
//	ropeswing serve             - Start SSH server for remote play
//	ropeswing config            - Print the default configuration YAML
//
// Global flags:
//
//	--fps <rate>    - Set tick rate (default: 60)
//	--seed <value>  - Set RNG seed for reproducible runs
//	--db <path>     - Set database path (default: ~/.ropeswing/runs.db)
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS    int
	flagSeed   int64
	flagDBPath string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "ropeswing",
	Short: "Rope Swing - An endless swinging game in your terminal",
	Long: `Rope Swing is a terminal arcade game: fall, grab a bar, swing,
let go at the right moment and fly as far as you can. Collect diamonds,
dodge the blocks, don't fall off the screen.

Available commands:
  play     - Play the game
  scores   - View best runs
  serve    - Start SSH server for remote play
  config   - Print the default configuration YAML

Examples:
  ropeswing play
  ropeswing play --difficulty hard
  ropeswing scores --interactive
  ropeswing serve --ssh :2222`,
}

func init() {
	// Global persistent flags
	rootCmd.PersistentFlags().IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	rootCmd.PersistentFlags().Int64Var(&flagSeed, "seed", 0, "RNG seed (0 = random based on time)")
	rootCmd.PersistentFlags().StringVar(&flagDBPath, "db", "~/.ropeswing/runs.db", "Path to runs database")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(serveCmd)
	rootCmd.AddCommand(configCmd)
}
