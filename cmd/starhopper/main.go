// starhopper is a terminal platformer: hop across moving, rising and
// vanishing platforms, collect every coin and reach the portal.
//
// Usage:
//
//	starhopper play                - Play the selected level set
//	starhopper levels              - List level sets
//	starhopper levels show <set>   - Show the levels of a set
//	starhopper levels dump <dir>   - Write a set as YAML level files
//	starhopper levels check <dir>  - Validate a directory of level files
//	starhopper scores [set]        - Print the run log
//	starhopper scoreboard          - Browse the run log interactively
//	starhopper serve               - Start SSH server for remote play
//
// Global flags:
//
//	--fps <rate>          - Set tick rate (default: 60)
//	--db <path>           - Set database path (default: ~/.starhopper/runs.db)
//	--config <path>       - Physics and scoring config YAML
//	--difficulty <name>   - Difficulty preset: easy, normal, hard
//	--levels-dir <dir>    - Register a directory of YAML levels as a set
//	--set <id>            - Level set to play (default: classic)
//	--log-file <path>     - Write a debug log to a file
package main

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"
)

var (
	// Global flags
	flagFPS        int
	flagDBPath     string
	flagConfig     string
	flagDifficulty string
	flagLevelsDir  string
	flagSet        string
	flagLogFile    string
)

func main() {
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

var rootCmd = &cobra.Command{
	Use:   "starhopper",
	Short: "Star Hopper - a platformer in your terminal",
	Long: `Star Hopper is a terminal platformer. Each level is a screen of
platforms, spikes and coins; collect every coin to open the portal.
Finish every level in one go for a full-run time.

Available commands:
  play        - Play a level set
  levels      - List, show, export and validate level sets
  scores      - Print the run log
  scoreboard  - Browse the run log interactively
  serve       - Start SSH server for remote play

Examples:
  starhopper play
  starhopper play --level 5 --difficulty easy
  starhopper play --levels-dir ./my-levels --set my-levels
  starhopper scores classic
  starhopper serve --ssh :2222`,
	PersistentPreRunE: func(_ *cobra.Command, _ []string) error {
		return registerLevelsDir(flagLevelsDir)
	},
	SilenceUsage:  true,
	SilenceErrors: true,
}

func init() {
	// Global persistent flags
	pf := rootCmd.PersistentFlags()
	pf.IntVar(&flagFPS, "fps", 60, "Tick rate (frames per second)")
	pf.StringVar(&flagDBPath, "db", "~/.starhopper/runs.db", "Path to the run log database")
	pf.StringVar(&flagConfig, "config", "", "Path to custom physics config YAML")
	pf.StringVar(&flagDifficulty, "difficulty", "", "Difficulty preset: easy, normal, hard")
	pf.StringVar(&flagLevelsDir, "levels-dir", "", "Directory of YAML level files to register as a set")
	pf.StringVar(&flagSet, "set", "", "Level set to play (default: classic, or the --levels-dir set)")
	pf.StringVar(&flagLogFile, "log-file", "", "Write a debug log to this file")

	// Add subcommands
	rootCmd.AddCommand(playCmd)
	rootCmd.AddCommand(levelsCmd)
	rootCmd.AddCommand(scoresCmd)
	rootCmd.AddCommand(scoreboardCmd)
	rootCmd.AddCommand(serveCmd)
}
