package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/vovakirdan/star-hopper/internal/level"
	"github.com/vovakirdan/star-hopper/internal/registry"
)

var levelsCmd = &cobra.Command{
	Use:   "levels",
	Short: "List level sets",
	Long: `Shows every registered level set. A directory passed with
--levels-dir is registered under the directory's name.`,
	Args: cobra.NoArgs,
	Run:  runLevels,
}

var levelsShowCmd = &cobra.Command{
	Use:   "show [set]",
	Short: "Show the levels of a set",
	Args:  cobra.MaximumNArgs(1),
	Run:   runLevelsShow,
}

var levelsDumpCmd = &cobra.Command{
	Use:   "dump <dir>",
	Short: "Write the selected set as YAML level files",
	Long: `Writes one YAML file per level of the selected set into dir.
The files are a starting point for a custom level pack.

Examples:
  starhopper levels dump ./my-levels
  starhopper --levels-dir ./my-levels play`,
	Args: cobra.ExactArgs(1),
	Run:  runLevelsDump,
}

var levelsCheckCmd = &cobra.Command{
	Use:   "check <dir>",
	Short: "Validate a directory of YAML level files",
	Args:  cobra.ExactArgs(1),
	Run:   runLevelsCheck,
}

func init() {
	levelsCmd.AddCommand(levelsShowCmd)
	levelsCmd.AddCommand(levelsDumpCmd)
	levelsCmd.AddCommand(levelsCheckCmd)
}

func runLevels(_ *cobra.Command, _ []string) {
	sets := registry.List()

	if len(sets) == 0 {
		fmt.Println("No level sets available.")
		return
	}

	fmt.Println("Level sets:")
	fmt.Println()

	// Calculate column widths
	maxIDLen := 2 // "ID" header
	for _, s := range sets {
		if len(s.ID) > maxIDLen {
			maxIDLen = len(s.ID)
		}
	}

	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "ID", "Levels", "Title")
	fmt.Printf("  %-*s  %-6s  %s\n", maxIDLen, "--", "------", "-----")
	for _, s := range sets {
		fmt.Printf("  %-*s  %-6d  %s\n", maxIDLen, s.ID, s.Levels, s.Title)
	}

	fmt.Println()
	fmt.Println("Run 'starhopper play --set <id>' to play a set.")
}

func runLevelsShow(_ *cobra.Command, args []string) {
	if len(args) == 1 {
		flagSet = args[0]
	}
	set, err := selectedSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	fmt.Printf("%s (%s)\n\n", set.Title, set.ID)
	fmt.Printf("  %-3s  %-22s  %-9s  %-6s  %-5s  %-6s\n", "#", "Name", "Platforms", "Spikes", "Coins", "Tokens")
	for i, def := range set.Levels {
		fmt.Printf("  %-3d  %-22s  %-9d  %-6d  %-5d  %-6d\n",
			i+1, def.Name, def.PlatformCount(), len(def.Spikes), len(def.Coins), len(def.ChallengeTokens))
	}
}

func runLevelsDump(_ *cobra.Command, args []string) {
	set, err := selectedSet()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	dir := args[0]
	if err := os.MkdirAll(dir, 0o755); err != nil {
		fmt.Fprintf(os.Stderr, "Error: cannot create %s: %v\n", dir, err)
		os.Exit(1)
	}

	for _, def := range set.Levels {
		data, err := level.MarshalYAML(def)
		if err != nil {
			fmt.Fprintf(os.Stderr, "Error: level %s: %v\n", def.ID, err)
			os.Exit(1)
		}
		path := filepath.Join(dir, def.ID+".yaml")
		if err := os.WriteFile(path, data, 0o644); err != nil { //nolint:gosec // level files are meant to be shared
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
		fmt.Println(path)
	}
}

func runLevelsCheck(_ *cobra.Command, args []string) {
	set, err := level.LoadDir(args[0])
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("%s: %d levels OK\n", set.ID, set.Len())
}
