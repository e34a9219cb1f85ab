package main

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/vovakirdan/star-hopper/internal/platform/tui"
	"github.com/vovakirdan/star-hopper/internal/session"
	"github.com/vovakirdan/star-hopper/internal/storage"
)

var flagClearScores bool

var scoresCmd = &cobra.Command{
	Use:   "scores [set]",
	Short: "Print the run log of a level set",
	Long: `Display the best logged time of every level, the fastest full
runs and the top scores of a level set.

Examples:
  starhopper scores
  starhopper scores classic
  starhopper scores classic --clear`,
	Args: cobra.MaximumNArgs(1),
	RunE: runScores,
}

var scoreboardCmd = &cobra.Command{
	Use:   "scoreboard",
	Short: "Browse the run log interactively",
	Args:  cobra.NoArgs,
	RunE:  runScoreboard,
}

func init() {
	scoresCmd.Flags().BoolVar(&flagClearScores, "clear", false, "Delete the run log of the set")
}

func runScores(_ *cobra.Command, args []string) error {
	if len(args) == 1 {
		flagSet = args[0]
	}
	set, err := selectedSet()
	if err != nil {
		return fmt.Errorf("%w\nRun 'starhopper levels' to see available sets", err)
	}

	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer store.Close()

	if flagClearScores {
		if err := store.ClearSet(set.ID); err != nil {
			return err
		}
		fmt.Printf("Cleared the run log of %s.\n", set.ID)
		return nil
	}

	bests, err := store.BestTimes(set.ID)
	if err != nil {
		return fmt.Errorf("retrieving best times: %w", err)
	}

	fmt.Printf("Run Log - %s\n", set.Title)
	fmt.Println()

	if len(bests) == 0 {
		fmt.Println("No levels finished yet.")
		fmt.Println()
		fmt.Printf("Play 'starhopper play --set %s' to set the first time!\n", set.ID)
		return nil
	}

	// Best time per level, plus the segmented total when every level has one
	fmt.Printf("  %-26s  %-8s  %-6s  %s\n", "Level", "Best", "Tokens", "By")
	fmt.Printf("  %-26s  %-8s  %-6s  %s\n", "-----", "----", "------", "--")
	var segmented time.Duration
	for _, b := range bests {
		name := fmt.Sprintf("%d", b.Level+1)
		if set.Valid(b.Level) {
			name = fmt.Sprintf("%d. %s", b.Level+1, set.Levels[b.Level].Name)
		}
		fmt.Printf("  %-26s  %-8s  %-6d  %s\n", name, session.FormatTime(b.Time), b.Tokens, b.Player)
		segmented += b.Time
	}
	if len(bests) == set.Len() {
		fmt.Printf("\n  Segmented best: %s\n", session.FormatTime(segmented))
	}

	runs, err := store.FastestRuns(set.ID, 5)
	if err != nil {
		return fmt.Errorf("retrieving full runs: %w", err)
	}
	if len(runs) > 0 {
		fmt.Println()
		fmt.Println("Fastest full runs:")
		for i, r := range runs {
			fmt.Printf("  %-4d  %-8s  score %-6d  deaths %-4d  %s  %s\n",
				i+1, session.FormatTime(r.Time), r.Score, r.Deaths, r.Player, r.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	scores, err := store.TopScores(set.ID, 5)
	if err != nil {
		return fmt.Errorf("retrieving scores: %w", err)
	}
	if len(scores) > 0 {
		fmt.Println()
		fmt.Println("Top scores:")
		for i, s := range scores {
			fmt.Printf("  %-4d  %-8d  deaths %-4d  %s  %s\n",
				i+1, s.Score, s.Deaths, s.Player, s.CreatedAt.Format("2006-01-02 15:04"))
		}
	}

	if stats, err := store.GetSetStats(set.ID); err == nil && stats.Runs > 0 {
		fmt.Println()
		fmt.Printf("%d runs (%d finished), %d deaths, last played %s\n",
			stats.Runs, stats.Finished, stats.TotalDeaths, stats.LastPlayed.Format("2006-01-02 15:04"))
	}
	return nil
}

func runScoreboard(_ *cobra.Command, _ []string) error {
	store, err := storage.Open(flagDBPath)
	if err != nil {
		return fmt.Errorf("opening run log: %w", err)
	}
	defer store.Close()

	width, height := 80, 24
	if w, h, termErr := term.GetSize(int(os.Stdout.Fd())); termErr == nil {
		width = w
		height = h
	}

	return tui.RunScoreboard(store, width, height)
}
