package cmd

import (
	"fmt"
	"os"
	"time"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/config"
	"github.com/FluidXR/tabletswitch/internal/journal"
)

var (
	historyLimit int
	historyPrune time.Duration
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Show recent connection changes and switch attempts",
	RunE: func(cmd *cobra.Command, args []string) error {
		db, err := journal.Open(config.ConfigDir())
		if err != nil {
			return fmt.Errorf("open journal: %w", err)
		}
		defer db.Close()

		if historyPrune > 0 {
			n, err := db.Prune(time.Now().Add(-historyPrune))
			if err != nil {
				return err
			}
			fmt.Printf("Pruned %d entries older than %s\n", n, historyPrune)
			return nil
		}

		entries, err := db.Recent(historyLimit)
		if err != nil {
			return err
		}
		if len(entries) == 0 {
			fmt.Println("No history yet.")
			return nil
		}
		for _, e := range entries {
			ts := e.At.Format("2006-01-02 15:04:05")
			switch e.Kind {
			case journal.KindSwitch:
				if e.Error != "" {
					fmt.Printf("%s  switch   FAILED  %s\n", ts, e.Error)
				} else {
					fmt.Printf("%s  switch   ok      devices %s\n", ts, e.Detail)
				}
			default:
				fmt.Printf("%-19s  %-12s %s\n", ts, e.Kind, e.Detail)
			}
		}

		stats, err := db.GetStats()
		if err != nil {
			fmt.Fprintf(os.Stderr, "Warning: could not read stats: %v\n", err)
			return nil
		}
		fmt.Printf("\nConnects: %d | Disconnects: %d | Switches: %d (%d failed)\n",
			stats.Connects, stats.Disconnects, stats.Switches, stats.FailedSwitches)
		return nil
	},
}

func init() {
	historyCmd.Flags().IntVarP(&historyLimit, "limit", "n", 20, "number of entries to show")
	historyCmd.Flags().DurationVar(&historyPrune, "prune", 0, "delete entries older than this (e.g. 720h) instead of listing")
	rootCmd.AddCommand(historyCmd)
}
