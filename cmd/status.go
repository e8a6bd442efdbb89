package cmd

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/monitor"
	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

var statusQuiet bool

var statusCmd = &cobra.Command{
	Use:   "status",
	Short: "Report whether a tablet is connected",
	Long:  `Exits 0 when a tablet is connected and 1 otherwise, so it can be used in scripts.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		client := xsetwacom.NewClient(cfg.Tool)
		tracker := monitor.NewTracker(client, newCLILogger(cfg))
		connected := tracker.CheckNow(cmd.Context())
		if !statusQuiet {
			printStatus(cmd.OutOrStdout(), connected)
		}
		if !connected {
			return errSilentExit
		}
		return nil
	},
}

func printStatus(w io.Writer, connected bool) {
	if connected {
		fmt.Fprintln(w, "Tablet connected")
		return
	}
	fmt.Fprintln(w, "No tablet detected")
}

func init() {
	statusCmd.Flags().BoolVarP(&statusQuiet, "quiet", "q", false, "no output, exit status only")
	rootCmd.AddCommand(statusCmd)
}
