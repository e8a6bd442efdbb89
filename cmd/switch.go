package cmd

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/remap"
)

var switchOutput string

var switchCmd = &cobra.Command{
	Use:   "switch",
	Short: "Map the tablet to the next monitor",
	Long: `Runs 'xsetwacom set <id> maptooutput next' for every attached tablet device,
stopping at the first device that fails. Devices mapped before the failure
keep their new mapping.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}
		if switchOutput != "" {
			if err := cfg.Set("output", switchOutput); err != nil {
				return err
			}
		}
		a := newApp(cfg, newCLILogger(cfg))
		a.openJournal()
		defer a.close()

		res, err := a.ctrl.Switch(cmd.Context())
		if len(res.Mapped) > 0 {
			fmt.Printf("Mapped devices: %s\n", strings.Join(res.Mapped, ", "))
		}
		if err != nil {
			var devErr *remap.DeviceError
			if errors.As(err, &devErr) && len(res.Mapped) > 0 {
				return fmt.Errorf("%w (stopped after %d device(s))", err, len(res.Mapped))
			}
			return err
		}
		fmt.Println("Switched tablet monitor mapping.")
		return nil
	},
}

func init() {
	switchCmd.Flags().StringVarP(&switchOutput, "output", "o", "", "output to map to instead of the configured one (e.g. HDMI-1)")
	rootCmd.AddCommand(switchCmd)
}
