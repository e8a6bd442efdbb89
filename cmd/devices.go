package cmd

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/xsetwacom"
)

var devicesIDsOnly bool

var devicesCmd = &cobra.Command{
	Use:   "devices",
	Short: "List attached tablet devices",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := loadConfig()
		if err != nil {
			return err
		}

		client := xsetwacom.NewClient(cfg.Tool)
		devices, err := client.Devices(cmd.Context())
		if err != nil {
			if errors.Is(err, xsetwacom.ErrLaunchFailed) {
				return fmt.Errorf("%w (run 'tabletswitch deps')", err)
			}
			return err
		}

		if len(devices) == 0 {
			fmt.Println("No tablet devices connected.")
			return nil
		}

		for _, d := range devices {
			if devicesIDsOnly {
				fmt.Println(d.ID)
				continue
			}
			typ := d.Type
			if typ == "" {
				typ = "-"
			}
			fmt.Printf("%-6s %-8s %s\n", d.ID, typ, d.Name)
		}
		return nil
	},
}

func init() {
	devicesCmd.Flags().BoolVar(&devicesIDsOnly, "ids", false, "print only device ids")
	rootCmd.AddCommand(devicesCmd)
}
