package cmd

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/service"
)

var serviceCmd = &cobra.Command{
	Use:   "service",
	Short: "Manage the background watcher as a user service",
}

func newServiceManager() (*service.Manager, error) {
	return service.NewManager(runWatch)
}

func serviceAction(use, short, done string, action func(*service.Manager) error) *cobra.Command {
	return &cobra.Command{
		Use:   use,
		Short: short,
		RunE: func(cmd *cobra.Command, args []string) error {
			m, err := newServiceManager()
			if err != nil {
				return err
			}
			if err := action(m); err != nil {
				return fmt.Errorf("%s service: %w", use, err)
			}
			fmt.Println(done)
			return nil
		},
	}
}

var serviceStatusCmd = &cobra.Command{
	Use:   "status",
	Short: "Show service status",
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newServiceManager()
		if err != nil {
			return err
		}
		status, err := m.Status()
		if err != nil {
			return err
		}
		fmt.Printf("Platform: %s\n", service.Platform())
		fmt.Printf("Status:   %s\n", status)
		return nil
	},
}

var serviceRunCmd = &cobra.Command{
	Use:    "run",
	Short:  "Run under the service manager",
	Hidden: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		m, err := newServiceManager()
		if err != nil {
			return err
		}
		return m.Run()
	},
}

func init() {
	serviceCmd.AddCommand(
		serviceAction("install", "Install the user service", "Service installed", (*service.Manager).Install),
		serviceAction("uninstall", "Remove the user service", "Service uninstalled", (*service.Manager).Uninstall),
		serviceAction("start", "Start the user service", "Service started", (*service.Manager).Start),
		serviceAction("stop", "Stop the user service", "Service stopped", (*service.Manager).Stop),
		serviceAction("restart", "Restart the user service", "Service restarted", (*service.Manager).Restart),
		serviceStatusCmd,
		serviceRunCmd,
	)
	rootCmd.AddCommand(serviceCmd)
}
