package cmd

import (
	"errors"
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/FluidXR/tabletswitch/internal/config"
	"github.com/FluidXR/tabletswitch/internal/logging"
)

// Version of tabletswitch.
const Version = "0.2.0"

var (
	configFile string
	logLevel   string
)

var rootCmd = &cobra.Command{
	Use:     "tabletswitch",
	Short:   "Move a graphics tablet between monitors",
	Version: Version,
	Long: `tabletswitch watches for a Wacom-compatible tablet through xsetwacom and
cycles its screen mapping to the next monitor on request.

Run without arguments in a terminal for the interactive view; when not
attached to a terminal it behaves like 'tabletswitch watch'.`,
	SilenceUsage:  true,
	SilenceErrors: true,
	RunE: func(cmd *cobra.Command, args []string) error {
		if logging.IsTerminal(os.Stdout) {
			return runTUI(cmd.Context())
		}
		return runWatch(cmd.Context())
	},
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&configFile, "config", "c", "", "config file (default: "+config.ConfigPath()+")")
	rootCmd.PersistentFlags().StringVar(&logLevel, "log-level", "", "override log level (debug, info, warn, error)")
}

// loadConfig reads the config selected by --config and applies flag overrides.
func loadConfig() (*config.Config, error) {
	path := configFile
	if path == "" {
		path = config.ConfigPath()
	}
	cfg, err := config.LoadFrom(path)
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if logLevel != "" {
		if err := cfg.Set("log_level", logLevel); err != nil {
			return nil, err
		}
	}
	return cfg, nil
}

// Execute runs the root command.
func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if !errors.Is(err, errSilentExit) {
			fmt.Fprintln(os.Stderr, "Error:", err)
		}
		os.Exit(1)
	}
}
